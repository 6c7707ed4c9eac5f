package main

import (
	"bufio"
	"fmt"
	"os"

	interp "github.com/havrydotdev/bang/interpreter"
	"github.com/havrydotdev/bang/parser"
	"github.com/havrydotdev/bang/scanner"
)

func main() {
	if len(os.Args) > 1 {
		fileName := os.Args[1]
		text, err := os.ReadFile(fileName)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		in := interp.New(os.Stdout)
		if err := run(in, string(text)); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
	} else {
		fmt.Println("Welcome to bang (version 0.0.1)!")
		in := interp.New(os.Stdout)
		reader := bufio.NewReader(os.Stdin)
		for {
			fmt.Print("> ")
			text, err := reader.ReadString('\n')
			if err != nil {
				fmt.Println(err)
				return
			}

			if err := run(in, text); err != nil {
				fmt.Printf("Eval error: %s\n", err.Error())
			}
		}
	}
}

func run(in *interp.Interpreter, source string) error {
	lines, err := scanner.New(source).Scan()
	if err != nil {
		return fmt.Errorf("Scanning failed: %s", err.Error())
	}

	return in.Run(parser.Parse(lines))
}
