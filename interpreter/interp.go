package interp

import (
	"fmt"
	"io"
	"strconv"

	env "github.com/havrydotdev/bang/environment"
	"github.com/havrydotdev/bang/parser"
)

// Interpreter executes statements in line order against one variable
// table, writing every print result to out as it happens.
type Interpreter struct {
	environment *env.Env
	out         io.Writer
}

func New(out io.Writer) *Interpreter {
	return &Interpreter{environment: env.New(), out: out}
}

func (i *Interpreter) Run(stmts []parser.Stmt) error {
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (i *Interpreter) execute(stmt parser.Stmt) error {
	switch s := stmt.(type) {
	case parser.VarStmt:
		i.declare(s)
		return nil
	case parser.PrintStmt:
		return i.print(s)
	}

	return fmt.Errorf("internal error: unknown statement %T", stmt)
}

func (i *Interpreter) declare(s parser.VarStmt) {
	kind := env.String
	if s.Number {
		kind = env.Number
	}

	i.environment.Define(s.Name, env.Value{Kind: kind, Raw: s.Value})
}

func (i *Interpreter) print(s parser.PrintStmt) error {
	// quotes force literal text, never a lookup
	if s.Quoted {
		fmt.Fprintln(i.out, s.Arg)
		return nil
	}

	val, ok := i.environment.Get(s.Arg)
	if !ok {
		return fmt.Errorf("undefined variable %s", s.Arg)
	}

	if val.Kind == env.Number {
		num, err := strconv.Atoi(val.Raw)
		if err != nil {
			return fmt.Errorf("variable %s holds a malformed number %q", s.Arg, val.Raw)
		}

		fmt.Fprintln(i.out, num)
		return nil
	}

	fmt.Fprintln(i.out, val.Raw)
	return nil
}
