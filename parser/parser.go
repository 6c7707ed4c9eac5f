package parser

import "github.com/havrydotdev/bang/token"

// Stmt is a typed statement record built from one token line.
type Stmt interface {
	isStmt()
}

// VarStmt declares (or overwrites) a variable. Value holds the raw
// literal text; numeric parsing is deferred to print time.
type VarStmt struct {
	Name   string
	Value  string
	Number bool
}

// PrintStmt emits one value. Quoted means the argument was written in
// quotes and is always literal text, never a variable reference.
type PrintStmt struct {
	Arg    string
	Quoted bool
}

func (VarStmt) isStmt()   {}
func (PrintStmt) isStmt() {}

// Parse builds one statement per line that matches a grammar shape.
// Lines matching no shape are skipped, they are not an error.
func Parse(lines []token.Line) []Stmt {
	var stmts []Stmt
	for _, line := range lines {
		if stmt := parseLine(line); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	return stmts
}

func parseLine(line token.Line) Stmt {
	for _, shape := range shapes {
		if matches(line, shape.kinds) {
			return shape.build(line)
		}
	}

	return nil
}

func matches(line token.Line, kinds []token.Kind) bool {
	if len(line) != len(kinds) {
		return false
	}

	for i, tok := range line {
		if tok.Kind != kinds[i] {
			return false
		}
	}

	return true
}
