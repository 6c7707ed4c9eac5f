package parser

import "github.com/havrydotdev/bang/token"

type shape struct {
	kinds []token.Kind
	build func(line token.Line) Stmt
}

// shapes is the grammar: the exact ordered token kinds each statement
// form must carry. A line is checked positionally against every shape
// before any statement record is built.
var shapes = []shape{
	{
		kinds: []token.Kind{token.Print, token.LeftParen, token.SingleQuote, token.Identifier, token.SingleQuote, token.RightParen},
		build: func(line token.Line) Stmt {
			return PrintStmt{Arg: line[3].Literal, Quoted: true}
		},
	},
	{
		kinds: []token.Kind{token.Print, token.LeftParen, token.DoubleQuote, token.Identifier, token.DoubleQuote, token.RightParen},
		build: func(line token.Line) Stmt {
			return PrintStmt{Arg: line[3].Literal, Quoted: true}
		},
	},
	{
		kinds: []token.Kind{token.Print, token.LeftParen, token.Identifier, token.RightParen},
		build: func(line token.Line) Stmt {
			return PrintStmt{Arg: line[2].Literal}
		},
	},
	{
		kinds: []token.Kind{token.Var, token.Identifier, token.Equal, token.SingleQuote, token.Identifier, token.SingleQuote},
		build: func(line token.Line) Stmt {
			return VarStmt{Name: line[1].Literal, Value: line[4].Literal}
		},
	},
	{
		kinds: []token.Kind{token.Var, token.Identifier, token.Equal, token.DoubleQuote, token.Identifier, token.DoubleQuote},
		build: func(line token.Line) Stmt {
			return VarStmt{Name: line[1].Literal, Value: line[4].Literal}
		},
	},
	{
		kinds: []token.Kind{token.Var, token.Identifier, token.Equal, token.Integer},
		build: func(line token.Line) Stmt {
			return VarStmt{Name: line[1].Literal, Value: line[3].Literal, Number: true}
		},
	},
}
