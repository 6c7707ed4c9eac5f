package token

import "fmt"

type Kind int

const (
	Illegal Kind = iota
	Eof
	Identifier
	Print
	LeftParen
	RightParen
	Bang
	SingleQuote
	DoubleQuote
	Var
	Equal
	Integer
)

var kindNames = map[Kind]string{
	Illegal:     "Illegal",
	Eof:         "Eof",
	Identifier:  "Identifier",
	Print:       "Print",
	LeftParen:   "LeftParen",
	RightParen:  "RightParen",
	Bang:        "Bang",
	SingleQuote: "SingleQuote",
	DoubleQuote: "DoubleQuote",
	Var:         "Var",
	Equal:       "Equal",
	Integer:     "Integer",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return name
}

// Token pairs a kind with the exact source text that produced it.
// Line is the 0-based index of the statement the token belongs to.
type Token struct {
	Kind    Kind
	Literal string
	Line    int
}

// Line is the token sequence between two `!` terminators, the
// terminator itself excluded. It is the unit the interpreter executes.
type Line []*Token

func New(kind Kind, literal string, line int) *Token {
	return &Token{kind, literal, line}
}

func (t *Token) ToString() string {
	return fmt.Sprintf("{Kind(%v), Literal(%s)}", t.Kind, t.Literal)
}
