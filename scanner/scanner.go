package scanner

import (
	"fmt"

	"github.com/havrydotdev/bang/token"
)

// Scanner tokenizes the whole source eagerly and groups the result
// into statement lines split on the `!` terminator.
type Scanner struct {
	source string
	tokens []*token.Token
	lines  []token.Line

	start   int
	current int
	line    int
	prev    token.Kind
}

func New(source string) *Scanner {
	return &Scanner{source: source, tokens: make([]*token.Token, 0), start: 0, current: 0, line: 0, prev: token.Eof}
}

// Scan consumes the full input and returns every sealed line in source
// order. Tokens after the last `!` never form a line and are dropped.
func (s *Scanner) Scan() ([]token.Line, error) {
	for !s.isAtEnd() {
		s.start = s.current

		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}

	return s.lines, nil
}

func (s *Scanner) scanToken() error {
	c := s.advance()

	switch c {
	// one-character tokens
	case '(':
		s.addToken(token.LeftParen)
	case ')':
		s.addToken(token.RightParen)
	case '\'':
		s.addToken(token.SingleQuote)
	case '"':
		s.addToken(token.DoubleQuote)
	case '=':
		s.addToken(token.Equal)

	// statement terminator: seal the accumulated tokens into a line
	case '!':
		s.lines = append(s.lines, s.tokens)
		s.tokens = make([]*token.Token, 0)
		s.line++
		s.prev = token.Bang

	// whitespace never produces a token
	case ' ', '\t', '\r', '\n':
		break

	default:
		if isDigit(c) {
			s.number()
			break
		} else if isAlpha(c) {
			s.identifier()
		} else {
			return fmt.Errorf("unknown character %q at line %d", string(c), s.line)
		}
	}

	return nil
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (s *Scanner) identifier() {
	for isAlpha(s.peek()) {
		s.advance()
	}

	text := s.source[s.start:s.current]
	kind, ok := keywords[text]
	if !ok {
		kind = token.Identifier
	}

	s.addToken(kind)
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// a digit run right after a quote is string text, not a number:
	// '123' must stay the string "123"
	kind := token.Integer
	if s.prev == token.SingleQuote || s.prev == token.DoubleQuote {
		kind = token.Identifier
	}

	s.addToken(kind)
}

func (s *Scanner) addToken(kind token.Kind) {
	literal := s.source[s.start:s.current]

	s.tokens = append(s.tokens, token.New(kind, literal, s.line))
	s.prev = kind
}

func (s *Scanner) advance() byte {
	curr := s.current
	s.current++
	return s.source[curr]
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return '\000'
	}

	return s.source[s.current]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}
