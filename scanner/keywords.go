package scanner

import "github.com/havrydotdev/bang/token"

var keywords = map[string]token.Kind{
	"print": token.Print,
	"var":   token.Var,
}
