package env

// Kind tags what a stored value is. Raw text is kept verbatim either
// way; numbers are parsed where they are printed.
type Kind int

const (
	String Kind = iota
	Number
)

type Value struct {
	Kind Kind
	Raw  string
}

// Env is the run-lifetime variable table. There is no scoping and no
// deletion; a redeclaration silently overwrites.
type Env struct {
	values map[string]Value
}

func New() *Env {
	return &Env{values: make(map[string]Value)}
}

func (e *Env) Define(name string, value Value) {
	e.values[name] = value
}

func (e *Env) Get(name string) (Value, bool) {
	val, ok := e.values[name]
	return val, ok
}
