// Package symbol interns identifier text into shared handles.
package symbol

// Symbol is an interned identifier. Two symbols obtained from the same Table
// for the same text are the same pointer.
type Symbol struct {
	name string
}

func (s *Symbol) String() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Env maps identifier text to handles and back. The parser only ever sees
// this interface so callers can supply their own interner.
type Env interface {
	Intern(name string) *Symbol
	Name(sym *Symbol) string
}

// Table is the default Env. It is not safe for concurrent use; give each
// parse its own table or guard it externally.
type Table struct {
	symbols map[string]*Symbol
}

func NewTable() *Table {
	return &Table{symbols: make(map[string]*Symbol)}
}

func (t *Table) Intern(name string) *Symbol {
	if sym, ok := t.symbols[name]; ok {
		return sym
	}
	sym := &Symbol{name: name}
	t.symbols[name] = sym
	return sym
}

func (t *Table) Name(sym *Symbol) string {
	return sym.String()
}

// Lookup returns the symbol for name without interning it.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	sym, ok := t.symbols[name]
	return sym, ok
}

func (t *Table) Len() int {
	return len(t.symbols)
}
