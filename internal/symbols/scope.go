package symbols

import "github.com/vta-lang/vta/internal/sort"

// Scope is the local-variable environment active while parsing a
// functional-literal body or a specialization's pattern/body: its
// parameters, or the free variables a specialization's left-hand side
// binds. Functional-literal bodies never nest inside one another, so
// Scope never needs an outer link.
type Scope struct {
	locals map[string]sort.Sort
}

// NewScope returns an empty local scope.
func NewScope() *Scope {
	return &Scope{locals: make(map[string]sort.Sort)}
}

// Bind adds or overwrites a local binding. Duplicate parameter names are
// not rejected — the last binding wins.
func (s *Scope) Bind(name string, declared sort.Sort) {
	s.locals[name] = declared
}

// Lookup returns the declared sort of a local, if bound.
func (s *Scope) Lookup(name string) (sort.Sort, bool) {
	v, ok := s.locals[name]
	return v, ok
}
