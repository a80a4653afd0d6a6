// Package parser turns a raw right-hand-side string into a typed
// ast.Rvalue, given the symbol table, the functional-literal table
// embedded in it, an optional local scope, and the eager stdin cursor
// that feeds `read`. There is no token-stream cursor here: every
// right-hand side is small enough to parse by direct substring recursion
// instead of a Pratt loop.
package parser

import (
	"github.com/vta-lang/vta/internal/symbols"
)

// Parser holds everything translation of one right-hand side needs: the
// shared symbol table, which it updates as assignments and definitions are
// parsed, and the single stdin cursor every eager `read` call advances.
type Parser struct {
	Symbols *symbols.Table
	Stdin   *StdinCursor
}

// New builds a Parser bound to a symbol table and a stdin buffer.
func New(symTable *symbols.Table, stdin *StdinCursor) *Parser {
	return &Parser{Symbols: symTable, Stdin: stdin}
}
