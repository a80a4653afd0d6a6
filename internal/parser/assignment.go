package parser

import (
	"fmt"
	"strings"

	"github.com/vta-lang/vta/internal/ast"
	"github.com/vta-lang/vta/internal/classifier"
	"github.com/vta-lang/vta/internal/diagnostics"
	"github.com/vta-lang/vta/internal/sort"
	"github.com/vta-lang/vta/internal/symbols"
)

// ParseAssignment parses a plain assignment line. Assigning to the
// reserved name `null` requires the right-hand side to be a call to a
// null-translating builtin (currently only `print`); assigning a
// NULL-sort value to any other name is rejected the same way.
func (p *Parser) ParseAssignment(line classifier.Line) (*ast.Assignment, error) {
	left := strings.TrimSpace(line.Left)
	right := strings.TrimSpace(line.Right)

	if left == symbols.NullName {
		val, err := p.ParseRvalue(right, nil)
		if err != nil {
			return nil, err
		}
		call, ok := val.(ast.Call)
		if !ok {
			return nil, diagnostics.NewTranslationError(diagnostics.ErrNullArgNotCall, right,
				"assignment to 'null' must be a call to a null-translating builtin")
		}
		if !sort.NullTranslating[call.Identifier] {
			return nil, diagnostics.NewTranslationError(diagnostics.ErrNullArgNotCall, right,
				fmt.Sprintf("'%s' does not translate to a null-sort statement", call.Identifier))
		}
		return &ast.Assignment{IsNull: true, Value: call}, nil
	}

	val, err := p.ParseRvalue(right, nil)
	if err != nil {
		return nil, err
	}
	if val.Sort() == sort.NULL {
		return nil, diagnostics.NewTranslationError(diagnostics.ErrNullArgNotCall, right,
			fmt.Sprintf("cannot assign a null-sort value to non-null name '%s'", left))
	}

	versioned := p.Symbols.Assign(left, val.Sort())
	return &ast.Assignment{VersionedName: versioned, BaseName: left, Value: val}, nil
}
