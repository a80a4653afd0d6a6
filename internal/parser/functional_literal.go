package parser

import (
	"strings"

	"github.com/vta-lang/vta/internal/ast"
	"github.com/vta-lang/vta/internal/classifier"
	"github.com/vta-lang/vta/internal/diagnostics"
	"github.com/vta-lang/vta/internal/sort"
	"github.com/vta-lang/vta/internal/symbols"
)

// ParseFLDef parses a functional-literal definition line: the return-sort
// head, the parameter list, the "->" separator, and the body — parsed
// with the parameter map as the local scope. Registers the parsed
// parameter list into the symbol table's functional-literal entry.
func (p *Parser) ParseFLDef(line classifier.Line) (*ast.FLDef, error) {
	right := strings.TrimSpace(line.Right)

	var headLen int
	var retSort sort.Sort
	switch {
	case strings.HasPrefix(right, "num"):
		headLen, retSort = 3, sort.NUMERIC
	case strings.HasPrefix(right, "type"):
		headLen, retSort = 4, sort.TYPE
	default:
		return nil, diagnostics.NewParsingError(diagnostics.ErrUnknownSortKeyword, right,
			"functional literal must start with 'type' or 'num'")
	}

	rest := strings.TrimSpace(right[headLen:])
	if !strings.HasPrefix(rest, "(") {
		return nil, diagnostics.NewParsingError(diagnostics.ErrMalformedCall, right,
			"expected '(' after return sort")
	}
	closeIdx, ok := findMatchingParen(rest, 0)
	if !ok {
		return nil, diagnostics.NewParsingError(diagnostics.ErrMalformedCall, right,
			"unbalanced parentheses in parameter list")
	}
	paramsStr := rest[1:closeIdx]
	afterParams := strings.TrimSpace(rest[closeIdx+1:])
	if !strings.HasPrefix(afterParams, "->") {
		return nil, diagnostics.NewParsingError(diagnostics.ErrMalformedCall, right,
			"expected '->' after parameter list")
	}
	bodyStr := strings.TrimSpace(afterParams[2:])

	params, err := parseParamList(paramsStr)
	if err != nil {
		return nil, err
	}

	scope := symbols.NewScope()
	for _, prm := range params {
		scope.Bind(prm.Name, paramReturnSort(prm.Sort))
	}

	// Defined before the body is parsed so a recursive self-call inside the
	// body resolves rather than looking like a forward reference.
	p.Symbols.DefineFL(line.Left, params)

	body, err := p.ParseRvalue(bodyStr, scope)
	if err != nil {
		return nil, err
	}

	return &ast.FLDef{Name: line.Left, ReturnSort: retSort, Params: params, Body: body}, nil
}

// parseParamList parses the parameter-list grammar: a comma-separated
// (at top-level nesting) list of "name : sort_spec" entries, where
// sort_spec is 'num', 'type', or a nested functional-sort expression.
func parseParamList(paramsStr string) ([]ast.Param, error) {
	pieces := splitCallArgs(paramsStr)
	if pieces == nil {
		return nil, nil
	}
	params := make([]ast.Param, 0, len(pieces))
	for _, piece := range pieces {
		name, spec, ok := splitNameSort(piece)
		if !ok {
			return nil, diagnostics.NewParsingError(diagnostics.ErrMalformedCall, piece,
				"malformed parameter (expected 'name: sort')")
		}
		if !symbols.IdentifierPattern.MatchString(name) {
			return nil, diagnostics.NewParsingError(diagnostics.ErrBadIdentifier, name,
				"identifiers must match ^[A-Za-z][A-Za-z0-9]*$")
		}
		paramSort, err := parseSortSpec(spec)
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: name, Sort: paramSort})
	}
	return params, nil
}

// parseSortSpec parses a parameter's declared sort: a bare 'num'/'type', or
// a nested functional-sort expression for a higher-order parameter.
func parseSortSpec(spec string) (ast.ParamSort, error) {
	switch spec {
	case "num":
		return ast.ParamSort{Base: sort.NUMERIC}, nil
	case "type":
		return ast.ParamSort{Base: sort.TYPE}, nil
	}

	var retSort sort.Sort
	var headLen int
	switch {
	case strings.HasPrefix(spec, "num"):
		headLen, retSort = 3, sort.NUMERIC
	case strings.HasPrefix(spec, "type"):
		headLen, retSort = 4, sort.TYPE
	default:
		return ast.ParamSort{}, diagnostics.NewParsingError(diagnostics.ErrUnknownSortKeyword, spec,
			"expected 'num', 'type', or a functional sort expression")
	}

	rest := strings.TrimSpace(spec[headLen:])
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return ast.ParamSort{}, diagnostics.NewParsingError(diagnostics.ErrMalformedCall, spec,
			"malformed higher-order parameter signature")
	}
	nestedParams, err := parseParamList(rest[1 : len(rest)-1])
	if err != nil {
		return ast.ParamSort{}, err
	}
	return ast.ParamSort{HigherOrder: &ast.Signature{ReturnSort: retSort, Params: nestedParams}}, nil
}

// paramReturnSort is the sort a parameter behaves as when referenced as a
// value or called: its own declared sort for a plain parameter, or its
// signature's return sort for a higher-order one.
func paramReturnSort(ps ast.ParamSort) sort.Sort {
	if ps.HigherOrder != nil {
		return ps.HigherOrder.ReturnSort
	}
	return ps.Base
}
