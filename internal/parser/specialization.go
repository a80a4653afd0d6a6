package parser

import (
	"fmt"
	"strings"

	"github.com/vta-lang/vta/internal/ast"
	"github.com/vta-lang/vta/internal/classifier"
	"github.com/vta-lang/vta/internal/diagnostics"
	"github.com/vta-lang/vta/internal/symbols"
)

// ParseFLSpec parses a functional-literal specialization: each positional
// left-hand argument is a bound free variable of the specialization iff
// its textual form equals the name of the defining FL's parameter at that
// position; otherwise it is parsed as an ordinary Rvalue pattern. The
// right-hand side is parsed under the resulting scope.
func (p *Parser) ParseFLSpec(line classifier.Line) (*ast.FLSpec, error) {
	left := strings.TrimSpace(line.Left)
	name, argsStr, ok := splitCallShape(left)
	if !ok {
		return nil, diagnostics.NewParsingError(diagnostics.ErrMalformedCall, left,
			"malformed specialization left-hand side")
	}

	entry, ok := p.Symbols.FL(name)
	if !ok || !entry.Defined {
		return nil, diagnostics.NewParsingError(diagnostics.ErrUnknownFL, name,
			fmt.Sprintf("unknown functional literal '%s'", name))
	}

	rawArgs := splitCallArgs(argsStr)
	if len(rawArgs) > len(entry.Params) {
		return nil, diagnostics.NewParsingError(diagnostics.ErrMalformedCall, left,
			"too many arguments in specialization")
	}

	isFreeVar := make([]bool, len(rawArgs))
	for i, a := range rawArgs {
		if i < len(entry.Params) && a == entry.Params[i].Name {
			isFreeVar[i] = true
		}
	}

	scope := symbols.NewScope()
	for i, free := range isFreeVar {
		if free {
			scope.Bind(rawArgs[i], paramReturnSort(entry.Params[i].Sort))
		}
	}

	specArgs := make([]ast.SpecArg, len(rawArgs))
	for i, a := range rawArgs {
		if isFreeVar[i] {
			specArgs[i] = ast.SpecArg{FreeVar: true, Name: a, FreeSort: entry.Params[i].Sort}
			continue
		}
		pattern, err := p.ParseRvalue(a, scope)
		if err != nil {
			return nil, err
		}
		specArgs[i] = ast.SpecArg{Pattern: pattern}
	}

	body, err := p.ParseRvalue(strings.TrimSpace(line.Right), scope)
	if err != nil {
		return nil, err
	}

	return &ast.FLSpec{Name: name, ReturnSort: entry.ReturnSort, Args: specArgs, Body: body}, nil
}
