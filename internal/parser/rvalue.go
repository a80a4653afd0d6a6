package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vta-lang/vta/internal/ast"
	"github.com/vta-lang/vta/internal/diagnostics"
	"github.com/vta-lang/vta/internal/sort"
	"github.com/vta-lang/vta/internal/symbols"
)

// ParseRvalue parses a raw right-hand-side fragment under the given local
// scope (nil at top level), following resolution order: locals, then a
// numeric literal, then a known variable, then — only if none of those
// match — a call.
func (p *Parser) ParseRvalue(raw string, locals *symbols.Scope) (ast.Rvalue, error) {
	t := strings.TrimSpace(raw)

	if locals != nil {
		if declared, ok := locals.Lookup(t); ok {
			return ast.LocalVariable{Name: t, DeclaredSort: declared}, nil
		}
	}

	if numericLiteralPattern.MatchString(t) {
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return nil, diagnostics.NewParsingError(diagnostics.ErrMalformedCall, t, "numeric literal out of range")
		}
		return ast.NumericLiteral{Value: n}, nil
	}

	if slot, ok := p.Symbols.Variable(t); ok {
		pending := slot.CurrentSort.Pending()
		if slot.IsFunction {
			entry, found := p.Symbols.FL(t)
			pending = !found || !entry.Defined
		}
		if pending {
			return nil, diagnostics.NewTranslationError(diagnostics.ErrPendingSort, t,
				fmt.Sprintf("forward reference to %q before it is assigned", t))
		}
		return ast.VariableValue{
			VersionedName: slot.VersionedName(),
			BaseName:      slot.BaseName,
			ValueSort:     slot.CurrentSort,
			Pending:       slot.IsFunction,
		}, nil
	}

	head, argsStr, ok := splitCallShape(t)
	if !ok {
		return nil, diagnostics.NewParsingError(diagnostics.ErrUnresolvedIdent, t,
			fmt.Sprintf("unknown rvalue type: '%s'", t))
	}

	return p.parseCall(head, argsStr, locals)
}

// parseCall resolves a call's head identifier in order locals -> FLs ->
// builtins and parses its arguments, except for `read`, whose argument
// text is never parsed — its call is replaced eagerly by a numeric
// literal consumed from the stdin cursor.
func (p *Parser) parseCall(head, argsStr string, locals *symbols.Scope) (ast.Rvalue, error) {
	if locals != nil {
		if declared, ok := locals.Lookup(head); ok {
			args, err := p.parseArgs(argsStr, locals)
			if err != nil {
				return nil, err
			}
			return ast.Call{Identifier: head, Args: args, Kind: ast.CalleeLocal, ReturnSort: declared}, nil
		}
	}

	if entry, ok := p.Symbols.FL(head); ok {
		if !entry.Defined {
			return nil, diagnostics.NewTranslationError(diagnostics.ErrPendingSort, head,
				fmt.Sprintf("forward reference to functional literal %q before it is defined", head))
		}
		args, err := p.parseArgs(argsStr, locals)
		if err != nil {
			return nil, err
		}
		return ast.Call{Identifier: head, Args: args, Kind: ast.CalleeFL, ReturnSort: entry.ReturnSort}, nil
	}

	if builtinSort, ok := sort.IsBuiltin(head); ok {
		if head == "read" {
			return p.parseEagerRead()
		}
		args, err := p.parseArgs(argsStr, locals)
		if err != nil {
			return nil, err
		}
		return ast.Call{Identifier: head, Args: args, Kind: ast.CalleeBuiltin, ReturnSort: builtinSort}, nil
	}

	return nil, diagnostics.NewParsingError(diagnostics.ErrUnresolvedIdent, head,
		fmt.Sprintf("identifier '%s' is not defined", head))
}

// parseEagerRead consumes one whitespace-delimited token from the task's
// stdin buffer at translation time and hard-codes it as a numeric
// literal. The call's own argument list is ignored — not even parsed.
func (p *Parser) parseEagerRead() (ast.Rvalue, error) {
	tok, ok := p.Stdin.Next()
	if !ok {
		return nil, diagnostics.NewTranslationError(diagnostics.ErrNonNumericRead, "read(...)",
			"read() called with no remaining stdin tokens")
	}
	if !numericLiteralPattern.MatchString(tok) {
		return nil, diagnostics.NewTranslationError(diagnostics.ErrNonNumericRead, tok,
			fmt.Sprintf("read() consumed non-numeric stdin token %q", tok))
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, diagnostics.NewTranslationError(diagnostics.ErrNonNumericRead, tok, "stdin token out of int64 range")
	}
	return ast.NumericLiteral{Value: n}, nil
}

func (p *Parser) parseArgs(argsStr string, locals *symbols.Scope) ([]ast.Rvalue, error) {
	pieces := splitCallArgs(argsStr)
	if pieces == nil {
		return nil, nil
	}
	args := make([]ast.Rvalue, 0, len(pieces))
	for _, piece := range pieces {
		v, err := p.ParseRvalue(piece, locals)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}
