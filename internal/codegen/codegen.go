// Package codegen walks the typed IR internal/ast and internal/parser
// produce and writes one C++ translation unit by concatenating the three
// static fragments from internal/fragments with generated struct
// declarations and specializations. Emission never reduces anything; it
// only translates shape, leaving the actual arithmetic and type-level
// computation to the C++ compiler that consumes the output.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vta-lang/vta/internal/ast"
	"github.com/vta-lang/vta/internal/diagnostics"
	"github.com/vta-lang/vta/internal/fragments"
	"github.com/vta-lang/vta/internal/sort"
	"github.com/vta-lang/vta/internal/symbols"
)

// Emitter assembles a C++ translation unit from a parsed Program. It holds
// no state (print statements are collected per Emit call), so a single
// Emitter value is reused across translations.
type Emitter struct{}

// New returns an Emitter.
func New() *Emitter {
	return &Emitter{}
}

// Emit walks prog's lines in source order and returns the full C++ source
// text: header + stdlib + one declaration per IR line + main template
// with every print statement substituted for {0}.
func (e *Emitter) Emit(prog *ast.Program) (string, error) {
	var decls []string
	var prints []string

	for _, line := range prog.Lines {
		switch l := line.(type) {
		case *ast.Assignment:
			if l.IsNull {
				call, ok := l.Value.(ast.Call)
				if !ok {
					return "", diagnostics.NewTranslationError(diagnostics.ErrNullArgNotCall, "",
						"internal: null assignment value is not a call")
				}
				argStrs := make([]string, 0, len(call.Args))
				for _, a := range call.Args {
					s, err := translate(a)
					if err != nil {
						return "", err
					}
					argStrs = append(argStrs, s)
				}
				prints = append(prints, fmt.Sprintf("  __print<%s>();", strings.Join(argStrs, ", ")))
				continue
			}
			decl, err := emitAssignment(l)
			if err != nil {
				return "", err
			}
			decls = append(decls, decl)

		case *ast.FLDef:
			decl, err := emitFLDef(l)
			if err != nil {
				return "", err
			}
			decls = append(decls, decl)

		case *ast.FLSpec:
			decl, err := emitFLSpec(l)
			if err != nil {
				return "", err
			}
			decls = append(decls, decl)

		default:
			return "", diagnostics.NewTranslationError(diagnostics.ErrInternalUnknown, "",
				fmt.Sprintf("internal: unknown IR line type %T", line))
		}
	}

	body := fragments.MainTemplate
	body = strings.Replace(body, "{0}", strings.Join(prints, "\n"), 1)

	var out strings.Builder
	out.WriteString(fragments.Header)
	out.WriteString("\n")
	out.WriteString(fragments.Stdlib)
	out.WriteString("\n")
	for _, d := range decls {
		out.WriteString(d)
		out.WriteString("\n")
	}
	out.WriteString(body)
	return out.String(), nil
}

func emitAssignment(a *ast.Assignment) (string, error) {
	expr, err := translate(a.Value)
	if err != nil {
		return "", err
	}
	switch a.Value.Sort() {
	case sort.NUMERIC:
		return fmt.Sprintf("struct %s { static const long long value = %s; };", a.VersionedName, expr), nil
	case sort.TYPE:
		return fmt.Sprintf("struct %s { using type = %s; };", a.VersionedName, expr), nil
	default:
		return "", diagnostics.NewTranslationError(diagnostics.ErrPendingSort, a.VersionedName,
			fmt.Sprintf("cannot emit %q: right-hand side has pending sort", a.VersionedName))
	}
}

func emitFLDef(f *ast.FLDef) (string, error) {
	bodyExpr, err := translate(f.Body)
	if err != nil {
		return "", err
	}
	member, err := memberDecl(f.ReturnSort, bodyExpr)
	if err != nil {
		return "", err
	}
	if len(f.Params) == 0 {
		return fmt.Sprintf("struct _%s { %s };", f.Name, member), nil
	}
	decls := make([]string, len(f.Params))
	for i, p := range f.Params {
		decls[i] = paramDecl(p.Name, p.Sort)
	}
	return fmt.Sprintf("template<%s> struct _%s { %s };", strings.Join(decls, ", "), f.Name, member), nil
}

func emitFLSpec(s *ast.FLSpec) (string, error) {
	var templateDecls []string
	patternArgs := make([]string, len(s.Args))
	for i, a := range s.Args {
		if a.FreeVar {
			templateDecls = append(templateDecls, paramDecl(a.Name, a.FreeSort))
			patternArgs[i] = a.Name
			continue
		}
		expr, err := translate(a.Pattern)
		if err != nil {
			return "", err
		}
		patternArgs[i] = expr
	}

	bodyExpr, err := translate(s.Body)
	if err != nil {
		return "", err
	}
	member, err := memberDecl(s.ReturnSort, bodyExpr)
	if err != nil {
		return "", err
	}

	header := fmt.Sprintf("struct _%s<%s>", s.Name, strings.Join(patternArgs, ", "))
	if len(templateDecls) > 0 {
		header = fmt.Sprintf("template<%s> %s", strings.Join(templateDecls, ", "), header)
	} else {
		header = "template<> " + header
	}
	return fmt.Sprintf("%s { %s };", header, member), nil
}

func memberDecl(retSort sort.Sort, expr string) (string, error) {
	switch retSort {
	case sort.NUMERIC:
		return fmt.Sprintf("static const long long value = %s;", expr), nil
	case sort.TYPE:
		return fmt.Sprintf("using type = %s;", expr), nil
	default:
		return "", diagnostics.NewTranslationError(diagnostics.ErrPendingSort, expr,
			"cannot emit a member of pending sort")
	}
}

// paramDecl renders one functional-literal (or specialization free-variable)
// parameter declaration: numeric sort becomes `long long name`, type sort
// becomes `typename name`, higher-order sort becomes `template<...>
// typename name` with its own parameter list rendered recursively.
func paramDecl(name string, ps ast.ParamSort) string {
	if ps.HigherOrder == nil {
		if ps.Base == sort.TYPE {
			return "typename " + name
		}
		return "long long " + name
	}
	nested := make([]string, len(ps.HigherOrder.Params))
	for i, p := range ps.HigherOrder.Params {
		nested[i] = paramDecl(p.Name, p.Sort)
	}
	return fmt.Sprintf("template<%s> typename %s", strings.Join(nested, ", "), name)
}

// translate renders one Rvalue as the C++ expression text that reads it.
func translate(r ast.Rvalue) (string, error) {
	switch v := r.(type) {
	case ast.NumericLiteral:
		return strconv.FormatInt(v.Value, 10), nil

	case ast.LocalVariable:
		return v.Name, nil

	case ast.VariableValue:
		if v.Pending {
			return symbols.Purify(v.VersionedName), nil
		}
		switch v.ValueSort {
		case sort.NUMERIC:
			return v.VersionedName + "::value", nil
		case sort.TYPE:
			return v.VersionedName + "::type", nil
		default:
			return "", diagnostics.NewTranslationError(diagnostics.ErrPendingSort, v.VersionedName,
				fmt.Sprintf("reference to %q has pending sort", v.VersionedName))
		}

	case ast.Call:
		return translateCall(v)

	default:
		return "", diagnostics.NewTranslationError(diagnostics.ErrInternalUnknown, "",
			fmt.Sprintf("internal: unknown Rvalue type %T", r))
	}
}

func translateCall(c ast.Call) (string, error) {
	argStrs := make([]string, len(c.Args))
	for i, a := range c.Args {
		s, err := translate(a)
		if err != nil {
			return "", err
		}
		argStrs[i] = s
	}

	var head string
	switch c.Kind {
	case ast.CalleeBuiltin:
		head = "__" + c.Identifier
	case ast.CalleeFL:
		head = "_" + c.Identifier
	case ast.CalleeLocal:
		head = c.Identifier
	default:
		return "", diagnostics.NewTranslationError(diagnostics.ErrInternalUnknown, c.Identifier,
			"internal: unknown callee kind")
	}

	var prefix, suffix string
	switch c.ReturnSort {
	case sort.NUMERIC:
		suffix = "value"
	case sort.TYPE:
		prefix, suffix = "typename ", "type"
	default:
		return "", diagnostics.NewTranslationError(diagnostics.ErrPendingSort, c.Identifier,
			fmt.Sprintf("call to %q has pending return sort", c.Identifier))
	}

	if len(argStrs) == 0 {
		return fmt.Sprintf("%s%s::%s", prefix, head, suffix), nil
	}
	return fmt.Sprintf("%s%s<%s>::%s", prefix, head, strings.Join(argStrs, ", "), suffix), nil
}
