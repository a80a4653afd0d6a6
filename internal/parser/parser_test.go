package parser

import (
	"testing"

	"github.com/vta-lang/vta/internal/ast"
	"github.com/vta-lang/vta/internal/classifier"
	"github.com/vta-lang/vta/internal/sort"
	"github.com/vta-lang/vta/internal/symbols"
)

func mustClassify(t *testing.T, source string) []classifier.Line {
	t.Helper()
	lines, err := classifier.Classify(source)
	if err != nil {
		t.Fatalf("Classify(%q): %v", source, err)
	}
	return lines
}

func newParser(t *testing.T, source, stdin string) (*Parser, []classifier.Line) {
	t.Helper()
	lines := mustClassify(t, source)
	tbl, err := symbols.Build(lines)
	if err != nil {
		t.Fatalf("symbols.Build: %v", err)
	}
	return New(tbl, NewStdinCursor(stdin)), lines
}

func TestParseAssignmentArithmetic(t *testing.T) {
	p, lines := newParser(t, "x = add(2, 3)\nnull = print(x)", "")
	prog, err := p.ParseProgram(lines)
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	if len(prog.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(prog.Lines))
	}
	assign, ok := prog.Lines[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("line 0 is %T, want *ast.Assignment", prog.Lines[0])
	}
	if assign.VersionedName != "x_1" {
		t.Errorf("VersionedName = %q, want x_1", assign.VersionedName)
	}
	call, ok := assign.Value.(ast.Call)
	if !ok || call.Identifier != "add" {
		t.Fatalf("x's value = %#v, want a call to add", assign.Value)
	}
}

func TestReassignmentUsesLatestVersion(t *testing.T) {
	p, lines := newParser(t, "x = 1\nx = 2\nnull = print(x)", "")
	prog, err := p.ParseProgram(lines)
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	printAssign := prog.Lines[2].(*ast.Assignment)
	call := printAssign.Value.(ast.Call)
	arg := call.Args[0].(ast.VariableValue)
	if arg.VersionedName != "x_2" {
		t.Errorf("print's argument resolved to %q, want x_2", arg.VersionedName)
	}
}

func TestEagerReadConsumesStdinToken(t *testing.T) {
	p, lines := newParser(t, "y = read(0)\nnull = print(mul(y, y))", "7")
	prog, err := p.ParseProgram(lines)
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	assign := prog.Lines[0].(*ast.Assignment)
	lit, ok := assign.Value.(ast.NumericLiteral)
	if !ok || lit.Value != 7 {
		t.Fatalf("read() result = %#v, want NumericLiteral(7)", assign.Value)
	}
}

func TestUndeclaredIdentifierFails(t *testing.T) {
	p, lines := newParser(t, "x = y", "")
	_, err := p.ParseProgram(lines)
	if err == nil {
		t.Fatal("expected an error for an undeclared identifier")
	}
}

func TestFunctionalLiteralDefinitionAndCall(t *testing.T) {
	p, lines := newParser(t, "f = num(x: num) -> add(x, 1)\nnull = print(f(41))", "")
	prog, err := p.ParseProgram(lines)
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	def := prog.Lines[0].(*ast.FLDef)
	if def.ReturnSort != sort.NUMERIC {
		t.Errorf("f's return sort = %v, want NUMERIC", def.ReturnSort)
	}
	if len(def.Params) != 1 || def.Params[0].Name != "x" {
		t.Fatalf("f's params = %#v", def.Params)
	}
	printAssign := prog.Lines[1].(*ast.Assignment)
	call := printAssign.Value.(ast.Call)
	inner := call.Args[0].(ast.Call)
	if inner.Identifier != "f" || inner.Kind != ast.CalleeFL {
		t.Errorf("print's argument = %#v, want a CalleeFL call to f", inner)
	}
}

func TestSpecializationLiteralArgumentIsPattern(t *testing.T) {
	p, lines := newParser(t, "f = num(x: num) -> f(add(x, 1))\nf(900) = 0\nnull = print(f(1))", "")
	prog, err := p.ParseProgram(lines)
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	spec := prog.Lines[1].(*ast.FLSpec)
	if len(spec.Args) != 1 || spec.Args[0].FreeVar {
		t.Fatalf("f(900) = 0 should not have a free variable argument, got %#v", spec.Args)
	}
	lit, ok := spec.Args[0].Pattern.(ast.NumericLiteral)
	if !ok || lit.Value != 900 {
		t.Errorf("900 should parse as a NumericLiteral pattern, got %#v", spec.Args[0].Pattern)
	}
}

func TestTwoEqualsSignsFails(t *testing.T) {
	_, err := classifier.Classify("x = y = z")
	if err == nil {
		t.Fatal("expected an error")
	}
}
