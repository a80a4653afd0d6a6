package ast

import "github.com/vta-lang/vta/internal/sort"

// ParamSort describes a declared parameter's sort. A parameter's sort may
// itself be a functional sort for higher-order parameters — "(f: num(x:
// num))" declares f as a parameter taking a num and returning num.
type ParamSort struct {
	Base        sort.Sort  // NUMERIC or TYPE for a plain parameter
	HigherOrder *Signature // non-nil when this parameter is itself callable
}

// Signature is the declared shape of a functional literal or a
// higher-order parameter: its return sort and ordered parameter list.
type Signature struct {
	ReturnSort sort.Sort
	Params     []Param
}

// Param is one entry of an ordered parameter list.
type Param struct {
	Name string
	Sort ParamSort
}

// Line is one classified, typed, translatable top-level IR entry.
type Line interface {
	lineNode()
}

// Assignment is a plain assignment `x_k = E`, or `null = print(...)` when
// IsNull is set.
type Assignment struct {
	VersionedName string
	BaseName      string
	IsNull        bool
	Value         Rvalue
}

func (Assignment) lineNode() {}

// FLDef is a functional-literal definition `f = num|type (params) -> body`.
type FLDef struct {
	Name       string
	ReturnSort sort.Sort
	Params     []Param
	Body       Rvalue
}

func (FLDef) lineNode() {}

// SpecArg is one positional argument on a specialization's left-hand side:
// either a bound free variable (reintroduced as a template parameter of the
// specialization) or a concrete Rvalue pattern.
type SpecArg struct {
	FreeVar  bool
	Name     string    // set when FreeVar
	FreeSort ParamSort // set when FreeVar: the defining FL's declared sort at this position
	Pattern  Rvalue    // set when !FreeVar
}

// FLSpec is a functional-literal specialization `f(p1,...,pn) = body`.
type FLSpec struct {
	Name       string
	ReturnSort sort.Sort // the defining FL's declared return sort
	Args       []SpecArg
	Body       Rvalue
}

func (FLSpec) lineNode() {}

// Program is the root IR node: every classified source line in order.
type Program struct {
	Lines []Line
}
