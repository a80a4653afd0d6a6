// Package ast defines the typed intermediate representation the parser
// produces: a closed Rvalue sum type plus the structured records for
// assignments, functional-literal definitions and specializations. There
// are no statements, blocks, or control-flow nodes to model.
package ast

import "github.com/vta-lang/vta/internal/sort"

// Rvalue is the tagged tree every parsed right-hand side reduces to. Every
// variant carries its own inferred sort.
type Rvalue interface {
	Sort() sort.Sort
	rvalueNode()
}

// NumericLiteral is a compile-time 64-bit signed integer literal.
type NumericLiteral struct {
	Value int64
}

func (NumericLiteral) Sort() sort.Sort { return sort.NUMERIC }
func (NumericLiteral) rvalueNode()     {}

// VariableValue refers to a previous assignment by its resolved versioned
// name (x_k). ValueSort is the sort last assigned to the base name at this
// program point. When the referenced slot is still FUNCTION_NOT_SET (an
// unspecialized FL name used as a value, e.g. bound to a higher-order
// parameter), Pending is true and the emitter uses BaseName to produce the
// purified `_name` form instead of `VersionedName::value`.
type VariableValue struct {
	VersionedName string
	BaseName      string
	ValueSort     sort.Sort
	Pending       bool
}

func (v VariableValue) Sort() sort.Sort { return v.ValueSort }
func (VariableValue) rvalueNode()       {}

// LocalVariable is a parameter of an enclosing functional literal or a free
// variable bound by an enclosing specialization — in scope only within
// that declaration's body.
type LocalVariable struct {
	Name         string
	DeclaredSort sort.Sort
}

func (l LocalVariable) Sort() sort.Sort { return l.DeclaredSort }
func (LocalVariable) rvalueNode()       {}

// CalleeKind records where a Call's identifier resolved, per the lookup
// order locals -> FLs -> builtins.
type CalleeKind int

const (
	CalleeBuiltin CalleeKind = iota
	CalleeFL
	CalleeLocal
)

// Call is an invocation of a built-in, a previously declared functional
// literal, or a local higher-order parameter.
type Call struct {
	Identifier string
	Args       []Rvalue
	Kind       CalleeKind
	ReturnSort sort.Sort
}

func (c Call) Sort() sort.Sort { return c.ReturnSort }
func (Call) rvalueNode()       {}
