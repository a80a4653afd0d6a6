// Package sort defines VTA's three-sort type system — NUMERIC, TYPE and
// NULL — plus the transient pending tags used while the symbol table is
// still being built. A Sort classifies what kind of compile-time entity a
// VTA value represents; it is distinct from a C++ type.
package sort

// Sort is one of the three concrete value sorts a translated Rvalue can
// carry, or one of the two transient "not yet assigned" tags a symbol-table
// slot holds before its first assignment is parsed.
type Sort int

const (
	// NUMERIC values become `static const long long value` members.
	NUMERIC Sort = iota
	// TYPE values become `using type = …` members.
	TYPE
	// NULL is the sort of side-effecting top-level calls (print).
	NULL
	// ValueNotSet marks a plain-variable slot before its first assignment
	// is parsed. Never appears in the IR the emitter consumes.
	ValueNotSet
	// FunctionNotSet marks a functional-literal-valued slot. It reaches the
	// IR only on a VariableValue marked Pending (a bare FL name), which the
	// emitter renders as `_name` without reading its sort.
	FunctionNotSet
)

func (s Sort) String() string {
	switch s {
	case NUMERIC:
		return "NUMERIC"
	case TYPE:
		return "TYPE"
	case NULL:
		return "NULL"
	case ValueNotSet:
		return "VALUE_NOT_SET"
	case FunctionNotSet:
		return "FUNCTION_NOT_SET"
	default:
		return "UNKNOWN_SORT"
	}
}

// Pending reports whether a sort is one of the two transitional tags, i.e.
// a forward reference that has not yet been resolved by a real assignment.
func (s Sort) Pending() bool {
	return s == ValueNotSet || s == FunctionNotSet
}

// Builtins is the fixed, closed table of built-in identifiers and their
// declared return sort.
var Builtins = map[string]Sort{
	"add": NUMERIC, "sub": NUMERIC, "mul": NUMERIC, "div": NUMERIC, "mod": NUMERIC,
	"head": NUMERIC, "size": NUMERIC, "lieq": NUMERIC, "eq": NUMERIC, "neq": NUMERIC,
	"not": NUMERIC, "bnot": NUMERIC, "and": NUMERIC, "band": NUMERIC, "or": NUMERIC,
	"bor": NUMERIC, "xor": NUMERIC, "bool": NUMERIC, "lshift": NUMERIC, "rshift": NUMERIC,
	"lt": NUMERIC, "leq": NUMERIC, "gt": NUMERIC, "geq": NUMERIC, "if": NUMERIC,
	"count": NUMERIC, "contains": NUMERIC, "get": NUMERIC, "pow": NUMERIC,
	"read": NUMERIC, "nan": NUMERIC,

	"list": TYPE, "tail": TYPE, "cons": TYPE, "append": TYPE, "concat": TYPE,
	"tif": TYPE, "map": TYPE,

	"print": NULL,
}

// NullTranslating is the set of built-ins whose call may legally appear on
// the right-hand side of an assignment to the reserved name `null` (spec
// §4.6, §8 invariant 5). Only `print` today.
var NullTranslating = map[string]bool{
	"print": true,
}

// IsBuiltin reports whether name names a built-in and returns its sort.
func IsBuiltin(name string) (Sort, bool) {
	s, ok := Builtins[name]
	return s, ok
}
