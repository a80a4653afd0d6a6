// Package symbols implements the symbol-table builder: a pre-scan that
// registers every assigned name — plain variable or functional-literal
// name — as a pending slot, plus the mutable versioning the parser applies
// as it processes each line in source order.
package symbols

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/vta-lang/vta/internal/ast"
	"github.com/vta-lang/vta/internal/classifier"
	"github.com/vta-lang/vta/internal/diagnostics"
	"github.com/vta-lang/vta/internal/lexer"
	"github.com/vta-lang/vta/internal/sort"
)

// IdentifierPattern is the full-string identifier grammar: a match anchored
// at both ends, never a prefix match.
var IdentifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// NullName is the reserved identifier: sort NULL, never assignable to a
// value, usable only as the left-hand side of a null-translating call.
const NullName = "null"

// VarSlot is one plain-variable entry. IsFunction marks a bare name that
// was introduced by a functional-literal definition — such a slot never
// advances past sort.FunctionNotSet; it exists purely so a bare reference
// to the FL's name (no call) resolves through the ordinary variables
// lookup instead of failing resolution entirely.
type VarSlot struct {
	BaseName    string
	Counter     int // 0 before the first assignment; the k-th assignment sets this to k
	CurrentSort sort.Sort
	IsFunction  bool
}

// VersionedName returns the emitted C++ name for this slot's current
// version. Functional-literal slots are never versioned.
func (v *VarSlot) VersionedName() string {
	if v.IsFunction {
		return v.BaseName
	}
	return fmt.Sprintf("%s_%d", v.BaseName, v.Counter)
}

// FLEntry is one functional-literal table entry. ReturnSort is known as
// soon as the defining line is classified (its signature's leading token is
// always 'num' or 'type'); Params and Defined fill in once the parser has
// walked the full definition.
type FLEntry struct {
	Name       string
	ReturnSort sort.Sort
	Params     []ast.Param
	Defined    bool
}

// Table holds both symbol tables for the duration of one translation.
type Table struct {
	mu        sync.RWMutex
	Variables map[string]*VarSlot
	FLs       map[string]*FLEntry
}

// New returns an empty table.
func New() *Table {
	return &Table{Variables: make(map[string]*VarSlot), FLs: make(map[string]*FLEntry)}
}

// Build pre-scans classified lines, registering every assigned name as a
// pending slot without parsing any right-hand side. Specialization lines
// introduce no new name: they must name an already-registered functional
// literal.
func Build(lines []classifier.Line) (*Table, error) {
	t := New()
	for _, l := range lines {
		if l.Kind == classifier.KindFLSpec {
			continue
		}

		name := l.Left
		if name == NullName {
			if l.Kind == classifier.KindFLDef {
				return nil, diagnostics.NewParsingError(diagnostics.ErrBadIdentifier, name,
					"'null' is reserved and cannot name a functional literal")
			}
			continue
		}
		if !IdentifierPattern.MatchString(name) {
			return nil, diagnostics.NewParsingError(diagnostics.ErrBadIdentifier, name,
				"identifiers must match ^[A-Za-z][A-Za-z0-9]*$")
		}

		isFunction := l.Kind == classifier.KindFLDef || strings.Contains(l.Right, "->")
		if !isFunction {
			if _, exists := t.Variables[name]; !exists {
				t.Variables[name] = &VarSlot{BaseName: name, CurrentSort: sort.ValueNotSet}
			}
			continue
		}

		if _, exists := t.Variables[name]; !exists {
			t.Variables[name] = &VarSlot{BaseName: name, IsFunction: true, CurrentSort: sort.FunctionNotSet}
		}
		if _, exists := t.FLs[name]; !exists {
			toks := lexer.Tokenize(l.Right)
			retSort := sort.TYPE
			if len(toks) > 0 && toks[0] == "num" {
				retSort = sort.NUMERIC
			}
			t.FLs[name] = &FLEntry{Name: name, ReturnSort: retSort}
		}
	}
	return t, nil
}

// Variable looks up a plain-variable (or FL-as-bare-value) slot.
func (t *Table) Variable(name string) (*VarSlot, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.Variables[name]
	return v, ok
}

// FL looks up a functional-literal table entry.
func (t *Table) FL(name string) (*FLEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.FLs[name]
	return e, ok
}

// Assign bumps a plain variable's shadow counter and lowers sort into it,
// returning the new versioned name. Must be called after the assignment's
// right-hand side has been parsed: a reference inside that same
// right-hand side must see the pre-increment version.
func (t *Table) Assign(name string, valueSort sort.Sort) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	slot := t.Variables[name]
	slot.Counter++
	slot.CurrentSort = valueSort
	return slot.VersionedName()
}

// DefineFL records a functional literal's parameter list once the parser
// has walked its signature, marking the entry ready for calls and
// specializations.
func (t *Table) DefineFL(name string, params []ast.Param) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.FLs[name].Params = params
	t.FLs[name].Defined = true
}

// Purify drops a versioned name's "_<digits>" suffix (if any) and prefixes
// an underscore — the form used when a higher-order parameter is bound to
// an FL name referenced bare, with no call.
func Purify(versionedName string) string {
	idx := strings.LastIndex(versionedName, "_")
	if idx <= 0 {
		return "_" + versionedName
	}
	suffix := versionedName[idx+1:]
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return "_" + versionedName
		}
	}
	return "_" + versionedName[:idx]
}
