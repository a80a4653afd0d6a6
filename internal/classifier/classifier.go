// Package classifier breaks source into logical lines, each containing
// exactly one '=', and classifies each as a plain assignment, a
// functional-literal definition, or a functional-literal specialization —
// deciding a line's shape before committing to a parse strategy.
package classifier

import (
	"strings"

	"github.com/vta-lang/vta/internal/diagnostics"
	"github.com/vta-lang/vta/internal/lexer"
)

// Kind distinguishes the three line shapes a source line can take.
type Kind int

const (
	KindAssignment Kind = iota
	KindFLDef
	KindFLSpec
)

// Line is one classified logical line, split once on '=' and trimmed.
type Line struct {
	Kind  Kind
	Left  string
	Right string
	Raw   string // the full trimmed line, for error fragments
}

// SplitSource breaks source into logical lines, dropping blank lines and
// lines whose first non-space character is '#'.
func SplitSource(source string) []string {
	var out []string
	for _, raw := range strings.Split(source, "\n") {
		t := strings.TrimSpace(raw)
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		out = append(out, raw)
	}
	return out
}

// Classify runs SplitSource and classifies every surviving line in order,
// aborting on the first malformed line: neither error kind is recovered
// inside the translator.
func Classify(source string) ([]Line, error) {
	var lines []Line
	for _, raw := range SplitSource(source) {
		l, err := classifyLine(raw)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, nil
}

func classifyLine(raw string) (Line, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.Count(trimmed, "=") != 1 {
		return Line{}, diagnostics.NewParsingError(diagnostics.ErrUnexpectedLine, trimmed,
			"every line must contain exactly one assignment")
	}

	idx := strings.Index(trimmed, "=")
	left := strings.TrimSpace(trimmed[:idx])
	right := strings.TrimSpace(trimmed[idx+1:])

	if strings.Contains(right, "->") {
		toks := lexer.Tokenize(right)
		if len(toks) == 0 || (toks[0] != "num" && toks[0] != "type") {
			return Line{}, diagnostics.NewParsingError(diagnostics.ErrUnknownSortKeyword, right,
				"functional literal must start with 'type' or 'num'")
		}
		return Line{Kind: KindFLDef, Left: left, Right: right, Raw: trimmed}, nil
	}

	if strings.Contains(left, "(") && strings.Contains(left, ")") {
		return Line{Kind: KindFLSpec, Left: left, Right: right, Raw: trimmed}, nil
	}

	return Line{Kind: KindAssignment, Left: left, Right: right, Raw: trimmed}, nil
}
