package classifier

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantKind Kind
	}{
		{"plain assignment", "x = add(2, 3)", KindAssignment},
		{"null print", "null = print(x)", KindAssignment},
		{"fl definition", "f = num(x: num) -> add(x, 1)", KindFLDef},
		{"fl specialization", "f(900) = 0", KindFLSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Classify(tt.line)
			if err != nil {
				t.Fatalf("Classify(%q) error: %v", tt.line, err)
			}
			if len(lines) != 1 {
				t.Fatalf("Classify(%q) = %d lines, want 1", tt.line, len(lines))
			}
			if lines[0].Kind != tt.wantKind {
				t.Errorf("Classify(%q).Kind = %v, want %v", tt.line, lines[0].Kind, tt.wantKind)
			}
		})
	}
}

func TestClassifySkipsBlankAndCommentLines(t *testing.T) {
	src := "# a comment\n\nx = add(1, 2)\n   \nnull = print(x)\n"
	lines, err := Classify(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
}

func TestClassifyTwoEqualsSignsFails(t *testing.T) {
	_, err := Classify("x = y = z")
	if err == nil {
		t.Fatal("expected an error for a line with two '='")
	}
	if !strings.Contains(err.Error(), "assignment") {
		t.Errorf("error %q should mention the assignment count", err.Error())
	}
}

func TestClassifyBadSortKeywordFails(t *testing.T) {
	_, err := Classify("f = bogus(x: num) -> x")
	if err == nil {
		t.Fatal("expected an error for an unknown FL return sort keyword")
	}
}
