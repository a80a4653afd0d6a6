package pipeline

import (
	"strings"
	"testing"

	"github.com/vta-lang/vta/internal/codegen"
)

func TestTranslateScenarioA(t *testing.T) {
	ctx, err := Translate(codegen.New(), "x = add(2, 3)\nnull = print(x)", "")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if !strings.Contains(ctx.Output, "__print<x_1::value>();") {
		t.Errorf("unexpected output:\n%s", ctx.Output)
	}
}

func TestTranslateStopsAtFirstFailingStage(t *testing.T) {
	_, err := Translate(codegen.New(), "x = y = z", "")
	if err == nil {
		t.Fatal("expected a classification error for two '=' on one line")
	}
}

func TestTranslateUndeclaredIdentifier(t *testing.T) {
	_, err := Translate(codegen.New(), "x = y", "")
	if err == nil {
		t.Fatal("expected a parsing error for an undeclared identifier")
	}
}

func TestTranslateIsDeterministic(t *testing.T) {
	source := "y = read(0)\nnull = print(mul(y, y))"
	ctx1, err := Translate(codegen.New(), source, "7")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	ctx2, err := Translate(codegen.New(), source, "7")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if ctx1.Output != ctx2.Output {
		t.Error("two translations of the same source and stdin must be byte-identical")
	}
}
