package tests

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestFunctional builds the vta binary and runs every testdata/*.vta file
// through it, asserting the generated .cpp contains the lines recorded in
// the matching .want file. Exact full-file comparison isn't used because
// every generated file also carries the shared header/stdlib fragments;
// only the lines specific to the source file are golden here.
func TestFunctional(t *testing.T) {
	projectRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	binaryPath := filepath.Join(t.TempDir(), "vta-test-binary")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/vta")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, output)
	}

	sourceFiles, err := filepath.Glob("testdata/*.vta")
	if err != nil {
		t.Fatalf("failed to glob testdata: %v", err)
	}
	if len(sourceFiles) == 0 {
		t.Skip("no .vta fixtures found")
	}

	for _, source := range sourceFiles {
		source := source
		name := strings.TrimSuffix(filepath.Base(source), ".vta")

		t.Run(name, func(t *testing.T) {
			wantBytes, err := os.ReadFile(strings.TrimSuffix(source, ".vta") + ".want")
			if err != nil {
				t.Fatalf("failed to read .want file: %v", err)
			}

			absSource, err := filepath.Abs(source)
			if err != nil {
				t.Fatalf("failed to resolve source path: %v", err)
			}

			run := exec.Command(binaryPath, "run", absSource, "--emit-only")
			if output, err := run.CombinedOutput(); err != nil {
				t.Fatalf("vta failed: %v\n%s", err, output)
			}

			generated, err := os.ReadFile(absSource + ".cpp")
			if err != nil {
				t.Fatalf("failed to read generated .cpp: %v", err)
			}
			t.Cleanup(func() { os.Remove(absSource + ".cpp") })

			got := string(generated)
			for _, wantLine := range strings.Split(strings.TrimSpace(string(wantBytes)), "\n") {
				if !strings.Contains(got, wantLine) {
					t.Errorf("generated output missing expected line:\n%s\n--- got ---\n%s", wantLine, got)
				}
			}
		})
	}
}
