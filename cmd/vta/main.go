// Command vta is the single-shot CLI translator/runner: `vta run file.vta
// [--stdin tokens] [--emit-only]` translates a VTA source file to C++ and,
// unless --emit-only is given, compiles it with the configured C++
// compiler and runs the resulting binary, printing its stdout. Flags are
// parsed by hand off os.Args rather than via a flag.FlagSet, exiting
// non-zero on any failure.
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/vta-lang/vta/internal/codegen"
	"github.com/vta-lang/vta/internal/config"
	"github.com/vta-lang/vta/internal/pipeline"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s run <source.vta> [--stdin tokens] [--emit-only]\n", os.Args[0])
}

func main() {
	if len(os.Args) < 3 || os.Args[1] != "run" {
		usage()
		os.Exit(1)
	}

	sourcePath := os.Args[2]
	var stdin string
	emitOnly := false
	for i := 3; i < len(os.Args); i++ {
		switch os.Args[i] {
		case "--stdin":
			if i+1 >= len(os.Args) {
				usage()
				os.Exit(1)
			}
			i++
			stdin = os.Args[i]
		case "--emit-only":
			emitOnly = true
		default:
			usage()
			os.Exit(1)
		}
	}

	run(sourcePath, stdin, emitOnly)
}

func run(sourcePath, stdin string, emitOnly bool) {
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vta: reading %s: %v\n", sourcePath, err)
		os.Exit(1)
	}

	ctx, err := pipeline.Translate(codegen.New(), string(source), stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vta: %v\n", err)
		os.Exit(1)
	}

	cppPath := sourcePath + ".cpp"
	if err := os.WriteFile(cppPath, []byte(ctx.Output), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "vta: writing %s: %v\n", cppPath, err)
		os.Exit(1)
	}

	if emitOnly {
		fmt.Println(cppPath)
		return
	}

	binPath := sourcePath + ".out"
	depthFlag := fmt.Sprintf("-ftemplate-depth=%d", config.DefaultTemplateDepth)
	compile := exec.Command(config.DefaultCompilerPath, depthFlag, "-std=c++17", "-o", binPath, cppPath)
	var stderr bytes.Buffer
	compile.Stderr = &stderr
	if err := compile.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "vta: compile failed: %s\n", stderr.String())
		os.Exit(1)
	}

	runCmd := exec.Command(binPath)
	runCmd.Stdout = os.Stdout
	var runStderr bytes.Buffer
	runCmd.Stderr = &runStderr
	if err := runCmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "vta: program run failed: %s\n", runStderr.String())
		os.Exit(1)
	}
}
