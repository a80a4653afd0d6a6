// Package pipeline wires classification, symbol-table construction,
// parsing and code emission into one sequential run over a shared
// PipelineContext. A translation aborts eagerly: neither a ParsingError
// nor a TranslationError is recovered, so a stage that fails
// short-circuits the remaining ones.
package pipeline

import (
	"github.com/vta-lang/vta/internal/ast"
	"github.com/vta-lang/vta/internal/classifier"
	"github.com/vta-lang/vta/internal/parser"
	"github.com/vta-lang/vta/internal/symbols"
)

// PipelineContext threads translation state across stages: the raw source
// and stdin buffer in, the generated C++ out, plus whatever intermediate
// artifacts later stages (or tests) need to inspect.
type PipelineContext struct {
	Source string
	Stdin  string

	Lines   []classifier.Line
	Symbols *symbols.Table
	Program *ast.Program
	Output  string

	Err error
}

// Processor is one pipeline stage. It must not panic; all failure is
// reported by setting ctx.Err.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline runs its processors in order over one context.
type Pipeline struct {
	processors []Processor
}

// New builds a pipeline from its stages, in execution order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, stopping as soon as one sets ctx.Err.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, proc := range p.processors {
		if ctx.Err != nil {
			break
		}
		ctx = proc.Process(ctx)
	}
	return ctx
}

// Emitter is implemented by internal/codegen; kept as an interface here so
// pipeline has no import-cycle dependency on codegen's emission rules.
type Emitter interface {
	Emit(prog *ast.Program) (string, error)
}

// classifyStage is stage 2. Tokenizing runs inline inside the classifier
// and the symbol-table builder rather than as its own processor; see
// internal/lexer.
type classifyStage struct{}

func (classifyStage) Process(ctx *PipelineContext) *PipelineContext {
	lines, err := classifier.Classify(ctx.Source)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Lines = lines
	return ctx
}

// symbolStage is stage 3.
type symbolStage struct{}

func (symbolStage) Process(ctx *PipelineContext) *PipelineContext {
	tbl, err := symbols.Build(ctx.Lines)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Symbols = tbl
	return ctx
}

// parseStage is stage 4.
type parseStage struct{}

func (parseStage) Process(ctx *PipelineContext) *PipelineContext {
	p := parser.New(ctx.Symbols, parser.NewStdinCursor(ctx.Stdin))
	prog, err := p.ParseProgram(ctx.Lines)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Program = prog
	return ctx
}

// emitStage is stage 5, parameterized by the Emitter so this package
// never imports internal/codegen directly.
type emitStage struct{ emitter Emitter }

func (s emitStage) Process(ctx *PipelineContext) *PipelineContext {
	out, err := s.emitter.Emit(ctx.Program)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Output = out
	return ctx
}

// Translate runs the full pipeline (stages 2-5; the tokenizer is stage 1
// and runs inline within stage 2 and stage 3) over source and stdin,
// producing the generated C++ translation unit.
func Translate(emitter Emitter, source, stdin string) (*PipelineContext, error) {
	pl := New(classifyStage{}, symbolStage{}, parseStage{}, emitStage{emitter: emitter})
	ctx := pl.Run(&PipelineContext{Source: source, Stdin: stdin})
	if ctx.Err != nil {
		return ctx, ctx.Err
	}
	return ctx, nil
}
