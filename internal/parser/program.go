package parser

import (
	"github.com/vta-lang/vta/internal/ast"
	"github.com/vta-lang/vta/internal/classifier"
)

// ParseProgram parses every classified line in source order, dispatching to
// the assignment, functional-literal-definition, or specialization parser
// per its classified Kind, and assembles the typed IR.
func (p *Parser) ParseProgram(lines []classifier.Line) (*ast.Program, error) {
	prog := &ast.Program{}
	for _, line := range lines {
		var l ast.Line
		var err error
		switch line.Kind {
		case classifier.KindFLDef:
			l, err = p.ParseFLDef(line)
		case classifier.KindFLSpec:
			l, err = p.ParseFLSpec(line)
		default:
			l, err = p.ParseAssignment(line)
		}
		if err != nil {
			return nil, err
		}
		prog.Lines = append(prog.Lines, l)
	}
	return prog, nil
}
