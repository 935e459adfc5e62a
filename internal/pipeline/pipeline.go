// Package pipeline sequences the Resolve -> Verify stages behind one
// Processor interface; parsing happens before a Context is built.
package pipeline

import (
	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
)

// Context threads a compilation unit through successive stages. Parsing
// itself is out of scope for this repository: a Context is always
// constructed from an already-built syntactic tree, supplied by whatever
// front end owns lexing/parsing.
type Context struct {
	Source   string
	Syntax   *ast.TranslationUnit
	Resolved *asr.TranslationUnit
	Sink     *diag.Sink
	Err      error
}

// NewContext starts a pipeline run from a parsed syntactic tree.
func NewContext(source string, syntax *ast.TranslationUnit) *Context {
	return &Context{Source: source, Syntax: syntax, Sink: diag.NewSink()}
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline runs its processors in sequence.
type Pipeline struct {
	processors []Processor
}

// New returns a Pipeline running processors in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run calls every processor in turn. The built-in processors do nothing
// once ctx.Err is set, so a failed stage stops later stages from running;
// a caller checks ctx.Err / ctx.Sink.HasError() after Run returns.
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
	}
	return ctx
}
