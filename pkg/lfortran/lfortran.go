// Package lfortran is the host-embedding façade over the Declaration
// Resolver and ASR Verifier: the same thin wrapper role funxy's own
// pkg/embed plays over its VM, minus anything parser-related — a host
// embedder supplies its own syntactic tree.
package lfortran

import (
	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/config"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
	"github.com/yuvrajsinghgmx/lfortran/internal/pipeline"
	"github.com/yuvrajsinghgmx/lfortran/internal/prettyprinter"
)

// Compiler runs the Parse(external) -> Resolve -> Verify pipeline for a
// host embedder, with its own Options and pre/post-link Verifier mode.
type Compiler struct {
	Options       config.Options
	CheckExternal bool
}

// New returns a Compiler configured with the strict default Options
// (config.Default): implicit typing off, abort on first error.
func New() *Compiler {
	return &Compiler{Options: config.Default()}
}

// WithOptions replaces the Compiler's resolver Options and returns the
// receiver, for chaining at construction time.
func (c *Compiler) WithOptions(opts config.Options) *Compiler {
	c.Options = opts
	return c
}

// WithCheckExternal enables or disables post-link ExternalSymbol
// resolution checking in the Verifier.
func (c *Compiler) WithCheckExternal(check bool) *Compiler {
	c.CheckExternal = check
	return c
}

// Result is the outcome of running Compile: the resolved ASR (nil if
// resolution itself aborted before producing one), every diagnostic
// recorded across both passes, and the first abort error, if any.
type Result struct {
	ASR  *asr.TranslationUnit
	Sink *diag.Sink
	Err  error
}

// HasErrors reports whether Result carries an abort error or any
// Error-severity diagnostic.
func (r *Result) HasErrors() bool {
	return r.Err != nil || (r.Sink != nil && r.Sink.HasError())
}

// Compile resolves and verifies a syntactic tree a host embedder's own
// front end already parsed.
func (c *Compiler) Compile(source string, tu *ast.TranslationUnit) *Result {
	ctx := pipeline.NewContext(source, tu)
	pl := pipeline.New(
		pipeline.NewResolveProcessor(c.Options),
		pipeline.NewVerifyProcessor(c.CheckExternal),
	)
	out := pl.Run(ctx)
	return &Result{ASR: out.Resolved, Sink: out.Sink, Err: out.Err}
}

// Dump renders a resolved ASR tree as indented text, for embedders that
// want to inspect or golden-test the result.
func Dump(tu *asr.TranslationUnit) string {
	return prettyprinter.NewDumper().DumpTranslationUnit(tu)
}
