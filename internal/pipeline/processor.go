package pipeline

import (
	"github.com/yuvrajsinghgmx/lfortran/internal/config"
	"github.com/yuvrajsinghgmx/lfortran/internal/resolver"
	"github.com/yuvrajsinghgmx/lfortran/internal/verifier"
)

// ResolveProcessor runs the Declaration Resolver (internal/resolver) over
// ctx.Syntax, producing ctx.Resolved.
type ResolveProcessor struct {
	Options config.Options
}

func NewResolveProcessor(opts config.Options) *ResolveProcessor {
	return &ResolveProcessor{Options: opts}
}

func (rp *ResolveProcessor) Process(ctx *Context) *Context {
	if ctx.Err != nil || ctx.Syntax == nil {
		return ctx
	}
	r := resolver.New(rp.Options)
	tu, err := r.Resolve(ctx.Syntax)
	ctx.Resolved = tu
	for _, d := range r.Sink.Items() {
		ctx.Sink.Add(d)
	}
	if err != nil {
		ctx.Err = err
	}
	return ctx
}

// VerifyProcessor runs the ASR Verifier (internal/verifier) over
// ctx.Resolved.
type VerifyProcessor struct {
	CheckExternal bool
}

func NewVerifyProcessor(checkExternal bool) *VerifyProcessor {
	return &VerifyProcessor{CheckExternal: checkExternal}
}

func (vp *VerifyProcessor) Process(ctx *Context) *Context {
	if ctx.Err != nil || ctx.Resolved == nil {
		return ctx
	}
	v := &verifier.Verifier{CheckExternal: vp.CheckExternal, Sink: ctx.Sink}
	if err := v.Verify(ctx.Resolved); err != nil {
		ctx.Err = err
	}
	return ctx
}
