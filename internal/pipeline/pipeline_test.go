package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/config"
)

func validSyntax() *ast.TranslationUnit {
	prog := &ast.ProgramDecl{
		Name: "demo",
		Decls: []ast.Statement{
			&ast.ImplicitStatement{None: true},
			&ast.Declaration{
				Type:        ast.TypeSpec{Keyword: "integer"},
				Declarators: []ast.Declarator{{Name: "n"}},
			},
		},
		Body: []ast.Statement{
			&ast.Assignment{Lhs: &ast.Identifier{Name: "n"}, Rhs: &ast.IntLiteral{Value: 1}},
		},
	}
	return &ast.TranslationUnit{Items: []ast.Statement{prog}}
}

func invalidSyntax() *ast.TranslationUnit {
	// Two declarations binding the same name in the same scope: a
	// DuplicateSymbol hard error under config.Default()'s abort-on-error.
	prog := &ast.ProgramDecl{
		Name: "demo",
		Decls: []ast.Statement{
			&ast.Declaration{
				Type:        ast.TypeSpec{Keyword: "integer"},
				Declarators: []ast.Declarator{{Name: "n"}},
			},
			&ast.Declaration{
				Type:        ast.TypeSpec{Keyword: "real"},
				Declarators: []ast.Declarator{{Name: "n"}},
			},
		},
	}
	return &ast.TranslationUnit{Items: []ast.Statement{prog}}
}

func TestResolveThenVerify_ValidProgramSucceeds(t *testing.T) {
	ctx := NewContext("demo.f90", validSyntax())
	pl := New(NewResolveProcessor(config.Default()), NewVerifyProcessor(false))
	out := pl.Run(ctx)

	require.NoError(t, out.Err)
	require.NotNil(t, out.Resolved)
	assert.False(t, out.Sink.HasError())
}

func TestResolveProcessor_RecordsErrorAndStopsVerify(t *testing.T) {
	ctx := NewContext("demo.f90", invalidSyntax())
	pl := New(NewResolveProcessor(config.Default()), NewVerifyProcessor(false))
	out := pl.Run(ctx)

	require.Error(t, out.Err)
	assert.True(t, out.Sink.HasError())
}

// TestVerifyProcessor_SkipsWhenResolveFailed guards the short-circuit in
// VerifyProcessor.Process: a nil ctx.Resolved must never reach the
// Verifier, since Verify assumes a fully-built tree.
func TestVerifyProcessor_SkipsWhenResolveFailed(t *testing.T) {
	ctx := NewContext("demo.f90", invalidSyntax())
	vp := NewVerifyProcessor(false)
	ctx.Err = assertError{}
	out := vp.Process(ctx)
	assert.Nil(t, out.Resolved)
}

type assertError struct{}

func (assertError) Error() string { return "boom" }

func TestPipeline_RunChainsContextThroughEveryStage(t *testing.T) {
	var seen []string
	trackerA := trackingProcessor{name: "a", seen: &seen}
	trackerB := trackingProcessor{name: "b", seen: &seen}

	pl := New(trackerA, trackerB)
	ctx := NewContext("demo.f90", validSyntax())
	out := pl.Run(ctx)

	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Same(t, ctx, out)
}

type trackingProcessor struct {
	name string
	seen *[]string
}

func (p trackingProcessor) Process(ctx *Context) *Context {
	*p.seen = append(*p.seen, p.name)
	return ctx
}
