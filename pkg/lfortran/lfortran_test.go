package lfortran

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/config"
)

func wellTyped() *ast.TranslationUnit {
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

func duplicateDeclared() *ast.TranslationUnit {
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

func TestCompile_WellFormedProgramProducesCleanResult(t *testing.T) {
	c := New()
	res := c.Compile("demo.f90", wellTyped())

	require.NotNil(t, res.ASR)
	assert.False(t, res.HasErrors())
	assert.NoError(t, res.Err)
}

func TestCompile_SemanticErrorIsReportedOnResult(t *testing.T) {
	c := New()
	res := c.Compile("demo.f90", duplicateDeclared())

	assert.True(t, res.HasErrors())
	assert.Error(t, res.Err)
}

func TestWithOptions_ChangesResolverBehavior(t *testing.T) {
	opts := config.Default()
	opts.ContinueOnError = true

	c := New().WithOptions(opts)
	res := c.Compile("demo.f90", duplicateDeclared())

	// ContinueOnError means the resolver keeps walking past the
	// DuplicateSymbol instead of aborting, but the diagnostic is still on
	// the sink.
	require.NotNil(t, res.Sink)
	assert.True(t, res.Sink.HasError())
}

func TestWithCheckExternal_IsPlumbedIntoVerifyProcessor(t *testing.T) {
	c := New().WithCheckExternal(true)
	assert.True(t, c.CheckExternal)

	res := c.Compile("demo.f90", wellTyped())
	assert.False(t, res.HasErrors())
}

func TestResult_HasErrorsFalseWithNoSinkAndNoAbort(t *testing.T) {
	r := &Result{Sink: nil, Err: nil}
	assert.False(t, r.HasErrors())
}

func TestDump_RendersCompiledResult(t *testing.T) {
	c := New()
	res := c.Compile("demo.f90", wellTyped())
	require.NotNil(t, res.ASR)

	out := Dump(res.ASR)
	assert.Contains(t, out, "translation-unit")
	assert.Contains(t, out, "program demo")
}
