package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/config"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
	"github.com/yuvrajsinghgmx/lfortran/internal/pipeline"
	"github.com/yuvrajsinghgmx/lfortran/internal/source"
)

func TestCodeColor_EmptyWhenDisabled(t *testing.T) {
	assert.Equal(t, "", codeColor(false, "31"))
}

func TestCodeColor_AnsiEscapeWhenEnabled(t *testing.T) {
	assert.Equal(t, "\x1b[31m", codeColor(true, "31"))
}

func TestDemoTranslationUnit_HasOneProgramNamedDemo(t *testing.T) {
	tu := demoTranslationUnit()
	require.Len(t, tu.Items, 1)

	prog, ok := tu.Items[0].(*ast.ProgramDecl)
	require.True(t, ok)
	assert.Equal(t, "demo", prog.Name)
	assert.Len(t, prog.Decls, 3)
	assert.Len(t, prog.Body, 2)
}

func TestDemoTranslationUnit_ResolvesAndVerifiesCleanly(t *testing.T) {
	ctx := pipeline.NewContext("<builtin demo>", demoTranslationUnit())
	pl := pipeline.New(
		pipeline.NewResolveProcessor(config.Default()),
		pipeline.NewVerifyProcessor(false),
	)
	out := pl.Run(ctx)

	require.NoError(t, out.Err)
	require.NotNil(t, out.Resolved)
	assert.False(t, out.Sink.HasError())
}

func TestPrintDiagnostics_WritesOneLinePerDiagnosticToStderr(t *testing.T) {
	sink := diag.NewSink()
	sink.Add(diag.New(diag.DuplicateSymbol, source.None, "\"n\" is already declared in this scope"))

	r, w, err := os.Pipe()
	require.NoError(t, err)
	origStderr := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = origStderr }()

	printDiagnostics(sink, false)

	require.NoError(t, w.Close())
	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "error:")
	assert.Contains(t, out, "already declared")
	assert.Contains(t, out, string(diag.DuplicateSymbol))
}

func TestPrintUsage_MentionsEveryFlag(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	origStderr := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = origStderr }()

	printUsage()

	require.NoError(t, w.Close())
	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "-config")
	assert.Contains(t, out, "-implicit-typing")
	assert.Contains(t, out, "-continue-on-error")
}
