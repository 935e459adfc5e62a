package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	opts := Default()
	assert.False(t, opts.ImplicitTyping)
	assert.False(t, opts.ContinueOnError)
	assert.Equal(t, ABINative, opts.DefaultABI)
	assert.Equal(t, 4, opts.DefaultIntegerKind)
	assert.Equal(t, 4, opts.DefaultRealKind)
}

func TestLoad_OverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lfortran.yaml")
	yaml := "implicit_typing: true\ndefault_integer_kind: 8\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	opts, err := Load(path)
	require.NoError(t, err)

	assert.True(t, opts.ImplicitTyping)
	assert.Equal(t, 8, opts.DefaultIntegerKind)
	// Untouched fields keep Default()'s values.
	assert.False(t, opts.ContinueOnError)
	assert.Equal(t, ABINative, opts.DefaultABI)
	assert.Equal(t, 4, opts.DefaultRealKind)
}

func TestLoad_MissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}
