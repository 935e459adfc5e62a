package asr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvrajsinghgmx/lfortran/internal/source"
)

func testLoc() source.Location { return source.None }

func TestTable_AddGetResolveSymbol(t *testing.T) {
	ResetCounterSeq()

	root := NewTable(nil)
	child := NewTable(root)

	v := NewVariable(testLoc(), "x")
	require.NoError(t, root.AddSymbol("x", v))

	got, ok := root.GetSymbol("x")
	assert.True(t, ok)
	assert.Same(t, Symbol(v), got)

	// Not locally bound in child, but reachable via the parent chain.
	_, ok = child.GetSymbol("x")
	assert.False(t, ok)

	resolved, owner, ok := child.ResolveSymbol("X")
	assert.True(t, ok, "ResolveSymbol should canonicalize case and walk the parent chain")
	assert.Same(t, Symbol(v), resolved)
	assert.Same(t, root, owner)
}

func TestTable_AddSymbolDuplicateRejected(t *testing.T) {
	ResetCounterSeq()
	root := NewTable(nil)

	require.NoError(t, root.AddSymbol("x", NewVariable(testLoc(), "x")))
	err := root.AddSymbol("X", NewVariable(testLoc(), "x"))

	require.Error(t, err)
	var dup *DuplicateSymbolError
	assert.ErrorAs(t, err, &dup)
}

func TestTable_AddSymbolOverwrite(t *testing.T) {
	ResetCounterSeq()
	root := NewTable(nil)

	first := NewVariable(testLoc(), "x")
	second := NewVariable(testLoc(), "x")
	require.NoError(t, root.AddSymbol("x", first))
	root.AddSymbolOverwrite("x", second)

	got, ok := root.GetSymbol("x")
	require.True(t, ok)
	assert.Same(t, Symbol(second), got)
}

func TestTable_CountersAreUniqueAndMonotonic(t *testing.T) {
	ResetCounterSeq()

	t1 := NewTable(nil)
	t2 := NewTable(t1)
	t3 := NewTable(t1)

	assert.NotEqual(t, t1.Counter(), t2.Counter())
	assert.NotEqual(t, t2.Counter(), t3.Counter())
	assert.Less(t, t1.Counter(), t2.Counter())
	assert.Less(t, t2.Counter(), t3.Counter())
}

func TestTable_IsAncestorOf(t *testing.T) {
	ResetCounterSeq()
	root := NewTable(nil)
	mid := NewTable(root)
	leaf := NewTable(mid)

	assert.True(t, root.IsAncestorOf(leaf))
	assert.True(t, root.IsAncestorOf(root))
	assert.False(t, leaf.IsAncestorOf(root))
}

func TestFindScoped_WalksNestedOwnedTables(t *testing.T) {
	ResetCounterSeq()
	root := NewTable(nil)

	st := NewStruct(testLoc(), "point")
	stTable := NewTable(root)
	stTable.SetOwner(st)
	st.Table = stTable
	require.NoError(t, root.AddSymbol("point", st))

	member := NewVariable(testLoc(), "x")
	require.NoError(t, stTable.AddSymbol("x", member))

	sym, ok := FindScoped(root, "x", []string{"point"})
	require.True(t, ok)
	assert.Same(t, Symbol(member), sym)

	_, ok = FindScoped(root, "y", []string{"point"})
	assert.False(t, ok)
}

func TestGetPastExternal(t *testing.T) {
	ResetCounterSeq()
	root := NewTable(nil)
	real := NewVariable(testLoc(), "x")

	ext := NewExternalSymbol(testLoc(), "x")
	ext.External = real

	assert.Same(t, Symbol(real), GetPastExternal(ext))
	assert.Same(t, Symbol(real), GetPastExternal(real))
}
