package prettyprinter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/source"
)

func TestDumpTable_RendersEverySymbolKindItKnowsAbout(t *testing.T) {
	root := asr.NewTable(nil)

	fn := asr.NewFunction(source.None, "area")
	fn.Signature.ArgTypes = []asr.Type{asr.Integer{Kind: 4}}
	fn.Signature.ReturnType = asr.Real{Kind: 4}
	require.NoError(t, root.AddSymbol("area", fn))

	sub := asr.NewFunction(source.None, "reset")
	require.NoError(t, root.AddSymbol("reset", sub))

	v := asr.NewVariable(source.None, "n")
	v.Type = asr.Integer{Kind: 4}
	require.NoError(t, root.AddSymbol("n", v))

	shape := asr.NewStruct(source.None, "shape")
	shapeTable := asr.NewTable(root)
	shapeTable.SetOwner(shape)
	shape.Table = shapeTable
	require.NoError(t, root.AddSymbol("shape", shape))

	circle := asr.NewStruct(source.None, "circle")
	circleTable := asr.NewTable(root)
	circleTable.SetOwner(circle)
	circle.Table = circleTable
	circle.Parent = shape
	require.NoError(t, root.AddSymbol("circle", circle))

	e := asr.NewEnum(source.None, "color")
	e.Members = []string{"red", "green"}
	require.NoError(t, root.AddSymbol("color", e))

	u := asr.NewUnion(source.None, "payload")
	u.Members = []string{"a", "b"}
	require.NoError(t, root.AddSymbol("payload", u))

	gp := asr.NewGenericProcedure(source.None, "plus")
	gp.Procedures = []*asr.Function{fn, sub}
	require.NoError(t, root.AddSymbol("plus", gp))

	op := asr.NewCustomOperator(source.None, "~add")
	op.Procedures = []*asr.Function{fn}
	require.NoError(t, root.AddSymbol("~add", op))

	smd := asr.NewStructMethodDeclaration(source.None, "area_binding")
	smd.ProcName = "area"
	require.NoError(t, root.AddSymbol("area_binding", smd))

	ext := asr.NewExternalSymbol(source.None, "imported")
	ext.ModuleName = "geometry"
	ext.OriginalName = "area"
	require.NoError(t, root.AddSymbol("imported", ext))

	assoc := asr.NewAssociateBlock(source.None, "$assoc1")
	assocTable := asr.NewTable(root)
	assocTable.SetOwner(assoc)
	assoc.Table = assocTable
	require.NoError(t, root.AddSymbol("$assoc1", assoc))

	blk := asr.NewBlock(source.None, "$block1")
	blkTable := asr.NewTable(root)
	blkTable.SetOwner(blk)
	blk.Table = blkTable
	require.NoError(t, root.AddSymbol("$block1", blk))

	req := asr.NewRequirement(source.None, "addable")
	req.Parameters = []string{"T"}
	reqTable := asr.NewTable(root)
	reqTable.SetOwner(req)
	req.Table = reqTable
	require.NoError(t, root.AddSymbol("addable", req))

	tmpl := asr.NewTemplate(source.None, "add_T")
	tmpl.Parameters = []string{"T"}
	tmplTable := asr.NewTable(root)
	tmplTable.SetOwner(tmpl)
	tmpl.Table = tmplTable
	require.NoError(t, root.AddSymbol("add_T", tmpl))

	out := NewDumper().DumpTable(root)

	assert.Contains(t, out, "function area/1")
	assert.Contains(t, out, "subroutine reset/0")
	assert.Contains(t, out, "variable n : integer(4)")
	assert.Contains(t, out, "type shape")
	assert.Contains(t, out, "type circle extends shape")
	assert.Contains(t, out, "enum color (2 members)")
	assert.Contains(t, out, "union payload (2 members)")
	assert.Contains(t, out, "generic plus (2 procedures)")
	assert.Contains(t, out, "operator ~add (1 procedures)")
	assert.Contains(t, out, "procedure area_binding => area")
	assert.Contains(t, out, "external imported => geometry_area")
	assert.Contains(t, out, "associate $assoc1")
	assert.Contains(t, out, "block $block1")
	assert.Contains(t, out, "requirement addable([T])")
	assert.Contains(t, out, "template add_T([T])")
}

func TestDumpSymbol_EntryFunctionNotesItsMaster(t *testing.T) {
	root := asr.NewTable(nil)
	entry := asr.NewFunction(source.None, "alt_entry")
	entry.EntryOf = "master"
	require.NoError(t, root.AddSymbol("alt_entry", entry))

	out := NewDumper().DumpTable(root)
	assert.Contains(t, out, "(entry of master)")
}

func TestDumpTranslationUnit_NestsTableUnderHeader(t *testing.T) {
	tu := asr.NewTranslationUnit(source.None)
	root := asr.NewTable(nil)
	tu.Table = root

	p := asr.NewProgram(source.None, "demo")
	ptable := asr.NewTable(root)
	ptable.SetOwner(p)
	p.Table = ptable
	require.NoError(t, root.AddSymbol("demo", p))

	out := NewDumper().DumpTranslationUnit(tu)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "translation-unit", lines[0])
	assert.Equal(t, "  program demo", lines[1])
}

func TestDumpTable_UnknownSymbolKindFallsBackToTypeName(t *testing.T) {
	root := asr.NewTable(nil)
	req := asr.NewRequirement(source.None, "unused")
	_ = req
	// Every kind ownTable/dumpSymbol know about is covered above; this test
	// just pins the fallback format string shape for a hypothetical future
	// Symbol kind, using Requirement itself with a nil Table as a stand-in
	// since dumpSymbol only calls dumpTable under withIndent for kinds that
	// own one, and Requirement still has its own named case, so instead
	// assert the default branch's %T format directly via reflection is not
	// needed: skip rather than invent a symbol kind the model does not have.
	t.Skip("every asr.Symbol kind currently defined has its own dumpSymbol case")
}
