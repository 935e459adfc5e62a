package verifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
	"github.com/yuvrajsinghgmx/lfortran/internal/source"
)

// newTU builds an empty translation unit with its own root table, ready to
// have symbols inserted directly for a single check's worth of fixture.
func newTU() (*asr.TranslationUnit, *asr.Table) {
	tu := asr.NewTranslationUnit(source.None)
	root := asr.NewTable(nil)
	root.SetOwner(tu)
	tu.Table = root
	return tu, root
}

// newProgram builds a bare, otherwise-valid Program symbol owning its own
// table, parented under parent.
func newProgram(name string, parent *asr.Table) (*asr.Program, *asr.Table) {
	p := asr.NewProgram(source.None, name)
	table := asr.NewTable(parent)
	table.SetOwner(p)
	p.Table = table
	p.Dependencies = asr.NewDependencySet()
	return p, table
}

func intVar(name string, table *asr.Table) *asr.Variable {
	v := asr.NewVariable(source.None, name)
	v.ParentTable = table
	v.Type = asr.Integer{Kind: 4}
	v.Access = asr.Public
	v.Presence = asr.Required
	v.Dependencies = asr.NewDependencySet()
	return v
}

func TestVerify_WellFormedProgramPasses(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)
	n := intVar("n", ptable)
	require.NoError(t, ptable.AddSymbol("n", n))
	require.NoError(t, root.AddSymbol("p", prog))

	ver := New()
	require.NoError(t, ver.Verify(tu))
	assert.False(t, ver.Sink.HasError())
}

func TestCheckScope_RejectsNameWithInvalidCharacters(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)
	bad := intVar("not a name", ptable)
	ptable.AddSymbolOverwrite("not a name", bad)
	require.NoError(t, root.AddSymbol("p", prog))

	ver := New()
	err := ver.Verify(tu)
	require.Error(t, err)
	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.LexicalName, abort.Diagnostic.Code)
}

func TestCheckReferences_RejectsUnreachableTarget(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)

	// other lives in a sibling scope prog cannot see.
	otherProg, otherTable := newProgram("q", root)
	outsider := intVar("outsider", otherTable)
	require.NoError(t, otherTable.AddSymbol("outsider", outsider))
	require.NoError(t, root.AddSymbol("q", otherProg))

	v := intVar("n", ptable)
	v.Initializer = asr.NewVarRef(source.None, outsider)
	require.NoError(t, ptable.AddSymbol("n", v))
	require.NoError(t, root.AddSymbol("p", prog))

	ver := New()
	err := ver.Verify(tu)
	require.Error(t, err)
	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.UnresolvedSymbol, abort.Diagnostic.Code)
}

func TestCheckExternalSymbol_RejectsDoubleIndirection(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)

	inner := asr.NewExternalSymbol(source.None, "inner")
	inner.External = intVar("real", ptable)
	outer := asr.NewExternalSymbol(source.None, "outer")
	outer.External = inner
	require.NoError(t, ptable.AddSymbol("outer", outer))
	require.NoError(t, root.AddSymbol("p", prog))

	ver := New()
	err := ver.Verify(tu)
	require.Error(t, err)
	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.DependencyDrift, abort.Diagnostic.Code)
}

func TestCheckExternalSymbol_PostLinkDriftDetected(t *testing.T) {
	tu, root := newTU()

	moduleM := asr.NewModule(source.None, "m")
	mtable := asr.NewTable(root)
	mtable.SetOwner(moduleM)
	moduleM.Table = mtable
	moduleM.Dependencies = asr.NewDependencySet()
	realSym := intVar("foo", mtable)
	require.NoError(t, mtable.AddSymbol("foo", realSym))
	require.NoError(t, root.AddSymbol("m", moduleM))

	prog, ptable := newProgram("p", root)
	ext := asr.NewExternalSymbol(source.None, "foo")
	ext.ModuleName = "m"
	ext.OriginalName = "foo"
	// Drift: recorded target does not match what module m currently defines.
	ext.External = intVar("stale", ptable)
	require.NoError(t, ptable.AddSymbol("foo", ext))
	require.NoError(t, root.AddSymbol("p", prog))

	ver := New()
	ver.CheckExternal = true
	err := ver.Verify(tu)
	require.Error(t, err)
	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.DependencyDrift, abort.Diagnostic.Code)
}

func TestCheckExternalSymbol_PreLinkModeSkipsUnresolvedTarget(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)
	ext := asr.NewExternalSymbol(source.None, "foo")
	ext.ModuleName = "not_loaded_yet"
	ext.OriginalName = "foo"
	ext.External = intVar("placeholder", ptable)
	require.NoError(t, ptable.AddSymbol("foo", ext))
	require.NoError(t, root.AddSymbol("p", prog))

	ver := New() // CheckExternal defaults false: pre-link mode.
	require.NoError(t, ver.Verify(tu))
}

func TestCheckDependencies_RejectsUnrecordedReference(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)

	base := intVar("base", ptable)
	require.NoError(t, ptable.AddSymbol("base", base))

	derived := intVar("derived", ptable)
	derived.Initializer = asr.NewVarRef(source.None, base)
	// Dependencies deliberately left empty: derived references base but
	// never records it.
	require.NoError(t, ptable.AddSymbol("derived", derived))
	require.NoError(t, root.AddSymbol("p", prog))

	ver := New()
	err := ver.Verify(tu)
	require.Error(t, err)
	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.DependencyDrift, abort.Diagnostic.Code)
}

func TestCheckDependencies_RecordedReferencePasses(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)

	base := intVar("base", ptable)
	require.NoError(t, ptable.AddSymbol("base", base))

	derived := intVar("derived", ptable)
	derived.Initializer = asr.NewVarRef(source.None, base)
	derived.Dependencies.Add("base")
	require.NoError(t, ptable.AddSymbol("derived", derived))
	require.NoError(t, root.AddSymbol("p", prog))

	ver := New()
	require.NoError(t, ver.Verify(tu))
}

// TestCheckDependencies_RejectsUnrecordedBodyReference: a Program's body
// assigns to a variable bound in its own table, but the Program's own
// Dependencies set never recorded that name.
func TestCheckDependencies_RejectsUnrecordedBodyReference(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)

	n := intVar("n", ptable)
	require.NoError(t, ptable.AddSymbol("n", n))
	require.NoError(t, root.AddSymbol("p", prog))

	prog.Body = append(prog.Body, asr.NewOpaqueStmt(source.None, &ast.Assignment{
		Lhs: &ast.Identifier{Name: "n"},
		Rhs: &ast.IntLiteral{Value: 1},
	}))

	ver := New()
	err := ver.Verify(tu)
	require.Error(t, err)
	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.DependencyDrift, abort.Diagnostic.Code)
}

// TestCheckDependencies_BodyReferenceRecordedPasses mirrors the rejection
// case above but with the body's reference properly recorded.
func TestCheckDependencies_BodyReferenceRecordedPasses(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)

	n := intVar("n", ptable)
	require.NoError(t, ptable.AddSymbol("n", n))
	require.NoError(t, root.AddSymbol("p", prog))

	prog.Body = append(prog.Body, asr.NewOpaqueStmt(source.None, &ast.Assignment{
		Lhs: &ast.Identifier{Name: "n"},
		Rhs: &ast.IntLiteral{Value: 1},
	}))
	prog.Dependencies.Add("n")

	ver := New()
	require.NoError(t, ver.Verify(tu))
}

// TestCheckDependencies_RejectsUnrecordedUseImport: a Module binds an
// ExternalSymbol from a `use` of module "other" directly in its own
// table, but never records "other" in its own Dependencies.
func TestCheckDependencies_RejectsUnrecordedUseImport(t *testing.T) {
	tu, root := newTU()

	moduleM := asr.NewModule(source.None, "m")
	mtable := asr.NewTable(root)
	mtable.SetOwner(moduleM)
	moduleM.Table = mtable
	moduleM.Dependencies = asr.NewDependencySet()

	ext := asr.NewExternalSymbol(source.None, "foo")
	ext.ModuleName = "other"
	ext.OriginalName = "foo"
	ext.External = intVar("foo", mtable)
	require.NoError(t, mtable.AddSymbol("foo", ext))
	require.NoError(t, root.AddSymbol("m", moduleM))

	ver := New()
	err := ver.Verify(tu)
	require.Error(t, err)
	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.DependencyDrift, abort.Diagnostic.Code)
}

func TestCheckTypeShape_RejectsZeroRankArray(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)
	v := intVar("arr", ptable)
	v.Type = asr.Array{Element: asr.Integer{Kind: 4}}
	require.NoError(t, ptable.AddSymbol("arr", v))
	require.NoError(t, root.AddSymbol("p", prog))

	ver := New()
	err := ver.Verify(tu)
	require.Error(t, err)
	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.TypeShape, abort.Diagnostic.Code)
}

func TestCheckTypeShape_RejectsAllocatableArrayWithExplicitBound(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)
	v := intVar("arr", ptable)
	v.Type = asr.Allocatable{Of: asr.Array{
		Element: asr.Integer{Kind: 4},
		Dims:    []asr.Dimension{{Lower: asr.NewIntConst(source.None, 1), Upper: asr.NewIntConst(source.None, 10)}},
	}}
	require.NoError(t, ptable.AddSymbol("arr", v))
	require.NoError(t, root.AddSymbol("p", prog))

	ver := New()
	err := ver.Verify(tu)
	require.Error(t, err)
	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.TypeShape, abort.Diagnostic.Code)
}

func TestCheckTypeShape_RejectsPointerToPointer(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)
	v := intVar("pp", ptable)
	v.Type = asr.Pointer{Of: asr.Pointer{Of: asr.Integer{Kind: 4}}}
	require.NoError(t, ptable.AddSymbol("pp", v))
	require.NoError(t, root.AddSymbol("p", prog))

	ver := New()
	err := ver.Verify(tu)
	require.Error(t, err)
	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.TypeShape, abort.Diagnostic.Code)
}

func TestCheckTypeShape_RejectsEnumWithNonIntegerUnderlying(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)
	e := asr.NewEnum(source.None, "color")
	etable := asr.NewTable(ptable)
	etable.SetOwner(e)
	e.Table = etable
	e.Underlying = asr.Real{Kind: 4}
	e.Members = []string{"red"}
	require.NoError(t, ptable.AddSymbol("color", e))
	require.NoError(t, root.AddSymbol("p", prog))

	ver := New()
	err := ver.Verify(tu)
	require.Error(t, err)
	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.TypeShape, abort.Diagnostic.Code)
}

func TestCheckTypeShape_RejectsStructInheritanceCycle(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)
	s := asr.NewStruct(source.None, "s")
	stable := asr.NewTable(ptable)
	stable.SetOwner(s)
	s.Table = stable
	s.Parent = s // directly cyclic
	require.NoError(t, ptable.AddSymbol("s", s))
	require.NoError(t, root.AddSymbol("p", prog))

	ver := New()
	err := ver.Verify(tu)
	require.Error(t, err)
	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.TypeShape, abort.Diagnostic.Code)
}

func TestCheckCallsite_RejectsArityMismatch(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)
	fn := asr.NewFunction(source.None, "f")
	ftable := asr.NewTable(ptable)
	ftable.SetOwner(fn)
	fn.Table = ftable
	fn.Dependencies = asr.NewDependencySet()
	fn.DefKind = asr.DefKindImplementation
	arg := intVar("x", ftable)
	fn.Args = []asr.Expr{asr.NewVarRef(source.None, arg)}
	fn.Signature.ArgTypes = []asr.Type{asr.Integer{Kind: 4}, asr.Integer{Kind: 4}}
	require.NoError(t, ptable.AddSymbol("f", fn))
	require.NoError(t, root.AddSymbol("p", prog))

	ver := New()
	err := ver.Verify(tu)
	require.Error(t, err)
	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.ArityMismatch, abort.Diagnostic.Code)
}

func TestCheckCallsite_RejectsStructMethodPassObjectMismatch(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)

	s := asr.NewStruct(source.None, "shape")
	stable := asr.NewTable(ptable)
	stable.SetOwner(s)
	s.Table = stable

	other := asr.NewStruct(source.None, "other")
	othertable := asr.NewTable(ptable)
	othertable.SetOwner(other)
	other.Table = othertable

	fn := asr.NewFunction(source.None, "area")
	fntable := asr.NewTable(stable)
	fntable.SetOwner(fn)
	fn.Table = fntable
	fn.Dependencies = asr.NewDependencySet()
	self := intVar("self", fntable)
	self.Type = asr.StructType{Ref: other} // wrong struct
	fn.Args = []asr.Expr{asr.NewVarRef(source.None, self)}
	fn.Signature.ArgTypes = []asr.Type{self.Type}
	require.NoError(t, stable.AddSymbol("area", fn))

	smd := asr.NewStructMethodDeclaration(source.None, "area")
	smd.ParentTable = stable
	smd.Procedure = fn
	smd.SelfArgument = "self"
	require.NoError(t, stable.AddSymbol("area_binding", smd))

	require.NoError(t, ptable.AddSymbol("shape", s))
	require.NoError(t, ptable.AddSymbol("other", other))
	require.NoError(t, root.AddSymbol("p", prog))

	ver := New()
	err := ver.Verify(tu)
	require.Error(t, err)
	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.IntentViolation, abort.Diagnostic.Code)
}

func TestCheckAssignment_RejectsParameterWithoutValue(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)
	v := intVar("n", ptable)
	v.Storage = asr.StorageParameter
	require.NoError(t, ptable.AddSymbol("n", v))
	require.NoError(t, root.AddSymbol("p", prog))

	ver := New()
	err := ver.Verify(tu)
	require.Error(t, err)
	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.IntentViolation, abort.Diagnostic.Code)
}

func TestCheckAssignment_RejectsIntentInWithSave(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)
	v := intVar("x", ptable)
	v.Intent = asr.IntentIn
	v.Storage = asr.StorageSave
	require.NoError(t, ptable.AddSymbol("x", v))
	require.NoError(t, root.AddSymbol("p", prog))

	ver := New()
	err := ver.Verify(tu)
	require.Error(t, err)
	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.IntentViolation, abort.Diagnostic.Code)
}

func TestCheckSelectCase_RejectsMultipleDefaultArms(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)
	sel := &ast.SelectCaseStatement{
		Cases: []ast.CaseClause{
			{Values: nil}, // default
			{Values: nil}, // a second default
		},
	}
	prog.Body = append(prog.Body, asr.NewOpaqueStmt(source.None, sel))
	require.NoError(t, root.AddSymbol("p", prog))
	_ = ptable

	ver := New()
	err := ver.Verify(tu)
	require.Error(t, err)
	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.TemplateMisuse, abort.Diagnostic.Code)
}

func TestCheckSelectCase_SingleDefaultArmPasses(t *testing.T) {
	tu, root := newTU()
	prog, ptable := newProgram("p", root)
	sel := &ast.SelectCaseStatement{
		Cases: []ast.CaseClause{
			{Values: []ast.Expression{&ast.IntLiteral{Value: 1}}},
			{Values: nil},
		},
	}
	prog.Body = append(prog.Body, asr.NewOpaqueStmt(source.None, sel))
	require.NoError(t, root.AddSymbol("p", prog))
	_ = ptable

	ver := New()
	require.NoError(t, ver.Verify(tu))
}
