package asr

import "github.com/yuvrajsinghgmx/lfortran/internal/source"

// Expr is the narrow expression representation the declaration phase
// itself needs: array-bound expressions, string-length expressions,
// alignment constants, and default initializers, built during the
// declaration body phase. Full expression typing and constant folding is
// the statement-body semantic pass, explicitly out of scope for this
// repository; Expr exists only so the Resolver can record dependencies and
// the Verifier can check the handful of constant-shaped invariants that
// matter (alignment is a positive power of two, an Enum's values are
// consecutive, …).
type Expr interface {
	exprNode()
	Loc() source.Location
}

type baseExpr struct {
	Location source.Location
}

func (b baseExpr) Loc() source.Location { return b.Location }
func (baseExpr) exprNode()              {}

// IntConst is a resolved integer constant, the result of the narrow
// constant folding this repository performs: array bounds, string
// lengths, alignment constants, and nothing beyond that.
type IntConst struct {
	baseExpr
	Value int64
}

// VarRef is a reference to an already-resolved Symbol (a Variable, an
// Enum member, or an ExternalSymbol). Every VarRef the Resolver builds
// feeds the running dependency-set tracking (see DependencySet).
type VarRef struct {
	baseExpr
	Target Symbol
}

// BinOp is a simple arithmetic node over two constant-foldable operands,
// sufficient to classify an array dimension as fixed-size.
type BinOp struct {
	baseExpr
	Op          string
	Left, Right Expr
}

// Opaque wraps a syntactic expression the declaration phase does not
// interpret further; it is carried through unevaluated for the (out of
// scope) statement-body pass to lower later.
type Opaque struct {
	baseExpr
	Syntax interface{}
}

// Constructors below exist because baseExpr's embedded field is
// unexported: a caller outside this package cannot name it in a composite
// literal, so resolver (and any future caller) builds every Expr variant
// through one of these instead.

func NewIntConst(loc source.Location, value int64) *IntConst {
	return &IntConst{baseExpr: baseExpr{Location: loc}, Value: value}
}

func NewVarRef(loc source.Location, target Symbol) *VarRef {
	return &VarRef{baseExpr: baseExpr{Location: loc}, Target: target}
}

func NewBinOp(loc source.Location, op string, left, right Expr) *BinOp {
	return &BinOp{baseExpr: baseExpr{Location: loc}, Op: op, Left: left, Right: right}
}

func NewOpaque(loc source.Location, syntax interface{}) *Opaque {
	return &Opaque{baseExpr: baseExpr{Location: loc}, Syntax: syntax}
}
