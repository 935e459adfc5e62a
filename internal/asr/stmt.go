package asr

import "github.com/yuvrajsinghgmx/lfortran/internal/source"

// Stmt is a statement carried into the ASR body of a Program, Function,
// AssociateBlock or Block. The statement-body semantic pass (expression
// typing, implicit casting, control-flow lowering) is out of scope for this
// repository; the Resolver still has to thread the statement list through
// so later passes have something to lower, so Stmt is kept to the one
// variant that does that faithfully.
type Stmt interface {
	stmtNode()
	Loc() source.Location
}

type baseStmt struct {
	Location source.Location
}

func (b baseStmt) Loc() source.Location { return b.Location }
func (baseStmt) stmtNode()              {}

// OpaqueStmt wraps an unlowered syntactic statement. Syntax is typed
// interface{} rather than ast.Node so that this package never imports the
// syntax-tree package (asr is a leaf: ast, resolver and verifier all import
// it, never the reverse).
type OpaqueStmt struct {
	baseStmt
	Syntax interface{}
}

// NewOpaqueStmt builds an OpaqueStmt; see the constructor note in expr.go
// for why this is needed instead of a bare composite literal from outside
// the package.
func NewOpaqueStmt(loc source.Location, syntax interface{}) *OpaqueStmt {
	return &OpaqueStmt{baseStmt: baseStmt{Location: loc}, Syntax: syntax}
}
