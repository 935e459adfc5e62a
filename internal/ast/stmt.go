package ast

import "github.com/yuvrajsinghgmx/lfortran/internal/source"

type baseStmt struct {
	Location source.Location
}

func (b baseStmt) Loc() source.Location { return b.Location }
func (baseStmt) stmtNode()              {}

// Assignment is `lhs = rhs` (ordinary or, when Lhs resolves to a Variable
// carrying a CustomOperator-overloaded "=", user-defined).
type Assignment struct {
	baseStmt
	Lhs Expression
	Rhs Expression
}

func (n *Assignment) Accept(v Visitor) { v.VisitAssignment(n) }

// SubroutineCallStatement is a `call name(args)` statement.
type SubroutineCallStatement struct {
	baseStmt
	Callee Expression
	Args   []Argument
}

func (n *SubroutineCallStatement) Accept(v Visitor) { v.VisitSubroutineCallStatement(n) }

// BlockStatement is a plain (non-associating) nested BLOCK construct.
type BlockStatement struct {
	baseStmt
	Decls []Statement
	Body  []Statement
}

func (n *BlockStatement) Accept(v Visitor) { v.VisitBlockStatement(n) }

// AssociateName binds a local name to an expression for the extent of an
// AssociateStatement (`associate (x => expr)`).
type AssociateName struct {
	Name  string
	Value Expression
}

// AssociateStatement is an ASSOCIATE construct.
type AssociateStatement struct {
	baseStmt
	Names []AssociateName
	Body  []Statement
}

func (n *AssociateStatement) Accept(v Visitor) { v.VisitAssociateStatement(n) }

// CaseClause is one `case (...)` arm of a SelectCaseStatement; Values is
// empty for `case default`, which must appear at most once.
type CaseClause struct {
	Values []Expression
	Body   []Statement
}

// SelectCaseStatement is `select case (selector) ... end select`.
type SelectCaseStatement struct {
	baseStmt
	Selector Expression
	Cases    []CaseClause
}

func (n *SelectCaseStatement) Accept(v Visitor) { v.VisitSelectCaseStatement(n) }

// OpaqueStatement carries a statement-body construct the Resolver does not
// itself interpret (loops, IF/WHERE bodies, I/O statements, ...): it still
// needs to be present in a Body list so the statement-body pass that runs
// after declaration resolution has something to walk, but its internals are
// outside this repository's scope.
type OpaqueStatement struct {
	baseStmt
	Syntax interface{}
}

func (n *OpaqueStatement) Accept(v Visitor) { v.VisitOpaqueStatement(n) }
