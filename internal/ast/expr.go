package ast

import "github.com/yuvrajsinghgmx/lfortran/internal/source"

type baseExpr struct {
	Location source.Location
}

func (b baseExpr) Loc() source.Location { return b.Location }
func (baseExpr) exprNode()              {}

// Identifier is a bare name reference: a variable, a procedure, a derived
// type, a module, or a template/generic parameter — which one it is can
// only be decided once the Resolver looks it up in the current scope.
type Identifier struct {
	baseExpr
	Name string
}

// IntLiteral is an integer constant, as written in source (no kind suffix
// parsing beyond what the parser collaborator already resolved).
type IntLiteral struct {
	baseExpr
	Value int64
}

// RealLiteral is a real constant.
type RealLiteral struct {
	baseExpr
	Text string // kept as text; the Resolver does not evaluate it
}

// StringLiteral is a character constant.
type StringLiteral struct {
	baseExpr
	Text string
}

// LogicalLiteral is `.true.` / `.false.`.
type LogicalLiteral struct {
	baseExpr
	Value bool
}

// BinaryExpr is a binary operator application, including user-definable
// operators (`+`, `-`, `*`, `/`, `==`, comparison, `.userop.`).
type BinaryExpr struct {
	baseExpr
	Op    string
	Left  Expression
	Right Expression
}

// UnaryExpr is a unary operator application (`-x`, `.not. x`).
type UnaryExpr struct {
	baseExpr
	Op      string
	Operand Expression
}

// CallExpr is a function call or array/struct-component reference — which
// one of those it is is exactly what the Resolver's callsite rules decide
// by looking up Callee.
type CallExpr struct {
	baseExpr
	Callee Expression
	Args   []Argument
}

// Argument is one actual argument in a call, optionally keyword-named
// (`f(x, key=y)`).
type Argument struct {
	Keyword string // empty for a positional argument
	Value   Expression
}

// MemberExpr is a derived-type component or type-bound-procedure reference
// (`x%field`, `obj%method(...)`).
type MemberExpr struct {
	baseExpr
	Base   Expression
	Member string
}

// KindExpr names an explicit kind parameter on a type-spec (`real(kind=8)`,
// `integer(4)`).
type KindExpr struct {
	baseExpr
	Value Expression
}
