// Package ast defines the syntactic-tree node kinds the Resolver consumes,
// built by a parser collaborator outside this repository's scope — no
// lexer or parser is implemented here, so this package is purely the
// contract: the node kinds, their attributes, and the Location every node
// carries.
package ast

import "github.com/yuvrajsinghgmx/lfortran/internal/source"

// Node is the base interface every syntactic node implements, mirroring
// funxy's own ast.Node (TokenLiteral/Accept) with Location in place of a
// lexer token.
type Node interface {
	Loc() source.Location
	Accept(v Visitor)
}

// Statement is a Node that appears in a statement list (a module/program/
// function body, or a top-level item).
type Statement interface {
	Node
	stmtNode()
}

// Expression is a Node that appears where a value or type-parameter
// expression is expected (array bounds, string lengths, initializers,
// call arguments). Expressions are walked with WalkExpr rather than the
// Visitor double-dispatch used for Statements: declaration-phase
// expression handling is shallow (extract referenced names, fold simple
// constants) and does not warrant one Visit method per expression kind.
type Expression interface {
	Node
	exprNode()
}

type baseNode struct {
	Location source.Location
}

func (b baseNode) Loc() source.Location { return b.Location }

// TranslationUnit is the root syntactic node: an ordered list of top-level
// program/module/submodule declarations.
type TranslationUnit struct {
	baseNode
	Items []Statement
}

func (n *TranslationUnit) Accept(v Visitor) { v.VisitTranslationUnit(n) }
func (n *TranslationUnit) stmtNode()        {}
