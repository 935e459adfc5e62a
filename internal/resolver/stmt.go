package resolver

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
)

// lowerStmt resolves one body statement. Most kinds are carried through as
// asr.OpaqueStmt wrapping their original syntax for the (out of scope)
// statement-body pass to lower later — only enough resolution happens here
// to register BLOCK/ASSOCIATE's nested scopes and to record the name
// dependencies a call or assignment contributes.
func (w *walker) lowerStmt(stmt ast.Statement) (asr.Stmt, error) {
	switch n := stmt.(type) {
	case *ast.Assignment:
		if id, ok := n.Lhs.(*ast.Identifier); ok {
			if sym, _, ok := w.table.ResolveSymbol(id.Name); ok {
				if v, ok := sym.(*asr.Variable); ok && v.Storage == asr.StorageParameter {
					d := diag.New(diag.IntentViolation, n.Loc(),
						fmt.Sprintf("%q is a parameter and cannot be re-assigned", id.Name))
					if err := w.report(d); err != nil {
						return nil, err
					}
					// continue-on-error: drop this statement rather than
					// lowering an assignment to a compile-time constant.
					return nil, nil
				}
				if v, ok := sym.(*asr.Variable); ok && v.Intent == asr.IntentIn {
					d := diag.New(diag.IntentViolation, n.Loc(),
						fmt.Sprintf("%q has intent(in) and cannot be assigned", id.Name))
					if err := w.report(d); err != nil {
						return nil, err
					}
					return nil, nil
				}
			}
		}
		w.recordExprDeps(n.Lhs)
		w.recordExprDeps(n.Rhs)
		return asr.NewOpaqueStmt(n.Loc(), n), nil
	case *ast.SubroutineCallStatement:
		w.recordExprDeps(n.Callee)
		for _, a := range n.Args {
			w.recordExprDeps(a.Value)
		}
		return asr.NewOpaqueStmt(n.Loc(), n), nil
	case *ast.BlockStatement:
		return w.lowerBlockStatement(n)
	case *ast.AssociateStatement:
		return w.lowerAssociateStatement(n)
	case *ast.SelectCaseStatement:
		w.recordExprDeps(n.Selector)
		return asr.NewOpaqueStmt(n.Loc(), n), nil
	case *ast.OpaqueStatement:
		return asr.NewOpaqueStmt(n.Loc(), n.Syntax), nil
	default:
		d := diag.New(diag.Internal, stmt.Loc(), fmt.Sprintf("unexpected statement %T", stmt))
		if err := w.report(d); err != nil {
			return nil, err
		}
		return asr.NewOpaqueStmt(stmt.Loc(), stmt), nil
	}
}

// recordExprDeps looks up the names a syntactic expression references
// (shallow: identifiers only, no descent through arbitrary syntax) and
// feeds each resolvable one to the current entity's dependency set.
func (w *walker) recordExprDeps(e ast.Expression) {
	switch ex := e.(type) {
	case *ast.Identifier:
		if sym, _, ok := w.table.ResolveSymbol(ex.Name); ok {
			w.recordDependency(sym.Name())
		}
	case *ast.BinaryExpr:
		w.recordExprDeps(ex.Left)
		w.recordExprDeps(ex.Right)
	case *ast.UnaryExpr:
		w.recordExprDeps(ex.Operand)
	case *ast.CallExpr:
		w.recordExprDeps(ex.Callee)
		for _, a := range ex.Args {
			w.recordExprDeps(a.Value)
		}
	case *ast.MemberExpr:
		w.recordExprDeps(ex.Base)
		w.recordMemberDep(ex)
	}
}

// recordMemberDep resolves a%b-style member access against a's declared
// struct type, walking the inheritance chain for an overridden type-bound
// procedure, and feeds the winning struct's and member's names into the
// current entity's dependency set. A base whose
// type cannot be determined (not a plain Identifier, or not struct-shaped)
// contributes nothing beyond what recordExprDeps(ex.Base) already recorded.
func (w *walker) recordMemberDep(ex *ast.MemberExpr) {
	id, ok := ex.Base.(*ast.Identifier)
	if !ok {
		return
	}
	sym, _, ok := w.table.ResolveSymbol(id.Name)
	if !ok {
		return
	}
	v, ok := sym.(*asr.Variable)
	if !ok {
		return
	}
	st := structTypeOf(v.Type)
	if st == nil {
		return
	}
	owner, member, ok := resolveMember(st, ex.Member)
	if !ok {
		return
	}
	w.recordDependency(owner.Name())
	if smd, ok := member.(*asr.StructMethodDeclaration); ok {
		w.recordDependency(smd.Name())
	} else {
		w.recordDependency(member.Name())
	}
}

// lowerBlockStatement resolves a nested (non-associating) BLOCK construct:
// a fresh scope is opened, its own declarations and body are resolved
// recursively, and the resulting Block symbol is registered under a
// synthetic name in the enclosing table so the Verifier's table walk
// reaches it.
func (w *walker) lowerBlockStatement(n *ast.BlockStatement) (asr.Stmt, error) {
	blk := asr.NewBlock(n.Loc(), w.r.nextAnonName("block"))
	table := asr.NewTable(w.table)
	table.SetOwner(blk)
	blk.Table = table
	w.table.AddSymbolOverwrite(blk.Name(), blk)

	sub := w.child(table, w.deps)
	if err := sub.resolveDeclsAndContains(n.Decls, nil); err != nil {
		return nil, err
	}
	sub.phase = phaseBody
	for _, s := range n.Body {
		st, err := sub.lowerStmt(s)
		if err != nil {
			return nil, err
		}
		if st != nil {
			blk.Body = append(blk.Body, st)
		}
	}
	if err := sub.finalizeGenerics(); err != nil {
		return nil, err
	}
	return asr.NewOpaqueStmt(n.Loc(), nil), nil
}

// lowerAssociateStatement resolves an ASSOCIATE construct: each associate
// name binds a local Variable to the (lowered) value it names, in a fresh
// scope nested in the enclosing one.
func (w *walker) lowerAssociateStatement(n *ast.AssociateStatement) (asr.Stmt, error) {
	assoc := asr.NewAssociateBlock(n.Loc(), w.r.nextAnonName("associate"))
	table := asr.NewTable(w.table)
	table.SetOwner(assoc)
	assoc.Table = table
	w.table.AddSymbolOverwrite(assoc.Name(), assoc)

	sub := w.child(table, w.deps)
	for _, an := range n.Names {
		v := asr.NewVariable(n.Loc(), an.Name)
		v.ParentTable = table
		v.Intent = asr.IntentLocal
		v.Value = sub.lowerExpr(an.Value)
		if err := table.AddSymbol(an.Name, v); err != nil {
			d := diag.New(diag.DuplicateSymbol, n.Loc(), err.Error())
			if aerr := sub.report(d); aerr != nil {
				return nil, aerr
			}
		}
	}
	sub.phase = phaseBody
	for _, s := range n.Body {
		st, err := sub.lowerStmt(s)
		if err != nil {
			return nil, err
		}
		if st != nil {
			assoc.Body = append(assoc.Body, st)
		}
	}
	return asr.NewOpaqueStmt(n.Loc(), nil), nil
}
