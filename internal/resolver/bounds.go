package resolver

import (
	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
)

// lowerExpr turns a syntactic expression into the narrow asr.Expr the
// declaration phase records. Identifiers are resolved against scope and
// recorded as VarRef (feeding dependency tracking); integer literals become
// IntConst and +/-/* combinations become BinOp, with nothing folded here
// (foldInt evaluates them later where a constant is needed); anything else,
// including an unresolved identifier, is carried unevaluated as Opaque.
func (w *walker) lowerExpr(e ast.Expression) asr.Expr {
	if e == nil {
		return nil
	}
	switch ex := e.(type) {
	case *ast.IntLiteral:
		return asr.NewIntConst(ex.Loc(), ex.Value)
	case *ast.Identifier:
		if sym, _, ok := w.table.ResolveSymbol(ex.Name); ok {
			w.recordDependency(sym.Name())
			return asr.NewVarRef(ex.Loc(), sym)
		}
		return asr.NewOpaque(ex.Loc(), ex)
	case *ast.BinaryExpr:
		left := w.lowerExpr(ex.Left)
		right := w.lowerExpr(ex.Right)
		if isArithOp(ex.Op) {
			return asr.NewBinOp(ex.Loc(), ex.Op, left, right)
		}
		return asr.NewOpaque(ex.Loc(), ex)
	default:
		return asr.NewOpaque(ex.Loc(), ex)
	}
}

func isArithOp(op string) bool {
	switch op {
	case "+", "-", "*":
		return true
	}
	return false
}

// foldInt attempts to evaluate e to a compile-time integer constant,
// following only IntConst/BinOp/VarRef-to-a-parameter chains — exactly the
// narrow bound-expression folding declaration resolution needs, and
// nothing more (no general constant-expression evaluator is implemented;
// that belongs to the statement-body pass this repository does not
// build).
func foldInt(e asr.Expr) (int64, bool) {
	switch ex := e.(type) {
	case *asr.IntConst:
		return ex.Value, true
	case *asr.BinOp:
		l, ok := foldInt(ex.Left)
		if !ok {
			return 0, false
		}
		r, ok := foldInt(ex.Right)
		if !ok {
			return 0, false
		}
		switch ex.Op {
		case "+":
			return l + r, true
		case "-":
			return l - r, true
		case "*":
			return l * r, true
		}
		return 0, false
	case *asr.VarRef:
		v, ok := ex.Target.(*asr.Variable)
		if !ok || v.Storage != asr.StorageParameter || v.Value == nil {
			return 0, false
		}
		return foldInt(v.Value)
	default:
		return 0, false
	}
}

// classifyArrayBound lowers both bounds of an ast.ArrayBoundSpec into an
// asr.Dimension; it neither folds them nor classifies the dimension.
func (w *walker) classifyArrayBound(b ast.ArrayBoundSpec) asr.Dimension {
	return asr.Dimension{
		Lower: w.lowerExpr(b.Lower),
		Upper: w.lowerExpr(b.Upper),
	}
}
