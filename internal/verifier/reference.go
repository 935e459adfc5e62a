package verifier

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
)

// exprsOf returns every Expr directly attached to sym that the declaration
// phase records: initializers, array bounds, string lengths, alignment
// constants. Body statements are not walked here: their
// expressions are syntax the statement-body pass (out of scope) will lower
// later, carried unevaluated inside asr.OpaqueStmt/asr.Opaque.
func exprsOf(sym asr.Symbol) []asr.Expr {
	var out []asr.Expr
	switch s := sym.(type) {
	case *asr.Variable:
		if s.Initializer != nil {
			out = append(out, s.Initializer)
		}
		if s.Value != nil {
			out = append(out, s.Value)
		}
		out = append(out, exprsInType(s.Type)...)
	case *asr.Struct:
		if s.Alignment != nil {
			out = append(out, s.Alignment)
		}
	case *asr.Function:
		out = append(out, exprsInType(s.Signature)...)
	}
	return out
}

// exprsInType collects the length/bound expressions threaded through a
// Type's shape: Array dimensions, String length.
func exprsInType(t asr.Type) []asr.Expr {
	var out []asr.Expr
	switch ty := t.(type) {
	case asr.String:
		if ty.LengthExpr != nil {
			out = append(out, ty.LengthExpr)
		}
	case asr.Array:
		for _, d := range ty.Dims {
			if d.Lower != nil {
				out = append(out, d.Lower)
			}
			if d.Upper != nil {
				out = append(out, d.Upper)
			}
		}
		out = append(out, exprsInType(ty.Element)...)
	case asr.Pointer:
		out = append(out, exprsInType(ty.Of)...)
	case asr.Allocatable:
		out = append(out, exprsInType(ty.Of)...)
	case asr.FunctionType:
		for _, a := range ty.ArgTypes {
			out = append(out, exprsInType(a)...)
		}
		if ty.ReturnType != nil {
			out = append(out, exprsInType(ty.ReturnType)...)
		}
	}
	return out
}

// collectVarRefs walks e (and, for BinOp, its operands) collecting every
// VarRef leaf. Opaque nodes are not descended into: their syntax has not
// been through name resolution and carries no asr.Symbol to check.
func collectVarRefs(e asr.Expr) []*asr.VarRef {
	var out []*asr.VarRef
	var walk func(asr.Expr)
	walk = func(e asr.Expr) {
		if e == nil {
			return
		}
		switch v := e.(type) {
		case *asr.VarRef:
			out = append(out, v)
		case asr.VarRef:
			vv := v
			out = append(out, &vv)
		case *asr.BinOp:
			walk(v.Left)
			walk(v.Right)
		case asr.BinOp:
			walk(v.Left)
			walk(v.Right)
		}
	}
	walk(e)
	return out
}

// checkReferences re-checks the reference-integrity rule: every name a
// declaration-phase expression resolved to a Symbol must still be
// reachable from the scope that references it, walking the parent chain.
func (c *ctx) checkReferences(t *asr.Table, sym asr.Symbol) error {
	for _, e := range exprsOf(sym) {
		for _, ref := range collectVarRefs(e) {
			if !refIsReachable(t, ref.Target) {
				d := diag.New(diag.UnresolvedSymbol, ref.Loc(),
					fmt.Sprintf("%q references %q, which is not visible from this scope",
						sym.Name(), ref.Target.Name()))
				c.ver.Sink.Add(d)
				return diag.NewVerifyAbort(d)
			}
		}
	}
	return nil
}

func refIsReachable(scope *asr.Table, target asr.Symbol) bool {
	target = asr.GetPastExternal(target)
	v, ok := target.(*asr.Variable)
	if !ok {
		// Non-Variable targets (Struct, Enum, Function, ...) own their own
		// table rather than carrying a ParentTable back-reference; their
		// visibility was already established by the lookup that produced
		// this VarRef, so there is nothing further to re-check here.
		return true
	}
	if v.ParentTable == nil {
		return true
	}
	return v.ParentTable == scope || v.ParentTable.IsAncestorOf(scope)
}
