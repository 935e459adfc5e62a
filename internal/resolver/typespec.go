package resolver

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
)

// resolveTypeSpec turns a syntactic type-spec into an asr.Type, looking up
// a named derived type in scope when Keyword is "type"/"class". dims, when
// non-empty, wraps the base type in an Array of that rank.
func (w *walker) resolveTypeSpec(ts ast.TypeSpec, dims []ast.ArrayBoundSpec) (asr.Type, error) {
	kind := w.defaultKindOf(ts.Keyword)
	if ts.Kind != nil {
		if v, ok := foldInt(w.lowerExpr(ts.Kind)); ok {
			kind = int(v)
		}
	}

	var base asr.Type
	switch ts.Keyword {
	case "integer":
		base = asr.Integer{Kind: kind}
	case "real":
		base = asr.Real{Kind: kind}
	case "complex":
		base = asr.Complex{Kind: kind}
	case "logical":
		base = asr.Logical{Kind: kind}
	case "character":
		lengthKind := asr.ImplicitLength
		var lengthExpr asr.Expr
		if ts.Length != nil {
			lengthExpr = w.lowerExpr(ts.Length)
			lengthKind = asr.ExpressionLength
		}
		base = asr.String{LengthExpr: lengthExpr, LengthKind: lengthKind, PhysicalKind: asr.PhysicalDescriptor}
	case "type", "class":
		if w.templateParams[ts.DerivedName] {
			base = asr.TypeParameter{Name: ts.DerivedName}
			break
		}
		sym, _, ok := w.table.ResolveSymbol(ts.DerivedName)
		if !ok {
			d := diag.New(diag.UnresolvedSymbol, ts.Loc(),
				fmt.Sprintf("derived type %q is not visible from this scope", ts.DerivedName))
			if err := w.report(d); err != nil {
				return nil, err
			}
			base = asr.StructType{}
		} else {
			w.recordDependency(sym.Name())
			st, ok := asr.GetPastExternal(sym).(*asr.Struct)
			if !ok {
				d := diag.New(diag.TypeShape, ts.Loc(), fmt.Sprintf("%q does not name a derived type", ts.DerivedName))
				if err := w.report(d); err != nil {
					return nil, err
				}
			}
			base = asr.StructType{Ref: st}
		}
	default:
		d := diag.New(diag.Internal, ts.Loc(), fmt.Sprintf("unrecognized type-spec keyword %q", ts.Keyword))
		if err := w.report(d); err != nil {
			return nil, err
		}
		base = asr.Integer{Kind: kind}
	}

	if len(dims) == 0 {
		return base, nil
	}
	asrDims := make([]asr.Dimension, len(dims))
	physical := asr.PhysicalFixedSize
	for i, d := range dims {
		asrDims[i] = w.classifyArrayBound(d)
		if asrDims[i].IsDeferred() {
			physical = asr.PhysicalDescriptor
		}
	}
	return asr.Array{Element: base, Dims: asrDims, PhysicalKind: physical}, nil
}

// defaultKindOf returns the Options-configured default kind for a base
// type keyword: the same implicit-typing policy default-kind constants,
// reused here for an explicit type-spec with no kind clause.
func (w *walker) defaultKindOf(keyword string) int {
	switch keyword {
	case "real", "complex":
		return w.r.Options.DefaultRealKind
	default:
		return w.r.Options.DefaultIntegerKind
	}
}
