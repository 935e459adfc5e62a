package resolver

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
	"github.com/yuvrajsinghgmx/lfortran/internal/source"
)

// matchSubmoduleImplementations links each module-procedure implementation
// a submodule's own `contains` block declares back to the forward
// declaration some ancestor module's interface block named for it, by name
// and signature equality — the nearest thing this repository has to a
// link-time pass, since there is no separate linking phase here.
func (w *walker) matchSubmoduleImplementations(loc source.Location, parent, sub *asr.Table) error {
	for _, name := range sub.Names() {
		fn, ok := sub.All()[name].(*asr.Function)
		if !ok || !fn.Signature.Flags.ModuleProc {
			continue
		}
		fwdSym, ok := parent.GetSymbol(name)
		if !ok {
			d := diag.New(diag.UnresolvedSymbol, loc,
				fmt.Sprintf("submodule implements %q but no ancestor module declares a matching module procedure", name))
			if err := w.report(d); err != nil {
				return err
			}
			continue
		}
		fwd, ok := fwdSym.(*asr.Function)
		if !ok || fwd.DefKind != asr.DefKindModuleProcedure {
			d := diag.New(diag.TypeShape, loc,
				fmt.Sprintf("%q is not a forward-declared module procedure", name))
			if err := w.report(d); err != nil {
				return err
			}
			continue
		}
		if !signaturesEqual(fwd.Signature, fn.Signature) {
			d := diag.New(diag.ArityMismatch, loc,
				fmt.Sprintf("submodule implementation of %q does not match its forward declaration's signature", name))
			if err := w.report(d); err != nil {
				return err
			}
		}
	}
	return nil
}

// signaturesEqual compares two FunctionTypes structurally: same argument
// count and per-position type identity, same return type (or both absent).
func signaturesEqual(a, b asr.FunctionType) bool {
	if len(a.ArgTypes) != len(b.ArgTypes) {
		return false
	}
	for i := range a.ArgTypes {
		if !typesEqual(a.ArgTypes[i], b.ArgTypes[i]) {
			return false
		}
	}
	return typesEqual(a.ReturnType, b.ReturnType)
}

// typesEqual is a narrow structural equality over the asr.Type grammar:
// just enough to decide whether a submodule implementation's formal types
// match its forward declaration's, not a general type-compatibility rule.
func typesEqual(a, b asr.Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch at := a.(type) {
	case asr.Integer:
		bt, ok := b.(asr.Integer)
		return ok && at.Kind == bt.Kind
	case asr.Real:
		bt, ok := b.(asr.Real)
		return ok && at.Kind == bt.Kind
	case asr.Complex:
		bt, ok := b.(asr.Complex)
		return ok && at.Kind == bt.Kind
	case asr.Logical:
		bt, ok := b.(asr.Logical)
		return ok && at.Kind == bt.Kind
	case asr.String:
		_, ok := b.(asr.String)
		return ok
	case asr.StructType:
		bt, ok := b.(asr.StructType)
		return ok && at.Ref == bt.Ref
	case asr.Pointer:
		bt, ok := b.(asr.Pointer)
		return ok && typesEqual(at.Of, bt.Of)
	case asr.Allocatable:
		bt, ok := b.(asr.Allocatable)
		return ok && typesEqual(at.Of, bt.Of)
	case asr.Array:
		bt, ok := b.(asr.Array)
		return ok && len(at.Dims) == len(bt.Dims) && typesEqual(at.Element, bt.Element)
	}
	return false
}
