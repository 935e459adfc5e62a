package resolver

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
	"github.com/yuvrajsinghgmx/lfortran/internal/source"
)

// bindingName computes a C-bound symbol's external name: the explicit
// `bind(c, name="...")` name when given, otherwise the Fortran name
// verbatim (no case mangling), to assign FunctionType.BindingName and
// Variable's equivalent.
func bindingName(fortranName string, b *ast.BindSpec) string {
	if b != nil && b.Name != "" {
		return b.Name
	}
	return fortranName
}

// checkCBindingUnique records name -> owner in the Resolver's translation-
// unit-wide C-binding table, reporting a DuplicateSymbol diagnostic if
// another symbol already claimed the same external name: bind(c) name
// mangling is checked for uniqueness across the translation unit's
// C-bound symbols.
func (w *walker) checkCBindingUnique(loc source.Location, name, owner string) error {
	if w.r.cBoundNames == nil {
		w.r.cBoundNames = make(map[string]string)
	}
	if prev, exists := w.r.cBoundNames[name]; exists && prev != owner {
		d := diag.New(diag.DuplicateSymbol, loc,
			fmt.Sprintf("bind(c) name %q is used by both %q and %q", name, prev, owner))
		return w.report(d)
	}
	w.r.cBoundNames[name] = owner
	return nil
}
