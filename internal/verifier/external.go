package verifier

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
)

// checkExternalSymbol re-checks the ExternalSymbol invariants: External is
// never itself an ExternalSymbol (at most one indirection hop), and —
// only once every module has been loaded (CheckExternal's post-link
// mode) — OriginalName/ScopePath actually resolve inside the named
// module.
func (c *ctx) checkExternalSymbol(t *asr.Table, sym asr.Symbol) error {
	ext, ok := sym.(*asr.ExternalSymbol)
	if !ok {
		return nil
	}
	if _, isExt := ext.External.(*asr.ExternalSymbol); isExt {
		d := diag.New(diag.DependencyDrift, ext.Loc(),
			fmt.Sprintf("external symbol %q points at another external symbol %q; only one hop of indirection is allowed",
				ext.Name(), ext.External.Name()))
		c.ver.Sink.Add(d)
		return diag.NewVerifyAbort(d)
	}
	if !c.ver.CheckExternal {
		return nil
	}
	modTable, ok := moduleTableByName(t, ext.ModuleName)
	if !ok {
		d := diag.New(diag.UnresolvedSymbol, ext.Loc(),
			fmt.Sprintf("external symbol %q names module %q, which cannot be found from this scope",
				ext.Name(), ext.ModuleName))
		c.ver.Sink.Add(d)
		return diag.NewVerifyAbort(d)
	}
	found, ok := asr.FindScoped(modTable, ext.OriginalName, ext.ScopePath)
	if !ok {
		d := diag.New(diag.UnresolvedSymbol, ext.Loc(),
			fmt.Sprintf("external symbol %q names %q in module %q, which does not define it",
				ext.Name(), ext.OriginalName, ext.ModuleName))
		c.ver.Sink.Add(d)
		return diag.NewVerifyAbort(d)
	}
	if asr.GetPastExternal(found) != asr.GetPastExternal(ext.External) {
		d := diag.New(diag.DependencyDrift, ext.Loc(),
			fmt.Sprintf("external symbol %q's recorded target has drifted from module %q's current %q",
				ext.Name(), ext.ModuleName, ext.OriginalName))
		c.ver.Sink.Add(d)
		return diag.NewVerifyAbort(d)
	}
	return nil
}

// moduleTableByName walks outward from t looking for a Module symbol named
// name, the way the Resolver itself would have found it to build the
// ExternalSymbol in the first place.
func moduleTableByName(t *asr.Table, name string) (*asr.Table, bool) {
	for cur := t; cur != nil; cur = cur.Parent() {
		for _, n := range cur.Names() {
			if mod, ok := cur.All()[n].(*asr.Module); ok && asr.CanonicalName(mod.Name()) == asr.CanonicalName(name) {
				return mod.Table, true
			}
		}
	}
	return nil, false
}
