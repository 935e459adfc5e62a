package verifier

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
)

// checkScope re-validates the one invariant AddSymbol already enforces at
// insertion time — non-empty, ASCII alphanumerics plus underscore —
// catching a symbol inserted via AddSymbolOverwrite (the
// module-import-shadowing path) with a name the ordinary path would have
// rejected.
func (c *ctx) checkScope(t *asr.Table, name string, sym asr.Symbol) error {
	if err := asr.ValidateName(sym.Name()); err != nil {
		d := diag.New(diag.LexicalName, sym.Loc(), err.Error())
		c.ver.Sink.Add(d)
		return diag.NewVerifyAbort(d)
	}
	if nested, ok := ownTable(sym); ok {
		if nested.Parent() != nil && nested.Parent() != t && !isReachableOwnerChain(t, nested) {
			d := diag.New(diag.Internal, sym.Loc(),
				fmt.Sprintf("symbol %q owns a table whose parent is not the scope that binds it", name))
			c.ver.Sink.Add(d)
			return diag.NewVerifyAbort(d)
		}
	}
	return nil
}

// isReachableOwnerChain allows a nested table's parent to be an ancestor of
// t rather than t itself — true for, e.g., a Struct's table, whose parent
// is the module table even though the Struct symbol may be looked up via
// an intermediate ExternalSymbol's scope path.
func isReachableOwnerChain(t, nested *asr.Table) bool {
	return nested.Parent() == nil || nested.Parent().IsAncestorOf(t) || t.IsAncestorOf(nested.Parent())
}
