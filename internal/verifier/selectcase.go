package verifier

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
)

// checkSelectCase re-checks the select/case fall-through rule: a SELECT
// CASE construct may name `case default` at most once. The
// construct itself is not lowered into the ASR (statement-body lowering is
// out of scope), but the Resolver carries its original syntax unevaluated
// inside asr.OpaqueStmt, which lets the Verifier still re-check this one
// structural property without interpreting the cases themselves.
func (c *ctx) checkSelectCase(scope *asr.Table, stmt asr.Stmt) error {
	opaque, ok := stmt.(*asr.OpaqueStmt)
	if !ok {
		return nil
	}
	sel, ok := opaque.Syntax.(*ast.SelectCaseStatement)
	if !ok {
		return nil
	}
	defaults := 0
	for _, cl := range sel.Cases {
		if len(cl.Values) == 0 {
			defaults++
		}
	}
	if defaults > 1 {
		d := diag.New(diag.TemplateMisuse, sel.Loc(),
			fmt.Sprintf("select case declares %d 'case default' arms; at most one is allowed", defaults))
		c.ver.Sink.Add(d)
		return diag.NewVerifyAbort(d)
	}
	return nil
}
