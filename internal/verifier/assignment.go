package verifier

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
)

// checkAssignment re-checks the Variable attribute-combination rules the
// Resolver and the Verifier both re-derive: a compile-time PARAMETER must
// carry the constant Value it was given, and a dummy argument (Intent !=
// IntentLocal) cannot simultaneously be declared PARAMETER — a dummy's
// value is supplied by the caller, so it cannot also be a compile-time
// constant.
func (c *ctx) checkAssignment(t *asr.Table, sym asr.Symbol) error {
	v, ok := sym.(*asr.Variable)
	if !ok {
		return nil
	}
	if v.Storage == asr.StorageParameter {
		if v.Intent != asr.IntentLocal && v.Intent != asr.IntentUnspecified {
			d := diag.New(diag.IntentViolation, v.Loc(),
				fmt.Sprintf("%q is declared parameter but also carries a dummy-argument intent", v.Name()))
			c.ver.Sink.Add(d)
			return diag.NewVerifyAbort(d)
		}
		if v.Value == nil {
			d := diag.New(diag.IntentViolation, v.Loc(),
				fmt.Sprintf("%q is declared parameter but has no constant value", v.Name()))
			c.ver.Sink.Add(d)
			return diag.NewVerifyAbort(d)
		}
	}
	if v.Intent == asr.IntentIn && v.Storage == asr.StorageSave {
		d := diag.New(diag.IntentViolation, v.Loc(),
			fmt.Sprintf("%q has intent(in) but is also declared save; a dummy argument cannot carry save", v.Name()))
		c.ver.Sink.Add(d)
		return diag.NewVerifyAbort(d)
	}
	return nil
}
