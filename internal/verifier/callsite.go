package verifier

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
)

// checkCallsite re-checks the function-signature arity rule and the
// struct-method pass-argument rule ("class procedure"): every argument a
// FunctionType declares must have a corresponding formal Variable, and a
// non-NoPass, non-Deferred struct method's pass-object argument must
// actually be one of its bound procedure's dummy arguments, of the owning
// struct's type.
func (c *ctx) checkCallsite(t *asr.Table, sym asr.Symbol) error {
	switch s := sym.(type) {
	case *asr.Function:
		if len(s.Args) != len(s.Signature.ArgTypes) {
			d := diag.New(diag.ArityMismatch, s.Loc(),
				fmt.Sprintf("function %q declares %d argument type(s) but has %d formal argument(s)",
					s.Name(), len(s.Signature.ArgTypes), len(s.Args)))
			c.ver.Sink.Add(d)
			return diag.NewVerifyAbort(d)
		}
		if s.ReturnVar == nil && s.Signature.ReturnType != nil {
			d := diag.New(diag.ArityMismatch, s.Loc(),
				fmt.Sprintf("function %q declares a return type but has no result variable", s.Name()))
			c.ver.Sink.Add(d)
			return diag.NewVerifyAbort(d)
		}
	case *asr.StructMethodDeclaration:
		if s.Deferred || s.NoPass {
			return nil
		}
		owner, ok := t.Owner().(*asr.Struct)
		if !ok {
			return nil
		}
		selfName := s.SelfArgument
		if selfName == "" && len(s.Procedure.Args) > 0 {
			if v, ok := s.Procedure.Args[0].(*asr.VarRef); ok {
				selfName = v.Target.Name()
			}
		}
		var self *asr.Variable
		for _, a := range s.Procedure.Args {
			ref, ok := a.(*asr.VarRef)
			if !ok {
				continue
			}
			v, ok := ref.Target.(*asr.Variable)
			if ok && asr.CanonicalName(v.Name()) == asr.CanonicalName(selfName) {
				self = v
				break
			}
		}
		if self == nil {
			d := diag.New(diag.ArityMismatch, s.Loc(),
				fmt.Sprintf("struct method %q has no pass-object dummy argument matching %q",
					s.Name(), selfName))
			c.ver.Sink.Add(d)
			return diag.NewVerifyAbort(d)
		}
		if st, ok := self.Type.(asr.StructType); !ok || st.Ref != owner {
			d := diag.New(diag.IntentViolation, s.Loc(),
				fmt.Sprintf("struct method %q's pass-object argument %q is not of type %q",
					s.Name(), selfName, owner.Name()))
			c.ver.Sink.Add(d)
			return diag.NewVerifyAbort(d)
		}
	}
	return nil
}
