package diag

// Abort is the payload carried by the Resolver's and Verifier's unwind
// signals: SemanticAbort and VerifyAbort are local unwind signals used to
// pop out of arbitrarily deep visitor recursion. It wraps the Diagnostic
// that triggered the unwind so the caller can report it without
// re-deriving what went wrong.
type Abort struct {
	Diagnostic *Diagnostic
}

func (a *Abort) Error() string {
	return a.Diagnostic.Error()
}

// NewSemanticAbort is raised by the Resolver when continue-on-error is off.
func NewSemanticAbort(d *Diagnostic) *Abort {
	return &Abort{Diagnostic: d}
}

// NewVerifyAbort is raised by the Verifier on the first Error-severity
// finding; the Verifier never continues past a violation regardless of the
// continue-on-error option (that option only governs the Resolver).
func NewVerifyAbort(d *Diagnostic) *Abort {
	return &Abort{Diagnostic: d}
}
