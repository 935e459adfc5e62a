package resolver

import "github.com/yuvrajsinghgmx/lfortran/internal/diag"

// report records d on the resolver's sink and, unless ContinueOnError is
// set, raises it as a SemanticAbort. Under continue-on-error the caller
// gets a nil error back and is expected to keep walking past the faulty
// declaration.
func (w *walker) report(d *diag.Diagnostic) error {
	w.r.Sink.Add(d)
	if d.Severity != diag.SeverityError {
		return nil
	}
	if w.r.Options.ContinueOnError {
		return nil
	}
	return diag.NewSemanticAbort(d)
}
