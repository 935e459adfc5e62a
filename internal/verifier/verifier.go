// Package verifier implements the ASR Verifier: a read-only, post-order
// pass over an already-built ASR re-checking the invariants the Resolver
// is supposed to have already established. It never mutates the tree it
// walks.
package verifier

import (
	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
)

// Verifier re-checks an ASR tree's structural invariants.
//
// CheckExternal selects pre-link vs. post-link mode: before a driver has
// loaded every module an ExternalSymbol names, its target may legitimately
// be unresolved; CheckExternal=true additionally requires every
// ExternalSymbol to resolve via FindScoped.
type Verifier struct {
	CheckExternal bool

	Sink *diag.Sink
}

// New returns a Verifier in pre-link mode with a fresh diagnostic sink.
func New() *Verifier {
	return &Verifier{Sink: diag.NewSink()}
}

// Verify walks tu post-order, returning the first Error-severity finding as
// a *diag.Abort: the Verifier never continues past a violation, regardless
// of the continue-on-error option. Warnings are recorded on Sink but do
// not stop the walk.
func (ver *Verifier) Verify(tu *asr.TranslationUnit) error {
	if ver.Sink == nil {
		ver.Sink = diag.NewSink()
	}
	c := &ctx{ver: ver}
	for _, item := range tu.Items {
		if err := c.verifyStmt(tu.Table, item); err != nil {
			return err
		}
	}
	return c.verifyTable(tu.Table)
}

// ctx carries the sink and mode through the recursive walk; it exists so
// individual check files (scope.go, reference.go, ...) can be methods on it
// without each repeating the Verifier's fields.
type ctx struct {
	ver *Verifier
}

// verifyTable walks every symbol bound in t (and, transitively, every table
// a symbol owns), applying every per-symbol check to a symbol after its own
// body and nested table have been checked. It returns on the first
// Error-severity finding.
func (c *ctx) verifyTable(t *asr.Table) error {
	for _, name := range t.Names() {
		sym := t.All()[name]
		if nested, ok := ownTable(sym); ok {
			if err := c.verifyBodyOf(nested, sym); err != nil {
				return err
			}
			if err := c.verifyTable(nested); err != nil {
				return err
			}
		}

		if err := c.checkScope(t, name, sym); err != nil {
			return err
		}
		if err := c.checkReferences(t, sym); err != nil {
			return err
		}
		if err := c.checkExternalSymbol(t, sym); err != nil {
			return err
		}
		if err := c.checkDependencies(t, sym); err != nil {
			return err
		}
		if err := c.checkTypeShape(t, sym); err != nil {
			return err
		}
		if err := c.checkCallsite(t, sym); err != nil {
			return err
		}
		if err := c.checkAssignment(t, sym); err != nil {
			return err
		}
	}
	return nil
}

// verifyBodyOf walks the statement list of a symbol that owns one (Program,
// Function, AssociateBlock, Block), applying statement-shaped checks
// (currently just select/case fall-through); verifyTable calls it before
// descending into the symbol's table.
func (c *ctx) verifyBodyOf(scope *asr.Table, sym asr.Symbol) error {
	var body []asr.Stmt
	switch s := sym.(type) {
	case *asr.Program:
		body = s.Body
	case *asr.Function:
		body = s.Body
	case *asr.AssociateBlock:
		body = s.Body
	case *asr.Block:
		body = s.Body
	}
	for _, stmt := range body {
		if err := c.verifyStmt(scope, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (c *ctx) verifyStmt(scope *asr.Table, stmt asr.Stmt) error {
	if err := c.checkSelectCase(scope, stmt); err != nil {
		return err
	}
	return nil
}

// ownTable is the same owning-table lookup asr.FindScoped uses internally,
// re-exposed here so the Verifier can recurse without depending on an
// unexported helper.
func ownTable(sym asr.Symbol) (*asr.Table, bool) {
	switch s := sym.(type) {
	case *asr.Module:
		return s.Table, true
	case *asr.Program:
		return s.Table, true
	case *asr.Function:
		return s.Table, true
	case *asr.Struct:
		return s.Table, true
	case *asr.Enum:
		return s.Table, true
	case *asr.Union:
		return s.Table, true
	case *asr.AssociateBlock:
		return s.Table, true
	case *asr.Block:
		return s.Table, true
	case *asr.Requirement:
		return s.Table, true
	case *asr.Template:
		return s.Table, true
	}
	return nil, false
}
