package verifier

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
)

// recordedDependencies returns the DependencySet the Resolver attached to
// sym, if any.
func recordedDependencies(sym asr.Symbol) *asr.DependencySet {
	switch s := sym.(type) {
	case *asr.Program:
		return s.Dependencies
	case *asr.Module:
		return s.Dependencies
	case *asr.Function:
		return s.Dependencies
	case *asr.Struct:
		return s.Dependencies
	case *asr.Variable:
		return s.Dependencies
	}
	return nil
}

// checkDependencies re-checks that every name a symbol's own
// declaration-phase expressions or executable body reference must appear
// in its recorded dependency set: exprsOf covers initializers, bounds, and
// signatures; extraDependencyNames covers a Program/Function's body and a
// Module's own `use` imports, the two sources recordDependency populates
// that have no Expr of their own to walk.
func (c *ctx) checkDependencies(t *asr.Table, sym asr.Symbol) error {
	deps := recordedDependencies(sym)
	if deps == nil {
		return nil
	}
	observed := asr.NewDependencySet()
	for _, e := range exprsOf(sym) {
		for _, ref := range collectVarRefs(e) {
			observed.Add(asr.CanonicalName(asr.GetPastExternal(ref.Target).Name()))
		}
	}
	for _, name := range extraDependencyNames(sym) {
		observed.Add(name)
	}
	for _, name := range observed.Names() {
		if !deps.Has(name) {
			d := diag.New(diag.DependencyDrift, sym.Loc(),
				fmt.Sprintf("%q references %q but does not record it as a dependency",
					sym.Name(), name))
			c.ver.Sink.Add(d)
			return diag.NewVerifyAbort(d)
		}
	}
	return nil
}

// extraDependencyNames returns the canonical names recordDependency folds
// into sym's own DependencySet that no Expr carries: a Program or
// Function's executable body (walked via bodyDependencyNames, resolved
// against sym's own table), and a Module's direct `use` imports (each
// ExternalSymbol bound straight into the module's own table names the
// module it came from).
func extraDependencyNames(sym asr.Symbol) []string {
	switch s := sym.(type) {
	case *asr.Program:
		return bodyDependencyNames(s.Table, s.Body)
	case *asr.Function:
		return bodyDependencyNames(s.Table, s.Body)
	case *asr.Module:
		var out []string
		for _, name := range s.Table.Names() {
			if ext, ok := s.Table.All()[name].(*asr.ExternalSymbol); ok {
				out = append(out, asr.CanonicalName(ext.ModuleName))
			}
		}
		return out
	}
	return nil
}

// bodyDependencyNames re-derives the names a Program/Function's body
// references by type-asserting each OpaqueStmt's carried syntax, the same
// way checkSelectCase recovers select/case structure from otherwise
// unevaluated body statements — the statement-body pass itself stays out
// of scope, so only the shallow identifier walk recordExprDeps already
// performed during lowering is repeated here, against scope (the body's
// own table) rather than re-resolving from wherever the body happens to
// be nested.
func bodyDependencyNames(scope *asr.Table, body []asr.Stmt) []string {
	var names []string
	for _, stmt := range body {
		opaque, ok := stmt.(*asr.OpaqueStmt)
		if !ok {
			continue
		}
		switch n := opaque.Syntax.(type) {
		case *ast.Assignment:
			names = append(names, identifierNames(scope, n.Lhs)...)
			names = append(names, identifierNames(scope, n.Rhs)...)
		case *ast.SubroutineCallStatement:
			names = append(names, identifierNames(scope, n.Callee)...)
			for _, a := range n.Args {
				names = append(names, identifierNames(scope, a.Value)...)
			}
		case *ast.SelectCaseStatement:
			names = append(names, identifierNames(scope, n.Selector)...)
		}
	}
	return names
}

// identifierNames resolves every Identifier reachable from e (through
// BinaryExpr/UnaryExpr/CallExpr/MemberExpr) against scope, mirroring
// resolver.recordExprDeps' shallow walk.
func identifierNames(scope *asr.Table, e ast.Expression) []string {
	if e == nil {
		return nil
	}
	var out []string
	switch ex := e.(type) {
	case *ast.Identifier:
		if sym, _, ok := scope.ResolveSymbol(ex.Name); ok {
			out = append(out, asr.CanonicalName(asr.GetPastExternal(sym).Name()))
		}
	case *ast.BinaryExpr:
		out = append(out, identifierNames(scope, ex.Left)...)
		out = append(out, identifierNames(scope, ex.Right)...)
	case *ast.UnaryExpr:
		out = append(out, identifierNames(scope, ex.Operand)...)
	case *ast.CallExpr:
		out = append(out, identifierNames(scope, ex.Callee)...)
		for _, a := range ex.Args {
			out = append(out, identifierNames(scope, a.Value)...)
		}
	case *ast.MemberExpr:
		out = append(out, identifierNames(scope, ex.Base)...)
	}
	return out
}
