package resolver

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
	"github.com/yuvrajsinghgmx/lfortran/internal/source"
)

// resolveUse imports a module's public symbols into the current scope:
// either everything public (bare `use modname`) or only the
// renamed/selected subset (`use modname, only: ...`).
func (w *walker) resolveUse(n *ast.UseStatement) error {
	mod, err := w.r.Modules.Load(n.ModuleName, n.Loc(), w.r)
	if err != nil {
		return err
	}
	w.recordDependency(mod.Name())

	if n.HasOnly {
		for _, rn := range n.OnlyList {
			sym, ok := mod.Table.GetSymbol(rn.OriginalName)
			if !ok {
				d := diag.New(diag.UnresolvedSymbol, n.Loc(),
					fmt.Sprintf("module %q does not export %q", n.ModuleName, rn.OriginalName))
				if aerr := w.report(d); aerr != nil {
					return aerr
				}
				continue
			}
			if err := w.importSymbol(rn.LocalName, sym, n.ModuleName, rn.OriginalName, n.Loc()); err != nil {
				return err
			}
		}
		return nil
	}

	for _, name := range mod.Table.Names() {
		sym := mod.Table.All()[name]
		if isPrivate(sym) {
			continue
		}
		if err := w.importSymbol(sym.Name(), sym, n.ModuleName, sym.Name(), n.Loc()); err != nil {
			return err
		}
	}
	return nil
}

func isPrivate(sym asr.Symbol) bool {
	switch s := sym.(type) {
	case *asr.Variable:
		return s.Access == asr.Private
	case *asr.Function:
		return s.Access == asr.Private
	case *asr.GenericProcedure:
		return s.Access == asr.Private
	case *asr.CustomOperator:
		return s.Access == asr.Private
	}
	return false
}

// importSymbol binds real (reached through at most one ExternalSymbol hop)
// under localName in the current scope. A GenericProcedure or
// CustomOperator already bound locally under the same name is merged with
// the incoming one via a FIFO worklist to a fixed point, rather than being
// shadowed — two `use`s contributing overloads of the same name combine
// instead of one hiding the other. Any other name collision is the
// use-and-shadow case: the later import wins, with a Warning recorded
// rather than an Error.
func (w *walker) importSymbol(localName string, real asr.Symbol, moduleName, originalName string, loc source.Location) error {
	real = asr.GetPastExternal(real)

	if existing, ok := w.table.GetSymbol(localName); ok {
		if merged := w.tryMergeOverloadSet(existing, real); merged {
			return nil
		}
		d := diag.NewWarning(diag.DuplicateSymbol, loc,
			fmt.Sprintf("%q imported from module %q shadows an existing declaration", localName, moduleName))
		w.r.Sink.Add(d)
		w.table.AddSymbolOverwrite(localName, w.wrapImport(localName, real, moduleName, originalName, loc))
		return nil
	}
	return w.table.AddSymbol(localName, w.wrapImport(localName, real, moduleName, originalName, loc))
}

// tryMergeOverloadSet merges real's procedure list into existing in place,
// deduplicating by name, when both are overload-set symbols of the same
// kind (and, for operators, the same tag). Returns false when no merge
// applies, so the caller falls through to ordinary shadow-import handling.
func (w *walker) tryMergeOverloadSet(existing, real asr.Symbol) bool {
	switch ex := existing.(type) {
	case *asr.GenericProcedure:
		in, ok := real.(*asr.GenericProcedure)
		if !ok {
			return false
		}
		mergeProcedures(&ex.Procedures, in.Procedures)
		return true
	case *asr.CustomOperator:
		in, ok := real.(*asr.CustomOperator)
		if !ok || in.Tag != ex.Tag {
			return false
		}
		mergeProcedures(&ex.Procedures, in.Procedures)
		return true
	}
	return false
}

// mergeProcedures appends every procedure in incoming not already present
// in *dst (by name), processing incoming as a FIFO worklist so a later
// duplicate contributed by a third `use` converges rather than growing the
// list without bound.
func mergeProcedures(dst *[]*asr.Function, incoming []*asr.Function) {
	seen := make(map[string]bool, len(*dst))
	for _, f := range *dst {
		seen[asr.CanonicalName(f.Name())] = true
	}
	worklist := append([]*asr.Function(nil), incoming...)
	for len(worklist) > 0 {
		f := worklist[0]
		worklist = worklist[1:]
		key := asr.CanonicalName(f.Name())
		if seen[key] {
			continue
		}
		seen[key] = true
		*dst = append(*dst, f)
	}
}

// wrapImport builds the local binding for an imported symbol: a fresh
// local copy (sharing the Procedures slice) for an overload-set symbol, so
// later merges in this scope never mutate the exporting module's own
// symbol, and an ExternalSymbol indirection otherwise.
func (w *walker) wrapImport(localName string, real asr.Symbol, moduleName, originalName string, loc source.Location) asr.Symbol {
	switch r := real.(type) {
	case *asr.GenericProcedure:
		g := asr.NewGenericProcedure(loc, localName)
		g.ParentTable = w.table
		g.Procedures = append([]*asr.Function(nil), r.Procedures...)
		g.Access = asr.Public
		return g
	case *asr.CustomOperator:
		o := asr.NewCustomOperator(loc, localName)
		o.ParentTable = w.table
		o.Tag = r.Tag
		o.Procedures = append([]*asr.Function(nil), r.Procedures...)
		o.Access = asr.Public
		return o
	default:
		ext := asr.NewExternalSymbol(loc, localName)
		ext.ParentTable = w.table
		ext.External = real
		ext.ModuleName = moduleName
		ext.OriginalName = originalName
		return ext
	}
}
