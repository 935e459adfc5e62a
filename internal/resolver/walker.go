package resolver

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
)

// walker resolves one lexical scope's declarations and body against a
// symbol table, recursing into a fresh walker for each nested scope it
// opens. It dispatches on node type with type switches (resolveTopLevel,
// resolveDecl, lowerStmt); w.phase records the current stage but no
// dispatch reads it.
type walker struct {
	r     *Resolver
	table *asr.Table
	phase phase

	implicit *implicitDict
	deps     *asr.DependencySet // the entity currently being resolved, or nil

	genericCandidates      map[string][]*asr.Function
	operatorCandidates     map[asr.OperatorTag][]*asr.Function
	userOperatorCandidates map[string][]*asr.Function // keyed by mangled "~~op~~name"

	// templateParams holds the enclosing Template's parameter names, so
	// resolveTypeSpec can recognize a `type(T)`/`class(T)` reference to one
	// as an asr.TypeParameter rather than a derived-type lookup. Empty
	// outside a template body.
	templateParams map[string]bool
}

func newWalker(r *Resolver, table *asr.Table) *walker {
	return &walker{
		r:                      r,
		table:                  table,
		phase:                  phaseStruct,
		implicit:               defaultImplicitDict(r.Options.ImplicitTyping, r.Options.DefaultIntegerKind, r.Options.DefaultRealKind),
		genericCandidates:      make(map[string][]*asr.Function),
		operatorCandidates:     make(map[asr.OperatorTag][]*asr.Function),
		userOperatorCandidates: make(map[string][]*asr.Function),
	}
}

// child opens a new lexical scope nested in w's, inheriting the implicit
// dictionary but starting fresh generic/operator accumulators — per-scope
// registries, not inherited ones.
func (w *walker) child(table *asr.Table, deps *asr.DependencySet) *walker {
	return &walker{
		r:                      w.r,
		table:                  table,
		phase:                  phaseStruct,
		implicit:               w.implicit.clone(),
		deps:                   deps,
		genericCandidates:      make(map[string][]*asr.Function),
		operatorCandidates:     make(map[asr.OperatorTag][]*asr.Function),
		userOperatorCandidates: make(map[string][]*asr.Function),
		templateParams:         w.templateParams,
	}
}

// resolveTopLevel dispatches one top-level translation-unit item.
func (w *walker) resolveTopLevel(item ast.Statement) error {
	switch n := item.(type) {
	case *ast.ProgramDecl:
		return w.resolveProgramDecl(n)
	case *ast.ModuleDecl:
		w.r.RegisterSource(n.Name, n)
		_, err := w.resolveModuleInto(n, w.table)
		return err
	default:
		d := diag.New(diag.Internal, item.Loc(), "unexpected top-level item")
		return w.report(d)
	}
}

// resolveProgramDecl builds a Program symbol and its scope.
func (w *walker) resolveProgramDecl(n *ast.ProgramDecl) error {
	prog := asr.NewProgram(n.Loc(), n.Name)
	prog.Dependencies = asr.NewDependencySet()
	table := asr.NewTable(w.table)
	table.SetOwner(prog)
	prog.Table = table

	if err := w.table.AddSymbol(n.Name, prog); err != nil {
		d := diag.New(diag.DuplicateSymbol, n.Loc(), err.Error())
		if aerr := w.report(d); aerr != nil {
			return aerr
		}
	}

	sub := w.child(table, prog.Dependencies)
	if err := sub.resolveDeclsAndContains(n.Decls, n.Contains); err != nil {
		return err
	}
	sub.phase = phaseBody
	for _, stmt := range n.Body {
		asrStmt, err := sub.lowerStmt(stmt)
		if err != nil {
			return err
		}
		if asrStmt != nil {
			prog.Body = append(prog.Body, asrStmt)
		}
	}
	return sub.finalizeGenerics()
}

// resolveModuleInto builds a Module symbol inside outer and registers it
// there, handling the submodule virtual-parent-scope case: a submodule's
// table is parented on its ancestor module's table rather than the
// translation unit's.
func (w *walker) resolveModuleInto(n *ast.ModuleDecl, outer *asr.Table) (*asr.Module, error) {
	tableParent := outer
	if n.ParentName != "" {
		parentMod, err := w.r.Modules.Load(n.ParentName, n.Loc(), w.r)
		if err != nil {
			return nil, err
		}
		tableParent = parentMod.Table
	}

	mod := asr.NewModule(n.Loc(), n.Name)
	mod.Dependencies = asr.NewDependencySet()
	mod.ParentModule = n.ParentName
	table := asr.NewTable(tableParent)
	table.SetOwner(mod)
	mod.Table = table

	if err := outer.AddSymbol(n.Name, mod); err != nil {
		d := diag.New(diag.DuplicateSymbol, n.Loc(), err.Error())
		if aerr := w.report(d); aerr != nil {
			return nil, aerr
		}
	}

	sub := w.child(table, mod.Dependencies)
	if err := sub.resolveDeclsAndContains(n.Decls, n.Contains); err != nil {
		return nil, err
	}
	if err := sub.finalizeGenerics(); err != nil {
		return nil, err
	}

	for _, name := range table.Names() {
		if fn, ok := table.All()[name].(*asr.Function); ok && fn.Signature.Flags.ModuleProc {
			mod.HasSubmodules = true
			break
		}
	}
	if n.ParentName != "" {
		if err := w.matchSubmoduleImplementations(n.Loc(), tableParent, table); err != nil {
			return nil, err
		}
	}
	return mod, nil
}

// resolveModule is the modcache.Loader entry point: builds a module with
// no outer table of its own (a fresh root), for a `use` statement loading
// it independently of whatever translation unit originally declared it.
func (w *walker) resolveModule(n *ast.ModuleDecl) (*asr.Module, error) {
	return w.resolveModuleInto(n, w.table)
}

// resolveDeclsAndContains runs the structural phase over decls, then
// resolves each internal/module procedure in contains as its own nested
// scope.
func (w *walker) resolveDeclsAndContains(decls []ast.Statement, contains []*ast.FunctionDecl) error {
	w.phase = phaseStruct
	for _, d := range decls {
		if err := w.resolveDecl(d); err != nil {
			return err
		}
	}
	for _, fn := range contains {
		if err := w.resolveFunctionDecl(fn); err != nil {
			return err
		}
	}
	return nil
}

// resolveDecl handles one structural-phase declaration item: Declaration,
// UseStatement, ImplicitStatement, InterfaceDecl, DerivedTypeDecl,
// EnumDecl, UnionDecl, EntryDecl, TemplateDecl, RequirementDecl,
// InstantiateStatement, Pragma.
func (w *walker) resolveDecl(stmt ast.Statement) error {
	switch n := stmt.(type) {
	case *ast.Declaration:
		return w.resolveDeclaration(n)
	case *ast.UseStatement:
		return w.resolveUse(n)
	case *ast.ImplicitStatement:
		return w.resolveImplicit(n)
	case *ast.InterfaceDecl:
		return w.resolveInterface(n)
	case *ast.DerivedTypeDecl:
		return w.resolveDerivedType(n)
	case *ast.EnumDecl:
		return w.resolveEnum(n)
	case *ast.UnionDecl:
		return w.resolveUnion(n)
	case *ast.EntryDecl:
		// Entry points are collected on the enclosing FunctionDecl's Decls
		// list but only make sense once the master function exists; they
		// are rewritten in resolveFunctionDecl (see entry.go), not here.
		return nil
	case *ast.TemplateDecl:
		return w.resolveTemplateDecl(n)
	case *ast.RequirementDecl:
		return w.resolveRequirementDecl(n)
	case *ast.InstantiateStatement:
		return w.resolveInstantiate(n)
	case *ast.Pragma:
		return nil
	default:
		d := diag.New(diag.Internal, stmt.Loc(), fmt.Sprintf("unexpected declaration-phase statement %T", stmt))
		return w.report(d)
	}
}

// resolveImplicit applies an `implicit` statement to the current scope's
// implicit dictionary.
func (w *walker) resolveImplicit(n *ast.ImplicitStatement) error {
	if n.None {
		w.implicit.setNone()
		return nil
	}
	for _, spec := range n.Specs {
		ty, err := w.resolveTypeSpec(spec.Type, nil)
		if err != nil {
			return err
		}
		for _, rng := range spec.Ranges {
			w.implicit.setRange(rng[0], rng[1], ty)
		}
	}
	return nil
}
