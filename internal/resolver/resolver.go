// Package resolver implements the Declaration Resolver: a mutating visitor
// that builds symbol tables and ASR symbols from a syntactic tree, in
// dependency order, with continue-on-error semantics governed by
// internal/config.Options.
package resolver

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/config"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
	"github.com/yuvrajsinghgmx/lfortran/internal/modcache"
	"github.com/yuvrajsinghgmx/lfortran/internal/source"
)

// phase is the resolver's per-scope analysis stage. A walker sets it to
// phaseStruct or phaseBody as it goes; nothing assigns
// phaseFinalizeGenerics, and no dispatch branches on the value.
type phase int

const (
	phaseStruct phase = iota
	phaseBody
	phaseFinalizeGenerics
)

// Resolver drives declaration-phase name resolution over a syntactic tree.
// sources holds the syntactic definition of every module a driver has made
// available for `use` statements to load: the module loader collaborator
// resolves a name to a syntactic tree on demand.
type Resolver struct {
	Options config.Options
	Modules *modcache.Cache
	Sink    *diag.Sink

	sources     map[string]*ast.ModuleDecl
	cBoundNames map[string]string
	anonSeq     int
}

// nextAnonName mints a unique, unwritable-by-any-Fortran-source name for a
// compiler-introduced scope (an unnamed BLOCK/ASSOCIATE construct), using
// `$` as a prefix character no Fortran identifier can start with.
func (r *Resolver) nextAnonName(kind string) string {
	r.anonSeq++
	return fmt.Sprintf("$%s%d", kind, r.anonSeq)
}

// New returns a Resolver with the given options, a fresh module cache and
// diagnostic sink.
func New(opts config.Options) *Resolver {
	return &Resolver{
		Options: opts,
		Modules: modcache.New(),
		Sink:    diag.NewSink(),
		sources: make(map[string]*ast.ModuleDecl),
	}
}

// RegisterSource makes a module's syntactic definition available to later
// `use` statements.
func (r *Resolver) RegisterSource(name string, decl *ast.ModuleDecl) {
	r.sources[asr.CanonicalName(name)] = decl
}

// LoadModule implements modcache.Loader by resolving the named module's
// registered syntactic tree into ASR. It is invoked at most once per
// module name per compilation: modcache.Cache serializes concurrent and
// repeat requests around this call.
func (r *Resolver) LoadModule(name string) (*asr.Module, error) {
	src, ok := r.sources[asr.CanonicalName(name)]
	if !ok {
		return nil, diag.NewSemanticAbort(diag.New(diag.UnresolvedSymbol, source.None,
			"module "+name+" has no registered source and cannot be loaded"))
	}
	w := newWalker(r, asr.NewTable(nil))
	return w.resolveModule(src)
}

// Resolve builds a TranslationUnit's ASR from its syntactic tree.
func (r *Resolver) Resolve(tu *ast.TranslationUnit) (*asr.TranslationUnit, error) {
	asr.ResetCounterSeq()
	root := asr.NewTable(nil)
	out := &asr.TranslationUnit{Table: root}
	w := newWalker(r, root)
	for _, item := range tu.Items {
		if err := w.resolveTopLevel(item); err != nil {
			return out, err
		}
	}
	return out, nil
}
