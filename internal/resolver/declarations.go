package resolver

import (
	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
)

// resolveDeclaration builds one Variable symbol per declarator in a type
// declaration statement, including the save/parameter/bind(c) rules.
func (w *walker) resolveDeclaration(n *ast.Declaration) error {
	for _, d := range n.Declarators {
		dims := d.Dimension
		if len(dims) == 0 {
			dims = n.Attrs.Dimension
		}
		ty, err := w.resolveTypeSpec(n.Type, dims)
		if err != nil {
			return err
		}

		v := asr.NewVariable(n.Loc(), d.Name)
		v.ParentTable = w.table
		v.Type = ty
		v.Access = asr.Public
		v.Presence = asr.Required
		if n.Attrs.Optional {
			v.Presence = asr.Optional
		}
		v.Dependencies = asr.NewDependencySet()

		switch n.Attrs.Intent {
		case "in":
			v.Intent = asr.IntentIn
		case "out":
			v.Intent = asr.IntentOut
		case "inout":
			v.Intent = asr.IntentInOut
		default:
			v.Intent = asr.IntentLocal
		}

		// save/parameter combination rule: a module/block-data-scope
		// variable defaults to implicit save even without an explicit
		// `save` attribute.
		switch {
		case n.Attrs.Parameter:
			v.Storage = asr.StorageParameter
		case n.Attrs.Save:
			v.Storage = asr.StorageSave
		case w.isModuleScope():
			v.Storage = asr.StorageSave
		default:
			v.Storage = asr.StorageDefault
		}

		if n.Attrs.Pointer {
			ty = asr.Pointer{Of: ty}
		}
		if n.Attrs.Allocatable {
			ty = asr.Allocatable{Of: ty}
		}
		v.Type = ty

		if d.Initializer != nil {
			sub := w.withDeps(v.Dependencies)
			v.Initializer = sub.lowerExpr(d.Initializer)
			if v.Storage == asr.StorageParameter {
				v.Value = v.Initializer
			}
		}

		if n.Attrs.Bind != nil && n.Attrs.Bind.IsC {
			name := bindingName(d.Name, n.Attrs.Bind)
			if err := w.checkCBindingUnique(n.Loc(), name, d.Name); err != nil {
				return err
			}
		}

		if existing, ok := w.table.GetSymbol(d.Name); ok {
			if _, isImport := existing.(*asr.ExternalSymbol); isImport {
				// A local declaration of a name already brought in by `use`
				// hides the import rather than conflicting with it.
				warn := diag.NewWarning(diag.DuplicateSymbol, n.Loc(),
					"declaration of \""+d.Name+"\" shadows a name imported by use")
				w.r.Sink.Add(warn)
				w.table.AddSymbolOverwrite(d.Name, v)
				continue
			}
			diagErr := diag.New(diag.DuplicateSymbol, n.Loc(), "\""+d.Name+"\" is already declared in this scope")
			if aerr := w.report(diagErr); aerr != nil {
				return aerr
			}
			continue
		}
		if err := w.table.AddSymbol(d.Name, v); err != nil {
			diagErr := diag.New(diag.DuplicateSymbol, n.Loc(), err.Error())
			if aerr := w.report(diagErr); aerr != nil {
				return aerr
			}
		}
	}
	return nil
}

// isModuleScope reports whether the scope currently being resolved is
// directly owned by a Module (as opposed to a Program/Function/Block).
func (w *walker) isModuleScope() bool {
	_, ok := w.table.Owner().(*asr.Module)
	return ok
}

// withDeps returns a shallow copy of w with its dependency accumulator
// replaced, for lowering an expression that belongs to a specific Variable
// rather than the enclosing entity (e.g. an initializer's own dependency
// set, separate from the declaring scope's).
func (w *walker) withDeps(deps *asr.DependencySet) *walker {
	cp := *w
	cp.deps = deps
	return &cp
}
