package resolver

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
)

// resolveInterface resolves one `interface` block's procedure signatures
// and files them as candidates for the named generic, intrinsic-operator,
// assignment, or user-defined-operator overload set it contributes to; the
// actual GenericProcedure/CustomOperator symbol is assembled later, at
// scope finalization, by finalizeGenerics.
func (w *walker) resolveInterface(n *ast.InterfaceDecl) error {
	candidates := make([]*asr.Function, 0, len(n.Procedures))
	for _, fd := range n.Procedures {
		fn, err := w.resolveInterfaceProcedure(fd)
		if err != nil {
			return err
		}
		candidates = append(candidates, fn)
	}

	switch {
	case n.IsAssign:
		w.operatorCandidates[asr.OpAssign] = append(w.operatorCandidates[asr.OpAssign], candidates...)
	case n.Operator != "":
		tag, mangled := operatorTagFor(n.Operator)
		if tag != "" {
			w.operatorCandidates[tag] = append(w.operatorCandidates[tag], candidates...)
		} else {
			w.userOperatorCandidates[mangled] = append(w.userOperatorCandidates[mangled], candidates...)
		}
	case n.Name != "":
		key := asr.CanonicalName(n.Name)
		w.genericCandidates[key] = append(w.genericCandidates[key], candidates...)
	default:
		// An unnamed, non-operator interface block declares abstract
		// procedure shapes directly; a `module subroutine`/`module
		// function` among them is a forward declaration the owning
		// module expects some submodule to implement later, and is bound
		// under its own name so matchSubmoduleImplementations can find it
		// there. Anything else in an unnamed block (a plain abstract
		// interface) contributes no overload set and is left unbound.
		for _, fn := range candidates {
			if !fn.Signature.Flags.ModuleProc {
				continue
			}
			if err := w.table.AddSymbol(fn.Name(), fn); err != nil {
				d := diag.New(diag.DuplicateSymbol, fn.Loc(), err.Error())
				if aerr := w.report(d); aerr != nil {
					return aerr
				}
			}
		}
	}
	return nil
}

// operatorTagFor maps an `interface operator(...)` spelling to the
// intrinsic OperatorTag it extends, or to the empty tag plus the mangled
// "~~op~~name" symbol name for a user-defined operator.
func operatorTagFor(op string) (asr.OperatorTag, string) {
	switch op {
	case "+":
		return asr.OpAdd, "~~op~~+"
	case "-":
		return asr.OpSub, "~~op~~-"
	case "*":
		return asr.OpMul, "~~op~~*"
	case "/":
		return asr.OpDiv, "~~op~~/"
	case "==":
		return asr.OpEq, "~~op~~=="
	default:
		return "", "~~op~~" + op
	}
}

// resolveInterfaceProcedure builds a Function value for one signature
// listed inside an interface block. These never occupy a name in the
// enclosing table themselves (the module procedure they name is declared,
// and bound to that name, separately in a `contains` block); they exist
// only to be merged into an overload set by name.
func (w *walker) resolveInterfaceProcedure(fd *ast.FunctionDecl) (*asr.Function, error) {
	fn := asr.NewFunction(fd.Loc(), fd.Name)
	fn.Dependencies = asr.NewDependencySet()
	fn.Access = asr.Public
	fn.DefKind = asr.DefKindInterface
	if fd.Attrs.Module {
		fn.DefKind = asr.DefKindModuleProcedure
	}
	fn.Signature.Flags = asr.FuncFlags{
		Pure:        fd.Attrs.Pure,
		Elemental:   fd.Attrs.Elemental,
		ModuleProc:  fd.Attrs.Module,
		IsInterface: true,
	}

	table := asr.NewTable(w.table)
	table.SetOwner(fn)
	fn.Table = table

	sub := w.child(table, fn.Dependencies)
	if err := sub.resolveDeclsAndContains(fd.Decls, nil); err != nil {
		return nil, err
	}
	if err := sub.bindSignature(fd.Loc(), fn, fd.Args, fd.IsFunction, fd.Result, fd.Name); err != nil {
		return nil, err
	}
	return fn, nil
}

// finalizeGenerics assembles every accumulated overload-set candidate list
// into a GenericProcedure or CustomOperator symbol and installs it in the
// current table, merging with any same-named set already bound there (for
// instance one contributed earlier by a `use`).
// Called once a scope's declarations and body have both been resolved, so
// every interface block in the scope has had a chance to contribute.
func (w *walker) finalizeGenerics() error {
	for name, procs := range w.genericCandidates {
		if len(procs) == 0 {
			continue
		}
		g := asr.NewGenericProcedure(procs[0].Loc(), name)
		g.ParentTable = w.table
		g.Procedures = procs
		g.Access = asr.Public
		if err := w.installOverloadSet(name, g); err != nil {
			return err
		}
	}
	for tag, procs := range w.operatorCandidates {
		if len(procs) == 0 {
			continue
		}
		name := "~~op~~" + string(tag)
		o := asr.NewCustomOperator(procs[0].Loc(), name)
		o.ParentTable = w.table
		o.Tag = tag
		o.Procedures = procs
		o.Access = asr.Public
		if err := w.installOverloadSet(name, o); err != nil {
			return err
		}
	}
	for name, procs := range w.userOperatorCandidates {
		if len(procs) == 0 {
			continue
		}
		o := asr.NewCustomOperator(procs[0].Loc(), name)
		o.ParentTable = w.table
		o.Procedures = procs
		o.Access = asr.Public
		if err := w.installOverloadSet(name, o); err != nil {
			return err
		}
	}
	return nil
}

// installOverloadSet binds sym under name, merging into whatever overload
// set is already bound there (per tryMergeOverloadSet, defined in use.go)
// rather than overwriting it outright.
func (w *walker) installOverloadSet(name string, sym asr.Symbol) error {
	if existing, ok := w.table.GetSymbol(name); ok {
		if w.tryMergeOverloadSet(existing, sym) {
			return nil
		}
		d := diag.New(diag.DuplicateSymbol, sym.Loc(),
			fmt.Sprintf("%q names both an overload set and an unrelated declaration", name))
		return w.report(d)
	}
	return w.table.AddSymbol(name, sym)
}
