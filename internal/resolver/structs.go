package resolver

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
)

// resolveDerivedType builds a Struct symbol: its data members, in
// declaration order, plus its type-bound procedures, each resolved against
// the already-declared module procedure it binds to.
func (w *walker) resolveDerivedType(n *ast.DerivedTypeDecl) error {
	var parent *asr.Struct
	if n.Extends != "" {
		sym, ok := w.table.GetSymbol(n.Extends)
		if !ok {
			d := diag.New(diag.UnresolvedSymbol, n.Loc(),
				fmt.Sprintf("parent type %q is not visible from this scope", n.Extends))
			if err := w.report(d); err != nil {
				return err
			}
		} else if st, ok := asr.GetPastExternal(sym).(*asr.Struct); ok {
			parent = st
			w.recordDependency(st.Name())
		} else {
			d := diag.New(diag.TypeShape, n.Loc(), fmt.Sprintf("%q does not name a derived type", n.Extends))
			if err := w.report(d); err != nil {
				return err
			}
		}
	}

	st := asr.NewStruct(n.Loc(), n.Name)
	st.Dependencies = asr.NewDependencySet()
	st.Abstract = n.Abstract
	st.Parent = parent

	table := asr.NewTable(w.table)
	table.SetOwner(st)
	st.Table = table

	if err := w.table.AddSymbol(n.Name, st); err != nil {
		d := diag.New(diag.DuplicateSymbol, n.Loc(), err.Error())
		if aerr := w.report(d); aerr != nil {
			return aerr
		}
	}

	sub := w.child(table, st.Dependencies)
	for _, member := range n.Members {
		if err := sub.resolveDeclaration(member); err != nil {
			return err
		}
		for _, d := range member.Declarators {
			st.Members = append(st.Members, d.Name)
		}
	}

	for _, tbp := range n.Procedures {
		if err := w.resolveTypeBoundProcedure(st, table, tbp); err != nil {
			return err
		}
	}
	return nil
}

// resolveTypeBoundProcedure binds one `procedure` clause of a derived
// type's `contains` block to the already-resolved module procedure it
// names, and registers a StructMethodDeclaration for it in the struct's
// own table: a type-bound binding always lives in the owning Struct's own
// table, never in the module scope.
func (w *walker) resolveTypeBoundProcedure(owner *asr.Struct, ownerTable *asr.Table, tbp ast.TypeBoundProcedure) error {
	bind := asr.NewStructMethodDeclaration(owner.Loc(), tbp.Name)
	bind.ParentTable = ownerTable
	bind.ProcName = tbp.Binds
	bind.SelfArgument = tbp.Pass
	bind.Deferred = tbp.Deferred
	bind.NoPass = tbp.NoPass

	if !tbp.Deferred {
		sym, _, ok := w.table.ResolveSymbol(tbp.Binds)
		if !ok {
			d := diag.New(diag.UnresolvedSymbol, owner.Loc(),
				fmt.Sprintf("type-bound procedure %q binds to undeclared %q", tbp.Name, tbp.Binds))
			if err := w.report(d); err != nil {
				return err
			}
		} else if fn, ok := asr.GetPastExternal(sym).(*asr.Function); ok {
			bind.Procedure = fn
		} else {
			d := diag.New(diag.TypeShape, owner.Loc(), fmt.Sprintf("%q does not name a procedure", tbp.Binds))
			if err := w.report(d); err != nil {
				return err
			}
		}
	}

	if err := ownerTable.AddSymbol(tbp.Name, bind); err != nil {
		d := diag.New(diag.DuplicateSymbol, owner.Loc(), err.Error())
		return w.report(d)
	}
	return nil
}

// structTypeOf unwraps Pointer/Allocatable/Array to find the Struct a type
// ultimately names, or nil when ty is not struct-shaped.
func structTypeOf(ty asr.Type) *asr.Struct {
	switch t := ty.(type) {
	case asr.StructType:
		return t.Ref
	case asr.Pointer:
		return structTypeOf(t.Of)
	case asr.Allocatable:
		return structTypeOf(t.Of)
	case asr.Array:
		return structTypeOf(t.Element)
	}
	return nil
}

// resolveMember looks up member on st's own table, walking the inheritance
// chain outward from st: the nearest ancestor that binds the name wins, so
// an override in a subtype's own table is found before its parent's table
// is ever consulted.
func resolveMember(st *asr.Struct, member string) (*asr.Struct, asr.Symbol, bool) {
	for cur := st; cur != nil; cur = cur.Parent {
		if sym, ok := cur.Table.GetSymbol(member); ok {
			return cur, sym, true
		}
	}
	return nil, nil, false
}
