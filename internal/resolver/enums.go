package resolver

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
)

// resolveEnum builds an Enum symbol: one Parameter-storage Variable per
// enumerator, each holding the constant value Fortran's `enum, bind(c)`
// rule assigns it (an explicit value, or the previous enumerator's value
// plus one, or zero for the first), and a Classification summarizing the
// resulting value set the way resolveDerivedType summarizes a type's
// members.
func (w *walker) resolveEnum(n *ast.EnumDecl) error {
	underlying := n.Underlying
	if underlying.Keyword == "" {
		underlying.Keyword = "integer"
	}
	ty, err := w.resolveTypeSpec(underlying, nil)
	if err != nil {
		return err
	}

	en := asr.NewEnum(n.Loc(), n.Name)
	en.Underlying = ty
	if _, ok := ty.(asr.Integer); !ok {
		en.Classification = asr.EnumNonInteger
	}

	table := asr.NewTable(w.table)
	table.SetOwner(en)
	en.Table = table

	if err := w.table.AddSymbol(n.Name, en); err != nil {
		d := diag.New(diag.DuplicateSymbol, n.Loc(), err.Error())
		if aerr := w.report(d); aerr != nil {
			return aerr
		}
	}

	sub := w.child(table, asr.NewDependencySet())
	seen := make(map[int64]bool, len(n.Enumerators))
	consecutiveFromZero := true
	next := int64(0)
	for i, spec := range n.Enumerators {
		value := next
		var valueExpr asr.Expr
		if spec.Value != nil {
			valueExpr = sub.lowerExpr(spec.Value)
			v, ok := foldInt(valueExpr)
			if !ok {
				d := diag.New(diag.TypeShape, n.Loc(),
					fmt.Sprintf("enumerator %q's value does not fold to a compile-time integer constant", spec.Name))
				if err := w.report(d); err != nil {
					return err
				}
			} else {
				value = v
			}
		} else {
			valueExpr = asr.NewIntConst(n.Loc(), value)
		}

		if value != int64(i) {
			consecutiveFromZero = false
		}
		if seen[value] {
			en.Classification = asr.EnumNotUnique
		}
		seen[value] = true

		ev := asr.NewVariable(n.Loc(), spec.Name)
		ev.ParentTable = table
		ev.Type = ty
		ev.Access = asr.Public
		ev.Presence = asr.Required
		ev.Storage = asr.StorageParameter
		ev.Intent = asr.IntentLocal
		ev.Value = valueExpr
		ev.Initializer = valueExpr
		ev.Dependencies = asr.NewDependencySet()

		if err := table.AddSymbol(spec.Name, ev); err != nil {
			d := diag.New(diag.DuplicateSymbol, n.Loc(), err.Error())
			if aerr := w.report(d); aerr != nil {
				return aerr
			}
		}
		en.Members = append(en.Members, spec.Name)
		next = value + 1
	}

	if en.Classification == asr.EnumConsecutiveFromZero && !consecutiveFromZero {
		en.Classification = asr.EnumUnique
	}
	return nil
}

// resolveUnion builds a Union symbol from its member list, the same
// overlapping-storage shape a derived type's own member list has, minus
// inheritance and type-bound procedures.
func (w *walker) resolveUnion(n *ast.UnionDecl) error {
	un := asr.NewUnion(n.Loc(), n.Name)

	table := asr.NewTable(w.table)
	table.SetOwner(un)
	un.Table = table

	if err := w.table.AddSymbol(n.Name, un); err != nil {
		d := diag.New(diag.DuplicateSymbol, n.Loc(), err.Error())
		if aerr := w.report(d); aerr != nil {
			return aerr
		}
	}

	sub := w.child(table, asr.NewDependencySet())
	for _, member := range n.Members {
		if err := sub.resolveDeclaration(member); err != nil {
			return err
		}
		for _, d := range member.Declarators {
			un.Members = append(un.Members, d.Name)
		}
	}
	return nil
}
