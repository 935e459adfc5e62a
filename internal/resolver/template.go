package resolver

import (
	"fmt"
	"strings"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
)

// paramSet turns a parameter-name list into a lookup set, for
// resolveTypeSpec's TypeParameter recognition.
func paramSet(names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = true
	}
	return out
}

func unionParams(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool, len(a)+len(b))
	for k := range a {
		out[k] = true
	}
	for k := range b {
		out[k] = true
	}
	return out
}

// resolveRequirementDecl builds a Requirement symbol: a named contract a
// template parameter must satisfy, resolved the same way as a template
// body so its abstract signatures can reference its own parameters as
// types.
func (w *walker) resolveRequirementDecl(n *ast.RequirementDecl) error {
	req := asr.NewRequirement(n.Loc(), n.Name)
	req.Parameters = n.Parameters
	table := asr.NewTable(w.table)
	table.SetOwner(req)
	req.Table = table

	if err := w.table.AddSymbol(n.Name, req); err != nil {
		d := diag.New(diag.DuplicateSymbol, n.Loc(), err.Error())
		if aerr := w.report(d); aerr != nil {
			return aerr
		}
	}

	sub := w.child(table, nil)
	sub.templateParams = unionParams(w.templateParams, paramSet(n.Parameters))
	if err := sub.resolveDeclsAndContains(n.Decls, nil); err != nil {
		return err
	}
	// Without this, an `interface operator(...)` block inside the
	// requirement body accumulates candidates on sub but never installs the
	// CustomOperator they describe into req.Table, leaving the restriction
	// with no overload set an instantiation could ever find.
	return sub.finalizeGenerics()
}

// resolveTemplateDecl builds a Template symbol and resolves its body with
// its own parameter names recognized as TypeParameter references.
func (w *walker) resolveTemplateDecl(n *ast.TemplateDecl) error {
	requires := make([]asr.RequireClause, len(n.Requires))
	for i, rc := range n.Requires {
		requires[i] = asr.RequireClause{RequirementName: rc.RequirementName, Arguments: rc.Arguments}
	}

	tmpl := asr.NewTemplate(n.Loc(), n.Name)
	tmpl.Parameters = n.Parameters
	tmpl.Requires = requires
	table := asr.NewTable(w.table)
	table.SetOwner(tmpl)
	tmpl.Table = table

	if err := w.table.AddSymbol(n.Name, tmpl); err != nil {
		d := diag.New(diag.DuplicateSymbol, n.Loc(), err.Error())
		if aerr := w.report(d); aerr != nil {
			return aerr
		}
	}

	sub := w.child(table, nil)
	sub.templateParams = unionParams(w.templateParams, paramSet(n.Parameters))
	if err := sub.resolveDeclsAndContains(n.Decls, nil); err != nil {
		return err
	}
	return sub.finalizeGenerics()
}

// intrinsicTypeKeywords is the set of base-type spellings a template's
// actual type argument can name directly, without looking anything up in
// scope.
var intrinsicTypeKeywords = map[string]bool{
	"integer": true, "real": true, "complex": true, "logical": true, "character": true,
}

// resolveTypeArgument resolves one `instantiate`/`require` actual argument
// spelling to a concrete Type: either an intrinsic keyword at this scope's
// default kind, or a derived type visible in scope.
func (w *walker) resolveTypeArgument(loc ast.Statement, name string) (asr.Type, error) {
	if intrinsicTypeKeywords[name] {
		kind := w.defaultKindOf(name)
		switch name {
		case "integer":
			return asr.Integer{Kind: kind}, nil
		case "real":
			return asr.Real{Kind: kind}, nil
		case "complex":
			return asr.Complex{Kind: kind}, nil
		case "logical":
			return asr.Logical{Kind: kind}, nil
		case "character":
			return asr.String{LengthKind: asr.ImplicitLength, PhysicalKind: asr.PhysicalDescriptor}, nil
		}
	}
	sym, _, ok := w.table.ResolveSymbol(name)
	if !ok {
		d := diag.New(diag.UnresolvedSymbol, loc.Loc(), fmt.Sprintf("%q does not name a type", name))
		return nil, w.report(d)
	}
	st, ok := asr.GetPastExternal(sym).(*asr.Struct)
	if !ok {
		d := diag.New(diag.TypeShape, loc.Loc(), fmt.Sprintf("%q does not name a type", name))
		return nil, w.report(d)
	}
	return asr.StructType{Ref: st}, nil
}

// resolveInstantiate binds local_name to a fresh copy of a Template's
// table with every TypeParameter substituted by the matching actual
// argument's Type: duplicateForInstance copies each symbol with its types
// substituted; references inside expressions are not rewritten and still
// point at the template's own symbols. The instantiated scope is
// modelled as a Module: the asr
// model has no separate "template instance" symbol kind, and a named,
// self-contained, table-owning scope is exactly what Module already is.
func (w *walker) resolveInstantiate(n *ast.InstantiateStatement) error {
	sym, _, ok := w.table.ResolveSymbol(n.TemplateName)
	if !ok {
		d := diag.New(diag.UnresolvedSymbol, n.Loc(), fmt.Sprintf("template %q is not visible from this scope", n.TemplateName))
		return w.report(d)
	}
	tmpl, ok := asr.GetPastExternal(sym).(*asr.Template)
	if !ok {
		d := diag.New(diag.TemplateMisuse, n.Loc(), fmt.Sprintf("%q is not a template", n.TemplateName))
		return w.report(d)
	}
	if len(n.Arguments) != len(tmpl.Parameters) {
		d := diag.New(diag.ArityMismatch, n.Loc(), fmt.Sprintf(
			"template %q takes %d parameters, %d given", n.TemplateName, len(tmpl.Parameters), len(n.Arguments)))
		return w.report(d)
	}

	subst := asr.Subst{}
	for i, param := range tmpl.Parameters {
		ty, err := w.resolveTypeArgument(n, n.Arguments[i])
		if err != nil {
			return err
		}
		subst[param] = ty
	}

	inst := asr.NewModule(n.Loc(), n.LocalName)
	inst.Dependencies = asr.NewDependencySet()
	instTable := asr.NewTable(w.table)
	instTable.SetOwner(inst)
	inst.Table = instTable

	for _, name := range tmpl.Table.Names() {
		sym, _ := tmpl.Table.GetSymbol(name)
		instTable.AddSymbolOverwrite(name, w.duplicateForInstance(sym, subst, instTable))
	}

	w.synthesizeRequirements(tmpl, subst, inst)

	w.recordDependency(tmpl.Name())
	if err := w.table.AddSymbol(n.LocalName, inst); err != nil {
		d := diag.New(diag.DuplicateSymbol, n.Loc(), err.Error())
		return w.report(d)
	}
	return nil
}

// synthesizeRequirements materializes, for each of tmpl's require clauses,
// a concrete overload satisfying the restriction when the actual type
// argument is an intrinsic type rather than one with its own user-defined
// operator: template add_T instantiated with T = integer synthesizes a
// fresh CustomOperator ~add wrapping integer addition, and add_integer is
// emitted as an ordinary Function in the enclosing scope. The instantiated
// Module's dependency list records both.
func (w *walker) synthesizeRequirements(tmpl *asr.Template, subst asr.Subst, inst *asr.Module) {
	if len(tmpl.Parameters) == 0 {
		return
	}
	ty, ok := subst[tmpl.Parameters[0]]
	if !ok {
		return
	}
	typeName := typeKeyword(ty)
	if typeName == "" {
		return
	}
	for _, rc := range tmpl.Requires {
		reqSym, _, ok := w.table.ResolveSymbol(rc.RequirementName)
		if !ok {
			continue
		}
		req, ok := asr.GetPastExternal(reqSym).(*asr.Requirement)
		if !ok {
			continue
		}
		for _, name := range req.Table.Names() {
			sym, _ := req.Table.GetSymbol(name)
			op, ok := sym.(*asr.CustomOperator)
			if !ok {
				continue
			}
			w.synthesizeOperator(tmpl, op, ty, typeName, inst)
		}
	}
}

// synthesizeOperator builds and installs the concrete Function and
// wrapping CustomOperator described in synthesizeRequirements, naming both
// by substituting tmpl's own type-parameter name in tmpl's own name (so
// template add_T, parameter T, yields operator ~add and function
// add_integer).
func (w *walker) synthesizeOperator(tmpl *asr.Template, op *asr.CustomOperator, ty asr.Type, typeName string, inst *asr.Module) {
	base := strings.TrimSuffix(tmpl.Name(), "_"+tmpl.Parameters[0])
	opName := "~" + base
	fnName := base + "_" + typeName

	fn := asr.NewFunction(tmpl.Loc(), fnName)
	fn.Dependencies = asr.NewDependencySet()
	fn.Access = asr.Public
	fn.DefKind = asr.DefKindImplementation
	fn.Signature = asr.FunctionType{ArgTypes: []asr.Type{ty, ty}, ReturnType: ty}
	fnTable := asr.NewTable(w.table)
	fnTable.SetOwner(fn)
	fn.Table = fnTable

	newOp := asr.NewCustomOperator(tmpl.Loc(), opName)
	newOp.ParentTable = w.table
	newOp.Tag = op.Tag
	newOp.Procedures = []*asr.Function{fn}
	newOp.Access = asr.Public

	if err := w.table.AddSymbol(fnName, fn); err != nil {
		return
	}
	if err := w.installOverloadSet(opName, newOp); err != nil {
		return
	}
	inst.Dependencies.Add(opName)
	inst.Dependencies.Add(fnName)
}

// typeKeyword reverses resolveTypeArgument's intrinsic-keyword mapping,
// for naming a synthesized requirement overload after its concrete type.
func typeKeyword(ty asr.Type) string {
	switch ty.(type) {
	case asr.Integer:
		return "integer"
	case asr.Real:
		return "real"
	case asr.Complex:
		return "complex"
	case asr.Logical:
		return "logical"
	case asr.String:
		return "character"
	default:
		return ""
	}
}

// duplicateForInstance copies one template-body symbol with subst applied
// to every Type it carries. Kinds that carry no Type of their own (Struct
// members aside, handled by their own Variable entries; nested scopes like
// Block/AssociateBlock, which a template body is not expected to contain at
// the top level) are passed through unchanged — a deliberate simplification
// of the "rewrite every symbol-table-ID reference" duplicator a full
// instantiation pass would need, since the narrow Expr/Stmt model here
// never reaches into statement bodies to rewrite VarRef targets anyway.
func (w *walker) duplicateForInstance(sym asr.Symbol, subst asr.Subst, parentTable *asr.Table) asr.Symbol {
	switch s := sym.(type) {
	case *asr.Variable:
		v := asr.NewVariable(s.Loc(), s.Name())
		*v = *s
		v.ParentTable = parentTable
		v.Type = v.Type.Substitute(subst)
		return v
	case *asr.Function:
		fn := asr.NewFunction(s.Loc(), s.Name())
		*fn = *s
		sig, _ := fn.Signature.Substitute(subst).(asr.FunctionType)
		fn.Signature = sig
		return fn
	case *asr.Struct:
		st := asr.NewStruct(s.Loc(), s.Name())
		*st = *s
		memberTable := asr.NewTable(parentTable)
		memberTable.SetOwner(st)
		for _, name := range s.Table.Names() {
			memberSym, _ := s.Table.GetSymbol(name)
			memberTable.AddSymbolOverwrite(name, w.duplicateForInstance(memberSym, subst, memberTable))
		}
		st.Table = memberTable
		return st
	default:
		return sym
	}
}
