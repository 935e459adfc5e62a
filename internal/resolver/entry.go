package resolver

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
	"github.com/yuvrajsinghgmx/lfortran/internal/source"
)

// resolveFunctionDecl builds a Function symbol for an ordinary subroutine
// or function declaration, then rewrites any ENTRY statements found in its
// declaration list into the master-function-plus-stubs shape (see
// rewriteEntries).
func (w *walker) resolveFunctionDecl(n *ast.FunctionDecl) error {
	fn := asr.NewFunction(n.Loc(), n.Name)
	fn.Dependencies = asr.NewDependencySet()
	fn.Access = asr.Public
	fn.DefKind = asr.DefKindImplementation
	if n.Attrs.Bind != nil && n.Attrs.Bind.IsC {
		fn.ABI = asr.ABIC
		name := bindingName(n.Name, n.Attrs.Bind)
		if err := w.checkCBindingUnique(n.Loc(), name, n.Name); err != nil {
			return err
		}
		fn.Signature.BindingName = name
	}
	fn.Signature.Flags = asr.FuncFlags{
		Pure:      n.Attrs.Pure,
		Elemental: n.Attrs.Elemental,
		ModuleProc: n.Attrs.Module,
	}

	table := asr.NewTable(w.table)
	table.SetOwner(fn)
	fn.Table = table

	if err := w.table.AddSymbol(n.Name, fn); err != nil {
		d := diag.New(diag.DuplicateSymbol, n.Loc(), err.Error())
		if aerr := w.report(d); aerr != nil {
			return aerr
		}
	}

	sub := w.child(table, fn.Dependencies)

	var entries []*ast.EntryDecl
	var otherDecls []ast.Statement
	for _, d := range n.Decls {
		if e, ok := d.(*ast.EntryDecl); ok {
			entries = append(entries, e)
			continue
		}
		otherDecls = append(otherDecls, d)
	}

	if err := sub.resolveDeclsAndContains(otherDecls, n.Contains); err != nil {
		return err
	}

	if err := sub.bindSignature(n.Loc(), fn, n.Args, n.IsFunction, n.Result, n.Name); err != nil {
		return err
	}

	sub.phase = phaseBody
	for _, stmt := range n.Body {
		asrStmt, err := sub.lowerStmt(stmt)
		if err != nil {
			return err
		}
		if asrStmt != nil {
			fn.Body = append(fn.Body, asrStmt)
		}
	}
	if err := sub.finalizeGenerics(); err != nil {
		return err
	}

	if len(entries) > 0 {
		if err := w.rewriteEntries(fn, entries); err != nil {
			return err
		}
	}
	return nil
}

// bindSignature resolves fn's formal arguments and (for a function) result
// variable against table's declarations, filling in an implicitly typed
// Variable for any argument no explicit Declaration covered, and assembles
// fn.Args / fn.ReturnVar / fn.Signature from the result.
func (w *walker) bindSignature(loc source.Location, fn *asr.Function, argNames []string, isFunction bool, resultName, fnName string) error {
	for _, name := range argNames {
		v, err := w.resolveOrImplyArg(loc, name)
		if err != nil {
			return err
		}
		fn.Args = append(fn.Args, asr.NewVarRef(loc, v))
		fn.Signature.ArgTypes = append(fn.Signature.ArgTypes, v.Type)
	}

	if !isFunction {
		return nil
	}
	if resultName == "" {
		resultName = fnName
	}
	rv, err := w.resolveOrImplyArg(loc, resultName)
	if err != nil {
		return err
	}
	rv.Intent = asr.IntentOut
	fn.ReturnVar = asr.NewVarRef(loc, rv)
	fn.Signature.ReturnType = rv.Type
	return nil
}

// resolveOrImplyArg looks up a dummy-argument or result name already
// declared in the current table; when it is absent (no explicit type
// declaration touched it), a Variable is synthesized from the scope's
// implicit-typing dictionary.
func (w *walker) resolveOrImplyArg(loc source.Location, name string) (*asr.Variable, error) {
	if sym, ok := w.table.GetSymbol(name); ok {
		v, ok := sym.(*asr.Variable)
		if !ok {
			d := diag.New(diag.TypeShape, loc, fmt.Sprintf("%q is not a data object", name))
			return nil, w.report(d)
		}
		return v, nil
	}
	ty, ok := w.implicit.lookup(name)
	if !ok {
		d := diag.New(diag.UnresolvedSymbol, loc, fmt.Sprintf("no implicit type for %q", name))
		return nil, w.report(d)
	}
	v := asr.NewVariable(loc, name)
	v.ParentTable = w.table
	v.Type = ty
	v.Access = asr.Public
	v.Presence = asr.Required
	v.Intent = asr.IntentInOut
	v.Dependencies = asr.NewDependencySet()
	if err := w.table.AddSymbol(name, v); err != nil {
		d := diag.New(diag.DuplicateSymbol, loc, err.Error())
		if aerr := w.report(d); aerr != nil {
			return nil, aerr
		}
	}
	return v, nil
}

// entryMasterSuffix is appended to the original name of a subroutine or
// function that carries one or more ENTRY statements: the body moves to
// this renamed master, and the original name becomes a thin forwarding
// stub alongside each entry point's own stub.
const entryMasterSuffix = "_main__lcompilers"

// entryDiscriminatorArg is the leading integer argument prepended to a
// widened master's formal list, so a later statement-body pass can tell
// at each call site which entry point was actually invoked.
const entryDiscriminatorArg = "entry__lcompilers"

// rewriteEntries turns master, plus its ENTRY statements, into three or
// more ASR symbols: master itself, renamed with entryMasterSuffix and
// widened with a leading discriminator argument plus every entry-only
// argument; a forwarding stub under master's original name; and one more
// forwarding stub per ENTRY statement. EntryArgIndexes records, for each
// of those names, which (1-based, after the leading discriminator)
// positions of the widened argument list belong to it, so the stubs never
// need their own copy of the body.
func (w *walker) rewriteEntries(master *asr.Function, entries []*ast.EntryDecl) error {
	// Entry-only argument and result names belong in master's own table,
	// the same scope its declared arguments already live in; the stub
	// Functions below are registered through w itself, the enclosing scope,
	// since a caller of an entry point looks it up as a sibling of master,
	// not inside master's private table.
	argWalker := w.child(master.Table, master.Dependencies)

	masterArgs := make(map[string]int, len(master.Args))
	for i, a := range master.Args {
		if ref, ok := a.(*asr.VarRef); ok {
			masterArgs[asr.CanonicalName(ref.Target.Name())] = i + 1
		}
	}
	master.EntryArgIndexes = map[string][]int{}

	originalName := master.Name()
	masterIndexes := make([]int, len(master.Args))
	for i := range master.Args {
		masterIndexes[i] = i + 1
	}
	master.EntryArgIndexes[asr.CanonicalName(originalName)] = masterIndexes

	entryIndexes := make(map[string][]int, len(entries))
	for _, e := range entries {
		var indexes []int
		for _, argName := range e.Args {
			if idx, ok := masterArgs[asr.CanonicalName(argName)]; ok {
				indexes = append(indexes, idx)
				continue
			}
			v, err := argWalker.resolveOrImplyArg(e.Loc(), argName)
			if err != nil {
				return err
			}
			master.Args = append(master.Args, asr.NewVarRef(e.Loc(), v))
			master.Signature.ArgTypes = append(master.Signature.ArgTypes, v.Type)
			idx := len(master.Args)
			masterArgs[asr.CanonicalName(argName)] = idx
			indexes = append(indexes, idx)
		}
		master.EntryArgIndexes[asr.CanonicalName(e.Name)] = indexes
		entryIndexes[e.Name] = indexes
	}

	disc := asr.NewVariable(master.Loc(), entryDiscriminatorArg)
	disc.ParentTable = master.Table
	disc.Type = asr.Integer{Kind: w.r.Options.DefaultIntegerKind}
	disc.Access = asr.Public
	disc.Presence = asr.Required
	disc.Intent = asr.IntentIn
	disc.Dependencies = asr.NewDependencySet()
	if err := master.Table.AddSymbol(entryDiscriminatorArg, disc); err != nil {
		d := diag.New(diag.DuplicateSymbol, master.Loc(), err.Error())
		if aerr := w.report(d); aerr != nil {
			return aerr
		}
	}
	master.Args = append([]asr.Expr{asr.NewVarRef(master.Loc(), disc)}, master.Args...)
	master.Signature.ArgTypes = append([]asr.Type{disc.Type}, master.Signature.ArgTypes...)

	mangledName := originalName + entryMasterSuffix
	master.SymName = mangledName
	w.table.AddSymbolOverwrite(mangledName, master)

	originalReturnVar, originalReturnType := master.ReturnVar, master.Signature.ReturnType
	if err := w.addEntryStub(master, originalName, master.Loc(), masterIndexes, originalReturnVar, originalReturnType); err != nil {
		return err
	}

	for _, e := range entries {
		var rv asr.Expr
		var rt asr.Type
		if e.Result != "" {
			v, err := argWalker.resolveOrImplyArg(e.Loc(), e.Result)
			if err != nil {
				return err
			}
			rv = asr.NewVarRef(e.Loc(), v)
			rt = v.Type
		}
		if err := w.addEntryStub(master, e.Name, e.Loc(), entryIndexes[e.Name], rv, rt); err != nil {
			return err
		}
	}
	return nil
}

// addEntryStub registers a thin forwarding Function under name, sharing
// master's (renamed) table and ABI, with an argument signature built from
// master's widened Signature.ArgTypes at the given (1-based,
// after-discriminator) positions.
func (w *walker) addEntryStub(master *asr.Function, name string, loc source.Location, indexes []int, returnVar asr.Expr, returnType asr.Type) error {
	stub := asr.NewFunction(loc, name)
	stub.EntryOf = master.Name()
	stub.Dependencies = asr.NewDependencySet()
	stub.Access = asr.Public
	stub.DefKind = asr.DefKindImplementation
	stub.Table = master.Table
	stub.ABI = master.ABI
	for _, idx := range indexes {
		stub.Signature.ArgTypes = append(stub.Signature.ArgTypes, master.Signature.ArgTypes[idx])
	}
	stub.ReturnVar = returnVar
	stub.Signature.ReturnType = returnType

	// The stub for master's original name replaces master's own binding
	// there; master itself is already rebound under its mangled name.
	if existing, ok := w.table.GetSymbol(name); ok && existing == asr.Symbol(master) {
		w.table.AddSymbolOverwrite(name, stub)
		return nil
	}
	if err := w.table.AddSymbol(name, stub); err != nil {
		d := diag.New(diag.DuplicateSymbol, loc, err.Error())
		if aerr := w.report(d); aerr != nil {
			return aerr
		}
	}
	return nil
}
