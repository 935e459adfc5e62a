package ast

// Visitor is implemented by the Resolver's per-scope walker; each
// Statement kind dispatches to exactly one method, mirroring the
// teacher's ast.Visitor / walker.VisitX double-dispatch pattern.
type Visitor interface {
	VisitTranslationUnit(n *TranslationUnit)
	VisitProgramDecl(n *ProgramDecl)
	VisitModuleDecl(n *ModuleDecl)
	VisitFunctionDecl(n *FunctionDecl)
	VisitEntryDecl(n *EntryDecl)
	VisitInterfaceDecl(n *InterfaceDecl)
	VisitDerivedTypeDecl(n *DerivedTypeDecl)
	VisitEnumDecl(n *EnumDecl)
	VisitUnionDecl(n *UnionDecl)
	VisitDeclaration(n *Declaration)
	VisitUseStatement(n *UseStatement)
	VisitImplicitStatement(n *ImplicitStatement)
	VisitTemplateDecl(n *TemplateDecl)
	VisitRequirementDecl(n *RequirementDecl)
	VisitInstantiateStatement(n *InstantiateStatement)
	VisitPragma(n *Pragma)
	VisitAssignment(n *Assignment)
	VisitSubroutineCallStatement(n *SubroutineCallStatement)
	VisitBlockStatement(n *BlockStatement)
	VisitAssociateStatement(n *AssociateStatement)
	VisitSelectCaseStatement(n *SelectCaseStatement)
	VisitOpaqueStatement(n *OpaqueStatement)
}
