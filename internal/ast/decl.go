package ast

import "github.com/yuvrajsinghgmx/lfortran/internal/source"

// TypeSpec is the syntactic, pre-resolution type-spec attached to a
// Declaration (`integer`, `real(kind=8)`, `type(point)`, `class(shape)`,
// `character(len=20)`). It is deliberately not asr.Type: the Resolver
// consumes a TypeSpec and produces an asr.Type once the named kind/derived
// type has been looked up.
type TypeSpec struct {
	Location    source.Location
	Keyword     string // "integer", "real", "complex", "logical", "character", "type", "class"
	DerivedName string // set when Keyword is "type" or "class"
	Kind        Expression
	Length      Expression // character length, when Keyword == "character"
}

func (t TypeSpec) Loc() source.Location { return t.Location }

// BindSpec is an optional `bind(c[, name="..."])` attribute.
type BindSpec struct {
	IsC  bool
	Name string // explicit binding name; empty means "use the Fortran name verbatim"
}

// ArrayBoundSpec is one dimension of a `dimension(...)` attribute. Lower
// and Upper are both nil for a deferred-shape `(:)` dimension, which
// asr.Dimension.IsDeferred reports; an assumed-size `(*)` dimension has
// no separate form.
type ArrayBoundSpec struct {
	Lower Expression
	Upper Expression
}

// DeclAttrs is the attribute list of a Declaration: intent, bind, save,
// parameter, pointer, allocatable, dimension.
type DeclAttrs struct {
	Intent      string // "in", "out", "inout", or "" (unspecified)
	Bind        *BindSpec
	Save        bool
	Parameter   bool
	Pointer     bool
	Allocatable bool
	Optional    bool
	Dimension   []ArrayBoundSpec
}

// Declarator is one name in a declaration's entity list, optionally with
// its own initializer (`integer :: a, b = 3, c(10)`).
type Declarator struct {
	Name        string
	Dimension   []ArrayBoundSpec // overrides DeclAttrs.Dimension for this entity only
	Initializer Expression
}

// Declaration is a type declaration statement.
type Declaration struct {
	baseStmt
	Type        TypeSpec
	Attrs       DeclAttrs
	Declarators []Declarator
}

func (n *Declaration) Accept(v Visitor) { v.VisitDeclaration(n) }

// RenameSpec is one `use`-clause renaming (`use mod, only: local_name =>
// original_name`); LocalName equals OriginalName when no rename is given.
type RenameSpec struct {
	LocalName    string
	OriginalName string
}

// UseStatement is a `use modname[, only: ...]` statement.
type UseStatement struct {
	baseStmt
	ModuleName string
	OnlyList   []RenameSpec // nil means "import everything public"
	HasOnly    bool
}

func (n *UseStatement) Accept(v Visitor) { v.VisitUseStatement(n) }

// ImplicitSpec is one clause of an `implicit` statement: a type-spec and
// the inclusive letter ranges it applies to (`implicit real (a-h, o-z)`).
type ImplicitSpec struct {
	Type   TypeSpec
	Ranges [][2]byte // each [lo, hi], e.g. ['a','h']
}

// ImplicitStatement is `implicit none` (Specs is empty and None is true) or
// `implicit <spec>[, <spec>]...`.
type ImplicitStatement struct {
	baseStmt
	None  bool
	Specs []ImplicitSpec
}

func (n *ImplicitStatement) Accept(v Visitor) { v.VisitImplicitStatement(n) }

// ProcAttrs is the attribute list of a function/subroutine header.
type ProcAttrs struct {
	Pure      bool
	Elemental bool
	Recursive bool
	Module    bool // `module subroutine`/`module function` inside an interface or submodule
	Bind      *BindSpec
}

// EntryDecl is an `entry name(args) [result(r)]` statement appearing in the
// body of a FunctionDecl.
type EntryDecl struct {
	baseStmt
	Name   string
	Args   []string
	Result string // empty for a subroutine entry point
}

func (n *EntryDecl) Accept(v Visitor) { v.VisitEntryDecl(n) }

// FunctionDecl is a function or subroutine definition. IsFunction is false
// for a subroutine, in which case Result and ResultType are unused.
type FunctionDecl struct {
	baseStmt
	Name       string
	IsFunction bool
	Args       []string
	Result     string // defaults to Name when IsFunction and unspecified
	ResultType *TypeSpec
	Attrs      ProcAttrs
	Decls      []Statement // Declaration / Use / Implicit / EntryDecl items
	Body       []Statement
	Contains   []*FunctionDecl // internal procedures
}

func (n *FunctionDecl) Accept(v Visitor) { v.VisitFunctionDecl(n) }

// InterfaceDecl is an `interface [name]` block: either an operator/
// assignment/generic-name interface gathering module-procedure signatures,
// or an abstract-interface block declaring external procedure shapes.
type InterfaceDecl struct {
	baseStmt
	Name       string      // empty for an unnamed (operator/assignment) interface
	Operator   string      // set instead of Name for `interface operator(+)` etc.
	IsAssign   bool        // set for `interface assignment(=)`
	Procedures []*FunctionDecl
}

func (n *InterfaceDecl) Accept(v Visitor) { v.VisitInterfaceDecl(n) }

// TypeBoundProcedure is one `procedure` binding inside a `contains` block
// of a DerivedTypeDecl.
type TypeBoundProcedure struct {
	Name     string
	Binds    string // the module procedure it binds to; equals Name unless renamed
	Pass     string // explicit pass-object dummy-argument name; "" means default
	NoPass   bool
	Deferred bool
}

// DerivedTypeDecl is a `type[, attrs] :: name ... end type` declaration.
type DerivedTypeDecl struct {
	baseStmt
	Name       string
	Extends    string // parent derived-type name; "" at the root
	Abstract   bool
	Members    []*Declaration
	Procedures []TypeBoundProcedure
}

func (n *DerivedTypeDecl) Accept(v Visitor) { v.VisitDerivedTypeDecl(n) }

// EnumeratorSpec is one named constant in an enum's list, with an optional
// explicit value (`red = 0`); an omitted value continues the previous
// one plus one, same as Fortran's `enum, bind(c)` rule.
type EnumeratorSpec struct {
	Name  string
	Value Expression // nil when implicit (previous + 1, or 0 for the first)
}

// EnumDecl is an `enum name [kind(k)] :: red, green = 4, blue end enum`
// declaration: a named set of integer constants sharing an underlying
// integer kind.
type EnumDecl struct {
	baseStmt
	Name        string
	Underlying  TypeSpec // Keyword defaults to "integer" when empty
	Enumerators []EnumeratorSpec
}

func (n *EnumDecl) Accept(v Visitor) { v.VisitEnumDecl(n) }

// UnionDecl is a `union name ... end union` block: overlapping storage for
// its named members.
type UnionDecl struct {
	baseStmt
	Name    string
	Members []*Declaration
}

func (n *UnionDecl) Accept(v Visitor) { v.VisitUnionDecl(n) }

// ProgramDecl is a `program name ... end program` unit.
type ProgramDecl struct {
	baseStmt
	Name     string
	Decls    []Statement
	Body     []Statement
	Contains []*FunctionDecl
}

func (n *ProgramDecl) Accept(v Visitor) { v.VisitProgramDecl(n) }

// ModuleDecl is a `module name ... end module` or `submodule (parent) name
// ... end submodule` unit.
type ModuleDecl struct {
	baseStmt
	Name       string
	ParentName string // set for a submodule: the ancestor module/submodule name
	Decls      []Statement
	Contains   []*FunctionDecl
}

func (n *ModuleDecl) Accept(v Visitor) { v.VisitModuleDecl(n) }

// RequirementDecl declares a named contract a template parameter must
// satisfy (`requirement name(args) ... end requirement`).
type RequirementDecl struct {
	baseStmt
	Name       string
	Parameters []string
	Decls      []Statement
}

func (n *RequirementDecl) Accept(v Visitor) { v.VisitRequirementDecl(n) }

// RequireClauseSyntax is one `require(name, args)` clause inside a
// TemplateDecl.
type RequireClauseSyntax struct {
	RequirementName string
	Arguments       []string
}

// TemplateDecl declares parametric-polymorphism machinery: `template
// name(params) require(...) ... end template`.
type TemplateDecl struct {
	baseStmt
	Name       string
	Parameters []string
	Requires   []RequireClauseSyntax
	Decls      []Statement
}

func (n *TemplateDecl) Accept(v Visitor) { v.VisitTemplateDecl(n) }

// InstantiateStatement is `instantiate template_name(actual_args) [, only:
// ...] :: local_name` — a concrete binding of a TemplateDecl's parameters.
type InstantiateStatement struct {
	baseStmt
	TemplateName string
	Arguments    []string
	LocalName    string
}

func (n *InstantiateStatement) Accept(v Visitor) { v.VisitInstantiateStatement(n) }

// Pragma is a compiler directive attached to the following statement,
// carrying the simd attribute list.
type Pragma struct {
	baseStmt
	Name  string // "simd", ...
	Attrs []string
}

func (n *Pragma) Accept(v Visitor) { v.VisitPragma(n) }
