// Package asr implements the ASR data model: a tagged-tree intermediate
// representation with scoped symbol tables, plus the symbol-store
// operations that build and look up entries in those tables. Types and
// symbols share one Go package (rather than being split across two)
// because Types reference Symbols (StructType.Ref, EnumType.Ref,
// UnionType.Ref) and Symbols reference Types (Variable.Type,
// Function.Signature): splitting them would force an import cycle for no
// benefit, the same tightly-coupled layout funxy uses for its own
// SymbolTable plus every symbol.Kind it can hold.
package asr

import "github.com/yuvrajsinghgmx/lfortran/internal/source"

// Node is the base interface every ASR node — symbol or table owner —
// implements. It exists separately from Symbol because a TranslationUnit
// owns a table but is not itself looked up by name from anywhere.
type Node interface {
	Loc() source.Location
	asrNode()
}

// Symbol is the tagged variant over every kind of named ASR node. Every
// concrete type below implements it with an unexported marker method: a
// sum type modelled as an interface with exhaustive pattern matching at
// every call site that switches on it.
type Symbol interface {
	Node
	Name() string
	symbolNode()
}

// Access is the public/private visibility of a module-level symbol.
type Access int

const (
	Public Access = iota
	Private
)

// Intent is a Variable's argument-passing intent.
type Intent int

const (
	IntentLocal Intent = iota
	IntentIn
	IntentOut
	IntentInOut
	IntentReturnVar
	IntentUnspecified
)

// Storage is a Variable's storage class.
type Storage int

const (
	StorageDefault Storage = iota
	StorageParameter
	StorageSave
)

// Presence distinguishes a required dummy argument from an optional one.
type Presence int

const (
	Required Presence = iota
	Optional
)

type baseNode struct {
	Location source.Location
}

func (b baseNode) Loc() source.Location { return b.Location }
func (baseNode) asrNode()               {}

type baseSymbol struct {
	baseNode
	SymName string
}

func (b baseSymbol) Name() string { return b.SymName }
func (baseSymbol) symbolNode()    {}

// TranslationUnit is the root ASR node: owns the root symbol table and an
// ordered list of top-level items.
type TranslationUnit struct {
	baseNode
	Table *Table
	Items []Stmt
}

// Program is a standalone executable unit.
type Program struct {
	baseSymbol
	Table        *Table
	Body         []Stmt
	Dependencies *DependencySet
}

// Module is a Fortran module or submodule.
type Module struct {
	baseSymbol
	Table          *Table
	Dependencies   *DependencySet
	ParentModule   string // non-empty when this Module is a submodule
	HasSubmodules  bool
}

// Function represents both a Fortran function and a subroutine (a
// subroutine's Signature.ReturnType is nil).
type Function struct {
	baseSymbol
	Table        *Table
	Args         []Expr // formal-argument Var expressions, in declaration order
	Body         []Stmt
	ReturnVar    Expr // nil for a subroutine
	Signature    FunctionType
	Dependencies *DependencySet
	ABI          ABI
	DefKind      DefKind
	Access       Access

	// EntryOf, when non-empty, names the master function this Function is
	// an ENTRY stub for.
	EntryOf string
	// EntryArgIndexes records, for a master function, which of its formal
	// positions (1-based, after the leading discriminator) belong to each
	// entry point name.
	EntryArgIndexes map[string][]int
}

// Variable is a declared name of local, dummy-argument, module, or
// derived-type-member storage.
type Variable struct {
	baseSymbol
	ParentTable  *Table
	Type         Type
	Initializer  Expr // optional symbolic initializer
	Value        Expr // optional evaluated constant value
	Intent       Intent
	Storage      Storage
	Access       Access
	Presence     Presence
	Dependencies *DependencySet
	// TypeDeclaration points at the Struct symbol backing Type when Type is
	// (possibly wrapped) a StructType and that Struct was not yet emitted at
	// the point this Variable was declared; a deferred-struct patch fills
	// this field in once the Struct is finalised.
	TypeDeclaration *Struct
}

// EnumClassification classifies the observed distribution of an Enum's
// member values.
type EnumClassification int

const (
	EnumConsecutiveFromZero EnumClassification = iota
	EnumNotUnique
	EnumUnique
	EnumNonInteger
)

// Struct is a derived type.
type Struct struct {
	baseSymbol
	Table        *Table
	Members      []string // ordered member names, looked up in Table
	Parent       *Struct  // single inheritance; nil at the root
	Dependencies *DependencySet
	Alignment    Expr // optional; must evaluate to a positive power of two
	Abstract     bool
}

// Enum is an enumeration type.
type Enum struct {
	baseSymbol
	Table          *Table
	Underlying     Type // an Integer type
	Members        []string
	Classification EnumClassification
}

// Union is a union type.
type Union struct {
	baseSymbol
	Table   *Table
	Members []string
}

// GenericProcedure is an overload set assembled at scope finalization.
type GenericProcedure struct {
	baseSymbol
	ParentTable  *Table
	Procedures   []*Function
	Access       Access
}

// OperatorTag names an intrinsic operator a CustomOperator overloads, or
// the zero value for a user-defined operator (named via baseSymbol.Name,
// canonicalised with the "~~op~~" prefix).
type OperatorTag string

const (
	OpAdd OperatorTag = "+"
	OpSub OperatorTag = "-"
	OpMul OperatorTag = "*"
	OpDiv OperatorTag = "/"
	OpEq  OperatorTag = "=="
	OpAssign OperatorTag = "="
)

// CustomOperator is an overload set for an operator, intrinsic or
// user-defined.
type CustomOperator struct {
	baseSymbol
	ParentTable *Table
	Tag         OperatorTag // empty for a user-defined operator
	Procedures  []*Function
	Access      Access
}

// StructMethodDeclaration binds a procedure to a Struct: a class
// procedure, in the usual derived-type-with-methods sense.
type StructMethodDeclaration struct {
	baseSymbol
	ParentTable  *Table // always the owning Struct's own table
	Procedure    *Function
	ProcName     string
	SelfArgument string // optional explicit pass-object dummy-argument name
	Deferred     bool
	NoPass       bool
}

// ExternalSymbol is the re-export indirection used when a symbol from
// another module appears in the current scope. Per invariant, External
// must never itself be an ExternalSymbol (at most one hop).
type ExternalSymbol struct {
	baseSymbol
	ParentTable  *Table
	External     Symbol // the real symbol, owned elsewhere; never an ExternalSymbol
	ModuleName   string
	OriginalName string
	ScopePath    []string // optional multi-hop path used by find-scoped lookups
}

// AssociateBlock is an ASSOCIATE construct's scope.
type AssociateBlock struct {
	baseSymbol
	Table *Table
	Body  []Stmt
}

// Block is a plain (non-associating) nested BLOCK construct's scope.
type Block struct {
	baseSymbol
	Table *Table
	Body  []Stmt
}

// RequireClause is one "require" instantiation clause inside a Template.
type RequireClause struct {
	RequirementName string
	Arguments       []string
}

// Requirement is a named contract a Template parameter must satisfy.
type Requirement struct {
	baseSymbol
	Table      *Table
	Parameters []string
}

// Template declares parametric-polymorphism machinery: a named family of
// procedures/types parameterized over one or more type parameters.
type Template struct {
	baseSymbol
	Table      *Table
	Parameters []string
	Requires   []RequireClause
}

// Constructors below exist because baseNode/baseSymbol's embedded fields
// are unexported: a caller outside this package cannot set them in a
// composite literal, so every concrete Symbol is built through one of
// these and then has its remaining exported fields assigned by the caller.

func newBaseSymbol(loc source.Location, name string) baseSymbol {
	return baseSymbol{baseNode: baseNode{Location: loc}, SymName: name}
}

func NewTranslationUnit(loc source.Location) *TranslationUnit {
	return &TranslationUnit{baseNode: baseNode{Location: loc}}
}

func NewProgram(loc source.Location, name string) *Program {
	return &Program{baseSymbol: newBaseSymbol(loc, name)}
}

func NewModule(loc source.Location, name string) *Module {
	return &Module{baseSymbol: newBaseSymbol(loc, name)}
}

func NewFunction(loc source.Location, name string) *Function {
	return &Function{baseSymbol: newBaseSymbol(loc, name)}
}

func NewVariable(loc source.Location, name string) *Variable {
	return &Variable{baseSymbol: newBaseSymbol(loc, name)}
}

func NewStruct(loc source.Location, name string) *Struct {
	return &Struct{baseSymbol: newBaseSymbol(loc, name)}
}

func NewEnum(loc source.Location, name string) *Enum {
	return &Enum{baseSymbol: newBaseSymbol(loc, name)}
}

func NewUnion(loc source.Location, name string) *Union {
	return &Union{baseSymbol: newBaseSymbol(loc, name)}
}

func NewGenericProcedure(loc source.Location, name string) *GenericProcedure {
	return &GenericProcedure{baseSymbol: newBaseSymbol(loc, name)}
}

func NewCustomOperator(loc source.Location, name string) *CustomOperator {
	return &CustomOperator{baseSymbol: newBaseSymbol(loc, name)}
}

func NewStructMethodDeclaration(loc source.Location, name string) *StructMethodDeclaration {
	return &StructMethodDeclaration{baseSymbol: newBaseSymbol(loc, name)}
}

func NewExternalSymbol(loc source.Location, name string) *ExternalSymbol {
	return &ExternalSymbol{baseSymbol: newBaseSymbol(loc, name)}
}

func NewAssociateBlock(loc source.Location, name string) *AssociateBlock {
	return &AssociateBlock{baseSymbol: newBaseSymbol(loc, name)}
}

func NewBlock(loc source.Location, name string) *Block {
	return &Block{baseSymbol: newBaseSymbol(loc, name)}
}

func NewRequirement(loc source.Location, name string) *Requirement {
	return &Requirement{baseSymbol: newBaseSymbol(loc, name)}
}

func NewTemplate(loc source.Location, name string) *Template {
	return &Template{baseSymbol: newBaseSymbol(loc, name)}
}
