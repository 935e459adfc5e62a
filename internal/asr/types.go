package asr

import "fmt"

// Type is the ASR type grammar. It is a tagged sum expressed as a Go
// interface with an unexported marker method — the same encoding used for
// Symbol below: an inheritance-plus-downcast hierarchy in C++ is purely an
// encoding of a sum type, so a Go interface expresses it directly.
type Type interface {
	fmt.Stringer
	typeNode()
	// Substitute replaces every TypeParameter occurrence named in subst with
	// its bound Type. This is the narrow, unification-free substitution
	// primitive template instantiation needs — a deliberate simplification
	// of a full Hindley-Milner Type.Apply(Subst).
	Substitute(subst Subst) Type
}

// Subst maps a template type-parameter name to the concrete Type it was
// instantiated with.
type Subst map[string]Type

// PhysicalType is the storage-layout tag on arrays and strings: descriptor,
// fixed-size, SIMD, C-char, and so on.
type PhysicalType int

const (
	PhysicalDescriptor PhysicalType = iota
	PhysicalFixedSize
	PhysicalSIMD
	PhysicalCChar
	PhysicalCharacterArraySIMD
)

func (p PhysicalType) String() string {
	switch p {
	case PhysicalDescriptor:
		return "descriptor"
	case PhysicalFixedSize:
		return "fixed-size"
	case PhysicalSIMD:
		return "simd"
	case PhysicalCChar:
		return "c-char"
	case PhysicalCharacterArraySIMD:
		return "char-array-simd"
	default:
		return "unknown-physical-type"
	}
}

// StringLengthKind classifies how a String type's length is known: one of
// ExpressionLength, AssumedLength, DeferredLength, or ImplicitLength.
type StringLengthKind int

const (
	ExpressionLength StringLengthKind = iota
	AssumedLength
	DeferredLength
	ImplicitLength
)

func (k StringLengthKind) String() string {
	switch k {
	case ExpressionLength:
		return "expression-length"
	case AssumedLength:
		return "assumed-length"
	case DeferredLength:
		return "deferred-length"
	case ImplicitLength:
		return "implicit-length"
	default:
		return "unknown-length-kind"
	}
}

type baseType struct{}

func (baseType) typeNode() {}

// Integer is Integer(kind).
type Integer struct {
	baseType
	Kind int
}

func (t Integer) String() string               { return fmt.Sprintf("integer(%d)", t.Kind) }
func (t Integer) Substitute(Subst) Type         { return t }

// Real is Real(kind).
type Real struct {
	baseType
	Kind int
}

func (t Real) String() string       { return fmt.Sprintf("real(%d)", t.Kind) }
func (t Real) Substitute(Subst) Type { return t }

// Complex is Complex(kind).
type Complex struct {
	baseType
	Kind int
}

func (t Complex) String() string        { return fmt.Sprintf("complex(%d)", t.Kind) }
func (t Complex) Substitute(Subst) Type { return t }

// Logical is Logical(kind).
type Logical struct {
	baseType
	Kind int
}

func (t Logical) String() string        { return fmt.Sprintf("logical(%d)", t.Kind) }
func (t Logical) Substitute(Subst) Type { return t }

// String is String(len-expr, len-kind, physical-kind).
type String struct {
	baseType
	LengthExpr   Expr
	LengthKind   StringLengthKind
	PhysicalKind PhysicalType
}

func (t String) String() string {
	return fmt.Sprintf("character(len-kind=%s, physical=%s)", t.LengthKind, t.PhysicalKind)
}

func (t String) Substitute(subst Subst) Type {
	t.LengthExpr = substituteExpr(t.LengthExpr, subst)
	return t
}

// Dimension is one array dimension: Lower/Upper are nil for a deferred
// (allocatable/pointer) dimension.
type Dimension struct {
	Lower Expr
	Upper Expr
}

// IsDeferred reports whether this dimension carries no explicit bounds.
func (d Dimension) IsDeferred() bool {
	return d.Lower == nil && d.Upper == nil
}

// Array is Array(element-type, dims, physical-kind). Array cannot wrap
// Allocatable and cannot nest, and rank (len(Dims)) must be >= 1.
type Array struct {
	baseType
	Element      Type
	Dims         []Dimension
	PhysicalKind PhysicalType
}

func (t Array) String() string {
	return fmt.Sprintf("array(%s, rank=%d, physical=%s)", t.Element, len(t.Dims), t.PhysicalKind)
}

func (t Array) Substitute(subst Subst) Type {
	t.Element = t.Element.Substitute(subst)
	dims := make([]Dimension, len(t.Dims))
	for i, d := range t.Dims {
		dims[i] = Dimension{Lower: substituteExpr(d.Lower, subst), Upper: substituteExpr(d.Upper, subst)}
	}
	t.Dims = dims
	return t
}

// Pointer is Pointer(t). Allocatable and Pointer never nest inside each
// other, and a Pointer to an Array requires deferred shape.
type Pointer struct {
	baseType
	Of Type
}

func (t Pointer) String() string { return fmt.Sprintf("pointer(%s)", t.Of) }
func (t Pointer) Substitute(subst Subst) Type {
	t.Of = t.Of.Substitute(subst)
	return t
}

// Allocatable is Allocatable(t). Every dimension length of an Allocatable
// array must be absent (deferred).
type Allocatable struct {
	baseType
	Of Type
}

func (t Allocatable) String() string { return fmt.Sprintf("allocatable(%s)", t.Of) }
func (t Allocatable) Substitute(subst Subst) Type {
	t.Of = t.Of.Substitute(subst)
	return t
}

// StructType is StructType(ref, is-c-struct).
type StructType struct {
	baseType
	Ref       *Struct
	IsCStruct bool
}

func (t StructType) String() string        { return fmt.Sprintf("struct(%s)", t.Ref.Name()) }
func (t StructType) Substitute(Subst) Type { return t }

// EnumType is EnumType(ref).
type EnumType struct {
	baseType
	Ref *Enum
}

func (t EnumType) String() string        { return fmt.Sprintf("enum(%s)", t.Ref.Name()) }
func (t EnumType) Substitute(Subst) Type { return t }

// UnionType is UnionType(ref).
type UnionType struct {
	baseType
	Ref *Union
}

func (t UnionType) String() string        { return fmt.Sprintf("union(%s)", t.Ref.Name()) }
func (t UnionType) Substitute(Subst) Type { return t }

// DefKind distinguishes how a FunctionType's procedure was declared.
type DefKind int

const (
	DefKindImplementation DefKind = iota
	DefKindInterface
	DefKindModuleProcedure
)

// FuncFlags are the boolean attributes a Function carries: pure,
// elemental, module-proc, interface-vs-implementation.
type FuncFlags struct {
	Pure         bool
	Elemental    bool
	ModuleProc   bool
	IsInterface  bool
}

// FunctionType is FunctionType(arg-types, return-type, abi, def-kind,
// binding-name, flags).
type FunctionType struct {
	baseType
	ArgTypes    []Type
	ReturnType  Type // nil for a subroutine
	ABI         ABI
	DefKind     DefKind
	BindingName string
	Flags       FuncFlags
}

func (t FunctionType) String() string {
	return fmt.Sprintf("function-type(%d args, abi=%s)", len(t.ArgTypes), t.ABI)
}

func (t FunctionType) Substitute(subst Subst) Type {
	args := make([]Type, len(t.ArgTypes))
	for i, a := range t.ArgTypes {
		args[i] = a.Substitute(subst)
	}
	t.ArgTypes = args
	if t.ReturnType != nil {
		t.ReturnType = t.ReturnType.Substitute(subst)
	}
	return t
}

// ABI is the calling convention tag: native or C-binding.
type ABI int

const (
	ABINative ABI = iota
	ABIC
)

func (a ABI) String() string {
	if a == ABIC {
		return "bind(c)"
	}
	return "native"
}

// TypeParameter is TypeParameter(name): the only Type variant that can
// appear inside a Template body and that Substitute actually rewrites.
type TypeParameter struct {
	baseType
	Name string
}

func (t TypeParameter) String() string { return "typeparam(" + t.Name + ")" }
func (t TypeParameter) Substitute(subst Subst) Type {
	if bound, ok := subst[t.Name]; ok {
		return bound
	}
	return t
}

// substituteExpr is the expression side of a type substitution. It returns
// every expression unchanged: a reference to a TypeParameter-typed symbol
// (e.g. a length expression naming a template value parameter) is not
// rewritten.
func substituteExpr(e Expr, subst Subst) Expr {
	if e == nil {
		return nil
	}
	return e
}
