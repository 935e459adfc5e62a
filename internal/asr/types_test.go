package asr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeParameter_SubstituteBoundAndUnbound(t *testing.T) {
	tp := TypeParameter{Name: "T"}

	unbound := tp.Substitute(Subst{"U": Integer{Kind: 4}})
	assert.Equal(t, tp, unbound, "substituting an unrelated name leaves the parameter untouched")

	bound := tp.Substitute(Subst{"T": Real{Kind: 8}})
	assert.Equal(t, Real{Kind: 8}, bound)
}

func TestArray_SubstituteRewritesElementType(t *testing.T) {
	arr := Array{
		Element: TypeParameter{Name: "T"},
		Dims:    []Dimension{{}},
	}
	out := arr.Substitute(Subst{"T": Integer{Kind: 4}})

	a, ok := out.(Array)
	assert.True(t, ok)
	assert.Equal(t, Integer{Kind: 4}, a.Element)
}

func TestPointer_SubstituteRewritesTarget(t *testing.T) {
	ptr := Pointer{Of: TypeParameter{Name: "T"}}
	out := ptr.Substitute(Subst{"T": Logical{Kind: 4}})

	p, ok := out.(Pointer)
	assert.True(t, ok)
	assert.Equal(t, Logical{Kind: 4}, p.Of)
}

func TestFunctionType_SubstituteRewritesArgsAndReturn(t *testing.T) {
	ft := FunctionType{
		ArgTypes:   []Type{TypeParameter{Name: "T"}, Integer{Kind: 4}},
		ReturnType: TypeParameter{Name: "T"},
	}
	out := ft.Substitute(Subst{"T": Real{Kind: 8}})

	f, ok := out.(FunctionType)
	assert.True(t, ok)
	assert.Equal(t, Real{Kind: 8}, f.ArgTypes[0])
	assert.Equal(t, Integer{Kind: 4}, f.ArgTypes[1])
	assert.Equal(t, Real{Kind: 8}, f.ReturnType)
}

func TestIntegerString(t *testing.T) {
	assert.Equal(t, "integer(4)", Integer{Kind: 4}.String())
}
