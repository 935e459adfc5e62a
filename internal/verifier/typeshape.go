package verifier

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
	"github.com/yuvrajsinghgmx/lfortran/internal/source"
)

// checkTypeShape re-checks the type-shape invariants on
// Array/Pointer/Allocatable/Enum/Struct.
func (c *ctx) checkTypeShape(t *asr.Table, sym asr.Symbol) error {
	switch s := sym.(type) {
	case *asr.Variable:
		if err := c.checkTypeShapeOf(s.Loc(), s.Name(), s.Type); err != nil {
			return err
		}
	case *asr.Enum:
		if _, ok := s.Underlying.(asr.Integer); !ok {
			d := diag.New(diag.TypeShape, s.Loc(),
				fmt.Sprintf("enum %q's underlying type must be an integer type", s.Name()))
			c.ver.Sink.Add(d)
			return diag.NewVerifyAbort(d)
		}
		if len(s.Members) == 0 {
			d := diag.New(diag.TypeShape, s.Loc(), fmt.Sprintf("enum %q declares no members", s.Name()))
			c.ver.Sink.Add(d)
			return diag.NewVerifyAbort(d)
		}
	case *asr.Struct:
		for p := s.Parent; p != nil; p = p.Parent {
			if p == s {
				d := diag.New(diag.TypeShape, s.Loc(),
					fmt.Sprintf("struct %q's inheritance chain cycles back to itself", s.Name()))
				c.ver.Sink.Add(d)
				return diag.NewVerifyAbort(d)
			}
		}
	}
	return nil
}

// checkTypeShapeOf walks ty's shape, attributing any violation to loc (the
// declaring Variable's own location — Type itself is a value with no
// position of its own once past the syntactic tree).
func (c *ctx) checkTypeShapeOf(loc source.Location, owner string, ty asr.Type) error {
	switch t := ty.(type) {
	case asr.Array:
		if len(t.Dims) == 0 {
			d := diag.New(diag.TypeShape, loc, fmt.Sprintf("%q has array type with rank 0", owner))
			c.ver.Sink.Add(d)
			return diag.NewVerifyAbort(d)
		}
		if _, nested := t.Element.(asr.Array); nested {
			d := diag.New(diag.TypeShape, loc, fmt.Sprintf("%q has an array of array type; arrays cannot nest directly", owner))
			c.ver.Sink.Add(d)
			return diag.NewVerifyAbort(d)
		}
		if _, alloc := t.Element.(asr.Allocatable); alloc {
			d := diag.New(diag.TypeShape, loc, fmt.Sprintf("%q has an array of allocatable type; wrap the array instead", owner))
			c.ver.Sink.Add(d)
			return diag.NewVerifyAbort(d)
		}
	case asr.Allocatable:
		if arr, ok := t.Of.(asr.Array); ok {
			for _, d := range arr.Dims {
				if !d.IsDeferred() {
					diagErr := diag.New(diag.TypeShape, loc,
						fmt.Sprintf("%q is allocatable but declares an explicit (non-deferred) array bound", owner))
					c.ver.Sink.Add(diagErr)
					return diag.NewVerifyAbort(diagErr)
				}
			}
		}
		if _, nested := t.Of.(asr.Allocatable); nested {
			d := diag.New(diag.TypeShape, loc, fmt.Sprintf("%q is allocatable-of-allocatable; allocatable cannot nest", owner))
			c.ver.Sink.Add(d)
			return diag.NewVerifyAbort(d)
		}
		if _, nested := t.Of.(asr.Pointer); nested {
			d := diag.New(diag.TypeShape, loc, fmt.Sprintf("%q is allocatable-of-pointer; the two attributes cannot combine that way", owner))
			c.ver.Sink.Add(d)
			return diag.NewVerifyAbort(d)
		}
	case asr.Pointer:
		if arr, ok := t.Of.(asr.Array); ok {
			for _, d := range arr.Dims {
				if !d.IsDeferred() {
					diagErr := diag.New(diag.TypeShape, loc,
						fmt.Sprintf("%q is a pointer to an array but its shape is not deferred", owner))
					c.ver.Sink.Add(diagErr)
					return diag.NewVerifyAbort(diagErr)
				}
			}
		}
		if _, nested := t.Of.(asr.Pointer); nested {
			d := diag.New(diag.TypeShape, loc, fmt.Sprintf("%q is pointer-to-pointer; pointer cannot nest", owner))
			c.ver.Sink.Add(d)
			return diag.NewVerifyAbort(d)
		}
	}
	return nil
}
