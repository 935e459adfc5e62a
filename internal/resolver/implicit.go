package resolver

import "github.com/yuvrajsinghgmx/lfortran/internal/asr"

// implicitDict is a scope's letter -> Type policy: the classic Fortran
// rule that an undeclared name's type is determined by its first letter,
// inherited into a child scope and overridable by an `implicit` statement
// in that scope.
type implicitDict struct {
	none    bool
	byLetter [26]asr.Type // nil entries fall back to the default i-n/else rule
}

// defaultImplicitDict is the standard Fortran default: I-N are Integer,
// everything else is Real, unless Options.ImplicitTyping is false, in
// which case `implicit none` is assumed as the strict baseline.
func defaultImplicitDict(typing bool, intKind, realKind int) *implicitDict {
	d := &implicitDict{none: !typing}
	if !typing {
		return d
	}
	for c := byte('a'); c <= 'z'; c++ {
		if c >= 'i' && c <= 'n' {
			d.byLetter[c-'a'] = asr.Integer{Kind: intKind}
		} else {
			d.byLetter[c-'a'] = asr.Real{Kind: realKind}
		}
	}
	return d
}

// clone returns an independent copy for a child scope to inherit and
// mutate without affecting its parent: implicit rules are lexically
// scoped, and a nested scope inherits its enclosing scope's rules unless
// it states its own `implicit`.
func (d *implicitDict) clone() *implicitDict {
	c := *d
	return &c
}

// setNone implements `implicit none`.
func (d *implicitDict) setNone() {
	d.none = true
	for i := range d.byLetter {
		d.byLetter[i] = nil
	}
}

// setRange implements one clause of `implicit <type> (<lo>-<hi>)`.
func (d *implicitDict) setRange(lo, hi byte, t asr.Type) {
	d.none = false
	for c := lo; c <= hi; c++ {
		d.byLetter[c-'a'] = t
	}
}

// lookup returns the implicit type for name's first letter, or false if
// `implicit none` is in effect or the letter was never assigned one
// (non-alphabetic leading character, an internal-only situation since the
// parser collaborator would already reject that lexically).
func (d *implicitDict) lookup(name string) (asr.Type, bool) {
	if d.none || name == "" {
		return nil, false
	}
	c := name[0]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c < 'a' || c > 'z' {
		return nil, false
	}
	t := d.byLetter[c-'a']
	return t, t != nil
}
