// Package config holds the resolver's compile-time options: the knobs that
// belong in a configuration option rather than in the core algorithm.
// Options are typically loaded from a small YAML file, the same
// ext.Config/funxy.yaml pattern funxy itself uses, but tests and embedders
// may also build one by hand.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ABI names the calling convention a Function or Variable without an
// explicit bind(c) uses by default.
type ABI string

const (
	ABINative ABI = "native"
	ABIC      ABI = "bindc"
)

// Options configures a single Resolver run.
type Options struct {
	// ImplicitTyping enables Fortran's legacy letter->type default-typing
	// rule. When false, no name is implicitly typed: every scope starts as
	// if "implicit none" were in effect, so an undeclared dummy argument or
	// result name is an UnresolvedSymbol error. A scope without an explicit
	// "implicit none" statement is not itself an error.
	ImplicitTyping bool `yaml:"implicit_typing"`

	// ContinueOnError controls the failure mode: when true, a scope with a
	// semantic error drops the offending declaration and keeps resolving;
	// when false, the first error unwinds resolution of the enclosing
	// translation unit.
	ContinueOnError bool `yaml:"continue_on_error"`

	// DefaultABI is the ABI tag assigned to a Function or Variable that
	// carries no bind(c) attribute.
	DefaultABI ABI `yaml:"default_abi"`

	// DefaultIntegerKind and DefaultRealKind are the kind constants used
	// when the implicit dictionary (or an explicit declaration) names a
	// type without a kind selector.
	DefaultIntegerKind int `yaml:"default_integer_kind"`
	DefaultRealKind    int `yaml:"default_real_kind"`
}

// Default returns the strict baseline: implicit typing off, abort on the
// first error, native ABI, 4-byte integer and real kinds.
func Default() Options {
	return Options{
		ImplicitTyping:     false,
		ContinueOnError:    false,
		DefaultABI:         ABINative,
		DefaultIntegerKind: 4,
		DefaultRealKind:    4,
	}
}

// Load reads Options from a YAML file, starting from Default() so that a
// file which only overrides one field still gets sane values for the rest.
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return opts, nil
}
