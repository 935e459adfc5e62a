// Package source defines the minimal position information threaded through
// the ASR: every syntactic node the parser hands us, and every diagnostic we
// raise about it, carries one of these.
package source

import "fmt"

// File is an opaque, process-unique identifier for a source file. The
// Resolver never opens files itself; a File is whatever the parser
// collaborator assigned when it produced the syntactic tree.
type File int

// Location is a half-open byte range within a single File: a file-id,
// first-offset, last-offset triple.
type Location struct {
	File  File
	Start int
	End   int
}

// None is the zero Location, used for synthesized symbols (e.g. the
// compiler-generated ENTRY master function) that have no direct syntactic
// counterpart.
var None = Location{}

func (l Location) IsNone() bool {
	return l == None
}

func (l Location) String() string {
	return fmt.Sprintf("file%d:%d-%d", l.File, l.Start, l.End)
}
