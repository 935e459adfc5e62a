// Package nameutil holds the small path/name helpers a driver needs to
// turn a `use` module name into a source file to hand the resolver, and
// back again — the same narrow role funxy's own internal/utils package
// plays for its own import paths.
package nameutil

import "path/filepath"

// SourceExtensions lists the file extensions a driver recognizes as
// Fortran source.
var SourceExtensions = []string{".f90", ".f95", ".f03", ".f08"}

// HasSourceExt reports whether path ends in one of SourceExtensions.
func HasSourceExt(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range SourceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// TrimSourceExt removes a recognized source extension from name, if present.
func TrimSourceExt(name string) string {
	if HasSourceExt(name) {
		return name[:len(name)-len(filepath.Ext(name))]
	}
	return name
}

// ResolveImportPath resolves a relative module path against baseDir,
// leaving an absolute or bare module name untouched.
func ResolveImportPath(baseDir, importPath string) string {
	if len(importPath) > 0 && importPath[0] == '.' && baseDir != "." && baseDir != "" {
		return filepath.Join(baseDir, importPath)
	}
	return importPath
}

// ModuleNameFromPath derives the module name a driver should expect a
// `module` statement in path to declare, by stripping directory and
// source extension from its base name.
func ModuleNameFromPath(path string) string {
	return TrimSourceExt(filepath.Base(path))
}

// ModuleDir returns the directory a module path's sibling sources live in:
// path's own directory when path names a file, or path itself otherwise.
func ModuleDir(path string) string {
	if HasSourceExt(path) {
		return filepath.Dir(path)
	}
	return path
}
