package main

import (
	"github.com/yuvrajsinghgmx/lfortran/internal/ast"
)

// demoTranslationUnit builds the syntactic tree a parser would hand the
// resolver for:
//
//	program demo
//	  implicit none
//	  real :: radius
//	  real :: area
//	  radius = 2.0
//	  area = radius
//	end program demo
//
// just enough structure to exercise implicit-none enforcement, a type
// declaration, and a body assignment through the real pipeline.
func demoTranslationUnit() *ast.TranslationUnit {
	decls := []ast.Statement{
		&ast.ImplicitStatement{None: true},
		&ast.Declaration{
			Type:        ast.TypeSpec{Keyword: "real"},
			Declarators: []ast.Declarator{{Name: "radius"}},
		},
		&ast.Declaration{
			Type:        ast.TypeSpec{Keyword: "real"},
			Declarators: []ast.Declarator{{Name: "area"}},
		},
	}
	body := []ast.Statement{
		&ast.Assignment{
			Lhs: &ast.Identifier{Name: "radius"},
			Rhs: &ast.RealLiteral{Text: "2.0"},
		},
		&ast.Assignment{
			Lhs: &ast.Identifier{Name: "area"},
			Rhs: &ast.Identifier{Name: "radius"},
		},
	}

	prog := &ast.ProgramDecl{Name: "demo", Decls: decls, Body: body}
	return &ast.TranslationUnit{Items: []ast.Statement{prog}}
}
