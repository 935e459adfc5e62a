// Package prettyprinter renders a resolved ASR tree as indented text, for
// debugging and golden-output tests — the same role funxy's own
// prettyprinter package plays for its AST, just aimed at the ASR instead.
package prettyprinter

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/nameutil"
)

// Dumper writes an indented dump of an ASR tree.
type Dumper struct {
	buf    bytes.Buffer
	indent int
}

// NewDumper returns an empty Dumper.
func NewDumper() *Dumper {
	return &Dumper{}
}

func (d *Dumper) writeLine(format string, args ...interface{}) {
	for i := 0; i < d.indent; i++ {
		d.buf.WriteString("  ")
	}
	fmt.Fprintf(&d.buf, format, args...)
	d.buf.WriteByte('\n')
}

// DumpTranslationUnit renders the translation-unit header and the root
// table; top-level items are not rendered.
func (d *Dumper) DumpTranslationUnit(tu *asr.TranslationUnit) string {
	d.buf.Reset()
	d.indent = 0
	d.writeLine("translation-unit")
	d.indent++
	d.dumpTable(tu.Table)
	d.indent--
	return d.buf.String()
}

// DumpTable renders one symbol table's entries in canonical-name order,
// recursing into any nested table a symbol owns.
func (d *Dumper) DumpTable(t *asr.Table) string {
	d.buf.Reset()
	d.indent = 0
	d.dumpTable(t)
	return d.buf.String()
}

func (d *Dumper) dumpTable(t *asr.Table) {
	names := make([]string, 0, len(t.All()))
	for name := range t.All() {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sym := t.All()[name]
		d.dumpSymbol(name, sym)
	}
}

func (d *Dumper) dumpSymbol(name string, sym asr.Symbol) {
	switch s := sym.(type) {
	case *asr.Program:
		d.writeLine("program %s", name)
		d.withIndent(func() { d.dumpTable(s.Table) })
	case *asr.Module:
		tag := "module"
		if s.ParentModule != "" {
			tag = fmt.Sprintf("submodule(%s)", s.ParentModule)
		}
		d.writeLine("%s %s", tag, name)
		d.withIndent(func() { d.dumpTable(s.Table) })
	case *asr.Function:
		kind := "subroutine"
		if s.Signature.ReturnType != nil {
			kind = "function"
		}
		extra := ""
		if s.EntryOf != "" {
			extra = fmt.Sprintf(" (entry of %s)", s.EntryOf)
		}
		d.writeLine("%s %s/%d%s", kind, name, len(s.Signature.ArgTypes), extra)
	case *asr.Variable:
		d.writeLine("variable %s : %s", name, s.Type)
	case *asr.Struct:
		parent := ""
		if s.Parent != nil {
			parent = " extends " + s.Parent.Name()
		}
		d.writeLine("type %s%s", name, parent)
		d.withIndent(func() { d.dumpTable(s.Table) })
	case *asr.Enum:
		d.writeLine("enum %s (%d members)", name, len(s.Members))
	case *asr.Union:
		d.writeLine("union %s (%d members)", name, len(s.Members))
	case *asr.GenericProcedure:
		d.writeLine("generic %s (%d procedures)", name, len(s.Procedures))
	case *asr.CustomOperator:
		d.writeLine("operator %s (%d procedures)", name, len(s.Procedures))
	case *asr.StructMethodDeclaration:
		d.writeLine("procedure %s => %s", name, s.ProcName)
	case *asr.ExternalSymbol:
		d.writeLine("external %s => %s", name, nameutil.QualifiedName(s.ModuleName, s.OriginalName))
	case *asr.AssociateBlock:
		d.writeLine("associate %s", name)
		d.withIndent(func() { d.dumpTable(s.Table) })
	case *asr.Block:
		d.writeLine("block %s", name)
		d.withIndent(func() { d.dumpTable(s.Table) })
	case *asr.Requirement:
		d.writeLine("requirement %s(%v)", name, s.Parameters)
	case *asr.Template:
		d.writeLine("template %s(%v)", name, s.Parameters)
		d.withIndent(func() { d.dumpTable(s.Table) })
	default:
		d.writeLine("%s %T", name, s)
	}
}

func (d *Dumper) withIndent(f func()) {
	d.indent++
	f()
	d.indent--
}
