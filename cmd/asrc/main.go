// Command asrc is a minimal driver demonstrating the Parse -> Resolve ->
// Verify pipeline end to end. It has no lexer/parser of its own: it builds
// a small fixed syntactic tree in memory and runs it through
// internal/resolver and internal/verifier, printing the resulting ASR and
// any diagnostics — just enough to see the pipeline run next to the full
// funxy CLI this layout is patterned after.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/yuvrajsinghgmx/lfortran/internal/config"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
	"github.com/yuvrajsinghgmx/lfortran/internal/nameutil"
	"github.com/yuvrajsinghgmx/lfortran/internal/pipeline"
	"github.com/yuvrajsinghgmx/lfortran/internal/prettyprinter"
)

func main() {
	opts := config.Default()
	configPath := ""

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-config", "--config":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "asrc: -config requires a path")
				os.Exit(2)
			}
			configPath = args[i+1]
			i++
		case "-implicit-typing":
			opts.ImplicitTyping = true
		case "-continue-on-error":
			opts.ContinueOnError = true
		case "-help", "--help":
			printUsage()
			return
		default:
			fmt.Fprintf(os.Stderr, "asrc: unrecognized argument %q\n", args[i])
			printUsage()
			os.Exit(2)
		}
	}

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "asrc: %v\n", err)
			os.Exit(1)
		}
		opts = loaded
	}

	ctx := pipeline.NewContext("<builtin demo>", demoTranslationUnit())
	pl := pipeline.New(
		pipeline.NewResolveProcessor(opts),
		pipeline.NewVerifyProcessor(false),
	)
	result := pl.Run(ctx)

	printDiagnostics(result.Sink, isColorTerminal())

	if result.Resolved != nil {
		dumper := prettyprinter.NewDumper()
		fmt.Print(dumper.DumpTranslationUnit(result.Resolved))
	}

	if result.Err != nil || result.Sink.HasError() {
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "usage: asrc [-config path] [-implicit-typing] [-continue-on-error]\n")
}

// isColorTerminal reports whether stdout is an interactive terminal, used
// to decide whether to colorize output.
func isColorTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func printDiagnostics(sink *diag.Sink, color bool) {
	for _, d := range sink.Items() {
		severity := "warning"
		code := codeColor(color, "33") // yellow
		if d.Severity == diag.SeverityError {
			severity = "error"
			code = codeColor(color, "31") // red
		}
		reset := codeColor(color, "0")
		fmt.Fprintf(os.Stderr, "%s%s: %s: %s%s (%s)\n", code, d.Location, severity, d.Message, reset, d.Code)
	}
}

func codeColor(enabled bool, ansi string) string {
	if !enabled {
		return ""
	}
	return "\x1b[" + ansi + "m"
}

// demoModuleFileName is the module name ("geometry") that nameutil derives
// from the path "./geometry.f90"; the demo program itself declares no
// module.
var demoModuleFileName = nameutil.ModuleNameFromPath(nameutil.ResolveImportPath(".", "./geometry.f90"))
