package resolver

import "github.com/yuvrajsinghgmx/lfortran/internal/asr"

// intrinsicNames is the closed table of intrinsic procedure names that
// isIntrinsic recognizes. The resolver does not bind these names; an
// unresolved name in a body expression is carried unevaluated and is not
// reported as UnresolvedSymbol.
var intrinsicNames = map[string]bool{
	"size": true, "allocated": true, "associated": true, "present": true,
	"len": true, "len_trim": true, "trim": true, "adjustl": true, "adjustr": true,
	"abs": true, "min": true, "max": true, "mod": true, "modulo": true,
	"sqrt": true, "exp": true, "log": true, "sin": true, "cos": true, "tan": true,
	"real": true, "int": true, "nint": true, "floor": true, "ceiling": true,
	"kind": true, "selected_int_kind": true, "selected_real_kind": true,
	"merge": true, "transfer": true, "reshape": true, "shape": true,
	"lbound": true, "ubound": true, "null": true, "bit_size": true,
}

// isIntrinsic reports whether name is a recognized intrinsic procedure.
func isIntrinsic(name string) bool {
	return intrinsicNames[asr.CanonicalName(name)]
}
