package asr

import (
	"fmt"
	"strings"
)

// CanonicalName lowercases a name for symbol-table storage and lookup: all
// names in the store are lowercase canonical, and the resolver lowercases
// on insert and on every lookup. Canonicalisation is idempotent:
// CanonicalName(CanonicalName(n)) == CanonicalName(n).
func CanonicalName(name string) string {
	return strings.ToLower(name)
}

// operatorNamePrefix marks a mangled operator-overload-set symbol name,
// e.g. "~~op~~+" or "~~op~~.dot.". The operator spelling after the prefix
// is not itself restricted to identifier characters.
const operatorNamePrefix = "~~op~~"

// ValidateName checks the lexical validity rule: non-empty, ASCII
// alphanumerics plus underscore. User-defined-operator names (which carry
// the "~~op~~" canonical prefix), the reserved "entry__lcompilers" /
// "@generic" mangling suffixes, and the "$"-prefixed names the Resolver
// mints for anonymous BLOCK/ASSOCIATE scopes are accepted as exceptions
// since the Resolver itself manufactures all three and no Fortran source
// can spell them.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("lexical name: empty identifier")
	}
	if strings.HasPrefix(name, operatorNamePrefix) {
		return nil
	}
	for i, r := range name {
		ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' ||
			r == '~' || r == '@' || r == '$' // reserved-prefix / mangling exceptions, see doc comment
		if !ok {
			return fmt.Errorf("lexical name: %q contains invalid character %q at position %d", name, r, i)
		}
	}
	return nil
}
