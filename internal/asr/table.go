package asr

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// counterSeq is the process-wide monotonic symbol-table-ID issuer: the
// counter is unique across the process and must stay thread-safe when a
// driver compiles several units in parallel. A package-level atomic is the
// only process-wide state this package needs to carry.
var counterSeq atomic.Uint64

// ResetCounterSeq reassigns the next-issued counter to start again from 1.
// Exposed for tests and for a host driver beginning a wholly fresh
// compilation, where the counter must be just as initialisable and
// thread-safe as it was the first time.
func ResetCounterSeq() {
	counterSeq.Store(0)
}

func nextCounter() uint64 {
	return counterSeq.Add(1)
}

// Table is a SymbolTable: a mapping from lowercase name to symbol, plus a
// unique counter, an optional parent, and the single ASR node that owns
// it.
//
// Insertion order is not preserved by the underlying map, but Names()
// returns a lexicographically sorted view so that diagnostics and
// dependency lists stay deterministic across runs: iteration order must be
// stable within a run.
type Table struct {
	counter uint64
	parent  *Table
	owner   Node
	store   map[string]Symbol
}

// NewTable is the first step of the symbol store's two-step table
// construction: it returns a fresh empty table with a monotone counter.
// The owner field is set in a second step once the owning ASR node is
// constructed. parent may be nil only for the translation-unit table.
func NewTable(parent *Table) *Table {
	return &Table{
		counter: nextCounter(),
		parent:  parent,
		store:   make(map[string]Symbol),
	}
}

// SetOwner is the second step: attaches the ASR node that owns this table.
// Invariant: owner.symtab == T ⇔ T.asr_owner == owner; callers are
// responsible for also storing T on owner's own Table field so both
// directions hold once this returns.
func (t *Table) SetOwner(owner Node) {
	t.owner = owner
}

// Counter is this table's process-unique ID.
func (t *Table) Counter() uint64 { return t.counter }

// Parent is the lexically enclosing table, or nil for the translation-unit
// table: the parent of the translation-unit table is absent, and every
// other table has a non-absent parent.
func (t *Table) Parent() *Table { return t.parent }

// Owner is the ASR node this table belongs to.
func (t *Table) Owner() Node { return t.owner }

// DuplicateSymbolError is returned by AddSymbol when name is already bound
// in this table.
type DuplicateSymbolError struct {
	Name string
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("duplicate symbol: %q is already defined in this scope", e.Name)
}

// AddSymbol inserts sym under name, lowercased, failing with
// DuplicateSymbolError when the name is already present.
func (t *Table) AddSymbol(name string, sym Symbol) error {
	key := CanonicalName(name)
	if _, exists := t.store[key]; exists {
		return &DuplicateSymbolError{Name: name}
	}
	t.store[key] = sym
	return nil
}

// AddSymbolOverwrite inserts sym under name unconditionally, replacing any
// existing binding. This is the overwrite-semantics opt-in used for
// module-import shadowing, where a later `use` legitimately replaces an
// earlier one under the same local name.
func (t *Table) AddSymbolOverwrite(name string, sym Symbol) {
	t.store[CanonicalName(name)] = sym
}

// GetSymbol is a local (non-walking) lookup.
func (t *Table) GetSymbol(name string) (Symbol, bool) {
	sym, ok := t.store[CanonicalName(name)]
	return sym, ok
}

// ResolveSymbol walks the parent chain, returning the nearest binding.
func (t *Table) ResolveSymbol(name string) (Symbol, *Table, bool) {
	for cur := t; cur != nil; cur = cur.parent {
		if sym, ok := cur.store[CanonicalName(name)]; ok {
			return sym, cur, true
		}
	}
	return nil, nil, false
}

// Names returns every locally-bound name in this table, in stable
// (lexicographic) order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.store))
	for k := range t.store {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// All returns every locally-bound symbol keyed by canonical name. It is
// the table's own map, so iterating it gives no stable order; callers that
// walk entries deterministically iterate Names() and index into it.
func (t *Table) All() map[string]Symbol {
	return t.store
}

// IsAncestorOf reports whether t is other, or lexically encloses it by
// walking other's parent chain — the "reachable from the current scope via
// the parent chain" test reference-integrity checking relies on.
func (t *Table) IsAncestorOf(other *Table) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == t {
			return true
		}
	}
	return false
}

// FindScoped performs the multi-hop lookup ExternalSymbol resolution
// needs: starting from originModule's own table, walk scopePath as a
// sequence of nested-scope names (used for Struct/Enum/Union-qualified
// original names), then look up originalName locally.
func FindScoped(originModule *Table, originalName string, scopePath []string) (Symbol, bool) {
	cur := originModule
	for _, step := range scopePath {
		sym, ok := cur.GetSymbol(step)
		if !ok {
			return nil, false
		}
		owned, ok := ownTable(sym)
		if !ok {
			return nil, false
		}
		cur = owned
	}
	return cur.GetSymbol(originalName)
}

// ownTable returns the Table a Symbol owns, if it owns one.
func ownTable(sym Symbol) (*Table, bool) {
	switch s := sym.(type) {
	case *Module:
		return s.Table, true
	case *Program:
		return s.Table, true
	case *Function:
		return s.Table, true
	case *Struct:
		return s.Table, true
	case *Enum:
		return s.Table, true
	case *Union:
		return s.Table, true
	case *AssociateBlock:
		return s.Table, true
	case *Block:
		return s.Table, true
	case *Requirement:
		return s.Table, true
	case *Template:
		return s.Table, true
	}
	return nil, false
}

// GetPastExternal follows an ExternalSymbol exactly one step. Calling it
// on a non-ExternalSymbol returns sym unchanged.
func GetPastExternal(sym Symbol) Symbol {
	if ext, ok := sym.(*ExternalSymbol); ok {
		return ext.External
	}
	return sym
}
