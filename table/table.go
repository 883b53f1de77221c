// Package table holds the immutable symbol table that notations resolve
// against.
//
// A Table is a flat list of (notation, symbol) entries sorted by name, with
// every entry for one name kept contiguous and in the order the author wrote
// them. That order is significant: when two candidates score the same, the
// earlier one wins. New enforces the layout once, at construction, because
// nothing checks it again at lookup time.
package table

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"

	"github.com/teranos/glyphnote/errors"
	"github.com/teranos/glyphnote/modifier"
)

// Entry pairs a notation ("name:mod:mod") with the symbol it produces.
type Entry struct {
	Notation string
	Symbol   rune
}

// Name returns the part of the notation before the first ':'.
func (e Entry) Name() string {
	name, _, _ := strings.Cut(e.Notation, ":")
	return name
}

// Modifiers returns the raw modifier segments of the notation.
func (e Entry) Modifiers() []string {
	_, rest, ok := strings.Cut(e.Notation, ":")
	if !ok {
		return nil
	}
	return strings.Split(rest, ":")
}

// Table is a validated, name-sorted symbol table. It is never modified after
// New returns and is safe to share between goroutines.
type Table struct {
	entries   []Entry
	names     []string
	modifiers []modifier.Set
	digest    uint64
}

type row struct {
	entry Entry
	name  string
	mods  modifier.Set
}

// New sorts entries by name and validates them. The sort is stable, so entries
// sharing a name keep their relative order. The input slice is not modified.
//
// Rejected: an empty name, an empty modifier segment, a modifier longer than
// modifier.MaxLen, a symbol that is not a valid non-zero rune, and a notation
// that appears twice. All errors wrap errors.ErrInvalidTable.
func New(entries []Entry) (*Table, error) {
	rows := make([]row, len(entries))
	seen := make(map[string]int, len(entries))

	for i, e := range entries {
		r, err := parseEntry(e)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "entry %d (%q)", i, e.Notation), errors.ErrInvalidTable)
		}
		if prev, dup := seen[e.Notation]; dup {
			return nil, errors.NewInvalidTableError("entry %d (%q) duplicates entry %d", i, e.Notation, prev)
		}
		seen[e.Notation] = i
		rows[i] = r
	}

	slices.SortStableFunc(rows, func(a, b row) int {
		return strings.Compare(a.name, b.name)
	})

	t := &Table{
		entries:   make([]Entry, len(rows)),
		names:     make([]string, len(rows)),
		modifiers: make([]modifier.Set, len(rows)),
	}
	h := xxhash.New()
	for i, r := range rows {
		t.entries[i] = r.entry
		t.names[i] = r.name
		t.modifiers[i] = r.mods

		_, _ = h.WriteString(r.entry.Notation)
		_, _ = h.Write(utf8.AppendRune([]byte{0}, r.entry.Symbol))
		_, _ = h.Write([]byte{0})
	}
	t.digest = h.Sum64()

	return t, nil
}

// MustNew is like New but panics. Use it for tables declared in code.
func MustNew(entries []Entry) *Table {
	t, err := New(entries)
	if err != nil {
		panic(err)
	}
	return t
}

func parseEntry(e Entry) (row, error) {
	if e.Symbol == 0 || e.Symbol == utf8.RuneError || !utf8.ValidRune(e.Symbol) {
		return row{}, errors.Newf("invalid symbol %U", e.Symbol)
	}

	name, rest, hasMods := strings.Cut(e.Notation, ":")
	if name == "" {
		return row{}, errors.New("empty name")
	}

	r := row{entry: e, name: name}
	if !hasMods {
		return r, nil
	}

	for _, part := range strings.Split(rest, ":") {
		if part == "" {
			return row{}, errors.New("empty modifier")
		}
		m, err := modifier.New(part)
		if err != nil {
			return row{}, err
		}
		r.mods = append(r.mods, m)
	}
	return r, nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// At returns the i-th entry in table order.
func (t *Table) At(i int) Entry {
	return t.entries[i]
}

// ModifiersAt returns the packed modifiers of the i-th entry. The returned
// set is shared; callers must not modify it.
func (t *Table) ModifiersAt(i int) modifier.Set {
	return t.modifiers[i]
}

// Entries returns a copy of every entry in table order.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Candidates returns the half-open index range [lo, hi) of entries whose name
// is exactly name. The range is empty when the table has no such name.
func (t *Table) Candidates(name string) (lo, hi int) {
	lo, _ = slices.BinarySearch(t.names, name)
	hi = lo
	for hi < len(t.names) && t.names[hi] == name {
		hi++
	}
	return lo, hi
}

// Digest is an xxhash64 over the entries in table order. Two tables with the
// same digest resolve every notation identically.
func (t *Table) Digest() uint64 {
	return t.digest
}
