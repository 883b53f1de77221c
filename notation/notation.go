// Package notation decodes a typed notation such as "arrow:l:double" into a
// name and a bounded list of modifier tokens.
//
// Grammar:
//
//	notation := name (":" modifier)*
//
// Leading and trailing ':' are ignored. Matching downstream is byte-exact, so
// no case or whitespace normalisation happens here.
package notation

import (
	"strings"

	"github.com/teranos/glyphnote/modifier"
)

// Separator splits the name from its modifiers and modifiers from each other.
const Separator = ':'

// MaxModifiers bounds how many modifier segments Decode consumes.
const MaxModifiers = 8

// Query is a decoded notation. It owns no heap memory: Name borrows from the
// decoded string and modifiers live in a fixed array.
type Query struct {
	Name string

	mods [MaxModifiers]modifier.Modifier
	n    int

	// Dropped counts modifier segments skipped for exceeding modifier.MaxLen.
	Dropped int
}

// Modifiers returns the decoded modifier tokens in input order.
func (q *Query) Modifiers() modifier.Set {
	return q.mods[:q.n]
}

// Decode splits s into a Query. It reports false when s holds no name, i.e.
// when it is empty once surrounding separators are trimmed.
//
// At most MaxModifiers segments after the name are examined; later ones are
// ignored. A segment longer than modifier.MaxLen is dropped and decoding
// continues, so one malformed modifier never hides an otherwise valid name.
// Dropped segments still count toward the MaxModifiers bound.
func Decode(s string) (Query, bool) {
	var q Query

	s = strings.Trim(s, string(Separator))
	if s == "" {
		return q, false
	}

	name, rest, more := strings.Cut(s, string(Separator))
	q.Name = name

	for seen := 0; more && seen < MaxModifiers; seen++ {
		var part string
		part, rest, more = strings.Cut(rest, string(Separator))

		m, ok := modifier.Parse(part)
		if !ok {
			q.Dropped++
			continue
		}
		q.mods[q.n] = m
		q.n++
	}

	return q, true
}

// String renders the query back to canonical notation.
func (q *Query) String() string {
	var b strings.Builder
	b.WriteString(q.Name)
	for _, m := range q.Modifiers() {
		b.WriteByte(Separator)
		b.WriteString(m.String())
	}
	return b.String()
}
