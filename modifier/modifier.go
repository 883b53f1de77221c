// Package modifier implements the compact modifier token: a modifier name of
// at most eight bytes packed into a uint64, so two tokens compare equal
// exactly when their text is equal.
package modifier

import (
	"encoding/binary"
	"strings"

	"github.com/teranos/glyphnote/errors"
)

// MaxLen is the capacity of a Modifier in bytes.
const MaxLen = 8

// Modifier is a packed modifier name. The zero value is the empty token.
type Modifier uint64

// Parse packs s into a Modifier. It reports false if s is longer than MaxLen.
func Parse(s string) (Modifier, bool) {
	if len(s) > MaxLen {
		return 0, false
	}
	var buf [MaxLen]byte
	copy(buf[:], s)
	return Modifier(binary.BigEndian.Uint64(buf[:])), true
}

// New packs s into a Modifier, returning an error wrapping
// errors.ErrModifierTooLong if it does not fit.
func New(s string) (Modifier, error) {
	m, ok := Parse(s)
	if !ok {
		return 0, errors.WithHintf(
			errors.Wrapf(errors.ErrModifierTooLong, "%q is %d bytes", s, len(s)),
			"modifiers are at most %d bytes", MaxLen)
	}
	return m, nil
}

// MustNew is like New but panics. Use it for statically declared tokens.
func MustNew(s string) Modifier {
	m, err := New(s)
	if err != nil {
		panic(err)
	}
	return m
}

// String returns the token text with the zero padding removed.
func (m Modifier) String() string {
	var buf [MaxLen]byte
	binary.BigEndian.PutUint64(buf[:], uint64(m))
	return strings.TrimRight(string(buf[:]), "\x00")
}

// Set is a small unordered collection of modifiers. Membership is a linear
// scan; sets hold at most a handful of tokens.
type Set []Modifier

// ParseSet packs every token, failing on the first one that does not fit.
func ParseSet(tokens ...string) (Set, error) {
	set := make(Set, 0, len(tokens))
	for _, tok := range tokens {
		m, err := New(tok)
		if err != nil {
			return nil, err
		}
		set = append(set, m)
	}
	return set, nil
}

// Contains reports whether m is in the set.
func (s Set) Contains(m Modifier) bool {
	for _, x := range s {
		if x == m {
			return true
		}
	}
	return false
}

// Strings returns the text of every token, in order.
func (s Set) Strings() []string {
	out := make([]string, len(s))
	for i, m := range s {
		out[i] = m.String()
	}
	return out
}
