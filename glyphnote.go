package glyphnote

import (
	"sync"

	"github.com/teranos/glyphnote/resolve"
	"github.com/teranos/glyphnote/table"
)

var builtinResolver = sync.OnceValue(func() *resolve.Resolver {
	return resolve.MustNew(table.Builtin())
})

// Get returns the builtin symbol for a notation.
func Get(notation string) (rune, bool) {
	return builtinResolver().Resolve(notation)
}

// Lookup returns the builtin table entry a notation resolves to.
func Lookup(notation string) (table.Entry, bool) {
	return builtinResolver().Lookup(notation)
}

// Explain shows how a notation is scored against the builtin table.
func Explain(notation string) resolve.Explanation {
	return builtinResolver().Explain(notation)
}

// Entries lists the builtin table in order.
func Entries() []table.Entry {
	return table.Builtin().Entries()
}
