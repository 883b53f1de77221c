package table

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed builtin.toml
var builtinTOML []byte

var (
	builtinOnce  sync.Once
	builtinTable *Table
)

// Builtin returns the table shipped with the module. It is parsed on first
// use; a broken builtin table is a programming error and panics.
func Builtin() *Table {
	builtinOnce.Do(func() {
		t, err := Load(bytes.NewReader(builtinTOML), FormatTOML)
		if err != nil {
			panic(err)
		}
		builtinTable = t
	})
	return builtinTable
}
