package glyphnote

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/glyphnote/logger"
)

func TestGet(t *testing.T) {
	tests := []struct {
		notation string
		want     rune
	}{
		{"pi", 'π'},
		{"in", '∈'},
		{"arrow", '→'},
		{"arrow:l", '←'},
		{"arrow:u", '↑'},
		{"arrow:l:r", '↔'},
		{"arrow:r:l", '↔'},
		{"arrow:double", '⇒'},
		{"arrow:l:double", '⇐'},
		{"integral", '∫'},
		{"integral:cont", '∮'},
		{"integral:ccw:cont", '∳'},
		{"integral:cont:ccw", '∳'},
		{"face:grin", '😀'},
		{"turtle", '🐢'},
		{"triangle", '▷'},
		{"triangle:filled", '▶'},
		{"triangle:filled:l", '◀'},
		{"lt", '<'},
		{"lt:eq", '≤'},
		{":pi:", 'π'},
		{"Gamma", 'Γ'},
		{"gamma", 'γ'},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			got, ok := Get(tt.notation)
			require.True(t, ok)
			assert.Equal(t, string(tt.want), string(got))
		})
	}
}

func TestGetNotFound(t *testing.T) {
	for _, s := range []string{"nonexistant", "", ":", "ar", "PI", "arrow ", "arrow-l"} {
		_, ok := Get(s)
		assert.False(t, ok, "Get(%q)", s)
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("arrow")
	require.True(t, ok)
	assert.Equal(t, "arrow:r", e.Notation)
}

func TestExplain(t *testing.T) {
	x := Explain("arrow")
	w, ok := x.Winner()
	require.True(t, ok)
	assert.Equal(t, "arrow:r", w.Entry.Notation)
	assert.Equal(t, []string{"r"}, x.Defaults)
	assert.Greater(t, len(x.Candidates), 4)
}

func TestEntries(t *testing.T) {
	entries := Entries()
	require.NotEmpty(t, entries)

	// Every entry resolves, though not necessarily to itself: an entry that
	// scores the same as an earlier one is unreachable by its own notation.
	for _, e := range entries {
		_, ok := Get(e.Notation)
		assert.True(t, ok, e.Notation)
	}
}

func TestEntriesAreReachable(t *testing.T) {
	for _, e := range Entries() {
		got, ok := Lookup(e.Notation)
		require.True(t, ok, e.Notation)
		assert.Equal(t, e.Notation, got.Notation, "builtin entry %q is shadowed", e.Notation)
	}
}

func TestGetLogsThroughLoggerSetUpLater(t *testing.T) {
	// First use happens before logging is configured.
	_, _ = Get("pi")

	prev := logger.Logger
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Logger = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Logger = prev })

	_, ok := Get("nonexistant")
	require.False(t, ok)

	misses := logs.FilterMessage("No symbol for notation").All()
	require.Len(t, misses, 1)
	assert.Equal(t, "nonexistant", misses[0].ContextMap()["notation"])
}

func ExampleGet() {
	for _, s := range []string{"pi", "arrow", "arrow:l", "integral:ccw:cont", "nonexistant"} {
		sym, ok := Get(s)
		if !ok {
			fmt.Printf("%s: not found\n", s)
			continue
		}
		fmt.Printf("%s: %c\n", s, sym)
	}
	// Output:
	// pi: π
	// arrow: →
	// arrow:l: ←
	// integral:ccw:cont: ∳
	// nonexistant: not found
}
