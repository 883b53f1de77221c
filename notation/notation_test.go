package notation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/glyphnote/modifier"
)

func mods(tokens ...string) modifier.Set {
	set := make(modifier.Set, 0, len(tokens))
	for _, tok := range tokens {
		set = append(set, modifier.MustNew(tok))
	}
	return set
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOK    bool
		wantName  string
		wantMods  modifier.Set
		wantDrops int
	}{
		{"bare name", "pi", true, "pi", mods(), 0},
		{"one modifier", "arrow:l", true, "arrow", mods("l"), 0},
		{"two modifiers", "integral:ccw:cont", true, "integral", mods("ccw", "cont"), 0},
		{"surrounding separators", ":arrow:l:", true, "arrow", mods("l"), 0},
		{"many surrounding separators", ":::pi:::", true, "pi", mods(), 0},
		{"empty", "", false, "", nil, 0},
		{"only separators", ":::", false, "", nil, 0},
		{"case preserved", "Arrow:L", true, "Arrow", mods("L"), 0},
		{"whitespace preserved", " pi", true, " pi", mods(), 0},
		{"empty inner segment", "arrow::l", true, "arrow", mods("", "l"), 0},
		{"duplicates kept", "arrow:l:l", true, "arrow", mods("l", "l"), 0},
		{"max length modifier", "x:abcdefgh", true, "x", mods("abcdefgh"), 0},
		{"overlength modifier dropped", "x:abcdefghi", true, "x", mods(), 1},
		{"overlength in the middle", "arrow:l:verylongone:double", true, "arrow", mods("l", "double"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := Decode(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantName, q.Name)
			assert.Equal(t, tt.wantMods, q.Modifiers())
			assert.Equal(t, tt.wantDrops, q.Dropped)
		})
	}
}

func TestDecodeTrimIsIdempotent(t *testing.T) {
	a, okA := Decode(":name:")
	b, okB := Decode("name")
	require.True(t, okA)
	require.True(t, okB)

	assert.Equal(t, a.Name, b.Name)
	assert.Equal(t, a.Modifiers(), b.Modifiers())
}

func TestDecodeBoundsModifierCount(t *testing.T) {
	parts := []string{"n"}
	for i := 0; i < MaxModifiers+3; i++ {
		parts = append(parts, string(rune('a'+i)))
	}

	q, ok := Decode(strings.Join(parts, ":"))
	require.True(t, ok)
	assert.Len(t, q.Modifiers(), MaxModifiers)
	assert.Equal(t, "h", q.Modifiers()[MaxModifiers-1].String())
}

func TestDecodeDroppedSegmentsCountTowardBound(t *testing.T) {
	input := "n:" + strings.Repeat("toolongtoken:", MaxModifiers) + "a"

	q, ok := Decode(input)
	require.True(t, ok)
	assert.Empty(t, q.Modifiers())
	assert.Equal(t, MaxModifiers, q.Dropped)
}

func TestQueryString(t *testing.T) {
	q, ok := Decode(":arrow:l:toolongtoken:double:")
	require.True(t, ok)
	assert.Equal(t, "arrow:l:double", q.String())
}

func TestDecodeDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		q, _ := Decode("integral:ccw:cont")
		if q.n != 2 {
			t.Fatalf("decoded %d modifiers, want 2", q.n)
		}
	})
	assert.Zero(t, allocs)
}
