package modifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/glyphnote/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
	}{
		{"empty", "", true},
		{"single byte", "r", true},
		{"typical", "ccw", true},
		{"exactly max length", "abcdefgh", true},
		{"one byte over", "abcdefghi", false},
		{"multibyte within capacity", "ß→", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Parse(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.input, m.String())
			}
		})
	}
}

func TestEqualTextEqualValue(t *testing.T) {
	a, _ := Parse("cont")
	b, _ := Parse("cont")
	c, _ := Parse("conta")
	d, _ := Parse("con")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}

func TestPackingIsBigEndian(t *testing.T) {
	m, ok := Parse("a")
	require.True(t, ok)
	assert.Equal(t, Modifier(0x61<<56), m)

	zero, ok := Parse("")
	require.True(t, ok)
	assert.Equal(t, Modifier(0), zero)
}

func TestNewTooLong(t *testing.T) {
	_, err := New("clockwise")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrModifierTooLong))
	assert.Contains(t, err.Error(), `"clockwise"`)
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestMustNew(t *testing.T) {
	assert.Equal(t, "filled", MustNew("filled").String())
	assert.Panics(t, func() { MustNew("overlength") })
}

func TestSet(t *testing.T) {
	set, err := ParseSet("r", "filled")
	require.NoError(t, err)

	assert.True(t, set.Contains(MustNew("r")))
	assert.True(t, set.Contains(MustNew("filled")))
	assert.False(t, set.Contains(MustNew("l")))
	assert.Equal(t, []string{"r", "filled"}, set.Strings())

	_, err = ParseSet("r", "waytoolong")
	assert.True(t, errors.IsModifierTooLongError(err))

	var empty Set
	assert.False(t, empty.Contains(0))
}
