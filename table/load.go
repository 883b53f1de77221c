package table

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/glyphnote/errors"
)

// Format names a table file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// fileEntry is one table row as written in a file. Symbol is either the
// character itself ("→") or its code point ("U+2192").
type fileEntry struct {
	Notation string `toml:"notation" yaml:"notation"`
	Symbol   string `toml:"symbol" yaml:"symbol"`
}

type file struct {
	Symbols []fileEntry `toml:"symbol" yaml:"symbol"`
}

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.WithHint(
			errors.Wrapf(errors.ErrUnsupportedFormat, "%s", path),
			"use a .toml, .yaml or .yml file")
	}
}

// LoadFile reads and validates a table file. The format follows the file
// extension.
func LoadFile(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open table %s", path)
	}
	defer f.Close()

	t, err := Load(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load table %s", path)
	}
	return t, nil
}

// Load decodes a table from r. Unknown keys are rejected in both formats so
// that a misspelt field fails loudly instead of producing empty entries.
func Load(r io.Reader, format Format) (*Table, error) {
	var f file

	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "failed to decode TOML"), errors.ErrInvalidTable)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		// An empty document is an empty table.
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Mark(errors.Wrap(err, "failed to decode YAML"), errors.ErrInvalidTable)
		}
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "%q", string(format))
	}

	entries := make([]Entry, len(f.Symbols))
	for i, fe := range f.Symbols {
		sym, err := ParseSymbol(fe.Symbol)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "entry %d (%q)", i, fe.Notation), errors.ErrInvalidTable)
		}
		entries[i] = Entry{Notation: fe.Notation, Symbol: sym}
	}

	return New(entries)
}

// ParseSymbol accepts a single character or a "U+XXXX" code point.
func ParseSymbol(s string) (rune, error) {
	if hex, ok := strings.CutPrefix(s, "U+"); ok && len(hex) >= 4 {
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid code point %q", s)
		}
		return rune(n), nil
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, errors.Newf("symbol %q is not exactly one character", s)
	}
	return r, nil
}
