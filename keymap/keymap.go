// Package keymap maps script characters to the three-byte key descriptors
// understood by the injection hardware.
package keymap

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/go-homedir"

	"github.com/deepnoodle-ai/ahiru/errors"
)

// BuiltinPrefix selects an embedded layout when passed to Load, e.g.
// "builtin:us".
const BuiltinPrefix = "builtin:"

//go:embed layouts/*.json
var layouts embed.FS

// Descriptor is the hardware description of a single key press.
type Descriptor struct {
	Modifier byte
	Reserved byte
	Keycode  byte
}

// String returns the descriptor in its "h0,h1,h2" file form.
func (d Descriptor) String() string {
	return fmt.Sprintf("%02x,%02x,%02x", d.Modifier, d.Reserved, d.Keycode)
}

// Lookup resolves a character to its key descriptor. The compiler depends
// only on this interface.
type Lookup interface {
	Lookup(r rune) (Descriptor, bool)
}

// Map is a read-only key map backed by a Go map.
type Map map[rune]Descriptor

// Lookup implements the Lookup interface.
func (m Map) Lookup(r rune) (Descriptor, bool) {
	d, ok := m[r]
	return d, ok
}

// Runes returns the mapped characters in ascending order.
func (m Map) Runes() []rune {
	runes := make([]rune, 0, len(m))
	for r := range m {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

// Chord identifies a key press on the wire: keycode then modifier.
type Chord struct {
	Keycode  byte
	Modifier byte
}

// Reverse maps wire chords back to characters. When several characters share
// a chord the lowest rune wins.
func (m Map) Reverse() map[Chord]rune {
	rev := make(map[Chord]rune, len(m))
	for _, r := range m.Runes() {
		d := m[r]
		chord := Chord{Keycode: d.Keycode, Modifier: d.Modifier}
		if _, exists := rev[chord]; !exists {
			rev[chord] = r
		}
	}
	return rev
}

// ParseDescriptor parses a comma separated hex triple such as "02,00,0b".
func ParseDescriptor(s string) (Descriptor, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Descriptor{}, fmt.Errorf("expected 3 comma separated bytes, got %d", len(parts))
	}
	var values [3]byte
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 16, 8)
		if err != nil {
			return Descriptor{}, fmt.Errorf("byte %d: %w", i, err)
		}
		values[i] = byte(v)
	}
	return Descriptor{Modifier: values[0], Reserved: values[1], Keycode: values[2]}, nil
}

type entry struct {
	key   string
	value string
}

// build validates every entry, reporting all bad entries at once.
func build(entries []entry) (Map, error) {
	var result *multierror.Error
	m := make(Map, len(entries))
	for _, e := range entries {
		if utf8.RuneCountInString(e.key) != 1 {
			result = multierror.Append(result, &errors.KeymapError{
				ErrCode: errors.E3002,
				Key:     e.key,
				Value:   e.value,
				Cause:   fmt.Errorf("key must be a single character"),
			})
			continue
		}
		d, err := ParseDescriptor(e.value)
		if err != nil {
			result = multierror.Append(result, &errors.KeymapError{
				ErrCode: errors.E3001,
				Key:     e.key,
				Value:   e.value,
				Cause:   err,
			})
			continue
		}
		r, _ := utf8.DecodeRuneInString(e.key)
		m[r] = d
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return m, nil
}

// Load reads a key map from the given path. Files ending in ".toml" are read
// as TOML; anything else is read as JSON. Paths starting with BuiltinPrefix
// select an embedded layout.
func Load(path string) (Map, error) {
	if name, ok := strings.CutPrefix(path, BuiltinPrefix); ok {
		return Builtin(name)
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(expanded)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m Map
	switch strings.ToLower(filepath.Ext(expanded)) {
	case ".toml":
		m, err = LoadTOML(f)
	default:
		m, err = LoadJSON(f)
	}
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return m, nil
}

// Builtin returns one of the embedded layouts by name.
func Builtin(name string) (Map, error) {
	f, err := layouts.Open("layouts/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("unknown builtin keymap %q", name)
	}
	defer f.Close()
	return LoadJSON(f)
}

// BuiltinNames lists the embedded layouts.
func BuiltinNames() []string {
	entries, _ := layouts.ReadDir("layouts")
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
