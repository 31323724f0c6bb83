package keymap

import (
	"io"
	"sort"

	"github.com/BurntSushi/toml"
)

// LoadTOML reads a key map written as a TOML table of string values:
//
//	"H" = "02,00,0b"
//	" " = "00,00,2c"
func LoadTOML(r io.Reader) (Map, error) {
	var raw map[string]string
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, entry{key: k, value: raw[k]})
	}
	return build(entries)
}
