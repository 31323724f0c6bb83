package keymap

import (
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

// LoadJSON reads a flat JSON object mapping single characters to descriptor
// strings, e.g. {"H": "02,00,0b"}.
func LoadJSON(r io.Reader) (Map, error) {
	src, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if !gjson.Valid(src) {
		return nil, fmt.Errorf("invalid json")
	}
	root := gjson.Parse(src)
	if !root.IsObject() {
		return nil, fmt.Errorf("expected a json object, got %s", root.Type)
	}
	var entries []entry
	root.ForEach(func(key, value gjson.Result) bool {
		// Non-string values keep their raw text and fail descriptor parsing
		v := value.Raw
		if value.Type == gjson.String {
			v = value.String()
		}
		entries = append(entries, entry{key: key.String(), value: v})
		return true
	})
	return build(entries)
}
