package compiler

import (
	"bytes"
	"strconv"

	"github.com/deepnoodle-ai/ahiru/errors"
	"github.com/deepnoodle-ai/ahiru/keymap"
	"github.com/deepnoodle-ai/ahiru/op"
)

// EncodeString encodes text as one key press per character. Each press is
// written as the keycode followed by the modifier.
func EncodeString(text string, km keymap.Lookup) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := writeString(&buf, text, km); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeDelay encodes a wait of ms milliseconds. Waits longer than
// op.MaxDelay are split into full chunks followed by the remainder. When ms
// is an exact multiple of op.MaxDelay the remainder chunk is a zero length
// wait; it is still written.
//
// The output grows linearly with ms: every 255ms costs two bytes, so a wait
// of a day is about 680KB. There is no upper bound.
func EncodeDelay(ms int) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeDelay(&buf, ms, false); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeString returns the byte offset in text of the character that failed.
func writeString(buf *bytes.Buffer, text string, km keymap.Lookup) (int, error) {
	for i, r := range text {
		d, ok := km.Lookup(r)
		if !ok {
			return i, &errors.UnknownKeyError{Char: r}
		}
		buf.WriteByte(d.Keycode)
		buf.WriteByte(d.Modifier)
	}
	return 0, nil
}

func writeDelay(buf *bytes.Buffer, ms int, trimZero bool) error {
	if ms < 0 {
		return &errors.InvalidDurationError{Value: strconv.Itoa(ms)}
	}
	if ms <= op.MaxDelay {
		buf.WriteByte(byte(op.Delay))
		buf.WriteByte(byte(ms))
		return nil
	}
	full := ms / op.MaxDelay
	buf.Grow(op.Width * (full + 1))
	for i := 0; i < full; i++ {
		buf.WriteByte(byte(op.Delay))
		buf.WriteByte(op.MaxDelay)
	}
	rest := ms - op.MaxDelay*full
	if rest == 0 && trimZero {
		return nil
	}
	buf.WriteByte(byte(op.Delay))
	buf.WriteByte(byte(rest))
	return nil
}
