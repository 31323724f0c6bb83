// Package b64 writes scripts as base64 text for payload loaders that take
// the source instead of compiled bytecode.
package b64

import (
	"encoding/base64"
	"io"
	"os"
)

// Encode copies r to w as standard padded base64.
func Encode(w io.Writer, r io.Reader) error {
	enc := base64.NewEncoder(base64.StdEncoding, w)
	if _, err := io.Copy(enc, r); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// EncodeFile writes the base64 encoding of the file at src to dst.
func EncodeFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := Encode(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
