// Package cng decodes .cng page images.
//
// A .cng file is a JPEG whose every byte has been XORed with a fixed key.
// Decoding is the same operation as encoding, so XOR applied twice returns the
// original bytes.
package cng

import (
	"fmt"
	"io"
	"os"
)

// Key is the single-byte mask applied to every byte of a .cng file.
const Key byte = 239

// Ext is the lowercase source extension; DecodedExt replaces it on output.
const (
	Ext        = ".cng"
	DecodedExt = ".jpg"
)

// XOR applies Key to every byte of b in place.
func XOR(b []byte) {
	for i := range b {
		b[i] ^= Key
	}
}

type reader struct {
	r io.Reader
}

// NewReader returns a reader that yields the bytes of r XORed with Key.
func NewReader(r io.Reader) io.Reader {
	return &reader{r: r}
}

func (x *reader) Read(p []byte) (int, error) {
	n, err := x.r.Read(p)
	XOR(p[:n])
	return n, err
}

// DecodeFile streams src into dst, XORing each byte with Key. dst is truncated
// if it already exists. A failure mid-stream leaves dst partially written.
// Returns the number of bytes written.
func DecodeFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	written, err := io.Copy(out, NewReader(in))
	if err != nil {
		return written, fmt.Errorf("decode %s: %w", src, err)
	}
	return written, out.Close()
}
