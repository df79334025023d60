package cng

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"
)

func TestXORIsInvolution(t *testing.T) {
	cases := [][]byte{
		nil,
		{0x00},
		{0xFF, 0xD8, 0xFF, 0xE0},
		[]byte("page image bytes"),
	}
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	cases = append(cases, all)

	for _, original := range cases {
		buf := append([]byte(nil), original...)
		XOR(buf)
		XOR(buf)
		if !bytes.Equal(buf, original) {
			t.Fatalf("XOR twice changed %v into %v", original, buf)
		}
	}
}

func TestXORUsesKey239(t *testing.T) {
	buf := []byte{0x00, 0xEF, 0x10}
	XOR(buf)
	want := []byte{0xEF, 0x00, 0xFF}
	if !bytes.Equal(buf, want) {
		t.Fatalf("XOR = %x, want %x", buf, want)
	}
}

func TestReaderMatchesXOR(t *testing.T) {
	src := bytes.Repeat([]byte{0x01, 0x7F, 0xEF, 0xFF}, 1000)
	want := append([]byte(nil), src...)
	XOR(want)

	got, err := io.ReadAll(iotest.OneByteReader(NewReader(bytes.NewReader(src))))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatal("streamed decode differs from XOR")
	}
}

func TestDecodeFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	plain := append([]byte{0xFF, 0xD8, 0xFF}, bytes.Repeat([]byte("jpeg"), 5000)...)
	encoded := append([]byte(nil), plain...)
	XOR(encoded)

	src := filepath.Join(dir, "page_000_000_001.cng")
	dst := filepath.Join(dir, "page_000_000_001.jpg")
	if err := os.WriteFile(src, encoded, 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := DecodeFile(src, dst)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if n != int64(len(encoded)) {
		t.Fatalf("wrote %d bytes, want %d", n, len(encoded))
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatal("decoded content mismatch")
	}

	still, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("source should be untouched: %v", err)
	}
	if !bytes.Equal(still, encoded) {
		t.Fatal("source was modified")
	}
}

func TestDecodeFileTruncatesExisting(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.cng")
	dst := filepath.Join(dir, "a.jpg")
	if err := os.WriteFile(src, []byte{0xEF, 0xEF}, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, bytes.Repeat([]byte{1}, 64), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := DecodeFile(src, dst); err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0x00, 0x00}) {
		t.Fatalf("expected truncated output, got %x", got)
	}
}

func TestDecodeFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.jpg")
	_, err := DecodeFile(filepath.Join(dir, "nope.cng"), dst)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatal("destination should not be created when source is missing")
	}
}
