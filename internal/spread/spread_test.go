package spread

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func writeJPEG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 100}); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestComposeDimensionsAndTopAlignment(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	left := solid(30, 40, red)
	right := solid(20, 60, blue)

	got := Compose(left, right)
	b := got.Bounds()
	if b.Dx() != 50 || b.Dy() != 60 {
		t.Fatalf("canvas = %dx%d, want 50x60", b.Dx(), b.Dy())
	}
	if c := got.RGBAAt(0, 0); c != red {
		t.Fatalf("left top pixel = %v, want red", c)
	}
	if c := got.RGBAAt(30, 0); c != blue {
		t.Fatalf("right top pixel = %v, want blue", c)
	}
	// The shorter left page is top aligned: below it the canvas stays black.
	if c := got.RGBAAt(10, 50); c != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("pixel under left page = %v, want black", c)
	}
	if c := got.RGBAAt(40, 59); c != blue {
		t.Fatalf("right bottom pixel = %v, want blue", c)
	}
}

func TestComposeHonoursSourceBoundsOffset(t *testing.T) {
	green := color.RGBA{0, 255, 0, 255}
	left := solid(20, 10, green).SubImage(image.Rect(10, 0, 20, 10)).(*image.RGBA)
	right := solid(10, 10, green)

	got := Compose(left, right)
	if got.Bounds().Dx() != 20 {
		t.Fatalf("canvas width = %d, want 20", got.Bounds().Dx())
	}
	if c := got.RGBAAt(0, 0); c != green {
		t.Fatalf("pixel = %v, want green", c)
	}
}

func TestMergeFiles(t *testing.T) {
	dir := t.TempDir()
	leftPath := filepath.Join(dir, "IMG_01_01_002.jpg")
	rightPath := filepath.Join(dir, "IMG_01_01_003.jpg")
	out := filepath.Join(dir, "IMG_01_01_002-003.jpg")

	writeJPEG(t, leftPath, solid(64, 48, color.RGBA{0, 0, 0, 255}))
	writeJPEG(t, rightPath, solid(32, 80, color.RGBA{255, 255, 255, 255}))

	if err := MergeFiles(leftPath, rightPath, out, 90); err != nil {
		t.Fatalf("MergeFiles: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open spread: %v", err)
	}
	defer f.Close()
	cfg, err := jpeg.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode spread config: %v", err)
	}
	if cfg.Width != 96 || cfg.Height != 80 {
		t.Fatalf("spread = %dx%d, want 96x80", cfg.Width, cfg.Height)
	}

	for _, p := range []string{leftPath, rightPath} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("MergeFiles must not remove inputs: %v", err)
		}
	}
}

func TestMergeFilesRejectsNonJPEG(t *testing.T) {
	dir := t.TempDir()
	leftPath := filepath.Join(dir, "left.jpg")
	rightPath := filepath.Join(dir, "right.jpg")
	if err := os.WriteFile(leftPath, []byte("not a jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}
	writeJPEG(t, rightPath, solid(4, 4, color.RGBA{1, 2, 3, 255}))

	if err := MergeFiles(leftPath, rightPath, filepath.Join(dir, "out.jpg"), 0); err == nil {
		t.Fatal("expected decode error for invalid left page")
	}
}
