// Package spread joins a left and a right page into one two-page JPEG.
package spread

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"
)

// DefaultQuality matches the re-encode quality the archive was produced with.
const DefaultQuality = 75

// Compose places left at x=0 and right directly after it. The canvas is as
// wide as both pages and as tall as the taller one; pages are top aligned and
// any uncovered area stays black.
func Compose(left, right image.Image) *image.RGBA {
	lb := left.Bounds()
	rb := right.Bounds()

	canvas := image.NewRGBA(image.Rect(0, 0, lb.Dx()+rb.Dx(), max(lb.Dy(), rb.Dy())))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, lb.Dx(), lb.Dy()), left, lb.Min, draw.Src)
	draw.Draw(canvas, image.Rect(lb.Dx(), 0, lb.Dx()+rb.Dx(), rb.Dy()), right, rb.Min, draw.Src)
	return canvas
}

// MergeFiles decodes the two page JPEGs, composes them, and writes the spread
// to out. The input files are left in place.
func MergeFiles(leftPath, rightPath, out string, quality int) error {
	if quality <= 0 {
		quality = DefaultQuality
	}

	left, err := decodeFile(leftPath)
	if err != nil {
		return fmt.Errorf("left page: %w", err)
	}
	right, err := decodeFile(rightPath)
	if err != nil {
		return fmt.Errorf("right page: %w", err)
	}

	canvas := Compose(left, right)
	if canvas.Bounds().Empty() {
		return errors.New("spread has no pixels")
	}

	f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := jpeg.Encode(f, canvas, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("encode %s: %w", out, err)
	}
	return f.Close()
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
