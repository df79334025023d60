package convert

import (
	"errors"
	"path/filepath"
	"strings"

	"cng2jpg/internal/spread"
)

// Options is the full configuration of one run.
type Options struct {
	Src string
	// Dst defaults to Src (in-place conversion) when empty.
	Dst    string
	Remove bool
	Merge  bool
	// StrictNames aborts the run on a .cng filename that does not follow the
	// page naming convention. Otherwise such files are converted but not merged.
	StrictNames bool
	JPEGQuality int
}

func (o Options) normalized() (Options, error) {
	o.Src = strings.TrimSpace(o.Src)
	if o.Src == "" {
		return Options{}, errors.New("source directory is required")
	}
	o.Src = filepath.Clean(o.Src)
	o.Dst = strings.TrimSpace(o.Dst)
	if o.Dst == "" {
		o.Dst = o.Src
	}
	o.Dst = filepath.Clean(o.Dst)
	if o.JPEGQuality <= 0 {
		o.JPEGQuality = spread.DefaultQuality
	}
	return o, nil
}

// InPlace reports whether decoded files land next to their sources.
func (o Options) InPlace() bool {
	dst := o.Dst
	if strings.TrimSpace(dst) == "" {
		dst = o.Src
	}
	return filepath.Clean(dst) == filepath.Clean(o.Src)
}
