package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cng2jpg/internal/cng"
)

// Entry is one .cng file found under the scan root.
type Entry struct {
	AbsPath string
	// RelPath is relative to the scan root, RelDir is its directory ("." at the root).
	RelPath string
	RelDir  string
	// Base is the filename without extension.
	Base string
	Ext  string
	Size int64
}

// Result is the immutable list produced before any file is touched.
type Result struct {
	Entries []Entry
	// Ignored counts files that are not .cng, including a bare ".cng" with no
	// name and symlinks that do not point at a regular file.
	Ignored int
}

// Sources walks root and collects every .cng file (case-insensitive).
//
// The walk completes before the caller converts anything, so files created or
// deleted during conversion never change what gets processed. Entries are
// sorted by RelPath, which keeps an even left page ahead of its odd right page
// within a directory.
func Sources(root string) (Result, error) {
	root = filepath.Clean(root)

	res := Result{Entries: make([]Entry, 0, 256)}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		info, ok, err := fileInfo(path, d)
		if err != nil {
			return err
		}
		if !ok {
			if d.Type()&fs.ModeSymlink != 0 {
				res.Ignored++
			}
			return nil
		}

		name := d.Name()
		ext := filepath.Ext(name)
		base := strings.TrimSuffix(name, ext)
		if strings.ToLower(ext) != cng.Ext || base == "" {
			res.Ignored++
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		res.Entries = append(res.Entries, Entry{
			AbsPath: path,
			RelPath: rel,
			RelDir:  filepath.Dir(rel),
			Base:    base,
			Ext:     ext,
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	sort.Slice(res.Entries, func(i, j int) bool { return res.Entries[i].RelPath < res.Entries[j].RelPath })
	return res, nil
}

// fileInfo reports whether d is a regular file or a symlink to one. Symlinked
// directories are not followed by the walk.
func fileInfo(path string, d fs.DirEntry) (fs.FileInfo, bool, error) {
	switch {
	case d.Type().IsRegular():
		info, err := d.Info()
		return info, err == nil, err
	case d.Type()&fs.ModeSymlink != 0:
		info, err := os.Stat(path)
		if err != nil {
			// Dangling link.
			return nil, false, nil
		}
		return info, info.Mode().IsRegular(), nil
	default:
		return nil, false, nil
	}
}

// TotalBytes sums the sizes of all entries.
func (r Result) TotalBytes() int64 {
	var total int64
	for _, e := range r.Entries {
		total += e.Size
	}
	return total
}
