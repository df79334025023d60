package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"cng2jpg/internal/cng"
	"cng2jpg/internal/fileutil"
	"cng2jpg/internal/logging"
	"cng2jpg/internal/pages"
	"cng2jpg/internal/scan"
	"cng2jpg/internal/spread"
)

// Runner executes conversion runs.
type Runner struct {
	logger   *slog.Logger
	observer Observer
}

// NewRunner returns a Runner. A nil logger or observer is replaced by a no-op.
func NewRunner(logger *slog.Logger, obs Observer) *Runner {
	if obs == nil {
		obs = nopObserver{}
	}
	return &Runner{
		logger:   logging.NewComponentLogger(logger, "convert"),
		observer: obs,
	}
}

// Run converts every .cng file under opts.Src into opts.Dst. Any failure stops
// the run; files already converted or removed stay that way.
func (r *Runner) Run(ctx context.Context, opts Options) (Summary, error) {
	opts, err := opts.normalized()
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		RunID:     uuid.NewString(),
		Src:       opts.Src,
		Dst:       opts.Dst,
		InPlace:   opts.InPlace(),
		StartedAt: time.Now(),
	}
	logger := r.logger.With(logging.String(logging.FieldRunID, sum.RunID))

	info, err := os.Stat(opts.Src)
	if err != nil {
		return sum, fmt.Errorf("source directory: %w", err)
	}
	if !info.IsDir() {
		return sum, fmt.Errorf("source %s is not a directory", opts.Src)
	}
	if _, err := fileutil.EnsureDir(opts.Dst); err != nil {
		return sum, fmt.Errorf("create destination %s: %w", opts.Dst, err)
	}

	lock, err := acquireLock(opts.Dst)
	if err != nil {
		return sum, err
	}
	defer func() {
		if err := lock.release(); err != nil {
			logger.Warn("destination lock not released", logging.Error(err))
		}
	}()

	found, err := scan.Sources(opts.Src)
	if err != nil {
		return sum, fmt.Errorf("scan %s: %w", opts.Src, err)
	}
	sum.Scanned = len(found.Entries)
	sum.Ignored = found.Ignored

	logger.Info("conversion started",
		logging.String(logging.FieldSource, opts.Src),
		logging.String(logging.FieldDestination, opts.Dst),
		logging.Bool("in_place", sum.InPlace),
		logging.Int("files", sum.Scanned),
		logging.Bool("remove", opts.Remove),
		logging.Bool("merge", opts.Merge),
	)

	total := len(found.Entries)
	r.observer.OnStart(total, found.TotalBytes())
	for i, entry := range found.Entries {
		if err := ctx.Err(); err != nil {
			return r.finish(sum), err
		}
		res, err := r.processEntry(logger, opts, entry, &sum)
		if err != nil {
			return r.finish(sum), err
		}
		r.observer.OnEntryDone(i+1, total, res)
	}

	sum = r.finish(sum)
	logger.Info("conversion finished",
		logging.Int("converted", sum.Converted),
		logging.Int("merged", sum.Merged),
		logging.Int("removed", sum.Removed),
		logging.Duration("elapsed", sum.Duration()),
	)
	return sum, nil
}

func (r *Runner) finish(sum Summary) Summary {
	sum.FinishedAt = time.Now()
	return sum
}

func (r *Runner) processEntry(logger *slog.Logger, opts Options, entry scan.Entry, sum *Summary) (EntryResult, error) {
	res := EntryResult{Entry: entry}

	targetDir := filepath.Join(opts.Dst, entry.RelDir)
	created, err := fileutil.EnsureDir(targetDir)
	if err != nil {
		return res, fmt.Errorf("create directory %s: %w", targetDir, err)
	}
	if created {
		sum.DirsCreated++
	}

	res.Output = filepath.Join(targetDir, entry.Base+cng.DecodedExt)
	n, err := cng.DecodeFile(entry.AbsPath, res.Output)
	if err != nil {
		return res, err
	}
	res.Bytes = n
	sum.Converted++
	sum.Bytes += n
	logger.Info("decoded",
		logging.String(logging.FieldDestination, res.Output),
		logging.Int64("bytes", n),
	)

	if opts.Remove {
		if err := os.Remove(entry.AbsPath); err != nil {
			return res, fmt.Errorf("remove source %s: %w", entry.AbsPath, err)
		}
		sum.Removed++
		logger.Debug("removed source", logging.String(logging.FieldSource, entry.AbsPath))
	}

	if !opts.Merge {
		return res, nil
	}

	name, err := pages.Parse(entry.Base)
	if err != nil {
		if opts.StrictNames {
			return res, fmt.Errorf("merge %s: %w", entry.AbsPath, err)
		}
		sum.Unparsable++
		logger.Warn("page name not recognised; kept as single page",
			logging.String(logging.FieldSource, entry.AbsPath),
			logging.Error(err),
		)
		return res, nil
	}
	if !name.HasLeftSibling() {
		return res, nil
	}

	spreadPath, err := mergeWithLeft(targetDir, name, res.Output, opts.JPEGQuality)
	if err != nil {
		return res, err
	}
	if spreadPath == "" {
		sum.Unpaired++
		logger.Debug("left page missing; right page kept standalone",
			logging.String("page", name.String()),
			logging.Int(logging.FieldPageIndex, name.Index),
		)
		return res, nil
	}
	res.Spread = spreadPath
	sum.Merged++
	logger.Info("merged spread", logging.String(logging.FieldDestination, spreadPath))
	return res, nil
}

// mergeWithLeft joins rightPath with its left sibling in dir and deletes both
// single pages. An empty path and nil error means the left page is absent.
func mergeWithLeft(dir string, right pages.Name, rightPath string, quality int) (string, error) {
	leftPath := filepath.Join(dir, right.LeftSibling()+cng.DecodedExt)
	ok, err := fileutil.IsRegularFile(leftPath)
	if err != nil {
		return "", fmt.Errorf("check left page %s: %w", leftPath, err)
	}
	if !ok {
		return "", nil
	}

	spreadPath := filepath.Join(dir, right.Spread()+cng.DecodedExt)
	if err := spread.MergeFiles(leftPath, rightPath, spreadPath, quality); err != nil {
		return "", fmt.Errorf("merge %s: %w", spreadPath, err)
	}
	if err := fileutil.RemoveFiles(leftPath, rightPath); err != nil {
		return "", fmt.Errorf("remove merged pages: %w", err)
	}
	return spreadPath, nil
}

// IsLocked reports whether err came from a held destination lock.
func IsLocked(err error) bool {
	return errors.Is(err, ErrLocked)
}
