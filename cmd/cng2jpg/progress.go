package main

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"cng2jpg/internal/convert"
)

// progressObserver renders one bar tick per converted file.
type progressObserver struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func newProgressObserver(w io.Writer) *progressObserver {
	return &progressObserver{w: w}
}

func (p *progressObserver) OnStart(total int, _ int64) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionSetDescription("converting"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *progressObserver) OnEntryDone(idx, total int, res convert.EntryResult) {
	if p.bar == nil {
		return
	}
	p.bar.Describe(res.Entry.Base)
	_ = p.bar.Add(1)
	if idx == total {
		_ = p.bar.Finish()
	}
}
