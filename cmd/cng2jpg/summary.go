package main

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cng2jpg/internal/convert"
)

var countPrinter = message.NewPrinter(language.English)

func count(n int) string {
	return countPrinter.Sprintf("%d", n)
}

func renderSummary(sum convert.Summary, colorize bool) string {
	rows := [][]string{
		{"Files found", count(sum.Scanned)},
		{"Converted", count(sum.Converted)},
		{"Decoded size", humanize.Bytes(uint64(max(sum.Bytes, 0)))},
		{"Sources removed", count(sum.Removed)},
		{"Spreads merged", count(sum.Merged)},
		{"Unpaired right pages", count(sum.Unpaired)},
		{"Unrecognised names", count(sum.Unparsable)},
		{"Other files ignored", count(sum.Ignored)},
		{"Directories created", count(sum.DirsCreated)},
		{"Elapsed", sum.Duration().Round(time.Millisecond).String()},
	}

	dst := sum.Dst
	if sum.InPlace {
		dst += " (in place)"
	}

	lines := renderSectionHeader("Conversion summary", colorize)
	lines = append(lines,
		"Source:      "+sum.Src,
		"Destination: "+dst,
		renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}),
	)
	return strings.Join(lines, "\n")
}
