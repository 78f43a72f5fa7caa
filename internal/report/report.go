// Package report renders directory scan summaries as aligned tables with a
// color-coded header.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/CodexForgeBR/cliopts/internal/dirscan"
)

var headerColor = color.New(color.FgCyan, color.Bold).SprintFunc()

// Options control how a summary is rendered.
type Options struct {
	// Top keeps only the first Top entries; the rest collapse into an
	// "...and N more" line. Zero keeps everything.
	Top int

	// Human renders sizes as IEC strings ("1.1 KiB") and counts with
	// thousands separators instead of raw numbers.
	Human bool
}

// Write renders one scan summary to w: the root as a colored header, one
// aligned row per entry with size, file count, and name, and a closing total
// row. Entries are rendered in the order they arrive; sort them first.
//
// Example output:
//
//	demo
//	   160  3  a/
//	  1000  1  b/
//	     5  1  file.txt
//	  1165  5  total
func Write(w io.Writer, sum *dirscan.Summary, opts Options) {
	entries := sum.Entries
	more := 0
	if opts.Top > 0 && len(entries) > opts.Top {
		more = len(entries) - opts.Top
		entries = entries[:opts.Top]
	}

	type row struct {
		size, files, name string
	}
	rows := make([]row, 0, len(entries)+1)
	for _, e := range entries {
		rows = append(rows, row{size(e.Size, opts.Human), count(e.Files, opts.Human), displayName(e)})
	}
	rows = append(rows, row{size(sum.Size, opts.Human), count(sum.Files, opts.Human), "total"})

	sizeW, filesW := 0, 0
	for _, r := range rows {
		sizeW = max(sizeW, len(r.size))
		filesW = max(filesW, len(r.files))
	}

	fmt.Fprintln(w, headerColor(sum.Root))
	for i, r := range rows {
		if more > 0 && i == len(rows)-1 {
			fmt.Fprintf(w, "  ...and %d more\n", more)
		}
		fmt.Fprintf(w, "  %*s  %*s  %s\n", sizeW, r.size, filesW, r.files, r.name)
	}
}

func size(n int64, human bool) string {
	if human {
		return humanize.IBytes(uint64(n))
	}
	return strconv.FormatInt(n, 10)
}

func count(n int, human bool) string {
	if human {
		return humanize.Comma(int64(n))
	}
	return strconv.Itoa(n)
}

func displayName(e dirscan.Entry) string {
	if e.IsDir {
		return e.Name + "/"
	}
	return e.Name
}
