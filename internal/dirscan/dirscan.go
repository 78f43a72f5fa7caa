// Package dirscan aggregates disk usage for the immediate children of a
// directory.
package dirscan

import (
	"cmp"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// SortKey selects the order of entries in a summary.
type SortKey string

const (
	BySize  SortKey = "size"
	ByName  SortKey = "name"
	ByFiles SortKey = "files"
)

// ParseSortKey validates a sort key given on the command line.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case BySize, ByName, ByFiles:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q (want size, name, or files)", s)
}

// Options control a scan.
type Options struct {
	// MaxDepth limits descent below the root: only entries at most this
	// many levels down are visited, so directory sizes cover the visited
	// levels only. Zero means unlimited.
	MaxDepth int

	// IncludeHidden counts dot-files and descends into dot-directories.
	IncludeHidden bool
}

// Entry aggregates one immediate child of the scan root. For directories,
// Size, Files, and Dirs cover everything visited beneath the child; for
// files, Size is the file's own size and Files is 1.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
	Files int
	Dirs  int
}

// Summary is the aggregated result of scanning one root.
type Summary struct {
	Root    string
	Entries []Entry
	Size    int64
	Files   int
	Dirs    int
	Skipped int // entries that could not be read
}

// Scan aggregates the direct children of root. Directory children are
// walked recursively, files contribute their own size, and unreadable
// entries are counted in Skipped and otherwise ignored. Scan returns the
// context error as soon as ctx is canceled.
func Scan(ctx context.Context, root string, opts Options) (*Summary, error) {
	children, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read root %s: %w", root, err)
	}

	sum := &Summary{Root: root}
	for _, child := range children {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !opts.IncludeHidden && hidden(child.Name()) {
			continue
		}

		entry := Entry{
			Name:  child.Name(),
			Path:  filepath.Join(root, child.Name()),
			IsDir: child.IsDir(),
		}
		if child.IsDir() {
			skipped, err := walkChild(ctx, &entry, opts)
			if err != nil {
				return nil, err
			}
			sum.Skipped += skipped
			sum.Dirs++
		} else {
			info, err := child.Info()
			if err != nil {
				sum.Skipped++
				continue
			}
			entry.Size = info.Size()
			entry.Files = 1
		}

		sum.Size += entry.Size
		sum.Files += entry.Files
		sum.Dirs += entry.Dirs
		sum.Entries = append(sum.Entries, entry)
	}
	return sum, nil
}

// walkChild walks one direct child directory, accumulating into entry. The
// child itself sits at depth 1 below the scan root; descent stops once
// MaxDepth levels are reached.
func walkChild(ctx context.Context, entry *Entry, opts Options) (skipped int, err error) {
	err = filepath.WalkDir(entry.Path, func(path string, d fs.DirEntry, werr error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if werr != nil {
			skipped++
			return nil
		}
		if !opts.IncludeHidden && path != entry.Path && hidden(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != entry.Path {
				entry.Dirs++
			}
			if opts.MaxDepth > 0 && 1+depthBelow(entry.Path, path) >= opts.MaxDepth {
				return fs.SkipDir
			}
			return nil
		}
		info, ierr := d.Info()
		if ierr != nil {
			skipped++
			return nil
		}
		entry.Size += info.Size()
		entry.Files++
		return nil
	})
	return skipped, err
}

// SortBy orders entries in place: size and files sort descending with the
// name as tie-break, name sorts ascending.
func SortBy(entries []Entry, key SortKey) {
	switch key {
	case ByName:
		slices.SortFunc(entries, func(a, b Entry) int {
			return cmp.Compare(a.Name, b.Name)
		})
	case ByFiles:
		slices.SortFunc(entries, func(a, b Entry) int {
			if c := cmp.Compare(b.Files, a.Files); c != 0 {
				return c
			}
			return cmp.Compare(a.Name, b.Name)
		})
	default:
		slices.SortFunc(entries, func(a, b Entry) int {
			if c := cmp.Compare(b.Size, a.Size); c != 0 {
				return c
			}
			return cmp.Compare(a.Name, b.Name)
		})
	}
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// depthBelow is how many levels path sits below base; base itself is 0.
func depthBelow(base, path string) int {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
