package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/CodexForgeBR/cliopts"
	"github.com/CodexForgeBR/cliopts/internal/dirscan"
	"github.com/CodexForgeBR/cliopts/internal/exitcode"
	"github.com/CodexForgeBR/cliopts/internal/logging"
	"github.com/CodexForgeBR/cliopts/internal/report"
	sighandler "github.com/CodexForgeBR/cliopts/internal/signal"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Environment variables read at startup. A .env file in the working
// directory is loaded first, so its values land between the builtin
// defaults and explicit flags.
const (
	envDepth = "DIRSTAT_DEPTH"
	envTop   = "DIRSTAT_TOP"
	envSort  = "DIRSTAT_SORT"
	envHuman = "DIRSTAT_HUMAN"
	envAll   = "DIRSTAT_ALL"
)

const preamble = "dirstat sums the disk usage of a directory's immediate children.\n\nUsage: dirstat [options] [dir ...]"

func main() {
	// A missing .env file is fine; only the environment it seeds matters.
	_ = godotenv.Load()

	res, err := cliopts.Process(os.Args[1:], options())
	if err != nil {
		logging.Error(err.Error())
		os.Exit(exitcode.Error)
	}

	if res.Bool("version") {
		fmt.Printf("dirstat %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}

	logging.SetVerbose(res.Bool("verbose"))

	key, err := dirscan.ParseSortKey(res.String("sort"))
	if err != nil {
		logging.Error(err.Error())
		os.Exit(exitcode.Error)
	}

	ctx, cancel := sighandler.WithInterrupt(context.Background(), func() {
		logging.Warn("Interrupted, stopping scan")
	})
	defer cancel()

	scanOpts := dirscan.Options{
		MaxDepth:      int(res.Number("depth")),
		IncludeHidden: res.Bool("all"),
	}
	repOpts := report.Options{
		Top:   int(res.Number("top")),
		Human: res.Bool("human"),
	}

	os.Exit(run(ctx, res.Args, scanOpts, key, repOpts))
}

// run scans each root and prints its report, separated by blank lines.
// The exit code is Interrupted when the context was canceled, Error when
// any root failed, Success otherwise.
func run(ctx context.Context, roots []string, scanOpts dirscan.Options, key dirscan.SortKey, repOpts report.Options) int {
	if len(roots) == 0 {
		roots = []string{"."}
	}

	start := time.Now()
	failed := 0
	printed := 0
	for _, root := range roots {
		sum, err := dirscan.Scan(ctx, root, scanOpts)
		if err != nil {
			if ctx.Err() != nil {
				return exitcode.Interrupted
			}
			logging.Error(err.Error())
			failed++
			continue
		}
		if sum.Skipped > 0 {
			logging.Warn(fmt.Sprintf("%s: %d entries could not be read", root, sum.Skipped))
		}

		dirscan.SortBy(sum.Entries, key)
		if printed > 0 {
			fmt.Println()
		}
		report.Write(os.Stdout, sum, repOpts)
		printed++
	}
	logging.Debug(fmt.Sprintf("Scanned %d root(s) in %s", len(roots), logging.FormatDuration(int(time.Since(start).Seconds()))))

	if failed > 0 {
		return exitcode.Error
	}
	return exitcode.Success
}

// options declares the dirstat flag set. Defaults come from the
// environment where present, so precedence is flags, then environment,
// then builtins.
func options() cliopts.Options {
	return cliopts.Options{
		Preamble: preamble,
		Descriptions: map[string]string{
			"all":     "Count hidden files and directories too",
			"depth":   "Descend at most this many levels into each child (0 = unlimited)",
			"human":   "Print sizes in human-readable units",
			"sort":    "Order entries by size, name, or files",
			"top":     "Show only the N largest entries (0 = all)",
			"verbose": "Enable debug output",
			"version": "Print version information and exit",
		},
		Booleans: []string{"human", "all", "verbose", "version"},
		Strings:  []string{"sort"},
		Aliases: map[string][]string{
			"all":     {"a"},
			"depth":   {"d"},
			"human":   {"H"},
			"sort":    {"s"},
			"top":     {"n"},
			"verbose": {"v"},
			"version": {"V"},
		},
		Defaults: defaults(),
	}
}

// defaults returns the builtin option defaults overlaid with any
// DIRSTAT_* environment variables. Unparseable numbers are ignored.
func defaults() map[string]any {
	d := map[string]any{
		"depth": 0,
		"top":   0,
		"sort":  "size",
	}
	if v := os.Getenv(envDepth); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			d["depth"] = n
		}
	}
	if v := os.Getenv(envTop); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			d["top"] = n
		}
	}
	if v := os.Getenv(envSort); v != "" {
		d["sort"] = v
	}
	if v := os.Getenv(envHuman); v != "" {
		d["human"] = parseBool(v)
	}
	if v := os.Getenv(envAll); v != "" {
		d["all"] = parseBool(v)
	}
	return d
}

// parseBool reads the common boolean spellings, defaulting to false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
