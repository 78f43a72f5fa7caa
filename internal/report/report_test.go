package report_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/cliopts/internal/dirscan"
	"github.com/CodexForgeBR/cliopts/internal/report"
)

func init() {
	// Disable color output in tests so assertions match plain text.
	color.NoColor = true
}

func demoSummary() *dirscan.Summary {
	return &dirscan.Summary{
		Root: "demo",
		Entries: []dirscan.Entry{
			{Name: "a", IsDir: true, Size: 160, Files: 3, Dirs: 1},
			{Name: "b", IsDir: true, Size: 1000, Files: 1},
			{Name: "file.txt", Size: 5, Files: 1},
		},
		Size:  1165,
		Files: 5,
		Dirs:  3,
	}
}

func TestWrite_AlignedTable(t *testing.T) {
	var buf bytes.Buffer
	report.Write(&buf, demoSummary(), report.Options{})

	expected := "demo\n" +
		"   160  3  a/\n" +
		"  1000  1  b/\n" +
		"     5  1  file.txt\n" +
		"  1165  5  total\n"
	assert.Equal(t, expected, buf.String())
}

func TestWrite_TopCollapsesTail(t *testing.T) {
	var buf bytes.Buffer
	report.Write(&buf, demoSummary(), report.Options{Top: 2})

	expected := "demo\n" +
		"   160  3  a/\n" +
		"  1000  1  b/\n" +
		"  ...and 1 more\n" +
		"  1165  5  total\n"
	assert.Equal(t, expected, buf.String())
}

func TestWrite_TopLargerThanEntries(t *testing.T) {
	var buf bytes.Buffer
	report.Write(&buf, demoSummary(), report.Options{Top: 10})

	assert.NotContains(t, buf.String(), "more")
	assert.Contains(t, buf.String(), "file.txt")
}

func TestWrite_HumanSizes(t *testing.T) {
	var buf bytes.Buffer
	report.Write(&buf, demoSummary(), report.Options{Human: true})

	out := buf.String()
	assert.Contains(t, out, "160 B")
	assert.Contains(t, out, "1.1 KiB  5  total")
}

func TestWrite_EmptySummary(t *testing.T) {
	var buf bytes.Buffer
	report.Write(&buf, &dirscan.Summary{Root: "empty"}, report.Options{})

	expected := "empty\n" +
		"  0  0  total\n"
	assert.Equal(t, expected, buf.String())
}
