package cliopts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/cliopts"
)

func TestUsage_RoundTrip(t *testing.T) {
	opts := cliopts.Options{
		Descriptions: map[string]string{"output": "Output directory"},
		Placeholders: map[string]string{"output": "dir"},
		Strings:      []string{"output"},
		Defaults:     map[string]any{"output": "out"},
	}

	expected := "Options:\n" +
		"  --output <dir>  Output directory (default: \"out\")\n" +
		"  -h, -?, --help  Display usage information"

	assert.Equal(t, expected, cliopts.Usage(opts))
}

func TestUsage_WithPreamble(t *testing.T) {
	opts := cliopts.Options{
		Preamble:     "Usage: my-tool <options>",
		Descriptions: map[string]string{"output": "Output directory"},
		Placeholders: map[string]string{"output": "dir"},
		Strings:      []string{"output"},
		Defaults:     map[string]any{"output": "out"},
	}

	expected := "Usage: my-tool <options>\n" +
		"\n" +
		"Options:\n" +
		"  --output <dir>  Output directory (default: \"out\")\n" +
		"  -h, -?, --help  Display usage information"

	assert.Equal(t, expected, cliopts.Usage(opts))
}

func TestUsage_Deterministic(t *testing.T) {
	opts := cliopts.Options{
		Descriptions: map[string]string{"all": "Include hidden entries", "output": "Output directory"},
		Booleans:     []string{"all"},
		Strings:      []string{"output"},
		Aliases:      map[string][]string{"all": {"a"}, "output": {"o"}},
		Defaults:     map[string]any{"output": "out"},
	}

	assert.Equal(t, cliopts.Usage(opts), cliopts.Usage(opts))
}

func TestUsage_AlignsMixedWidths(t *testing.T) {
	opts := cliopts.Options{
		Descriptions: map[string]string{
			"all":       "Include hidden entries",
			"max-depth": "Descend at most this many levels",
		},
		Booleans: []string{"all"},
		Defaults: map[string]any{"max-depth": 3},
	}

	expected := "Options:\n" +
		"  --all              Include hidden entries\n" +
		"  --max-depth <num>  Descend at most this many levels (default: 3)\n" +
		"  -h, -?, --help     Display usage information"

	assert.Equal(t, expected, cliopts.Usage(opts))
}

func TestUsage_DefaultWithoutDescription(t *testing.T) {
	opts := cliopts.Options{Defaults: map[string]any{"retries": 2}}

	expected := "Options:\n" +
		"  --retries <num>  Default: 2\n" +
		"  -h, -?, --help   Display usage information"

	assert.Equal(t, expected, cliopts.Usage(opts))
}

func TestUsage_BooleanNeverShowsPlaceholder(t *testing.T) {
	opts := cliopts.Options{
		Booleans:     []string{"force"},
		Placeholders: map[string]string{"force": "mode"},
		Defaults:     map[string]any{"force": true},
	}

	out := cliopts.Usage(opts)

	assert.Contains(t, out, "--force")
	assert.NotContains(t, out, "<mode>")
}

func TestUsage_DescriptionlessFlagKeepsPaddingColumn(t *testing.T) {
	opts := cliopts.Options{Strings: []string{"tag"}}

	expected := "Options:\n" +
		"  --tag <str>     \n" +
		"  -h, -?, --help  Display usage information"

	assert.Equal(t, expected, cliopts.Usage(opts))
}

func TestUsage_ShortNameSortsBeforeLongAlias(t *testing.T) {
	opts := cliopts.Options{
		Descriptions: map[string]string{"v": "Noisy output"},
		Aliases:      map[string][]string{"v": {"verbose"}},
	}

	expected := "Options:\n" +
		"  -v, --verbose   Noisy output\n" +
		"  -h, -?, --help  Display usage information"

	assert.Equal(t, expected, cliopts.Usage(opts))
}

func TestRender_SingleRuneMultiByteNameIsLongFlag(t *testing.T) {
	flags := []cliopts.Flag{
		{Name: "ü", Type: cliopts.TypeBoolean, Description: "Umlaut toggle"},
	}

	expected := "Options:\n" +
		"  --ü  Umlaut toggle"

	assert.Equal(t, expected, cliopts.Render(flags))
}

func TestRender_ExplicitRecords(t *testing.T) {
	flags := []cliopts.Flag{
		{Name: "count", Type: cliopts.TypeNumber, Placeholder: "n", Description: "How many"},
		{Name: "quiet", Aliases: []string{"q"}, Type: cliopts.TypeBoolean, Description: "Say less"},
	}

	expected := "Options:\n" +
		"  --count <n>  How many\n" +
		"  -q, --quiet  Say less"

	assert.Equal(t, expected, cliopts.Render(flags))
}
