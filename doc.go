// Package cliopts renders usage text for command-line flags declared as plain
// data and drives the parse-then-decide workflow around an argument tokenizer.
//
// Flags are declared once, in an Options value, instead of being registered
// imperatively and documented again in a hand-aligned help template:
//
//	opts := cliopts.Options{
//		Preamble:     "Usage: mytool [flags] [path ...]",
//		Descriptions: map[string]string{"output": "Output directory"},
//		Placeholders: map[string]string{"output": "dir"},
//		Strings:      []string{"output"},
//		Defaults:     map[string]any{"output": "out"},
//		Aliases:      map[string][]string{"output": {"o"}},
//	}
//
//	res, err := cliopts.Process(os.Args[1:], opts)
//
// Process tokenizes the arguments and returns the parsed values. When the
// user asked for help or passed a flag nobody declared, it instead prints
// the generated usage block and ends the process. A conventional help flag
// (-h, -?, --help) is injected automatically. Parse does the same tokenizing
// without the help/unknown handling, and Usage returns the rendered usage
// block on its own.
//
// Tokenization itself is delegated to github.com/spf13/pflag behind the
// Tokenizer interface; this package only prepares the flag set and interprets
// the parsed output.
package cliopts
