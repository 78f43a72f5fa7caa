package cliopts

// Canonical name, injected description, and injected aliases of the help flag.
const (
	// HelpFlag is the canonical name of the injected help flag. Callers of
	// Parse can look it up in the result, or use Result.Help.
	HelpFlag = "help"

	helpDescription = "Display usage information"
)

// helpAliases is what Normalize assigns when it injects the help flag.
// Both spellings are single-rune, so they render as -h and -?.
var helpAliases = []string{"h", "?"}

// UnknownHandler is called once per command-line token that looks like a flag
// but matches no declared flag or alias. Returning false drops the token
// before the tokenizer sees it; returning true leaves it to the tokenizer's
// own unknown-flag handling.
type UnknownHandler func(token string) bool

// Options declares a program's flags as plain data. Every map is keyed by
// canonical flag name. A flag exists if its name appears in Descriptions,
// Booleans, Strings, Placeholders, or Defaults; names registered only as
// aliases of another flag are not flags of their own.
//
// Options values are never mutated by this package: every operation derives
// what it needs into fresh copies.
type Options struct {
	// Preamble is printed verbatim above the "Options:" header, separated
	// from it by one blank line. Empty means no preamble.
	Preamble string

	// Descriptions maps flag names to the sentence shown in usage output.
	Descriptions map[string]string

	// Placeholders maps flag names to the display name of their value,
	// rendered as "--name <placeholder>". Flags without an entry fall back
	// to a placeholder inferred from their type.
	Placeholders map[string]string

	// Booleans lists flags that take no value. Boolean flags never render
	// a placeholder.
	Booleans []string

	// Strings lists flags whose values stay strings even when they look
	// numeric.
	Strings []string

	// Aliases maps flag names to alternative names. A single alias is the
	// one-element slice.
	Aliases map[string][]string

	// Defaults maps flag names to the value reported when the flag is not
	// given. The dynamic type also drives type and placeholder inference
	// for flags not listed in Booleans or Strings.
	Defaults map[string]any

	// OnUnknown, when set, is consulted for every unknown flag-like token.
	// The Processor composes its own bookkeeping with this handler; it
	// never replaces it.
	OnUnknown UnknownHandler
}

// Normalize returns a derived copy of opts with the help flag injected: if no
// description is registered for "help", the copy gains the conventional
// description and the h and ? aliases. A caller-declared help description is
// respected unchanged, so normalizing twice has no further effect.
//
// The copy shares no maps or slices with opts.
func Normalize(opts Options) Options {
	out := Options{
		Preamble:     opts.Preamble,
		Descriptions: copyStringMap(opts.Descriptions),
		Placeholders: copyStringMap(opts.Placeholders),
		Booleans:     copyList(opts.Booleans),
		Strings:      copyList(opts.Strings),
		Aliases:      copyAliases(opts.Aliases),
		Defaults:     copyDefaults(opts.Defaults),
		OnUnknown:    opts.OnUnknown,
	}

	if _, ok := out.Descriptions[HelpFlag]; !ok {
		out.Descriptions[HelpFlag] = helpDescription
		out.Aliases[HelpFlag] = copyList(helpAliases)
	}
	return out
}

func copyStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyDefaults(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyAliases(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m)+1)
	for k, v := range m {
		out[k] = copyList(v)
	}
	return out
}

func copyList(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
