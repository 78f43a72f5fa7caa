package cliopts

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
)

// Tokenizer splits raw command-line tokens into typed flag values and
// positional arguments, given the derived flag records. Implementations own
// all token syntax (inline values, shorthand grouping, the "--" terminator);
// the rest of the package only prepares their input and interprets their
// output. onUnknown, which may be nil, is consulted once per flag-like token
// that matches no record.
type Tokenizer interface {
	Tokenize(flags []Flag, args []string, onUnknown UnknownHandler) (Result, error)
}

// NewTokenizer returns the default Tokenizer, backed by spf13/pflag. Every
// canonical name and alias is registered as its own flag, with single-byte
// names doubling as their shorthand, and values are folded onto the
// canonical name after the parse.
func NewTokenizer() Tokenizer {
	return pflagTokenizer{}
}

type pflagTokenizer struct{}

func (pflagTokenizer) Tokenize(flags []Flag, args []string, onUnknown UnknownHandler) (Result, error) {
	fs := pflag.NewFlagSet("args", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.ParseErrorsWhitelist = pflag.ParseErrorsWhitelist{UnknownFlags: true}

	reg := newRegistry(fs, flags)
	kept, held := screenUnknown(fs, args, onUnknown)
	if err := fs.Parse(kept); err != nil {
		return Result{}, fmt.Errorf("parse arguments: %w", err)
	}
	res := reg.collect(fs)
	res.Args = append(res.Args, held...)
	return res, nil
}

// registry remembers which pflag value backs each registered name so the
// collect step can read them back by type.
type registry struct {
	flags []Flag
	names map[string][]string // canonical name -> registered names, canonical first
	bools map[string]*bool
	nums  map[string]*float64
	strs  map[string]*string
}

func newRegistry(fs *pflag.FlagSet, flags []Flag) *registry {
	r := &registry{
		flags: flags,
		names: make(map[string][]string, len(flags)),
		bools: make(map[string]*bool),
		nums:  make(map[string]*float64),
		strs:  make(map[string]*string),
	}
	for _, f := range flags {
		registered := make([]string, 0, 1+len(f.Aliases))
		for _, name := range append([]string{f.Name}, f.Aliases...) {
			if name == "" || fs.Lookup(name) != nil {
				continue
			}
			r.register(fs, name, effectiveType(f))
			registered = append(registered, name)
		}
		r.names[f.Name] = registered
	}
	return r
}

// effectiveType is the type a flag parses as. The help flag parses as a
// boolean even when nothing typed it: a bare --help must not demand a value.
func effectiveType(f Flag) ValueType {
	if f.Name == HelpFlag && f.Type == TypeNone {
		return TypeBoolean
	}
	return f.Type
}

// register adds one name to the set. Flags are registered with zero values,
// never with their declared default, so Changed cleanly separates tokens
// that were given from values to fill in afterwards. Untyped flags parse as
// strings and get their numeric look sniffed at collect time.
func (r *registry) register(fs *pflag.FlagSet, name string, typ ValueType) {
	short := ""
	if len(name) == 1 {
		short = name
	}
	switch typ {
	case TypeBoolean:
		r.bools[name] = fs.BoolP(name, short, false, "")
	case TypeNumber:
		r.nums[name] = fs.Float64P(name, short, 0, "")
	default:
		r.strs[name] = fs.StringP(name, short, "", "")
	}
}

func (r *registry) collect(fs *pflag.FlagSet) Result {
	res := Result{
		Flags: make(map[string]any, len(r.flags)),
		Args:  fs.Args(),
	}
	for _, f := range r.flags {
		if v, ok := r.value(fs, f); ok {
			res.Flags[f.Name] = v
		}
	}
	return res
}

// value resolves one canonical flag. The canonical name wins when it was set
// on the command line, then the last set alias, then the declared default.
// Booleans resolve to false even when nothing set them; other flags without
// a default stay absent.
func (r *registry) value(fs *pflag.FlagSet, f Flag) (any, bool) {
	set := ""
	for _, name := range r.names[f.Name] {
		if !fs.Changed(name) {
			continue
		}
		set = name
		if name == f.Name {
			break
		}
	}
	if set != "" {
		return r.typed(effectiveType(f), set), true
	}
	if f.Default != nil {
		return f.Default.Value, true
	}
	if f.Type == TypeBoolean {
		return false, true
	}
	return nil, false
}

func (r *registry) typed(typ ValueType, name string) any {
	switch typ {
	case TypeBoolean:
		return *r.bools[name]
	case TypeNumber:
		return *r.nums[name]
	case TypeString:
		return *r.strs[name]
	default:
		raw := *r.strs[name]
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return n
		}
		return raw
	}
}

// screenUnknown walks the raw tokens before pflag sees them and reports
// every flag-like token that matches no registered name or shorthand. A
// handler returning false removes the token from the stream; true keeps it
// for pflag, whose unknown-flag whitelist then skips over it. Shorthand
// groups that would trip pflag's built-in 'h' handling are dropped even on a
// keep verdict, see dropUnknown.
//
// A lone "-" and everything after "--" are positional and are never
// reported. Tokens that read as negative numbers are positional too, but
// pflag would chew through them as unregistered shorthands, so they are held
// out of the stream and handed back as trailing positionals.
func screenUnknown(fs *pflag.FlagSet, args []string, onUnknown UnknownHandler) (kept, held []string) {
	kept = make([]string, 0, len(args))
	skip := false
	for i, tok := range args {
		if skip {
			skip = false
			kept = append(kept, tok)
			continue
		}
		switch {
		case tok == "--":
			return append(kept, args[i:]...), held
		case strings.HasPrefix(tok, "--"):
			name, inline := splitLong(tok)
			flag := fs.Lookup(name)
			if flag == nil {
				if !report(onUnknown, tok) {
					continue
				}
			} else if !inline && flag.NoOptDefVal == "" {
				skip = true // pflag consumes the next token as the value
			}
		case len(tok) > 1 && tok[0] == '-':
			if dashNumber(tok) {
				held = append(held, tok)
				continue
			}
			drop, consumesNext := screenShort(fs, tok, onUnknown)
			if drop {
				continue
			}
			skip = consumesNext
		}
		kept = append(kept, tok)
	}
	return kept, held
}

// screenShort walks a shorthand group the way pflag does, byte by byte. It
// reports the whole token the first time it hits an unregistered shorthand
// and tells the caller whether to drop the token and whether the token after
// it is consumed as a value.
func screenShort(fs *pflag.FlagSet, tok string, onUnknown UnknownHandler) (drop, consumesNext bool) {
	body := tok[1:]
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '=' {
			if i == 0 {
				// "-=x" names no shorthand at all
				return dropUnknown(fs, tok, body, onUnknown), false
			}
			return false, false
		}
		if c >= utf8.RuneSelf {
			return dropUnknown(fs, tok, body[i:], onUnknown), false
		}
		flag := fs.ShorthandLookup(string(c))
		if flag == nil {
			return dropUnknown(fs, tok, body[i:], onUnknown), false
		}
		if flag.NoOptDefVal != "" {
			continue // boolean, the next byte is another shorthand
		}
		return false, body[i+1:] == ""
	}
	return false, false
}

// dropUnknown reports tok to the handler and decides whether the token
// leaves the stream. A keep verdict is overridden when pflag's own walk of
// rest would reach an unregistered 'h': pflag special-cases that shorthand
// into ErrHelp before its unknown-flag whitelist runs, so the parse would
// abort instead of skipping the token.
func dropUnknown(fs *pflag.FlagSet, tok, rest string, onUnknown UnknownHandler) bool {
	if !report(onUnknown, tok) {
		return true
	}
	for i := 0; i < len(rest); i++ {
		if i+1 < len(rest) && rest[i+1] == '=' {
			return false // "-c=value" ends the group whether or not c is known
		}
		flag := fs.ShorthandLookup(string(rest[i]))
		if flag == nil {
			if rest[i] == 'h' {
				return true
			}
			continue
		}
		if flag.NoOptDefVal == "" {
			return false // consumes the rest of the group as its value
		}
	}
	return false
}

func splitLong(tok string) (name string, hasValue bool) {
	body := tok[2:]
	if i := strings.IndexByte(body, '='); i >= 0 {
		return body[:i], true
	}
	return body, false
}

// dashNumber reports whether tok reads as a negative number, which is a
// positional argument rather than a shorthand group.
func dashNumber(tok string) bool {
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}

func report(onUnknown UnknownHandler, tok string) bool {
	if onUnknown == nil {
		return true
	}
	return onUnknown(tok)
}
