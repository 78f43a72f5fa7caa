package cliopts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/CodexForgeBR/cliopts/internal/exitcode"
)

// ErrShown is returned by Run after the usage text has been written and the
// exit hook has come back, which only happens when the hook is replaced for
// testing. Callers of the package-level Process never observe it.
var ErrShown = errors.New("usage shown")

// Processor runs the parse-then-decide workflow: tokenize the command line,
// then either hand the result back or write the usage text and end the
// process. The zero value is ready to use with the pflag-backed tokenizer,
// standard error, and os.Exit. Replace the fields to capture output or keep
// the process alive under test.
type Processor struct {
	// Tokenizer splits the raw arguments. Nil means the default from
	// NewTokenizer.
	Tokenizer Tokenizer

	// Output receives the unknown-arguments notice and the usage text.
	// Nil means os.Stderr.
	Output io.Writer

	// Exit ends the process after the usage text is written. Nil means
	// os.Exit.
	Exit func(code int)
}

// Run parses args against opts. When the parse asks for help or touches an
// unknown flag, Run writes the diagnostics to p.Output, calls p.Exit with a
// failure status, and returns ErrShown. Otherwise it returns the parsed
// result unchanged.
//
// Every token that looks like a flag but matches nothing declared is
// recorded, whether or not opts.OnUnknown is set; the handler's verdict
// still controls what the tokenizer does with the token.
func (p *Processor) Run(args []string, opts Options) (Result, error) {
	rec := &unknownRecorder{next: opts.OnUnknown}
	res, err := p.tokenizer().Tokenize(Flags(opts), args, rec.handle)
	if err != nil {
		return Result{}, err
	}
	if !res.Help() && len(rec.tokens) == 0 {
		return res, nil
	}

	out := p.output()
	if len(rec.tokens) > 0 {
		fmt.Fprintf(out, "Unknown arguments: %s\n\n", strings.Join(rec.tokens, " "))
	}
	fmt.Fprintln(out, Usage(opts))
	p.exit()(exitcode.Usage)
	return Result{}, ErrShown
}

func (p *Processor) tokenizer() Tokenizer {
	if p.Tokenizer != nil {
		return p.Tokenizer
	}
	return NewTokenizer()
}

func (p *Processor) output() io.Writer {
	if p.Output != nil {
		return p.Output
	}
	return os.Stderr
}

func (p *Processor) exit() func(int) {
	if p.Exit != nil {
		return p.Exit
	}
	return os.Exit
}

// Process parses args against opts with a default Processor: diagnostics go
// to standard error and a help request or unknown flag exits the process
// with a failure status. Most programs call this once from main.
func Process(args []string, opts Options) (Result, error) {
	var p Processor
	return p.Run(args, opts)
}

// Parse runs normalization and tokenization but leaves the decisions to the
// caller: a requested help flag comes back as result data, unknown tokens go
// only to opts.OnUnknown, and nothing is written or exited. Use it when help
// output needs a pager, or when unknown flags are forwarded to another
// program.
func Parse(args []string, opts Options) (Result, error) {
	return NewTokenizer().Tokenize(Flags(opts), args, opts.OnUnknown)
}

// unknownRecorder composes the processor's own bookkeeping with the
// caller-supplied handler: every reported token is recorded once, in
// first-seen order, and the caller's verdict is forwarded unchanged.
type unknownRecorder struct {
	next   UnknownHandler
	tokens []string
	seen   map[string]bool
}

func (u *unknownRecorder) handle(token string) bool {
	if !u.seen[token] {
		if u.seen == nil {
			u.seen = make(map[string]bool)
		}
		u.seen[token] = true
		u.tokens = append(u.tokens, token)
	}
	return report(u.next, token)
}
