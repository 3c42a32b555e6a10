package markup

import (
	"strconv"
	"strings"
)

// Expansion is the build-time form of a colorized literal
type Expansion struct {
	// Text is the produced text in Go source form, without surrounding quotes.
	// Escape characters are spelled \x1b and the literal's own escapes are kept.
	Text string
	// Args is the verbatim argument section following the literal, leading
	// comma included. Empty when the source had no arguments.
	Args string
}

// HasArgs reports whether the literal was followed by format arguments
func (e Expansion) HasArgs() bool {
	return strings.TrimSpace(e.Args) != ""
}

// Literal returns Text as a quoted Go string literal
func (e Expansion) Literal() string {
	return `"` + e.Text + `"`
}

// GoExpr returns the Go expression producing the colorized value: the bare
// literal, or an fmt.Sprintf call over it when there are arguments.
func (e Expansion) GoExpr() string {
	if !e.HasArgs() {
		return e.Literal()
	}
	return "fmt.Sprintf(" + e.Literal() + strings.TrimRightFunc(e.Args, isSpace) + ")"
}

// Value unquotes Text into the string the generated code evaluates to
func (e Expansion) Value() (string, error) {
	return strconv.Unquote(e.Literal())
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Expand colorizes raw Go source text: one interpreted string literal
// optionally followed by a comma separated argument list.
//
//	Expand(`"[b|red]error[:] at [[%d:%d]]", line, col`)
//
// The arguments are opaque and copied verbatim; markup inside them is never
// interpreted.
func Expand(source string) (Expansion, error) {
	b := newBuilder(escSource)
	s := &scanner{src: []rune(source), b: b, quoted: true}
	res, err := s.run()
	if err != nil {
		return Expansion{}, err
	}
	return Expansion{Text: assemble(b), Args: res.args}, nil
}

// assemble flushes what is pending and terminates the text with a full reset
func assemble(b *builder) string {
	b.flush()
	b.raw(seqReset)
	return b.String()
}
