package markup

import (
	"strings"
)

// Escape introducers. Runtime output carries the real ESC byte, generated Go
// source carries its escaped spelling so the text can sit between quotes.
const (
	escByte   = "\x1b"
	escSource = `\x1b`
)

// seqReset is the body of the full-reset sequence
const seqReset = "[0m"

// builder accumulates output text and pending SGR codes.
// Codes added between two flushes end up in a single ESC[...m sequence.
type builder struct {
	esc     string
	plain   bool
	out     strings.Builder
	pending []string
}

func newBuilder(esc string) *builder {
	return &builder{esc: esc}
}

// newPlainBuilder returns a builder that drops every sequence
func newPlainBuilder() *builder {
	return &builder{plain: true}
}

// add queues an SGR code for the next flush
func (b *builder) add(code string) {
	if b.plain {
		return
	}
	b.pending = append(b.pending, code)
}

// raw flushes pending codes, then writes the sequence body as is
func (b *builder) raw(body string) {
	if b.plain {
		return
	}
	b.flush()
	b.out.WriteString(b.esc)
	b.out.WriteString(body)
}

// flush emits pending codes as one combined sequence.
// Never writes an empty ESC[m.
func (b *builder) flush() {
	if len(b.pending) == 0 {
		return
	}
	b.out.WriteString(b.esc)
	b.out.WriteByte('[')
	b.out.WriteString(strings.Join(b.pending, ";"))
	b.out.WriteByte('m')
	b.pending = b.pending[:0]
}

func (b *builder) writeRune(r rune) {
	b.out.WriteRune(r)
}

func (b *builder) String() string {
	return b.out.String()
}
