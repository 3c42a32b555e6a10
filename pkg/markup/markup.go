package markup

import (
	"github.com/mattn/go-runewidth"
)

// Colorize replaces every mode expression in text with ANSI escape
// sequences and appends a final reset.
func Colorize(text string) (string, error) {
	b := newBuilder(escByte)
	s := &scanner{src: []rune(text), b: b}
	if _, err := s.run(); err != nil {
		return "", err
	}
	return assemble(b), nil
}

// MustColorize is like Colorize but panics on malformed markup.
// It is meant for package level variables holding fixed text.
func MustColorize(text string) string {
	out, err := Colorize(text)
	if err != nil {
		panic(err)
	}
	return out
}

// Strip validates text and returns it with all markup removed: mode
// expressions disappear, escaped brackets are resolved, no reset is added.
func Strip(text string) (string, error) {
	b := newPlainBuilder()
	s := &scanner{src: []rune(text), b: b}
	if _, err := s.run(); err != nil {
		return "", err
	}
	return assemble(b), nil
}

// VisibleWidth returns the number of terminal cells text occupies once
// rendered.
func VisibleWidth(text string) (int, error) {
	plain, err := Strip(text)
	if err != nil {
		return 0, err
	}
	return runewidth.StringWidth(plain), nil
}
