package markup

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/fancy/pkg/errors"
	"github.com/sahilm/fuzzy"
)

// Keyword is one entry of the fixed mode table
type Keyword struct {
	Names []string // primary name first, aliases after
	Code  string   // SGR parameter, coalesced with its neighbours
	Raw   string   // sequence body emitted on its own
	Group string
}

// Keyword groups, in documentation order
const (
	GroupStyle      = "style"
	GroupForeground = "foreground"
	GroupBackground = "background"
	GroupControl    = "control"
)

var colorNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

var keywords = buildKeywords()

// modes indexes keywords by every name and alias
var modes = indexKeywords(keywords)

// modeNames is the sorted list of every accepted name, used for suggestions
var modeNames = sortedNames(modes)

func buildKeywords() []Keyword {
	kws := []Keyword{
		{Names: []string{"bold", "b"}, Code: "1", Group: GroupStyle},
		{Names: []string{"dim", "faint"}, Code: "2", Group: GroupStyle},
		{Names: []string{"italic", "i"}, Code: "3", Group: GroupStyle},
		{Names: []string{"underline", "u"}, Code: "4", Group: GroupStyle},
		{Names: []string{"inverse", "!"}, Code: "7", Group: GroupStyle},
		{Names: []string{"hidden"}, Code: "8", Group: GroupStyle},
		{Names: []string{"strikethrough", "s"}, Code: "9", Group: GroupStyle},
	}

	for i, name := range colorNames {
		kws = append(kws, Keyword{Names: []string{name}, Code: strconv.Itoa(30 + i), Group: GroupForeground})
	}
	kws = append(kws, Keyword{Names: []string{"default", "def"}, Code: "39", Group: GroupForeground})

	for i, name := range colorNames {
		kws = append(kws, Keyword{Names: []string{"?" + name}, Code: strconv.Itoa(40 + i), Group: GroupBackground})
	}
	kws = append(kws, Keyword{Names: []string{"?default", "?def"}, Code: "49", Group: GroupBackground})

	return append(kws,
		Keyword{Names: []string{"visible", "vis"}, Raw: "[?25h", Group: GroupControl},
		Keyword{Names: []string{"invisible", "invis"}, Raw: "[?25l", Group: GroupControl},
		Keyword{Names: []string{"blink"}, Raw: "[5m", Group: GroupControl},
		Keyword{Names: []string{"noblink"}, Raw: "[25m", Group: GroupControl},
	)
}

func indexKeywords(kws []Keyword) map[string]Keyword {
	idx := make(map[string]Keyword)
	for _, kw := range kws {
		for _, name := range kw.Names {
			idx[name] = kw
		}
	}
	return idx
}

func sortedNames(idx map[string]Keyword) []string {
	names := make([]string, 0, len(idx))
	for name := range idx {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Keywords returns a copy of the fixed mode table
func Keywords() []Keyword {
	out := make([]Keyword, len(keywords))
	copy(out, keywords)
	return out
}

// resolve applies one mode expression to the builder.
// offset is the rune index of the expression's first character in the source.
func resolve(expr string, offset int, b *builder) error {
	if strings.HasPrefix(expr, ":") {
		b.raw(seqReset)
		expr = expr[1:]
		offset++
	}

	pos := offset
	for _, tok := range strings.Split(expr, "|") {
		if err := apply(tok, b); err != nil {
			return err.At(pos, tok)
		}
		pos += utf8.RuneCountInString(tok) + 1
	}

	b.flush()
	return nil
}

func apply(tok string, b *builder) *errors.FancyError {
	if tok == "" {
		return nil
	}

	if kw, ok := modes[tok]; ok {
		if kw.Raw != "" {
			b.raw(kw.Raw)
		} else {
			b.add(kw.Code)
		}
		return nil
	}

	code, err := colorCode(tok)
	if err != nil {
		return err
	}
	b.add(code)
	return nil
}

// colorCode parses the numeric and hex color grammars
func colorCode(tok string) (string, *errors.FancyError) {
	layer, body := "38", tok
	if strings.HasPrefix(tok, "?") {
		layer, body = "48", tok[1:]
	}

	switch {
	case isDecimal(body):
		if len(body) > 3 {
			return "", errors.Newf(errors.ErrMalformedNumericCode,
				"invalid ansi color code %q: expected 1 to 3 decimal digits", tok)
		}
		n, _ := strconv.Atoi(body)
		if n > 255 {
			return "", errors.Newf(errors.ErrMalformedNumericCode,
				"invalid ansi color code %q: must be in range 0..255", tok)
		}
		return layer + ";5;" + strconv.Itoa(n), nil

	case strings.HasPrefix(body, "#"):
		r, g, bl, ok := parseHex(body[1:])
		if !ok {
			return "", malformedHex(tok)
		}
		return fmt.Sprintf("%s;2;%d;%d;%d", layer, r, g, bl), nil

	case strings.Contains(tok[:min(2, len(tok))], "#"):
		return "", malformedHex(tok)
	}

	err := errors.Newf(errors.ErrUnknownModifier, "unknown modifier %q", tok)
	if s := suggest(tok); s != "" {
		err.WithDetail(errors.DetailSuggestion, s)
	}
	return "", err
}

func malformedHex(tok string) *errors.FancyError {
	return errors.Newf(errors.ErrMalformedHexCode,
		"invalid hex color code %q: expected '#' or '?#' followed by exactly 6 hex digits", tok)
}

func parseHex(hex string) (r, g, b uint8, ok bool) {
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return 0, 0, 0, false
		}
		rgb[i] = uint8(v)
	}
	return rgb[0], rgb[1], rgb[2], true
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// suggest returns the best fuzzy match among known mode names
func suggest(tok string) string {
	matches := fuzzy.Find(tok, modeNames)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
