// Package diag formats markup errors for people: the offending source line
// with a caret under the position the error points at.
//
//	error[UNKNOWN_MODIFIER]: unknown modifier "bld"
//	  | [bld]hello
//	  |  ^^^
//	  = help: did you mean "bold"?
package diag

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/arthur-debert/fancy/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const gutter = "  | "

var (
	errorColor = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}
	helpColor  = lipgloss.AdaptiveColor{Light: "6", Dark: "14"}
)

// Printer renders diagnostics with a given lipgloss renderer
type Printer struct {
	header lipgloss.Style
	caret  lipgloss.Style
	gutter lipgloss.Style
	help   lipgloss.Style
}

// New returns a Printer styling through r
func New(r *lipgloss.Renderer) *Printer {
	return &Printer{
		header: r.NewStyle().Bold(true).Foreground(errorColor),
		caret:  r.NewStyle().Bold(true).Foreground(errorColor),
		gutter: r.NewStyle().Faint(true),
		help:   r.NewStyle().Foreground(helpColor),
	}
}

// Render formats err against source with the default lipgloss renderer
func Render(source string, err error) string {
	return New(lipgloss.DefaultRenderer()).Render(source, err)
}

// Render formats err against source. Errors without a position only get
// the header line.
func (p *Printer) Render(source string, err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(p.header.Render(headline(err)))
	sb.WriteByte('\n')

	if idx, ok := errors.Index(err); ok {
		line, col := locate([]rune(source), idx)
		width := max(1, runewidth.StringWidth(untab(errors.Token(err))))

		sb.WriteString(p.gutter.Render(gutter))
		sb.WriteString(untab(line))
		sb.WriteByte('\n')
		sb.WriteString(p.gutter.Render(gutter))
		sb.WriteString(strings.Repeat(" ", col))
		sb.WriteString(p.caret.Render(strings.Repeat("^", width)))
		sb.WriteByte('\n')
	}

	if s := errors.Suggestion(err); s != "" {
		sb.WriteString(p.help.Render(fmt.Sprintf("  = help: did you mean %q?", s)))
		sb.WriteByte('\n')
	}

	return sb.String()
}

func headline(err error) string {
	var fe *errors.FancyError
	if stderrors.As(err, &fe) {
		return fmt.Sprintf("error[%s]: %s", fe.Code, fe.Message)
	}
	return "error: " + err.Error()
}

// locate returns the line holding rune index idx and the display column of
// idx within it
func locate(src []rune, idx int) (string, int) {
	idx = min(max(idx, 0), len(src))

	start := idx
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	end := idx
	for end < len(src) && src[end] != '\n' {
		end++
	}

	return string(src[start:end]), runewidth.StringWidth(untab(string(src[start:idx])))
}

func untab(s string) string {
	return strings.ReplaceAll(s, "\t", " ")
}
