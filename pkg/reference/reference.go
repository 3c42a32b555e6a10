// Package reference holds the markup reference shown by `fancy syntax`.
package reference

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
)

//go:embed syntax.md
var syntax string

// Markdown returns the raw reference text
func Markdown() string {
	return syntax
}

// Renderer turns the reference into terminal output with glamour
type Renderer struct {
	Style string // "auto", a builtin style name such as "dark" or "notty", or a path to a style file
	Width int    // word wrap column, 0 leaves wrapping to glamour
}

// NewRenderer returns a renderer with automatic style detection
func NewRenderer() *Renderer {
	return &Renderer{Style: "auto"}
}

// Render renders the reference. The raw markdown is returned when glamour fails.
func (r *Renderer) Render() string {
	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return syntax
	}
	out, err := tr.Render(syntax)
	if err != nil {
		return syntax
	}
	return out
}
