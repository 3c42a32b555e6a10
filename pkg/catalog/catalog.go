package catalog

import (
	stderrors "errors"
	"fmt"
	"go/token"
	"strings"

	"github.com/arthur-debert/fancy/pkg/errors"
	"github.com/arthur-debert/fancy/pkg/markup"
)

// Message is one named, colorized text
type Message struct {
	Name   string   `toml:"name" yaml:"name"`
	Doc    string   `toml:"doc,omitempty" yaml:"doc,omitempty"`
	Source string   `toml:"source" yaml:"source"`
	Params []string `toml:"params,omitempty" yaml:"params,omitempty"`
}

// Catalog is a set of messages sharing one generated file
type Catalog struct {
	Path     string    `toml:"-" yaml:"-"`
	Package  string    `toml:"package,omitempty" yaml:"package,omitempty"`
	Messages []Message `toml:"message" yaml:"messages"`
}

// Problem is one invalid message
type Problem struct {
	Message string
	Source  string
	Err     error
}

func (p Problem) Error() string {
	if p.Message == "" {
		return p.Err.Error()
	}
	return fmt.Sprintf("message %s: %v", p.Message, p.Err)
}

// Param is a parsed function parameter
type Param struct {
	Name string
	Type string
}

// ParseParam splits "name type" into its parts
func ParseParam(s string) (Param, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return Param{}, errors.Newf(errors.ErrCatalogInvalid, "parameter %q must be \"name type\"", s)
	}
	p := Param{Name: fields[0], Type: strings.Join(fields[1:], " ")}
	if !token.IsIdentifier(p.Name) {
		return Param{}, errors.Newf(errors.ErrCatalogInvalid, "parameter name %q is not a Go identifier", p.Name)
	}
	return p, nil
}

// Check returns every problem found in the catalog, in message order
func (c *Catalog) Check() []Problem {
	var problems []Problem

	if c.Package != "" && !token.IsIdentifier(c.Package) {
		problems = append(problems, Problem{
			Err: errors.Newf(errors.ErrCatalogInvalid, "package %q is not a Go identifier", c.Package),
		})
	}

	seen := make(map[string]bool, len(c.Messages))
	for _, m := range c.Messages {
		add := func(err error) {
			problems = append(problems, Problem{Message: m.Name, Source: m.Source, Err: err})
		}

		switch {
		case m.Name == "":
			add(errors.New(errors.ErrCatalogInvalid, "message has no name"))
		case !token.IsIdentifier(m.Name):
			add(errors.Newf(errors.ErrCatalogInvalid, "name %q is not a Go identifier", m.Name))
		case seen[m.Name]:
			add(errors.Newf(errors.ErrCatalogInvalid, "duplicate message name %q", m.Name))
		}
		seen[m.Name] = true

		if strings.TrimSpace(m.Source) == "" {
			add(errors.New(errors.ErrCatalogInvalid, "message has no source"))
			continue
		}

		for _, p := range m.Params {
			if _, err := ParseParam(p); err != nil {
				add(err)
			}
		}

		if _, err := markup.Expand(m.Source); err != nil {
			add(err)
		}
	}

	return problems
}

// Validate returns nil when Check finds nothing, otherwise one
// CATALOG_INVALID error wrapping all problems
func (c *Catalog) Validate() error {
	problems := c.Check()
	if len(problems) == 0 {
		return nil
	}

	errs := make([]error, len(problems))
	for i, p := range problems {
		errs[i] = p
	}
	return errors.Wrapf(stderrors.Join(errs...), errors.ErrCatalogInvalid,
		"%s: %d invalid message(s)", c.Path, len(problems)).
		WithDetail("path", c.Path).
		WithDetail("problems", len(problems))
}
