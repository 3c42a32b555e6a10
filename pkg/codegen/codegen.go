package codegen

import (
	"bytes"
	"context"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/arthur-debert/fancy/pkg/catalog"
	"github.com/arthur-debert/fancy/pkg/errors"
	"github.com/arthur-debert/fancy/pkg/logging"
	"github.com/arthur-debert/fancy/pkg/markup"
	"golang.org/x/sync/errgroup"
)

// Header is the first line of every generated file
const Header = "// Code generated by fancy gen. DO NOT EDIT."

// DefaultPackage is used when neither the catalog nor the options name one
const DefaultPackage = "messages"

// outputSuffix is appended to the catalog base name when no output is given
const outputSuffix = "_fancy.go"

// Options control where and how catalogs are generated
type Options struct {
	// Package is used for catalogs that do not declare their own
	Package string
	// Output is the file name. Only honoured when a single catalog is generated.
	Output string
	// Dir is the target directory, defaulting to the catalog's own directory
	Dir string
}

type fileData struct {
	Header   string
	Source   string
	Package  string
	NeedsFmt bool
	Messages []messageData
}

type messageData struct {
	Name   string
	Doc    string
	Const  bool
	Params string
	Expr   string
}

var fileTemplate = template.Must(template.New("file").Funcs(template.FuncMap{
	"comment": comment,
}).Parse(`{{.Header}}
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

package {{.Package}}
{{if .NeedsFmt}}
import "fmt"
{{end}}
{{- range .Messages}}
{{comment .Doc}}
{{- if .Const}}
const {{.Name}} = {{.Expr}}
{{else}}
func {{.Name}}({{.Params}}) string {
	return {{.Expr}}
}
{{end}}
{{- end}}
`))

func comment(doc string) string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return ""
	}
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("// "+strings.TrimSpace(line), " ")
	}
	return strings.Join(lines, "\n")
}

// Generate renders one catalog as a formatted Go file
func Generate(cat *catalog.Catalog, opts Options) ([]byte, error) {
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	data := fileData{
		Header:  Header,
		Source:  filepath.ToSlash(cat.Path),
		Package: packageName(cat, opts),
	}

	for _, m := range cat.Messages {
		exp, err := markup.Expand(m.Source)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrGenerate, "message %s", m.Name)
		}

		params := make([]string, 0, len(m.Params))
		for _, p := range m.Params {
			param, err := catalog.ParseParam(p)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrGenerate, "message %s", m.Name)
			}
			params = append(params, param.Name+" "+param.Type)
		}

		md := messageData{
			Name:   m.Name,
			Doc:    m.Doc,
			Const:  !exp.HasArgs() && len(params) == 0,
			Params: strings.Join(params, ", "),
			Expr:   exp.GoExpr(),
		}
		if exp.HasArgs() {
			data.NeedsFmt = true
		}
		data.Messages = append(data.Messages, md)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, errors.ErrGenerate, "failed to render template")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrGenerate, "generated code for %s does not parse", cat.Path).
			WithDetail("source", buf.String())
	}
	return src, nil
}

func packageName(cat *catalog.Catalog, opts Options) string {
	switch {
	case cat.Package != "":
		return cat.Package
	case opts.Package != "":
		return opts.Package
	}
	return DefaultPackage
}

// OutputPath returns where the catalog's generated file goes.
// single reports whether it is the only catalog being generated.
func OutputPath(cat *catalog.Catalog, opts Options, single bool) string {
	dir := opts.Dir
	if dir == "" {
		dir = filepath.Dir(cat.Path)
	}

	name := opts.Output
	if name == "" || !single {
		base := filepath.Base(cat.Path)
		name = strings.TrimSuffix(base, filepath.Ext(base)) + outputSuffix
	}
	return filepath.Join(dir, name)
}

// GenerateFiles generates and writes every catalog concurrently.
// It returns the written paths in catalog order. The first failure cancels
// the remaining work.
func GenerateFiles(ctx context.Context, catalogs []*catalog.Catalog, opts Options) ([]string, error) {
	logger := logging.GetLogger("codegen")

	paths := make([]string, len(catalogs))
	owners := make(map[string]string, len(catalogs))
	for i, cat := range catalogs {
		paths[i] = OutputPath(cat, opts, len(catalogs) == 1)
		if other, ok := owners[paths[i]]; ok {
			return nil, errors.Newf(errors.ErrGenerate,
				"catalogs %s and %s would both generate %s", other, cat.Path, paths[i]).
				WithDetail("path", paths[i])
		}
		owners[paths[i]] = cat.Path
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, cat := range catalogs {
		i, cat := i, cat
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := Generate(cat, opts)
			if err != nil {
				return err
			}

			path := paths[i]
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "failed to create directory for %s", path).
					WithDetail("path", path)
			}
			if err := os.WriteFile(path, src, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
					WithDetail("path", path)
			}

			logger.Debug().
				Str("catalog", cat.Path).
				Str("output", path).
				Int("messages", len(cat.Messages)).
				Msg("Generated catalog")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
