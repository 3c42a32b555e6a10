package catalog

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fancy/pkg/errors"
	"github.com/arthur-debert/fancy/pkg/logging"
	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a catalog file format
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xml":
		return FormatXML, nil
	}
	return "", errors.Newf(errors.ErrCatalogLoad, "unsupported catalog extension %q", filepath.Ext(path)).
		WithDetail("path", path)
}

// Load reads and parses one catalog file
func Load(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogLoad, "failed to read catalog %s", path).
			WithDetail("path", path)
	}

	return Parse(data, format, path)
}

// LoadAll loads catalogs in order, stopping at the first failure
func LoadAll(paths []string) ([]*Catalog, error) {
	catalogs := make([]*Catalog, 0, len(paths))
	for _, path := range paths {
		cat, err := Load(path)
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, cat)
	}
	return catalogs, nil
}

// Parse decodes catalog data. path is recorded on the result and used in errors.
func Parse(data []byte, format Format, path string) (*Catalog, error) {
	logger := logging.GetLogger("catalog")

	var (
		cat *Catalog
		err error
	)
	switch format {
	case FormatTOML:
		cat, err = parseTOML(data)
	case FormatYAML:
		cat, err = parseYAML(data)
	case FormatXML:
		cat, err = parseXML(data)
	default:
		return nil, errors.Newf(errors.ErrCatalogLoad, "unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogParse, "failed to parse %s catalog %s", format, path).
			WithDetail("path", path)
	}

	cat.Path = path
	logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("messages", len(cat.Messages)).
		Msg("Catalog loaded")
	return cat, nil
}

func parseTOML(data []byte) (*Catalog, error) {
	var cat Catalog
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func parseYAML(data []byte) (*Catalog, error) {
	var cat Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil {
		// an empty document decodes to an empty catalog
		if err == io.EOF {
			return &cat, nil
		}
		return nil, err
	}
	return &cat, nil
}

func parseXML(data []byte) (*Catalog, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}

	root := doc.SelectElement("catalog")
	if root == nil {
		return nil, errors.New(errors.ErrCatalogParse, "missing <catalog> root element")
	}

	cat := &Catalog{Package: root.SelectAttrValue("package", "")}
	for _, el := range root.SelectElements("message") {
		m := Message{
			Name: el.SelectAttrValue("name", ""),
			Doc:  el.SelectAttrValue("doc", ""),
		}
		if src := el.SelectElement("source"); src != nil {
			m.Source = strings.TrimSpace(src.Text())
		}
		for _, p := range el.SelectElements("param") {
			m.Params = append(m.Params, strings.TrimSpace(p.Text()))
		}
		cat.Messages = append(cat.Messages, m)
	}
	return cat, nil
}
