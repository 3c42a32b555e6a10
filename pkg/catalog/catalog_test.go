package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fancy/pkg/catalog"
	"github.com/arthur-debert/fancy/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectedCatalog(path string) *catalog.Catalog {
	return &catalog.Catalog{
		Path:    path,
		Package: "messages",
		Messages: []catalog.Message{
			{
				Name:   "Hello",
				Source: `"[bold|cyan]Hello world[magenta]!"`,
			},
			{
				Name:   "ErrorAt",
				Doc:    "ErrorAt reports a position in a file.",
				Source: `"[b|red]error[:] at [[%d:%d]]: %s", line, col, msg`,
				Params: []string{"line int", "col int", "msg string"},
			},
		},
	}
}

func TestLoadFormats(t *testing.T) {
	for _, name := range []string{"messages.toml", "messages.yaml", "messages.xml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join("testdata", name)
			cat, err := catalog.Load(path)
			require.NoError(t, err)
			assert.Equal(t, expectedCatalog(path), cat)
			assert.NoError(t, cat.Validate())
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]catalog.Format{
		"a.toml": catalog.FormatTOML,
		"a.yaml": catalog.FormatYAML,
		"a.YML":  catalog.FormatYAML,
		"a.xml":  catalog.FormatXML,
	}
	for path, want := range tests {
		got, err := catalog.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := catalog.FormatFromPath("a.json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogLoad))
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := catalog.Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogLoad))
	})

	t.Run("unknown toml field", func(t *testing.T) {
		_, err := catalog.Parse([]byte("pakage = \"x\"\n"), catalog.FormatTOML, "x.toml")
		assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogParse))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := catalog.Parse([]byte("messages: [\n"), catalog.FormatYAML, "x.yaml")
		assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogParse))
	})

	t.Run("xml without catalog root", func(t *testing.T) {
		_, err := catalog.Parse([]byte("<messages/>"), catalog.FormatXML, "x.xml")
		assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogParse))
	})

	t.Run("empty yaml is an empty catalog", func(t *testing.T) {
		cat, err := catalog.Parse(nil, catalog.FormatYAML, "x.yaml")
		require.NoError(t, err)
		assert.Empty(t, cat.Messages)
	})
}

func TestLoadAll(t *testing.T) {
	cats, err := catalog.LoadAll([]string{
		filepath.Join("testdata", "messages.toml"),
		filepath.Join("testdata", "messages.xml"),
	})
	require.NoError(t, err)
	assert.Len(t, cats, 2)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[["), 0644))
	_, err = catalog.LoadAll([]string{filepath.Join("testdata", "messages.toml"), bad})
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	cat := &catalog.Catalog{
		Path:    "bad.toml",
		Package: "my-pkg",
		Messages: []catalog.Message{
			{Name: "Good", Source: `"[b]ok"`},
			{Name: "", Source: `"x"`},
			{Name: "1st", Source: `"x"`},
			{Name: "Good", Source: `"y"`},
			{Name: "Empty", Source: "  "},
			{Name: "BadParam", Source: `"%d", n`, Params: []string{"n"}},
			{Name: "BadMarkup", Source: `"[notacolor]x"`},
		},
	}

	problems := cat.Check()
	require.Len(t, problems, 7)

	assert.Empty(t, problems[0].Message, "package problem has no message")
	assert.Equal(t, "", problems[1].Message)
	assert.Equal(t, "1st", problems[2].Message)
	assert.Equal(t, "Good", problems[3].Message)
	assert.Contains(t, problems[3].Error(), "duplicate")
	assert.Equal(t, "Empty", problems[4].Message)
	assert.Equal(t, "BadParam", problems[5].Message)

	assert.Equal(t, "BadMarkup", problems[6].Message)
	assert.Equal(t, `"[notacolor]x"`, problems[6].Source)
	assert.True(t, errors.IsErrorCode(problems[6].Err, errors.ErrUnknownModifier))

	err := cat.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogInvalid))
	assert.Contains(t, err.Error(), "7 invalid message(s)")
	assert.Contains(t, err.Error(), "notacolor")
}

func TestParseParam(t *testing.T) {
	p, err := catalog.ParseParam("items []string")
	require.NoError(t, err)
	assert.Equal(t, catalog.Param{Name: "items", Type: "[]string"}, p)

	p, err = catalog.ParseParam("fn func(a int) error")
	require.NoError(t, err)
	assert.Equal(t, "func(a int) error", p.Type)

	_, err = catalog.ParseParam("x")
	assert.Error(t, err)

	_, err = catalog.ParseParam("9x int")
	assert.Error(t, err)
}
