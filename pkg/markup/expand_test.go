package markup_test

import (
	"testing"

	"github.com/arthur-debert/fancy/pkg/errors"
	"github.com/arthur-debert/fancy/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandLiteral(t *testing.T) {
	exp, err := markup.Expand(`"[b]Hi [u]there!"`)
	require.NoError(t, err)

	assert.Equal(t, `\x1b[1mHi \x1b[4mthere!\x1b[0m`, exp.Text)
	assert.Empty(t, exp.Args)
	assert.False(t, exp.HasArgs())
	assert.Equal(t, `"\x1b[1mHi \x1b[4mthere!\x1b[0m"`, exp.GoExpr())

	val, err := exp.Value()
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1mHi \x1b[4mthere!\x1b[0m", val)
}

func TestExpandMatchesColorize(t *testing.T) {
	inputs := []string{
		"[bold|cyan]Hello world[magenta]!",
		"H[!]E[:]L[!]L[:]L[!]O[:]",
		"I am [[ -- [[escaped]] -- ]]!",
		"[b|u|#babaf1]rust[:] is [!]cool",
	}

	for _, in := range inputs {
		exp, err := markup.Expand(`"` + in + `"`)
		require.NoError(t, err, in)
		val, err := exp.Value()
		require.NoError(t, err)

		want, err := markup.Colorize(in)
		require.NoError(t, err)
		assert.Equal(t, want, val, in)
	}
}

func TestExpandArguments(t *testing.T) {
	t.Run("arguments are passed through verbatim", func(t *testing.T) {
		exp, err := markup.Expand(`"{}I am not bold!", "[bold]"`)
		require.NoError(t, err)

		assert.Equal(t, `{}I am not bold!\x1b[0m`, exp.Text)
		assert.Equal(t, `, "[bold]"`, exp.Args)
		assert.True(t, exp.HasArgs())
		assert.Equal(t, `fmt.Sprintf("{}I am not bold!\x1b[0m", "[bold]")`, exp.GoExpr())
	})

	t.Run("several arguments", func(t *testing.T) {
		exp, err := markup.Expand(`"[b|r]error[:] at [[%d:%d]]", line, column  `)
		require.Error(t, err, "r is not a modifier")

		exp, err = markup.Expand(`"[b|red]error[:] at [[%d:%d]]", line, column  `)
		require.NoError(t, err)
		assert.Equal(t,
			`fmt.Sprintf("\x1b[1;31merror\x1b[0m at [%d:%d]\x1b[0m", line, column)`,
			exp.GoExpr())
	})

	t.Run("blank tail is not an argument list", func(t *testing.T) {
		exp, err := markup.Expand(`"x"   `)
		require.NoError(t, err)
		assert.False(t, exp.HasArgs())
		assert.Equal(t, `"x\x1b[0m"`, exp.GoExpr())
	})
}

func TestExpandKeepsGoEscapes(t *testing.T) {
	exp, err := markup.Expand(`"[bold|magenta]\"Hello world!\"\n"`)
	require.NoError(t, err)
	assert.Equal(t, `\x1b[1;35m\"Hello world!\"\n\x1b[0m`, exp.Text)

	val, err := exp.Value()
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1;35m\"Hello world!\"\n\x1b[0m", val)

	exp, err = markup.Expand(`"a\\", b`)
	require.NoError(t, err)
	assert.Equal(t, `a\\\x1b[0m`, exp.Text)
	assert.Equal(t, `, b`, exp.Args)
}

func TestExpandErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		code   errors.ErrorCode
		index  int
	}{
		{"no opening quote", `[b]x`, errors.ErrMissingLiteralDelimiter, 0},
		{"raw string literal", "`x`", errors.ErrMissingLiteralDelimiter, 0},
		{"empty source", ``, errors.ErrMissingLiteralDelimiter, 0},
		{"never closed", `"[b]x`, errors.ErrMissingLiteralDelimiter, 5},
		{"escaped quote does not close", `"x\"`, errors.ErrMissingLiteralDelimiter, 4},
		{"unclosed bracket", `"[bold"`, errors.ErrUnmatchedBracket, 1},
		{"quote inside expression", `"[bo"ld]"`, errors.ErrUnmatchedBracket, 1},
		{"nested", `"[b[red]]"`, errors.ErrNestedBracket, 3},
		{"unknown", `"[notacolor]"`, errors.ErrUnknownModifier, 2},
		{"bad hex", `"[#ababd]"`, errors.ErrMalformedHexCode, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := markup.Expand(tt.source)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)

			idx, ok := errors.Index(err)
			require.True(t, ok)
			assert.Equal(t, tt.index, idx)
		})
	}

	t.Run("unclosed token excludes the closing quote", func(t *testing.T) {
		_, err := markup.Expand(`"[bold"`)
		assert.Equal(t, "[bold", errors.Token(err))
	})
}
