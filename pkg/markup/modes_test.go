package markup

import (
	"testing"

	"github.com/arthur-debert/fancy/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveString(t *testing.T, expr string) (string, error) {
	t.Helper()
	b := newBuilder(escByte)
	err := resolve(expr, 0, b)
	return b.String(), err
}

func TestResolveKeywords(t *testing.T) {
	for _, kw := range Keywords() {
		for _, name := range kw.Names {
			t.Run(name, func(t *testing.T) {
				got, err := resolveString(t, name)
				require.NoError(t, err)

				want := "\x1b[" + kw.Code + "m"
				if kw.Raw != "" {
					want = "\x1b" + kw.Raw
				}
				assert.Equal(t, want, got)
			})
		}
	}
}

func TestKeywordCodes(t *testing.T) {
	tests := map[string]string{
		"bold": "1", "b": "1", "dim": "2", "faint": "2", "italic": "3", "i": "3",
		"underline": "4", "u": "4", "inverse": "7", "!": "7", "hidden": "8",
		"strikethrough": "9", "s": "9",
		"black": "30", "red": "31", "green": "32", "yellow": "33",
		"blue": "34", "magenta": "35", "cyan": "36", "white": "37",
		"default": "39", "def": "39",
		"?black": "40", "?red": "41", "?white": "47", "?default": "49", "?def": "49",
	}

	for name, code := range tests {
		kw, ok := modes[name]
		require.True(t, ok, "missing keyword %q", name)
		assert.Equal(t, code, kw.Code, "keyword %q", name)
	}

	raws := map[string]string{
		"visible": "[?25h", "vis": "[?25h",
		"invisible": "[?25l", "invis": "[?25l",
		"blink": "[5m", "noblink": "[25m",
	}
	for name, raw := range raws {
		assert.Equal(t, raw, modes[name].Raw, "keyword %q", name)
	}
}

func TestResolveColors(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"69", "\x1b[38;5;69m"},
		{"0", "\x1b[38;5;0m"},
		{"007", "\x1b[38;5;7m"},
		{"255", "\x1b[38;5;255m"},
		{"?187", "\x1b[48;5;187m"},
		{"?9", "\x1b[48;5;9m"},
		{"#ababd2", "\x1b[38;2;171;171;210m"},
		{"#babaf1", "\x1b[38;2;186;186;241m"},
		{"#ABABD2", "\x1b[38;2;171;171;210m"},
		{"?#ababd2", "\x1b[48;2;171;171;210m"},
		{"?#000000", "\x1b[48;2;0;0;0m"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := resolveString(t, tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		token string
		code  errors.ErrorCode
	}{
		{"1234", errors.ErrMalformedNumericCode},
		{"?1234", errors.ErrMalformedNumericCode},
		{"256", errors.ErrMalformedNumericCode},
		{"?999", errors.ErrMalformedNumericCode},
		{"#abc", errors.ErrMalformedHexCode},
		{"#", errors.ErrMalformedHexCode},
		{"#ababzz", errors.ErrMalformedHexCode},
		{"#ababd2f", errors.ErrMalformedHexCode},
		{"?#12345", errors.ErrMalformedHexCode},
		{"x#ababd2", errors.ErrMalformedHexCode},
		{"notacolor", errors.ErrUnknownModifier},
		{"?", errors.ErrUnknownModifier},
		{"??1", errors.ErrUnknownModifier},
		{"Bold", errors.ErrUnknownModifier},
		{"12a", errors.ErrUnknownModifier},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			_, err := resolveString(t, tt.token)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.Equal(t, tt.token, errors.Token(err))
			assert.Contains(t, err.Error(), tt.token)
		})
	}
}

func TestResolveCoalescesExpression(t *testing.T) {
	got, err := resolveString(t, "bold|underline|blue")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1;4;34m", got)
}

func TestResolveEmptyTokens(t *testing.T) {
	got, err := resolveString(t, "b||u|")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1;4m", got)

	got, err = resolveString(t, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolveReset(t *testing.T) {
	t.Run("reset alone", func(t *testing.T) {
		got, err := resolveString(t, ":")
		require.NoError(t, err)
		assert.Equal(t, "\x1b[0m", got)
	})

	t.Run("reset then modes", func(t *testing.T) {
		got, err := resolveString(t, ":b|red")
		require.NoError(t, err)
		assert.Equal(t, "\x1b[0m\x1b[1;31m", got)
	})

	t.Run("colon elsewhere is not a reset", func(t *testing.T) {
		_, err := resolveString(t, "b|:")
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownModifier))
	})
}

func TestResolveControlsStayAtomic(t *testing.T) {
	got, err := resolveString(t, "b|blink|u")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1m\x1b[5m\x1b[4m", got)
}

func TestResolveErrorIndex(t *testing.T) {
	b := newBuilder(escByte)
	err := resolve("b|nope", 5, b)
	require.Error(t, err)

	idx, ok := errors.Index(err)
	require.True(t, ok)
	assert.Equal(t, 7, idx)
	assert.Equal(t, "nope", errors.Token(err))

	b = newBuilder(escByte)
	err = resolve(":b|zz", 10, b)
	idx, _ = errors.Index(err)
	assert.Equal(t, 13, idx)
}

func TestUnknownModifierSuggestion(t *testing.T) {
	_, err := resolveString(t, "bld")
	require.Error(t, err)
	assert.Equal(t, "bold", errors.Suggestion(err))

	_, err = resolveString(t, "undrline")
	assert.Equal(t, "underline", errors.Suggestion(err))

	_, err = resolveString(t, "zzz")
	assert.Empty(t, errors.Suggestion(err))
}
