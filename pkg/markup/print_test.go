package markup_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/fancy/pkg/errors"
	"github.com/arthur-debert/fancy/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSprintf(t *testing.T) {
	t.Run("arguments are not scanned for markup", func(t *testing.T) {
		got, err := markup.Sprintf("%sI am not bold!", "[bold]")
		require.NoError(t, err)
		assert.Equal(t, "[bold]I am not bold!"+reset, got)
	})

	t.Run("markup and verbs", func(t *testing.T) {
		got, err := markup.Sprintf("[bold]%x %x [red]world!", 104, 105)
		require.NoError(t, err)
		assert.Equal(t, "\x1b[1m68 69 \x1b[31mworld!"+reset, got)
	})

	t.Run("no arguments leaves percent signs alone", func(t *testing.T) {
		got, err := markup.Sprintf("100%")
		require.NoError(t, err)
		assert.Equal(t, "100%"+reset, got)
	})

	t.Run("grammar errors are returned", func(t *testing.T) {
		_, err := markup.Sprintf("[b", 1)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnmatchedBracket))
	})
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, markup.Fprint(&buf, "[b]%s", "hi"))
	assert.Equal(t, "\x1b[1mhi"+reset, buf.String())

	buf.Reset()
	require.NoError(t, markup.Fprintln(&buf, "[u]x"))
	assert.Equal(t, "\x1b[4mx"+reset+"\n", buf.String())

	buf.Reset()
	err := markup.Fprintln(&buf, "[b[u]]x")
	assert.Error(t, err)
	assert.Empty(t, buf.String(), "nothing is written on error")
}
