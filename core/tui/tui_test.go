package tui

import (
	"testing"

	"github.com/czz/ansiconsole/core/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDetectEffects(t *testing.T) {
	tty := map[string]string{"TERM": "xterm-256color"}

	assert.True(t, detectEffects(ColorAlways, env(nil), false))
	assert.False(t, detectEffects(ColorNever, env(tty), true))
	assert.True(t, detectEffects(ColorAuto, env(tty), true))
	assert.False(t, detectEffects(ColorAuto, env(tty), false))
	assert.False(t, detectEffects(ColorAuto, env(nil), true))
	assert.False(t, detectEffects(ColorAuto, env(map[string]string{"TERM": "dumb"}), true))
	assert.False(t, detectEffects(ColorAuto, env(map[string]string{"TERM": "xterm", "NO_COLOR": "1"}), true))
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ColorAuto, "AUTO": ColorAuto, " always ": ColorAlways, "never": ColorNever} {
		got, err := ParseColorMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseColorMode("sometimes")
	assert.Error(t, err)
}

func TestStyling(t *testing.T) {
	on := NewTui(ColorAlways)
	off := NewTui(ColorNever)

	assert.Equal(t, ansi.CodeRed+"x"+ansi.CodeReset, on.Red("x"))
	assert.Equal(t, "x", off.Red("x"))
	assert.Equal(t, "\033[1m"+ansi.CodeBlue+"y"+ansi.CodeReset, on.Style("y", "\033[1m", ansi.CodeBlue))
	assert.Equal(t, "y", off.Style("y", "\033[1m"))

	off.SetEffects(true)
	assert.True(t, off.HasEffectsEnable())
	assert.Equal(t, ansi.CodeGold+"z"+ansi.CodeReset, off.Yellow("z"))
	assert.False(t, on.Builder(0).NoAnsi())
}

func TestPrompt(t *testing.T) {
	tui := NewTui(ColorNever)
	assert.Equal(t, "ansi>", tui.GetPrompt())
	tui.SetPrompt("x>")
	assert.Equal(t, "x>", tui.GetPrompt())
}

func TestTablePlain(t *testing.T) {
	tui := NewTui(ColorNever)
	out := tui.Table(&Table{Padding: 1}, [][]string{
		{"name", "code"},
		{"red", "31"},
	})
	assert.Equal(t, " name  code \n red   31   \n", out)
}

func TestTableIgnoresEscapesInWidth(t *testing.T) {
	tui := NewTui(ColorAlways)
	out := tui.Table(&Table{Padding: 0}, [][]string{
		{tui.Red("ab"), "c"},
		{"abcd", "d"},
	})
	assert.Equal(t, ansi.CodeRed+"ab"+ansi.CodeReset+"  c\nabcdd\n", out)
	assert.Equal(t, "ab  c\nabcdd\n", ansi.StripCSI(out))
}

func TestTableBorders(t *testing.T) {
	tui := NewTui(ColorNever)
	out := tui.Table(&Table{LineSeparator: true}, [][]string{{"a", "bb"}, {"c", "d"}})
	want := "┌─┬──┐\n" +
		"│a│bb│\n" +
		"├─┼──┤\n" +
		"│c│d │\n" +
		"└─┴──┘\n"
	assert.Equal(t, want, out)
}

func TestTableWrapsToMaxWidth(t *testing.T) {
	tui := NewTui(ColorNever)
	out := tui.Table(&Table{MaxWidth: 3}, [][]string{{"abcdef", "x"}})
	assert.Equal(t, "abcx\ndef \n", out)
}

func TestTableNonUniform(t *testing.T) {
	tui := NewTui(ColorNever)
	out := tui.Table(&Table{}, [][]string{{"a", "b"}, {"c"}})
	assert.Equal(t, "Error: can't print table, has not uniform columns", out)
}
