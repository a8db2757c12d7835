package ansi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderEmitting(t *testing.T) {
	got := NewBuilder(16, false).Append("Hello ").Named("red").Append("World").String()
	assert.Equal(t, "Hello \u001b[31mWorld", got)
}

func TestBuilderSuppressing(t *testing.T) {
	got := NewBuilder(16, true).Append("Hello ").Named("red").Append("World").String()
	assert.Equal(t, "Hello World", got)
}

func TestBuilderSuppressingKeepsOnlyPlainText(t *testing.T) {
	b := NewBuilder(0, true)
	b.Red().Append("a").Ansi("\033[1m").Append("b").SGR("4", "31").
		Reset().Append("c").Color(LightCyan).Gold()
	fmt.Fprintf(b, "%d", 42)
	b.Appendf("-%s", "x")

	assert.Equal(t, "abc42-x", b.String())
	assert.True(t, b.NoAnsi())
}

func TestBuilderEmittingUsesTableLiterals(t *testing.T) {
	b := NewBuilder(0, false)
	for _, c := range Colors() {
		b.Color(c).Append(c.String())
	}

	want := ""
	for _, c := range Colors() {
		want += c.Code() + c.String()
	}
	assert.Equal(t, want, b.String())
}

func TestBuilderNamedShortcuts(t *testing.T) {
	b := NewBuilder(64, false)
	b.Reset().White().Red().EmeraldGreen().Gold().Blue().Purple().Green().
		Gray().LightRed().LightGreen().LightYellow().LightBlue().LightPurple().LightCyan()

	want := CodeReset + CodeWhite + CodeRed + CodeEmeraldGreen + CodeGold + CodeBlue +
		CodePurple + CodeGreen + CodeGray + CodeLightRed + CodeLightGreen +
		CodeLightYellow + CodeLightBlue + CodeLightPurple + CodeLightCyan
	assert.Equal(t, want, b.String())
}

func TestBuilderAnsiAndSGR(t *testing.T) {
	b := NewBuilder(0, false).Ansi("\033[1m").Append("bold").SGR("1", "4").SGR()
	assert.Equal(t, "\033[1mbold\033[1;4m\033[m", b.String())
}

func TestBuilderStringIsIdempotent(t *testing.T) {
	b := NewBuilder(4, false).Append("x").Blue().Append("y")
	first := b.String()
	assert.Equal(t, first, b.String())
	assert.Equal(t, len(first), b.Len())

	b.Append("z")
	assert.Equal(t, first+"z", b.String())
}

func TestBuilderInvalidColorPanics(t *testing.T) {
	for _, noAnsi := range []bool{false, true} {
		b := NewBuilder(0, noAnsi)

		assert.PanicsWithError(t, "ansi: invalid color: 99", func() { b.Color(Color(99)) })
		assert.Panics(t, func() { b.Named("chartreuse") })

		func() {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, ErrInvalidColor))
			}()
			b.Named("nope")
		}()
		assert.Equal(t, "", b.String())
	}
}

func TestBuildMessage(t *testing.T) {
	msg := BuildMessage(0, false, func(b *Builder) {
		b.Gray().Append("[info] ").Reset().Append("ready")
	})
	assert.Equal(t, CodeGray+"[info] "+CodeReset+"ready", msg)

	plain := BuildMessage(0, true, func(b *Builder) {
		b.Gray().Append("[info] ").Reset().Append("ready")
	})
	assert.Equal(t, "[info] ready", plain)
}
