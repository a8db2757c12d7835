package sender

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/czz/ansiconsole/core/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name string
	msgs []string
	err  error
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) SendMessage(msg string) error {
	r.msgs = append(r.msgs, msg)
	return r.err
}

func helloWorld(b *ansi.Builder) {
	b.Append("Hello ").Red().Append("World")
}

func TestAnsiSupported(t *testing.T) {
	assert.False(t, AnsiSupported(&recorder{name: "plain"}))
	assert.False(t, AnsiSupported(Func{Label: "f", Ansi: false}))
	assert.True(t, AnsiSupported(Func{Label: "f", Ansi: true}))
	assert.False(t, AnsiSupported(NewWriter("pipe", &bytes.Buffer{})))
	assert.False(t, AnsiSupported(NewConsole(&bytes.Buffer{}, nil)))
	assert.True(t, AnsiSupported(NewConsole(&bytes.Buffer{}, func() bool { return true })))
}

func TestSendAnsiMessage(t *testing.T) {
	var got []string
	capable := Func{Label: "tty", Ansi: true, Send: func(m string) error {
		got = append(got, m)
		return nil
	}}
	plain := &recorder{name: "plain"}

	require.NoError(t, SendAnsiMessage(capable, 16, helloWorld))
	require.NoError(t, SendAnsiMessage(plain, 16, helloWorld))

	assert.Equal(t, []string{"Hello \u001b[31mWorld"}, got)
	assert.Equal(t, []string{"Hello World"}, plain.msgs)
}

func TestSendAnsiText(t *testing.T) {
	msg := "\u001b[31mRed\u001b[0m text"

	capable := &recorder{name: "tty"}
	require.NoError(t, SendAnsiText(Func{Label: "tty", Ansi: true, Send: capable.SendMessage}, msg))
	assert.Equal(t, []string{msg}, capable.msgs)

	plain := &recorder{name: "plain"}
	require.NoError(t, SendAnsiText(plain, msg))
	assert.Equal(t, []string{"Red text"}, plain.msgs)
}

func TestSendErrorsAreWrapped(t *testing.T) {
	boom := errors.New("boom")
	r := &recorder{name: "remote", err: boom}

	err := SendAnsiMessage(r, 0, helloWorld)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "remote")

	err = SendAnsiText(r, "x")
	assert.ErrorIs(t, err, boom)
	assert.Len(t, r.msgs, 2)
}

func TestBroadcast(t *testing.T) {
	boom := errors.New("boom")
	var tty bytes.Buffer
	failing := &recorder{name: "down", err: boom}
	plain := &recorder{name: "plain"}

	err := Broadcast([]Sender{
		NewConsole(&tty, func() bool { return true }),
		failing,
		plain,
	}, 0, helloWorld)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "Hello \u001b[31mWorld\n", tty.String())
	assert.Equal(t, []string{"Hello World"}, failing.msgs)
	assert.Equal(t, []string{"Hello World"}, plain.msgs)
}

func TestWriterAndConsoleLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter("transcript", &buf)
	require.NoError(t, w.SendMessage("one"))
	require.NoError(t, w.SendMessage("two\n"))
	assert.Equal(t, "one\ntwo\n", buf.String())
	assert.Equal(t, "transcript", w.Name())

	enabled := true
	var out bytes.Buffer
	c := NewConsole(&out, func() bool { return enabled })
	require.NoError(t, SendAnsiMessage(c, 0, helloWorld))
	enabled = false
	require.NoError(t, SendAnsiMessage(c, 0, helloWorld))
	assert.Equal(t, "Hello \u001b[31mWorld\nHello World\n", out.String())
}

func TestLoggerNeverGetsEscapes(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, SendAnsiText(l, "\u001b[32mok\u001b[0m"))
	assert.Contains(t, buf.String(), "text=ok")
	assert.NotContains(t, buf.String(), "\u001b")
}
