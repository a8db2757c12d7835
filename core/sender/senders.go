package sender

import (
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Console writes messages to an interactive terminal, one line each.
type Console struct {
	mu   sync.Mutex
	out  io.Writer
	ansi func() bool
}

// NewConsole returns a console sender writing to out. supportsAnsi is asked on
// every message so runtime changes (e.g. disabling colors) take effect.
func NewConsole(out io.Writer, supportsAnsi func() bool) *Console {
	return &Console{out: out, ansi: supportsAnsi}
}

// SetOutput redirects subsequent messages to out.
func (c *Console) SetOutput(out io.Writer) {
	c.mu.Lock()
	c.out = out
	c.mu.Unlock()
}

func (c *Console) Name() string { return "console" }

func (c *Console) AnsiSupported() bool {
	return c.ansi != nil && c.ansi()
}

func (c *Console) SendMessage(msg string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return writeLine(c.out, msg)
}

// Writer sends plain text lines to an arbitrary writer such as a pipe or a
// transcript file. It never receives escape codes.
type Writer struct {
	mu   sync.Mutex
	name string
	out  io.Writer
}

func NewWriter(name string, out io.Writer) *Writer {
	return &Writer{name: name, out: out}
}

func (w *Writer) Name() string { return w.name }

func (w *Writer) SendMessage(msg string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return writeLine(w.out, msg)
}

// Logger forwards messages to a structured logger at info level.
type Logger struct {
	log *slog.Logger
}

func NewLogger(log *slog.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Name() string { return "log" }

func (l *Logger) SendMessage(msg string) error {
	l.log.Info("message", "text", msg)
	return nil
}

// Func adapts a plain function into a Sender.
type Func struct {
	Label string
	Ansi  bool
	Send  func(msg string) error
}

func (f Func) Name() string               { return f.Label }
func (f Func) AnsiSupported() bool        { return f.Ansi }
func (f Func) SendMessage(m string) error { return f.Send(m) }

func writeLine(w io.Writer, msg string) error {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, err := io.WriteString(w, msg)
	return err
}
