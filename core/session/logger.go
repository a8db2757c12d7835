package session

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/czz/ansiconsole/core/ansi"
)

// OpenLog opens (or creates) the session log file and returns a logger
// writing to it. Escape codes never reach the file. The returned closer
// releases the file.
func OpenLog(path, level string) (*slog.Logger, io.Closer, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("could not create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file: %w", err)
	}
	return newLogger(f, lvl), f, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(ansi.StripWriter(w), &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

func (s *Session) logError(err error, context string) {
	if err != nil {
		s.logger.Error(context, "err", err)
	}
}

func (s *Session) logCommand(line string) {
	s.logger.Info("command", "line", line)
}
