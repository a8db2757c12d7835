// Package sender delivers console messages to destinations that may or may
// not be able to render ANSI escape codes.
package sender

import (
	"errors"
	"fmt"

	"github.com/czz/ansiconsole/core/ansi"
)

// Sender is a destination for console messages.
type Sender interface {
	Name() string
	SendMessage(msg string) error
}

// AnsiCapable is implemented by senders that know whether they can render
// ANSI escape codes.
type AnsiCapable interface {
	AnsiSupported() bool
}

// AnsiSupported reports whether s can correctly display ANSI escape codes.
// Senders that do not implement AnsiCapable are treated as plain text.
func AnsiSupported(s Sender) bool {
	if c, ok := s.(AnsiCapable); ok {
		return c.AnsiSupported()
	}
	return false
}

// SendAnsiMessage builds a message with build and delivers it to s once.
// When s cannot render ANSI the builder is created with escape codes
// suppressed, so they are never materialized.
func SendAnsiMessage(s Sender, capacity int, build func(*ansi.Builder)) error {
	msg := ansi.BuildMessage(capacity, !AnsiSupported(s), build)
	if err := s.SendMessage(msg); err != nil {
		return fmt.Errorf("send to %s: %w", s.Name(), err)
	}
	return nil
}

// SendAnsiText delivers an already rendered message to s, stripping CSI
// sequences first when s cannot render them.
func SendAnsiText(s Sender, msg string) error {
	if !AnsiSupported(s) {
		msg = ansi.StripCSI(msg)
	}
	if err := s.SendMessage(msg); err != nil {
		return fmt.Errorf("send to %s: %w", s.Name(), err)
	}
	return nil
}

// Broadcast builds the message separately for each sender and delivers it
// once to every one of them. Delivery continues past failures; all errors
// are returned joined.
func Broadcast(senders []Sender, capacity int, build func(*ansi.Builder)) error {
	var errs []error
	for _, s := range senders {
		if err := SendAnsiMessage(s, capacity, build); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
