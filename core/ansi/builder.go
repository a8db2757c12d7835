// Package ansi builds console messages annotated with ANSI color codes and
// strips CSI escape sequences from text headed to destinations that cannot
// render them.
package ansi

import (
	"fmt"
	"strings"
)

// DefaultCapacity is the buffer size used when NewBuilder gets a non-positive
// capacity hint.
const DefaultCapacity = 16

// Builder accumulates a console message.
//
// Plain text is always appended. Escape codes (colors, Ansi, SGR) are only
// appended when the builder was created with noAnsi == false; otherwise those
// calls leave the buffer untouched, so call sites never need to check the
// destination themselves. The mode is fixed for the builder's lifetime.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	buf    strings.Builder
	noAnsi bool
}

// NewBuilder creates a Builder with the given initial capacity.
// When noAnsi is true every escape-emitting method becomes a no-op.
func NewBuilder(capacity int, noAnsi bool) *Builder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	b := &Builder{noAnsi: noAnsi}
	b.buf.Grow(capacity)
	return b
}

// BuildMessage runs build against a fresh Builder and returns the result.
func BuildMessage(capacity int, noAnsi bool, build func(*Builder)) string {
	b := NewBuilder(capacity, noAnsi)
	build(b)
	return b.String()
}

// NoAnsi reports whether escape codes are suppressed.
func (b *Builder) NoAnsi() bool {
	return b.noAnsi
}

// Append appends plain text.
func (b *Builder) Append(s string) *Builder {
	b.buf.WriteString(s)
	return b
}

// Appendf appends plain text formatted with fmt.
func (b *Builder) Appendf(format string, args ...any) *Builder {
	fmt.Fprintf(&b.buf, format, args...)
	return b
}

// Write appends p as plain text. It never fails.
func (b *Builder) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

// WriteString appends s as plain text. It never fails.
func (b *Builder) WriteString(s string) (int, error) {
	return b.buf.WriteString(s)
}

// Ansi appends code verbatim unless escape codes are suppressed.
// It allows codes that are not part of the color table.
func (b *Builder) Ansi(code string) *Builder {
	if !b.noAnsi {
		b.buf.WriteString(code)
	}
	return b
}

// SGR appends a Select Graphic Rendition sequence built from params,
// e.g. SGR("1", "4") appends "\x1b[1;4m".
func (b *Builder) SGR(params ...string) *Builder {
	if b.noAnsi {
		return b
	}
	return b.Ansi("\033[" + strings.Join(params, ";") + "m")
}

// Color appends the escape code of c unless escape codes are suppressed.
// It panics if c is not part of the color table, regardless of mode.
func (b *Builder) Color(c Color) *Builder {
	if !c.Valid() {
		panic(fmt.Errorf("ansi: %w: %d", ErrInvalidColor, int(c)))
	}
	return b.Ansi(c.Code())
}

// Named appends the escape code registered under name.
// It panics with ErrInvalidColor for unknown names, regardless of mode.
func (b *Builder) Named(name string) *Builder {
	c, err := ParseColor(name)
	if err != nil {
		panic(fmt.Errorf("ansi: %w", err))
	}
	return b.Color(c)
}

// Reset appends the reset code; it does not clear the buffer.
func (b *Builder) Reset() *Builder        { return b.Color(Reset) }
func (b *Builder) White() *Builder        { return b.Color(White) }
func (b *Builder) Red() *Builder          { return b.Color(Red) }
func (b *Builder) EmeraldGreen() *Builder { return b.Color(EmeraldGreen) }
func (b *Builder) Gold() *Builder         { return b.Color(Gold) }
func (b *Builder) Blue() *Builder         { return b.Color(Blue) }
func (b *Builder) Purple() *Builder       { return b.Color(Purple) }
func (b *Builder) Green() *Builder        { return b.Color(Green) }
func (b *Builder) Gray() *Builder         { return b.Color(Gray) }
func (b *Builder) LightRed() *Builder     { return b.Color(LightRed) }
func (b *Builder) LightGreen() *Builder   { return b.Color(LightGreen) }
func (b *Builder) LightYellow() *Builder  { return b.Color(LightYellow) }
func (b *Builder) LightBlue() *Builder    { return b.Color(LightBlue) }
func (b *Builder) LightPurple() *Builder  { return b.Color(LightPurple) }
func (b *Builder) LightCyan() *Builder    { return b.Color(LightCyan) }

// Len returns the number of bytes accumulated so far.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// String returns the accumulated message. It does not reset the builder.
func (b *Builder) String() string {
	return b.buf.String()
}
