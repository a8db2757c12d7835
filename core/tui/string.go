package tui

import "github.com/czz/ansiconsole/core/ansi"

// Pack wraps text in a color and a trailing reset.
func (t *Tui) Pack(c ansi.Color, text string) string {
	return t.Builder(len(text) + 10).Color(c).Append(text).Reset().String()
}

// Style applies every given color code before text, then resets.
func (t *Tui) Style(text string, codes ...string) string {
	b := t.Builder(len(text) + 16)
	for _, code := range codes {
		b.Ansi(code)
	}
	return b.Append(text).Reset().String()
}

// Common style methods
func (t *Tui) Bold(text string) string   { return t.Style(text, "\033[1m") }
func (t *Tui) Red(text string) string    { return t.Pack(ansi.Red, text) }
func (t *Tui) Green(text string) string  { return t.Pack(ansi.EmeraldGreen, text) }
func (t *Tui) Blue(text string) string   { return t.Pack(ansi.Blue, text) }
func (t *Tui) Yellow(text string) string { return t.Pack(ansi.Gold, text) }
func (t *Tui) Gray(text string) string   { return t.Pack(ansi.Gray, text) }
