package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/czz/ansiconsole/core/ansi"
	"golang.org/x/term"
)

// ColorMode selects how terminal effects are decided.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode coming from config or flags.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
	}
}

// Tui represents a simple text-based UI system.
type Tui struct {
	effects bool   // Determines whether terminal effects (like colors) are enabled.
	prompt  string // The prompt string displayed before user input.
}

// NewTui creates a new Tui instance.
// In auto mode effects are enabled only for a real terminal that is not dumb
// and when NO_COLOR is not set.
func NewTui(mode ColorMode) *Tui {
	return &Tui{
		effects: detectEffects(mode, os.Getenv, term.IsTerminal(int(os.Stdout.Fd()))),
		prompt:  "ansi>",
	}
}

func detectEffects(mode ColorMode, getenv func(string) string, isTerminal bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if getenv("NO_COLOR") != "" {
		return false
	}
	// Disable effects if TERM is not set or is a dumb terminal
	if t := getenv("TERM"); t == "" || t == "dumb" {
		return false
	}
	return isTerminal
}

// HasEffectsEnable returns whether terminal effects are enabled.
func (t *Tui) HasEffectsEnable() bool {
	return t.effects
}

// SetEffects turns terminal effects on or off.
func (t *Tui) SetEffects(on bool) {
	t.effects = on
}

// Builder returns a message builder that emits escape codes only when
// effects are enabled.
func (t *Tui) Builder(capacity int) *ansi.Builder {
	return ansi.NewBuilder(capacity, !t.effects)
}

// SetPrompt sets the terminal prompt to the given string.
func (t *Tui) SetPrompt(s string) {
	t.prompt = s
}

// GetPrompt returns the current terminal prompt string.
func (t *Tui) GetPrompt() string {
	return t.prompt
}
