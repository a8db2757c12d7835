package ansi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColor is returned (or panicked with) when a color name or value is
// not part of the escape code table.
var ErrInvalidColor = errors.New("invalid color")

// ANSI escape sequences for terminal text coloring
const (
	CodeReset = "\033[0m" // Resets all formatting

	// Text Colors
	CodeWhite        = "\033[30m"
	CodeRed          = "\033[31m"
	CodeEmeraldGreen = "\033[32m"
	CodeGold         = "\033[33m"
	CodeBlue         = "\033[34m"
	CodePurple       = "\033[35m"
	CodeGreen        = "\033[36m"

	// Bright Text Colors
	CodeGray        = "\033[90m"
	CodeLightRed    = "\033[91m"
	CodeLightGreen  = "\033[92m"
	CodeLightYellow = "\033[93m"
	CodeLightBlue   = "\033[94m"
	CodeLightPurple = "\033[95m"
	CodeLightCyan   = "\033[96m"
)

// Color names one entry of the escape code table.
type Color int

const (
	Reset Color = iota
	White
	Red
	EmeraldGreen
	Gold
	Blue
	Purple
	Green
	Gray
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightPurple
	LightCyan

	numColors
)

var colorTable = [numColors]struct {
	name string
	code string
}{
	Reset:        {"reset", CodeReset},
	White:        {"white", CodeWhite},
	Red:          {"red", CodeRed},
	EmeraldGreen: {"emerald_green", CodeEmeraldGreen},
	Gold:         {"gold", CodeGold},
	Blue:         {"blue", CodeBlue},
	Purple:       {"purple", CodePurple},
	Green:        {"green", CodeGreen},
	Gray:         {"gray", CodeGray},
	LightRed:     {"light_red", CodeLightRed},
	LightGreen:   {"light_green", CodeLightGreen},
	LightYellow:  {"light_yellow", CodeLightYellow},
	LightBlue:    {"light_blue", CodeLightBlue},
	LightPurple:  {"light_purple", CodeLightPurple},
	LightCyan:    {"light_cyan", CodeLightCyan},
}

// colorsByName is built once from colorTable and only read afterwards.
var colorsByName = func() map[string]Color {
	m := make(map[string]Color, numColors)
	for c := Reset; c < numColors; c++ {
		m[colorTable[c].name] = c
	}
	return m
}()

// Valid reports whether c is part of the table.
func (c Color) Valid() bool {
	return c >= Reset && c < numColors
}

// String returns the symbolic snake_case name of c.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorTable[c].name
}

// Code returns the literal escape sequence for c, or an empty string when c is
// not a valid color.
func (c Color) Code() string {
	if !c.Valid() {
		return ""
	}
	return colorTable[c].code
}

// ParseColor looks a color up by name. Matching ignores case, and hyphens or
// camelCase word breaks are accepted in place of underscores, so "lightRed",
// "light-red" and "LIGHT_RED" all resolve to LightRed.
func ParseColor(name string) (Color, error) {
	if c, ok := colorsByName[normalizeName(name)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColor, name)
}

// Colors returns every table entry in table order.
func Colors() []Color {
	list := make([]Color, 0, numColors)
	for c := Reset; c < numColors; c++ {
		list = append(list, c)
	}
	return list
}

// Codes returns a copy of the table as name -> literal escape sequence.
func Codes() map[string]string {
	m := make(map[string]string, numColors)
	for _, entry := range colorTable {
		m[entry.name] = entry.code
	}
	return m
}

func normalizeName(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + 4)
	var prev rune
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r == '-' || r == ' ':
			sb.WriteByte('_')
		case r >= 'A' && r <= 'Z':
			if prev >= 'a' && prev <= 'z' {
				sb.WriteByte('_')
			}
			sb.WriteRune(r + ('a' - 'A'))
		default:
			sb.WriteRune(r)
		}
		prev = r
	}
	return sb.String()
}
