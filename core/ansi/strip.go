package ansi

import (
	"io"
	"strings"
)

const esc = 0x1b

// A CSI sequence is ESC '[' followed by any number of parameter bytes
// (0x30-0x3F), any number of intermediate bytes (0x20-0x2F) and exactly one
// final byte (0x40-0x7E).
func isParamByte(c byte) bool        { return c >= 0x30 && c <= 0x3f }
func isIntermediateByte(c byte) bool { return c >= 0x20 && c <= 0x2f }
func isFinalByte(c byte) bool        { return c >= 0x40 && c <= 0x7e }

// csiLen returns the length of the CSI sequence at the start of s,
// or 0 if s does not start with one.
func csiLen(s string) int {
	if len(s) < 3 || s[0] != esc || s[1] != '[' {
		return 0
	}
	i := 2
	for i < len(s) && isParamByte(s[i]) {
		i++
	}
	for i < len(s) && isIntermediateByte(s[i]) {
		i++
	}
	if i < len(s) && isFinalByte(s[i]) {
		return i + 1
	}
	return 0
}

// StripCSI removes every CSI escape sequence from s and leaves all other bytes
// in place. Malformed fragments, including a lone ESC, are kept as text.
// The result never contains a CSI sequence, even when removing one joins the
// surrounding bytes into a new one.
func StripCSI(s string) string {
	for {
		out, removed := stripOnce(s)
		if !removed {
			return out
		}
		s = out
	}
}

func stripOnce(s string) (string, bool) {
	i := strings.IndexByte(s, esc)
	if i < 0 {
		return s, false
	}

	var sb strings.Builder
	sb.Grow(len(s))
	sb.WriteString(s[:i])

	removed := false
	for i < len(s) {
		if n := csiLen(s[i:]); n > 0 {
			i += n
			removed = true
			continue
		}
		next := strings.IndexByte(s[i+1:], esc)
		if next < 0 {
			sb.WriteString(s[i:])
			break
		}
		sb.WriteString(s[i : i+1+next])
		i += 1 + next
	}
	return sb.String(), removed
}

// ContainsCSI reports whether s holds at least one CSI sequence.
func ContainsCSI(s string) bool {
	for i := strings.IndexByte(s, esc); i >= 0; {
		if csiLen(s[i:]) > 0 {
			return true
		}
		next := strings.IndexByte(s[i+1:], esc)
		if next < 0 {
			return false
		}
		i += 1 + next
	}
	return false
}

type stripWriter struct {
	w io.Writer
}

// StripWriter returns a writer that removes CSI sequences from each chunk
// before passing it to w. Sequences split across two writes are not detected.
func StripWriter(w io.Writer) io.Writer {
	return &stripWriter{w: w}
}

func (sw *stripWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(sw.w, StripCSI(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}
