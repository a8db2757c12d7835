package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpTable(t *testing.T) {
	h := NewHelpManager()
	h.Register("say", "<color> <text...>", "Print text in a color")
	h.Register("exit", "", "Leave")
	h.Register("say", "<color> <text...>", "Print colored text")

	assert.Equal(t, [][]string{
		{"Commands", ""},
		{"========", ""},
		{"  Command", "Description"},
		{"  -------", "-----------"},
		{"  say <color> <text...>", "Print colored text"},
		{"  exit", "Leave"},
	}, h.Table("Commands"))

	assert.Equal(t, "exit", h.Usage("exit"))
	assert.Equal(t, "", h.Usage("missing"))
	assert.Len(t, h.List(), 2)
}
