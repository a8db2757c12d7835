package help

import "strings"

// HelpEntry describes one console command.
type HelpEntry struct {
	Name        string // Command name as typed
	Syntax      string // Arguments, e.g. "<color> <text...>"
	Description string // Short description of the command
}

// HelpManager keeps command help in registration order.
type HelpManager struct {
	entries []*HelpEntry
	byName  map[string]*HelpEntry
}

// NewHelpManager initializes and returns a new HelpManager instance.
func NewHelpManager() *HelpManager {
	return &HelpManager{byName: make(map[string]*HelpEntry)}
}

// Register adds a new HelpEntry to the manager.
func (h *HelpManager) Register(name, syntax, description string) {
	e := &HelpEntry{Name: name, Syntax: syntax, Description: description}
	if _, exists := h.byName[name]; !exists {
		h.entries = append(h.entries, e)
	} else {
		for i, old := range h.entries {
			if old.Name == name {
				h.entries[i] = e
			}
		}
	}
	h.byName[name] = e
}

// Usage returns the one-line usage of a command.
func (h *HelpManager) Usage(name string) string {
	e, ok := h.byName[name]
	if !ok {
		return ""
	}
	return strings.TrimSpace(e.Name + " " + e.Syntax)
}

// Table returns the help as rows ready for tui.Table, with a title and header.
// The first column of each command row is prefixed with exactly two spaces.
func (h *HelpManager) Table(title string) [][]string {
	res := [][]string{
		{title, ""},
		{strings.Repeat("=", len(title)), ""},
		{"  Command", "Description"},
		{"  -------", "-----------"},
	}
	for _, e := range h.entries {
		res = append(res, []string{"  " + h.Usage(e.Name), e.Description})
	}
	return res
}

// List returns all registered entries in registration order.
func (h *HelpManager) List() []*HelpEntry {
	return append([]*HelpEntry(nil), h.entries...)
}
