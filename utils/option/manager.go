package option

import "fmt"

// OptionManager manages a collection of options in registration order.
type OptionManager struct {
	options map[string]*Option
	order   []string
}

// NewOptionManager creates a new OptionManager instance.
func NewOptionManager() *OptionManager {
	return &OptionManager{options: make(map[string]*Option)}
}

// Register adds opt, replacing an option with the same name.
func (m *OptionManager) Register(opt *Option) {
	if _, exists := m.options[opt.Name]; !exists {
		m.order = append(m.order, opt.Name)
	}
	m.options[opt.Name] = opt
}

// Get retrieves an option by its name.
func (m *OptionManager) Get(name string) (*Option, bool) {
	opt, ok := m.options[name]
	return opt, ok
}

// Set updates the named option from its string form.
func (m *OptionManager) Set(name, raw string) (*Option, error) {
	opt, ok := m.options[name]
	if !ok {
		return nil, fmt.Errorf("unknown option %q", name)
	}
	return opt, opt.Set(raw)
}

// List returns all options in registration order.
func (m *OptionManager) List() []*Option {
	opts := make([]*Option, 0, len(m.order))
	for _, name := range m.order {
		opts = append(opts, m.options[name])
	}
	return opts
}
