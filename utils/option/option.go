package option

import (
	"fmt"

	"github.com/spf13/cast"
)

// Kind is the type an option value is parsed into.
type Kind int

const (
	String Kind = iota
	Bool
	Int
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	default:
		return "string"
	}
}

// Option represents a console setting with a name, typed value, and description.
type Option struct {
	Name        string // The name of the option.
	Kind        Kind   // How values given to Set are parsed.
	Value       any    // The current value, always of Kind's Go type.
	Description string // A description of the purpose of the option.

	// OnChange, when set, is called after a successful Set with the new value.
	OnChange func(any)
}

// NewOption creates and returns a new Option. value is converted to kind.
func NewOption(name string, kind Kind, value any, description string) *Option {
	v, err := convert(kind, value)
	if err != nil {
		panic(fmt.Sprintf("option %s: %v", name, err))
	}
	return &Option{
		Name:        name,
		Kind:        kind,
		Value:       v,
		Description: description,
	}
}

// Set parses raw into the option's kind and stores it.
func (o *Option) Set(raw string) error {
	v, err := convert(o.Kind, raw)
	if err != nil {
		return fmt.Errorf("invalid %s value for %s: %w", o.Kind, o.Name, err)
	}
	o.Value = v
	if o.OnChange != nil {
		o.OnChange(v)
	}
	return nil
}

// String formats the current value for display.
func (o *Option) String() string {
	return cast.ToString(o.Value)
}

// Bool returns the value as a bool; false for non-bool options.
func (o *Option) Bool() bool {
	b, _ := o.Value.(bool)
	return b
}

// Format returns the option as a table row: name, value, kind, description.
func (o *Option) Format() []string {
	return []string{o.Name, o.String(), o.Kind.String(), o.Description}
}

func convert(kind Kind, value any) (any, error) {
	switch kind {
	case Bool:
		if s, ok := value.(string); ok {
			switch s {
			case "on", "yes", "y":
				return true, nil
			case "off", "no", "n":
				return false, nil
			}
		}
		return cast.ToBoolE(value)
	case Int:
		return cast.ToIntE(value)
	default:
		return cast.ToStringE(value)
	}
}
