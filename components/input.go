package components

import (
	"github.com/a-h/templ"

	"github.com/vango-dev/uikit/ui"
)

type InputConfig struct {
	BaseConfig
	Type        string
	Name        string
	Placeholder string
	Value       string
	Invalid     bool
}

func (c *InputConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type InputOption = Option[*InputConfig]

func InputType(t string) InputOption {
	return func(c *InputConfig) { c.Type = t }
}

func InputName(n string) InputOption {
	return func(c *InputConfig) { c.Name = n }
}

func InputPlaceholder(s string) InputOption {
	return func(c *InputConfig) { c.Placeholder = s }
}

func InputValue(s string) InputOption {
	return func(c *InputConfig) { c.Value = s }
}

// InputInvalid marks the field as failing validation.
func InputInvalid(b bool) InputOption {
	return func(c *InputConfig) { c.Invalid = b }
}

func Input(opts ...InputOption) *Element {
	c := apply(&InputConfig{Type: "text"}, opts)

	class := ui.ClassNames(
		ui.Str("flex h-10 w-full rounded-md border border-input bg-background px-3 py-2 text-base ring-offset-background file:border-0 file:bg-transparent file:text-sm file:font-medium file:text-foreground placeholder:text-muted-foreground focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:cursor-not-allowed disabled:opacity-50 md:text-sm"),
		ui.When(c.Invalid, "border-destructive focus-visible:ring-destructive"),
	)

	attrs := templ.Attributes{}
	for name, value := range map[string]string{
		"type":        c.Type,
		"name":        c.Name,
		"placeholder": c.Placeholder,
		"value":       c.Value,
	} {
		if value != "" {
			attrs[name] = value
		}
	}
	if c.Invalid {
		attrs["aria-invalid"] = "true"
	}

	return c.element("input", ui.Str(class), nil, attrs)
}
