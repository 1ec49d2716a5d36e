package components

import (
	"github.com/a-h/templ"

	"github.com/vango-dev/uikit/ui"
)

type LabelConfig struct {
	BaseConfig
	For string
}

func (c *LabelConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type LabelOption = Option[*LabelConfig]

func LabelFor(id string) LabelOption {
	return func(c *LabelConfig) { c.For = id }
}

func Label(opts ...LabelOption) *Element {
	c := apply(&LabelConfig{}, opts)

	var attrs templ.Attributes
	if c.For != "" {
		attrs = templ.Attributes{"for": c.For}
	}

	return c.element("label", ui.Str("text-sm font-medium leading-none peer-disabled:cursor-not-allowed peer-disabled:opacity-70"), nil, attrs)
}
