package components

import (
	"github.com/a-h/templ"

	"github.com/vango-dev/uikit/ui"
)

type ButtonVariant string

const (
	ButtonVariantDefault     ButtonVariant = "default"
	ButtonVariantPrimary     ButtonVariant = "primary"
	ButtonVariantDestructive ButtonVariant = "destructive"
	ButtonVariantOutline     ButtonVariant = "outline"
	ButtonVariantSecondary   ButtonVariant = "secondary"
	ButtonVariantGhost       ButtonVariant = "ghost"
	ButtonVariantLink        ButtonVariant = "link"
)

type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSm      ButtonSize = "sm"
	ButtonSizeLg      ButtonSize = "lg"
	ButtonSizeIcon    ButtonSize = "icon"
)

type ButtonConfig struct {
	BaseConfig
	Variant  ButtonVariant
	Size     ButtonSize
	Type     string
	Disabled bool
}

func (c *ButtonConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type ButtonOption = Option[*ButtonConfig]

func Variant(v ButtonVariant) ButtonOption {
	return func(c *ButtonConfig) { c.Variant = v }
}

func Size(s ButtonSize) ButtonOption {
	return func(c *ButtonConfig) { c.Size = s }
}

// ButtonType sets the type attribute. Buttons default to "button" so they
// never submit a form by accident.
func ButtonType(t string) ButtonOption {
	return func(c *ButtonConfig) { c.Type = t }
}

func ButtonDisabled(b bool) ButtonOption {
	return func(c *ButtonConfig) { c.Disabled = b }
}

func Button(opts ...ButtonOption) *Element {
	c := apply(&ButtonConfig{
		Variant: ButtonVariantDefault,
		Size:    ButtonSizeDefault,
		Type:    "button",
	}, opts)

	class := ui.ClassNames(
		ui.Str("inline-flex items-center justify-center whitespace-nowrap rounded-md text-sm font-medium ring-offset-background transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50"),
		buttonVariants[c.Variant],
		buttonSizes[c.Size],
		ui.When(c.Disabled, "cursor-not-allowed"),
	)

	attrs := templ.Attributes{"type": c.Type}
	if c.Disabled {
		attrs["disabled"] = true
		attrs["aria-disabled"] = "true"
	}

	return c.element("button", ui.Str(class), nil, attrs)
}

var buttonVariants = map[ButtonVariant]ui.Str{
	ButtonVariantDefault:     "bg-primary text-primary-foreground hover:bg-primary/90",
	ButtonVariantPrimary:     "bg-primary text-primary-foreground hover:bg-primary/90",
	ButtonVariantDestructive: "bg-destructive text-destructive-foreground hover:bg-destructive/90",
	ButtonVariantOutline:     "border border-input bg-background hover:bg-accent hover:text-accent-foreground",
	ButtonVariantSecondary:   "bg-secondary text-secondary-foreground hover:bg-secondary/80",
	ButtonVariantGhost:       "hover:bg-accent hover:text-accent-foreground",
	ButtonVariantLink:        "text-primary underline-offset-4 hover:underline",
}

var buttonSizes = map[ButtonSize]ui.Str{
	ButtonSizeDefault: "h-10 px-4 py-2",
	ButtonSizeSm:      "h-9 rounded-md px-3",
	ButtonSizeLg:      "h-11 rounded-md px-8",
	ButtonSizeIcon:    "h-10 w-10",
}
