package components

import "github.com/vango-dev/uikit/ui"

// Card
type CardConfig struct{ BaseConfig }

func (c *CardConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardOption = Option[*CardConfig]

func Card(opts ...CardOption) *Element {
	c := apply(&CardConfig{}, opts)
	return c.element("div", ui.Str("rounded-lg border bg-card text-card-foreground shadow-sm"), nil)
}

// CardHeader
type CardHeaderConfig struct{ BaseConfig }

func (c *CardHeaderConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardHeaderOption = Option[*CardHeaderConfig]

func CardHeader(opts ...CardHeaderOption) *Element {
	c := apply(&CardHeaderConfig{}, opts)
	return c.element("div", ui.Str("flex flex-col space-y-1.5 p-6"), nil)
}

// CardTitle
type CardTitleConfig struct{ BaseConfig }

func (c *CardTitleConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardTitleOption = Option[*CardTitleConfig]

func CardTitle(opts ...CardTitleOption) *Element {
	c := apply(&CardTitleConfig{}, opts)
	return c.element("h3", ui.Str("text-2xl font-semibold leading-none tracking-tight"), nil)
}

// CardDescription
type CardDescriptionConfig struct{ BaseConfig }

func (c *CardDescriptionConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardDescriptionOption = Option[*CardDescriptionConfig]

func CardDescription(opts ...CardDescriptionOption) *Element {
	c := apply(&CardDescriptionConfig{}, opts)
	return c.element("p", ui.Str("text-sm text-muted-foreground"), nil)
}

// CardContent
type CardContentConfig struct{ BaseConfig }

func (c *CardContentConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardContentOption = Option[*CardContentConfig]

func CardContent(opts ...CardContentOption) *Element {
	c := apply(&CardContentConfig{}, opts)
	return c.element("div", ui.Str("p-6 pt-0"), nil)
}

// CardFooter
type CardFooterConfig struct{ BaseConfig }

func (c *CardFooterConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardFooterOption = Option[*CardFooterConfig]

func CardFooter(opts ...CardFooterOption) *Element {
	c := apply(&CardFooterConfig{}, opts)
	return c.element("div", ui.Str("flex items-center p-6 pt-0"), nil)
}
