// Package components is a small set of server-rendered UI components built
// on templ and the ui helpers. Every component takes option functions and
// returns an *Element.
package components

import (
	"encoding/json"
	"maps"

	"github.com/a-h/templ"

	"github.com/vango-dev/uikit/ui"
)

// NodeOption is anything El accepts: attributes, children or text.
type NodeOption = any

// BaseConfig is embedded in every component config
type BaseConfig struct {
	Classes []ui.ClassArg
	Style   ui.Style
	Options []NodeOption // attributes and children, in order
}

// ConfigProvider interface allows generic options to work on any config
type ConfigProvider interface {
	GetBase() *BaseConfig
}

// Option is a generic option function that modifies a ConfigProvider
type Option[T ConfigProvider] func(T)

// Class adds utility classes
func Class[T ConfigProvider](c string) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Classes = append(base.Classes, ui.Str(c))
	}
}

// ClassIf adds c only when on is true.
func ClassIf[T ConfigProvider](on bool, c string) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Classes = append(base.Classes, ui.When(on, c))
	}
}

// Classes adds any class arguments understood by ui.ClassNames.
func Classes[T ConfigProvider](args ...ui.ClassArg) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Classes = append(base.Classes, args...)
	}
}

// Attr allows passing raw attributes (escape hatch)
func Attr[T ConfigProvider](attr NodeOption) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Options = append(base.Options, attr)
	}
}

// Data adds data-* attributes, see ui.DataAttrs.
func Data[T ConfigProvider](attrs map[string]any) Option[T] {
	return Attr[T](ui.DataAttrs(attrs))
}

// Style merges properties into the inline style. Later calls win.
func Style[T ConfigProvider](style ui.Style) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		if base.Style == nil {
			base.Style = ui.Style{}
		}
		maps.Copy(base.Style, style)
	}
}

// Child appends child components
func Child[T ConfigProvider](nodes ...templ.Component) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		for _, n := range nodes {
			base.Options = append(base.Options, n)
		}
	}
}

// TextChild appends escaped text
func TextChild[T ConfigProvider](s string) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Options = append(base.Options, s)
	}
}

// element renders the config as tag. The component's own class and style
// come first so user classes and style properties can extend them; extra
// options are placed before the user options.
func (b *BaseConfig) element(tag string, class ui.ClassArg, style ui.Style, extra ...NodeOption) *Element {
	args := make([]ui.ClassArg, 0, len(b.Classes)+1)
	args = append(args, class)
	args = append(args, b.Classes...)

	attrs := templ.Attributes{"class": ui.ClassNames(args...)}

	merged := ui.CustomStyle(ui.Style{})
	maps.Copy(merged, style)
	maps.Copy(merged, b.Style)
	if len(merged) > 0 {
		attrs["style"] = string(merged.CSS())
	}

	opts := make([]NodeOption, 0, len(extra)+len(b.Options)+1)
	opts = append(opts, attrs)
	opts = append(opts, extra...)
	opts = append(opts, b.Options...)
	return El(tag, opts...)
}

func apply[T ConfigProvider](cfg T, opts []Option[T]) T {
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// hookAttrs names a client-side hook and passes its JSON config, as
// data-hook and data-hook-config.
func hookAttrs(name string, config any) templ.Attributes {
	attrs := map[string]any{"hook": name}
	if b, err := json.Marshal(config); err == nil {
		attrs["hookConfig"] = string(b)
	}
	return ui.DataAttrs(attrs)
}
