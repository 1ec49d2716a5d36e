package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/vango-dev/uikit/ui"
)

var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// Element is a single HTML element. It implements templ.Component.
type Element struct {
	Tag      string
	Attrs    templ.Attributes
	Children []templ.Component
}

// El builds an element from a list of options. Each option is one of:
//
//   - templ.Attributes, merged into the element's attributes ("class"
//     values are combined, everything else overwrites)
//   - templ.Component, appended as a child
//   - []templ.Component, each appended as a child
//   - string, appended as escaped text
//
// Nil and unrecognised options are ignored.
func El(tag string, opts ...NodeOption) *Element {
	e := &Element{Tag: tag, Attrs: templ.Attributes{}}
	for _, opt := range opts {
		e.apply(opt)
	}
	return e
}

func (e *Element) apply(opt NodeOption) {
	switch o := opt.(type) {
	case nil:
	case templ.Attributes:
		for name, value := range o {
			if name == "class" {
				e.addClass(value)
				continue
			}
			e.Attrs[name] = value
		}
	case string:
		e.Children = append(e.Children, Text(o))
	case templ.Component:
		e.Children = append(e.Children, o)
	case []templ.Component:
		e.Children = append(e.Children, o...)
	}
}

func (e *Element) addClass(value any) {
	current, _ := e.Attrs["class"].(string)
	merged := ui.CN(current, ui.Stringify(value))
	if merged == "" {
		delete(e.Attrs, "class")
		return
	}
	e.Attrs["class"] = merged
}

// Render writes the element and its children.
func (e *Element) Render(ctx context.Context, w io.Writer) error {
	if _, err := io.WriteString(w, "<"+e.Tag); err != nil {
		return err
	}
	if err := templ.RenderAttributes(ctx, w, e.Attrs); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if voidElements[e.Tag] {
		return nil
	}
	if err := ui.Fragment(e.Children).Render(ctx, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</"+e.Tag+">")
	return err
}

// Text returns s as an HTML-escaped text node.
func Text(s string) templ.Component {
	return templ.Raw(templ.EscapeString(s))
}
