package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Fragment renders its children in order with no element of its own.
// Nil children are skipped.
type Fragment []templ.Component

// Render implements templ.Component.
func (f Fragment) Render(ctx context.Context, w io.Writer) error {
	for _, c := range f {
		if c == nil {
			continue
		}
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

// Mapper renders one element. key is the element's identity key, or ""
// when the element is not an object.
type Mapper[T any] func(item T, index int, key string) templ.Component

// Fallback renders the empty state.
type Fallback func() templ.Component

// Many maps every element of src and returns the results as a Fragment.
//
// When src has no elements the mapper is never called and Many returns the
// first fallback's component, or nil when no fallback is given.
//
//	ui.Many(ui.Slice(cards), func(c *Card, i int, key string) templ.Component {
//		return CardView(c, key)
//	}, func() templ.Component { return EmptyState() })
func Many[T any](src Source[T], fn Mapper[T], fallback ...Fallback) templ.Component {
	var items []T
	if src != nil {
		for item := range src.All() {
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		return renderFallback(fallback)
	}

	out := make(Fragment, len(items))
	for i, item := range items {
		out[i] = fn(item, i, src.Key(item))
	}
	return out
}

func renderFallback(fallback []Fallback) templ.Component {
	if len(fallback) == 0 || fallback[0] == nil {
		return nil
	}
	return fallback[0]()
}
