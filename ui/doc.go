// Package ui holds small helpers for building templ component trees.
//
//   - ClassNames and CN merge class lists.
//   - DataAttrs turns loosely cased names into data-* attributes.
//   - CustomStyle and Style carry inline styles with custom properties.
//   - Many renders a repeated element from a count or a collection,
//     handing each object element a stable key from package key.
//
// None of the helpers perform I/O or return errors; input they do not
// understand is ignored.
package ui
