package ui

import (
	"regexp"
	"slices"
	"strings"

	"github.com/a-h/templ"
	"github.com/a-h/templ/safehtml"
)

// CustomPropertyPrefix marks a CSS custom property (variable) name.
const CustomPropertyPrefix = "--"

// Style is an inline style: CSS property names or custom property names
// mapped to string or numeric values.
type Style map[string]any

// CustomStyle returns style unchanged. It exists so call sites read as
// "this style may carry custom properties" next to plain ones.
func CustomStyle(style Style) Style {
	return style
}

// IsCustomProperty reports whether name is a custom property name.
func IsCustomProperty(name string) bool {
	return strings.HasPrefix(name, CustomPropertyPrefix)
}

var customPropertyPattern = regexp.MustCompile(`^--[A-Za-z0-9_-]+$`)

// CSS renders the style for a style attribute, sorted by property name.
// Standard properties go through templ's sanitizer; custom properties are
// checked by name and their values sanitized like any regular property.
func (s Style) CSS() templ.SafeCSS {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	for _, name := range names {
		value := Stringify(s[name])
		if !IsCustomProperty(name) {
			b.WriteString(string(templ.SanitizeCSS(name, value)))
			continue
		}
		if !customPropertyPattern.MatchString(name) {
			b.WriteString(safehtml.InnocuousPropertyName + ":" + safehtml.InnocuousPropertyValue + ";")
			continue
		}
		b.WriteString(name + ":" + safehtml.SanitizeCSSValue(name, value) + ";")
	}
	return templ.SafeCSS(b.String())
}
