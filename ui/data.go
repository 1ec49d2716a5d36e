package ui

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DataPrefix starts every attribute name produced by DataName.
const DataPrefix = "data-"

// Undefined stringifies as "undefined", for values that were never set as
// opposed to set to nil.
var Undefined undefined

type undefined struct{}

func (undefined) String() string { return "undefined" }

// DataAttrs turns a map of loosely cased names into data-* attributes with
// string values, ready to be spread onto an element.
//
//	DataAttrs(map[string]any{"columnId": "todo", "is_open": true})
//	// templ.Attributes{"data-column-id": "todo", "data-is-open": "true"}
func DataAttrs(attrs map[string]any) templ.Attributes {
	out := make(templ.Attributes, len(attrs))
	for name, value := range attrs {
		out[DataName(name)] = Stringify(value)
	}
	return out
}

// DataName converts camelCase, kebab-case or snake_case to a data-*
// attribute name. Runs of '-' and '_' collapse into one hyphen and a
// hyphen is inserted where a lowercase letter is followed by an uppercase
// one.
func DataName(name string) string {
	var b strings.Builder
	b.Grow(len(DataPrefix) + len(name) + 4)

	var prev rune
	inSep := false
	for _, r := range name {
		if r == '-' || r == '_' {
			if !inSep {
				b.WriteByte('-')
				inSep = true
			}
			prev = r
			continue
		}
		if unicode.IsUpper(r) && unicode.IsLower(prev) {
			b.WriteByte('-')
		}
		b.WriteRune(r)
		inSep = false
		prev = r
	}

	return DataPrefix + cases.Lower(language.Und).String(b.String())
}

// Stringify converts a value to the string a data attribute carries.
// Nil and nil pointers become "null". Slices and arrays join their
// elements with commas, the way browsers print arrays.
func Stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatNumber(v)
	case float32:
		return formatNumber(float64(v))
	case fmt.Stringer:
		if isNil(reflect.ValueOf(v)) {
			return "null"
		}
		return v.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return formatNumber(rv.Float())
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.String:
		return rv.String()
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
		return Stringify(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			elem := rv.Index(i)
			if isNil(elem) {
				continue
			}
			parts[i] = Stringify(elem.Interface())
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// formatNumber prints floats the way browsers do: integers without a
// fraction, exponent form outside [1e-6, 1e21).
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + exp
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
