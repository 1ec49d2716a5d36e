package ui

import (
	"math"
	"reflect"
	"slices"
	"strings"
)

// ClassArg is one argument to ClassNames. It is implemented by Str,
// StrList, Flags and FlagList; a nil ClassArg is skipped.
type ClassArg interface {
	addTo(*classSet)
}

// Str is a string of whitespace separated class names.
type Str string

// StrList is a list of class strings. Empty entries are skipped.
type StrList []string

// Flags maps class names to a condition. A name is used when its value is
// truthy (see Truthy). Names are visited in sorted order; use FlagList when
// the order matters.
type Flags map[string]any

// Flag is a single conditional class name.
type Flag struct {
	Name  string
	Value any
}

// FlagList is an ordered Flags.
type FlagList []Flag

// When is shorthand for a FlagList with a single boolean entry.
func When(on bool, name string) FlagList {
	return FlagList{{Name: name, Value: on}}
}

// ClassNames merges its arguments into a single class attribute value.
// Each class name is emitted once, in the order it is first seen.
func ClassNames(args ...ClassArg) string {
	set := newClassSet()
	for _, arg := range args {
		if arg == nil {
			continue
		}
		arg.addTo(set)
	}
	return set.String()
}

// CN merges class lists. It performs simple string joining and
// deduplication of exact matches.
func CN(inputs ...string) string {
	set := newClassSet()
	for _, input := range inputs {
		set.add(input)
	}
	return set.String()
}

func (s Str) addTo(set *classSet) {
	set.add(string(s))
}

func (l StrList) addTo(set *classSet) {
	for _, s := range l {
		if s != "" {
			set.add(s)
		}
	}
}

func (f Flags) addTo(set *classSet) {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		addFlag(set, name, f[name])
	}
}

func (l FlagList) addTo(set *classSet) {
	for _, f := range l {
		addFlag(set, f.Name, f.Value)
	}
}

// A compound name such as "btn btn-lg" contributes each of its words.
func addFlag(set *classSet, name string, value any) {
	name = strings.TrimSpace(name)
	if name != "" && Truthy(value) {
		set.add(name)
	}
}

type classSet struct {
	seen    map[string]struct{}
	classes []string
}

func newClassSet() *classSet {
	return &classSet{seen: make(map[string]struct{})}
}

func (s *classSet) add(input string) {
	for _, class := range strings.Fields(input) {
		if _, ok := s.seen[class]; ok {
			continue
		}
		s.seen[class] = struct{}{}
		s.classes = append(s.classes, class)
	}
}

func (s *classSet) String() string {
	return strings.Join(s.classes, " ")
}

// Truthy reports whether v counts as "on" for a class flag: nil, false,
// numeric zero, NaN, "" and nil pointers, maps, slices, funcs and channels
// are falsy, everything else is truthy.
func Truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float32:
		return v != 0 && !math.IsNaN(float64(v))
	case float64:
		return v != 0 && !math.IsNaN(v)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
