package key

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnknownMode is returned by ParseMode for anything but "keep" or "new".
var ErrUnknownMode = errors.New("unknown key mode")

// Mode controls how Attach treats a key that is already stored.
type Mode int

const (
	// Keep reuses a stored key and only fills an empty one.
	Keep Mode = iota
	// New always stores a fresh key.
	New
)

func (m Mode) String() string {
	switch m {
	case Keep:
		return "keep"
	case New:
		return "new"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "keep" or "new".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "keep", "":
		return Keep, nil
	case "new":
		return New, nil
	default:
		return Keep, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Mark is embedded in structs that carry their own key.
//
//	type Card struct {
//		key.Mark
//		Title string
//	}
type Mark struct {
	IdentityKey string `json:"identityKey,omitempty" yaml:"identityKey,omitempty"`
}

func (m *Mark) mark() *Mark { return m }

// Marker is implemented by pointers to structs embedding Mark.
type Marker interface {
	mark() *Mark
}

// Attach stores a key in obj's Mark and returns obj.
//
// In Keep mode a stored key is left alone and an empty one is filled with
// the table key for obj, so Attach and Generate agree. In New mode a fresh
// key replaces whatever was stored.
func Attach[T Marker](obj T, mode Mode) T {
	if isNil(obj) {
		return obj
	}
	m := obj.mark()
	switch {
	case mode == New:
		m.IdentityKey = keys.newKey()
	case m.IdentityKey == "":
		if k, ok := Of(obj); ok {
			m.IdentityKey = k
		} else {
			m.IdentityKey = keys.newKey()
		}
	}
	return obj
}

// Get returns the key stored on v, falling back to the table key.
func Get(v any) (string, bool) {
	if m, ok := v.(Marker); ok && !isNil(m) {
		if k := m.mark().IdentityKey; k != "" {
			return k, true
		}
	}
	return Of(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
