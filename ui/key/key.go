// Package key gives stable string keys to Go objects.
//
// A key is tied to the identity of a pointer, not to the value it points
// to: two structurally equal structs get different keys, and the same
// pointer always gets the same key for as long as the object is alive.
// The table behind the keys holds weak pointers, so keying an object does
// not keep it reachable. Entries for reclaimed objects are removed lazily,
// by a runtime cleanup or by a later sweep of the table, not at the moment
// the object dies.
//
// Keys can also be stored on the object itself by embedding [Mark] and
// calling [Attach]; [Get] prefers a stored key over the table.
//
// Zero-sized values have no distinct identity in Go (all of them may share
// one address), so every pointer to a zero-sized value maps to one key.
package key

import (
	"reflect"
	"unsafe"
)

var keys = newTable()

// Generate returns the key for obj, creating it on first use.
// It returns "" for a nil pointer.
func Generate[T any](obj *T) string {
	if obj == nil {
		return ""
	}
	return keys.lookup(unsafe.Pointer(obj))
}

// Of is Generate for a dynamically typed value. Only non-nil pointers are
// objects; for anything else Of reports false.
func Of(v any) (string, bool) {
	p, ok := pointerOf(v)
	if !ok {
		return "", false
	}
	return keys.lookup(p), true
}

func pointerOf(v any) (unsafe.Pointer, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, false
	}
	return rv.UnsafePointer(), true
}
