package ui

import (
	"cmp"
	"iter"
	"maps"
	"math"
	"slices"

	"github.com/vango-dev/uikit/ui/key"
)

// MaxSafeCount is the largest count Count accepts (2^53 - 1).
const MaxSafeCount = 1<<53 - 1

// Source produces the elements Many renders.
type Source[T any] interface {
	// All yields the elements in render order.
	All() iter.Seq[T]
	// Key returns the identity key for an element, or "" if it has none.
	Key(item T) string
}

// Number is any integer or floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Count is a source of n zero-valued elements. Anything but a positive
// whole number up to MaxSafeCount yields nothing.
func Count[N Number](n N) Source[struct{}] {
	f := float64(n)
	if math.IsNaN(f) || f <= 0 || f > MaxSafeCount || f != math.Trunc(f) {
		return countSource(0)
	}
	return countSource(uint64(f))
}

type countSource uint64

func (n countSource) All() iter.Seq[struct{}] {
	return func(yield func(struct{}) bool) {
		for i := uint64(0); i < uint64(n); i++ {
			if !yield(struct{}{}) {
				return
			}
		}
	}
}

func (countSource) Key(struct{}) string { return "" }

// Slice is a source over items. Pointer elements are keyed by identity.
func Slice[T any](items []T) Source[T] {
	return Seq(slices.Values(items))
}

// Seq is a source over any iterator, including generator functions.
// Pointer elements are keyed by identity.
func Seq[T any](seq iter.Seq[T]) Source[T] {
	return seqSource[T]{seq: seq}
}

// SetOf is a source over a Set in insertion order.
func SetOf[T comparable](set *Set[T]) Source[T] {
	return Seq(set.All())
}

type seqSource[T any] struct {
	seq iter.Seq[T]
}

func (s seqSource[T]) All() iter.Seq[T] {
	if s.seq == nil {
		return func(func(T) bool) {}
	}
	return s.seq
}

func (seqSource[T]) Key(item T) string {
	return identityKey(item)
}

// Pairs is a source over a keyed iterator. Elements are Pair values keyed
// by the identity of their Value.
func Pairs[K, V any](seq iter.Seq2[K, V]) Source[Pair[K, V]] {
	return pairSource[K, V]{seq: seq}
}

// Entries is a source over a Map in insertion order.
func Entries[K comparable, V any](m *Map[K, V]) Source[Pair[K, V]] {
	return Pairs(m.All())
}

// MapOf is a source over a built-in map, in ascending key order.
func MapOf[K cmp.Ordered, V any](m map[K]V) Source[Pair[K, V]] {
	return Pairs(func(yield func(K, V) bool) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if !yield(k, m[k]) {
				return
			}
		}
	})
}

type pairSource[K, V any] struct {
	seq iter.Seq2[K, V]
}

func (s pairSource[K, V]) All() iter.Seq[Pair[K, V]] {
	return func(yield func(Pair[K, V]) bool) {
		if s.seq == nil {
			return
		}
		for k, v := range s.seq {
			if !yield(Pair[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

func (pairSource[K, V]) Key(item Pair[K, V]) string {
	return identityKey(item.Value)
}

func identityKey(v any) string {
	k, _ := key.Get(v)
	return k
}
