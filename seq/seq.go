// Package seq provides small generic helpers over slices.
package seq

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmptyInput is returned when an operation needs at least one element.
var ErrEmptyInput = errors.New("empty input")

// MaxOf returns the largest element of s. The first occurrence wins on ties.
// An empty s yields the zero value and ErrEmptyInput.
//
// For floating point T, NaN never compares greater, so a NaN is only
// returned when it is s[0].
func MaxOf[T constraints.Ordered](s []T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}
	largest := s[0]
	for _, item := range s[1:] {
		if item > largest {
			largest = item
		}
	}
	return largest, nil
}

// MustMaxOf is like MaxOf but panics with ErrEmptyInput on an empty slice.
func MustMaxOf[T constraints.Ordered](s []T) T {
	v, err := MaxOf(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MaxOfFunc returns the largest element of s according to less, which
// reports whether a orders before b.
func MaxOfFunc[T any](s []T, less func(a, b T) bool) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}
	largest := s[0]
	for _, item := range s[1:] {
		if less(largest, item) {
			largest = item
		}
	}
	return largest, nil
}

// Filter returns the elements of s for which keep returns true, in order.
// It returns nil when nothing is kept and never modifies s.
func Filter[T any](s []T, keep func(T) bool) []T {
	var res []T
	for _, v := range s {
		if keep(v) {
			res = append(res, v)
		}
	}
	return res
}

// Each calls f on every element of s in index order.
func Each[T any](s []T, f func(T)) {
	for _, v := range s {
		f(v)
	}
}
