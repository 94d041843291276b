// Package util contains small utilities shared across intmat.
package util

import (
	"fmt"
	"slices"
)

// GrowCap grows the capacity of a slice to at least the given target.
// The size grows exponentially, in order to avoid frequent reallocation/moving.
func GrowCap[T any](s []T, target int) []T {
	c := cap(s)
	for c < target {
		c = c*11/10 + 10
	}
	return slices.Grow(s, c-len(s))
}

// ShrinkWrap shrink-wraps the slice, i.e. leaves no excess capacity.
// Identical to slices.Clip, except it coerces zero-length slice into nil.
func ShrinkWrap[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return slices.Clip(s)
}

// IndexOutOfBoundsError is returned when the requested index is out of bounds.
type IndexOutOfBoundsError struct {
	Index int
	Bound int
}

func (e IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds 0 <= index < %d", e.Index,
		e.Bound)
}
