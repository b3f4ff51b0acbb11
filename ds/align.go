package ds

import (
	"golang.org/x/exp/constraints"
)

// AlignUp rounds n up to the nearest multiple of m. Values that are already
// multiples of m are returned unchanged. m must be positive.
func AlignUp[T constraints.Integer](n T, m T) T {
	if m <= 0 {
		panic(ErrUnreachableCode{Caller: "AlignUp"})
	}
	return ((n + m - 1) / m) * m
}

// IsAligned reports whether n sits on a boundary of m.
func IsAligned[T constraints.Integer](n T, m T) bool {
	return n%m == 0
}
