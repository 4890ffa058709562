package ds

import (
	"golang.org/x/exp/constraints"
)

// CheckedAdd returns a + b and false when the sum wraps around the type's range.
func CheckedAdd[T constraints.Unsigned](a, b T) (T, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}
