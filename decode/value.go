package decode

import (
	"golang.org/x/exp/constraints"
)

// within reports whether v falls inside the inclusive [min,max] range.
func within[T constraints.Integer | constraints.Float](v, min, max T) bool {
	return v >= min && v <= max
}
