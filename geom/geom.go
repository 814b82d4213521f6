// Package geom provides a handful of formulas for rectangles and
// right triangles.
//
// Every function in the package is total. Lengths are expected to be
// non-negative, but rather than rejecting a negative length it is
// clamped to zero before use. NaN is not negative and so propagates
// through each formula as usual.
package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is a constraint for the types that Clamp can handle.
type Float interface {
	constraints.Float
}

const perimeterMultiplier = 2

// Clamp returns v, or zero if v is negative.
func Clamp[T Float](v T) T {
	if v < 0 {
		return 0
	}
	return v
}

// RectangleArea returns the area of a width by height rectangle.
func RectangleArea(width, height float64) float64 {
	return Clamp(width) * Clamp(height)
}

// RectanglePerimeter returns the perimeter of a width by height
// rectangle.
func RectanglePerimeter(width, height float64) float64 {
	return perimeterMultiplier * (Clamp(width) + Clamp(height))
}

// Hypotenuse returns the length of the hypotenuse of a right triangle
// with legs a and b, computed with [math.Hypot] to avoid needless
// overflow and underflow.
//
// Note that a negative leg is clamped to zero, not made positive, so
// Hypotenuse(-3, 4) is 4, not 5.
func Hypotenuse(a, b float64) float64 {
	return math.Hypot(Clamp(a), Clamp(b))
}

// Size is a pair of lengths, either the width and height of a
// rectangle or the two legs of a right triangle.
type Size struct {
	W, H float64
}

// Sz is shorthand for Size{w, h}.
func Sz(w, h float64) Size {
	return Size{W: w, H: h}
}

// Area is equivalent to RectangleArea(s.W, s.H).
func (s Size) Area() float64 { return RectangleArea(s.W, s.H) }

// Perimeter is equivalent to RectanglePerimeter(s.W, s.H).
func (s Size) Perimeter() float64 { return RectanglePerimeter(s.W, s.H) }

// Diagonal returns the length of the diagonal of the rectangle, which
// is also the hypotenuse of the triangle with legs W and H.
func (s Size) Diagonal() float64 { return Hypotenuse(s.W, s.H) }
