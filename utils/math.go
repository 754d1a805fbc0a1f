package utils

import "golang.org/x/exp/constraints"

// Number is the set of numeric types a Vec2 can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vec2 is a pair of values along the horizontal (X) and vertical (Y) axis.
type Vec2[T Number] struct {
	X, Y T
}

// Add returns the component-wise sum of v and o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// IsZero reports whether both components are zero.
func (v Vec2[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Min returns the smaller value between two numbers.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger value between two numbers.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Abs returns the absolut value of x.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
