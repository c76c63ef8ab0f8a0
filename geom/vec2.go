package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

type numeric interface {
	constraints.Integer | constraints.Float
}

type Vec2f = Vec2[float32]
type Vec2i = Vec2[int]
type Vec2u = Vec2[uint32]

// Vec2 is a two component vector. It doubles as a point,
// an extent and a pixel coordinate.
type Vec2[T numeric] [2]T

func V2[T numeric](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

func (lhs Vec2[T]) Add(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
	}
}

func (lhs Vec2[T]) Sub(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
	}
}

func (lhs Vec2[T]) Mul(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
	}
}

func (lhs Vec2[T]) Div(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] / rhs[0],
		lhs[1] / rhs[1],
	}
}

func (lhs Vec2[T]) MulScalar(s T) Vec2[T] {
	return Vec2[T]{
		lhs[0] * s,
		lhs[1] * s,
	}
}

func (lhs Vec2[T]) Dot(rhs Vec2[T]) T {
	return (lhs[0] * rhs[0]) + (lhs[1] * rhs[1])
}

func (lhs Vec2[T]) Magnitude() T {
	return T(math.Sqrt(float64(lhs.Dot(lhs))))
}

// Area returns the product of both components. For a vector used as
// an extent this is the number of covered pixels.
func (lhs Vec2[T]) Area() T {
	return lhs[0] * lhs[1]
}

func (lhs Vec2[T]) IsZero() bool {
	return lhs[0] == 0 && lhs[1] == 0
}

func (lhs Vec2[T]) XY() (x, y T) {
	x = lhs[0]
	y = lhs[1]
	return
}

func (lhs Vec2[T]) ToVec2f() Vec2f {
	return Vec2f{float32(lhs[0]), float32(lhs[1])}
}

func (lhs Vec2[T]) ToVec2i() Vec2i {
	return Vec2i{int(lhs[0]), int(lhs[1])}
}

func (lhs Vec2[T]) ToVec2u() Vec2u {
	return Vec2u{uint32(lhs[0]), uint32(lhs[1])}
}
