package geom

import "fmt"

type Rectf = Rect[float32]
type Recti = Rect[int]
type Rectu = Rect[uint32]

// Rect is an axis aligned rectangle spanning from Min (inclusive)
// to Max (exclusive).
type Rect[T numeric] struct {
	Min Vec2[T]
	Max Vec2[T]
}

func RectFromSize[T numeric](pos Vec2[T], size Vec2[T]) Rect[T] {
	return RectFromPoints(pos, pos.Add(size))
}

func RectFromXYWH[T numeric](x, y, w, h T) Rect[T] {
	return RectFromSize(Vec2[T]{x, y}, Vec2[T]{w, h})
}

func RectFromPoints[T numeric](a, b Vec2[T]) Rect[T] {
	return Rect[T]{
		Min: Vec2[T]{
			min(a[0], b[0]),
			min(a[1], b[1]),
		},
		Max: Vec2[T]{
			max(a[0], b[0]),
			max(a[1], b[1]),
		},
	}
}

func (r Rect[T]) Size() Vec2[T] {
	return r.Max.Sub(r.Min)
}

func (r Rect[T]) Width() T {
	return r.Max[0] - r.Min[0]
}

func (r Rect[T]) Height() T {
	return r.Max[1] - r.Min[1]
}

func (r Rect[T]) Area() T {
	return r.Size().Area()
}

func (r Rect[T]) Empty() bool {
	return r.Min[0] >= r.Max[0] || r.Min[1] >= r.Max[1]
}

func (r Rect[T]) ContainsPoint(p Vec2[T]) bool {
	return p[0] >= r.Min[0] && p[0] < r.Max[0] &&
		p[1] >= r.Min[1] && p[1] < r.Max[1]
}

// Contains reports whether other lies fully within r.
// An empty other is contained in everything.
func (r Rect[T]) Contains(other Rect[T]) bool {
	if other.Empty() {
		return true
	}

	return other.Min[0] >= r.Min[0] && other.Max[0] <= r.Max[0] &&
		other.Min[1] >= r.Min[1] && other.Max[1] <= r.Max[1]
}

// Intersect returns the overlap of both rectangles. The result is
// empty if they do not overlap.
func (r Rect[T]) Intersect(other Rect[T]) Rect[T] {
	in := Rect[T]{
		Min: Vec2[T]{
			max(r.Min[0], other.Min[0]),
			max(r.Min[1], other.Min[1]),
		},
		Max: Vec2[T]{
			min(r.Max[0], other.Max[0]),
			min(r.Max[1], other.Max[1]),
		},
	}

	if in.Empty() {
		return Rect[T]{}
	}

	return in
}

func (r Rect[T]) Extend(point Vec2[T]) Rect[T] {
	return Rect[T]{
		Min: Vec2[T]{
			min(r.Min[0], point[0]),
			min(r.Min[1], point[1]),
		},
		Max: Vec2[T]{
			max(r.Max[0], point[0]),
			max(r.Max[1], point[1]),
		},
	}
}

func (r Rect[T]) Union(other Rect[T]) Rect[T] {
	return r.Extend(other.Min).Extend(other.Max)
}

func (r Rect[T]) XYWH() (T, T, T, T) {
	x, y := r.Min.XY()
	w, h := r.Size().XY()
	return x, y, w, h
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("[%v,%v %vx%v]", r.Min[0], r.Min[1], r.Width(), r.Height())
}
