package geom2d

// Epsilon is the degeneracy threshold used throughout the package for
// squared-length and determinant comparisons. Directions or endpoint spans
// whose squared length falls below Epsilon are treated as degenerate, and
// perp-dot determinants below Epsilon are treated as parallel.
const Epsilon = 1e-5

// Line represents the infinite line through Origin along Dir.
//
// The algorithms assume Dir is non-zero; a zero direction is reported as a
// degenerate input (see the package logger) and falls back to Origin. Dir
// does not need to be unit length for the closest-point and line-line
// routines, which divide by Dot(Dir, Dir). The circle intersection routines
// do require unit length; see IntersectLineCircle.
type Line struct {
	Origin Vec2
	Dir    Vec2
}

// L is a convenience function to create a Line.
func L(origin, dir Vec2) Line {
	return Line{Origin: origin, Dir: dir}
}

// At returns the point Origin + Dir*t.
func (l Line) At(t float64) Vec2 {
	return l.Origin.Add(l.Dir.Mul(t))
}

// Ray represents the half-line Origin + Dir*t for t >= 0.
// The same direction conventions as Line apply.
type Ray struct {
	Origin Vec2
	Dir    Vec2
}

// R is a convenience function to create a Ray.
func R(origin, dir Vec2) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// At returns the point Origin + Dir*t. Values of t below zero lie behind
// the ray origin and are not part of the ray.
func (r Ray) At(t float64) Vec2 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Segment represents the bounded set of points A + (B-A)*t for t in [0, 1].
type Segment struct {
	A, B Vec2
}

// Seg is a convenience function to create a Segment.
func Seg(a, b Vec2) Segment {
	return Segment{A: a, B: b}
}

// At returns the point A + (B-A)*t. t=0 is A, t=1 is B.
func (s Segment) At(t float64) Vec2 {
	return s.A.Lerp(s.B, t)
}

// Delta returns the displacement B - A.
func (s Segment) Delta() Vec2 {
	return s.B.Sub(s.A)
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Midpoint returns the point halfway between A and B.
func (s Segment) Midpoint() Vec2 {
	return s.A.Lerp(s.B, 0.5)
}

// Circle represents the circle of the given Radius around Center.
// Radius is expected to be non-negative.
type Circle struct {
	Center Vec2
	Radius float64
}

// C is a convenience function to create a Circle.
func C(center Vec2, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// Contains reports whether p lies strictly inside the circle.
// Points on the boundary are not contained.
func (c Circle) Contains(p Vec2) bool {
	return IntersectPointCircle(p, c)
}
