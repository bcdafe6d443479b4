package geom2d

// Closest-point and distance queries between a point and the other
// primitives. Each query returns the closest point together with the
// parametric position t of that point on the primitive.
//
// Degenerate primitives (zero direction, zero-length segment) never fail:
// they fall back to the primitive's origin with t = 0 and emit a warning
// through the package logger (see SetLogger).

// ClosestPointOnLine returns the point on the infinite line l closest to p,
// together with the signed parameter t such that the result equals l.At(t).
// t is measured in units of l.Dir, not normalized to its length.
//
// A degenerate line (Dir with squared length below Epsilon) is reported to
// the package logger and falls back to (l.Origin, 0).
func ClosestPointOnLine(p Vec2, l Line) (Vec2, float64) {
	denom := l.Dir.Dot(l.Dir)
	if denom < Epsilon {
		Logger().Warn("closest point on degenerate line",
			"origin", l.Origin, "dir", l.Dir)
		return l.Origin, 0
	}
	t := p.Sub(l.Origin).Dot(l.Dir) / denom
	return l.At(t), t
}

// DistanceToLine returns the distance from p to the infinite line l.
// The result is always non-negative.
func DistanceToLine(p Vec2, l Line) float64 {
	closest, _ := ClosestPointOnLine(p, l)
	return p.Distance(closest)
}

// ClosestPointOnRay returns the point on the ray r closest to p, together
// with the parameter t such that the result equals r.At(t). t is never
// negative: projections falling behind the ray origin clip to (r.Origin, 0).
//
// A degenerate ray is reported to the package logger and falls back to
// (r.Origin, 0).
func ClosestPointOnRay(p Vec2, r Ray) (Vec2, float64) {
	denom := r.Dir.Dot(r.Dir)
	if denom < Epsilon {
		Logger().Warn("closest point on degenerate ray",
			"origin", r.Origin, "dir", r.Dir)
		return r.Origin, 0
	}
	dot := p.Sub(r.Origin).Dot(r.Dir)
	if dot <= 0 {
		return r.Origin, 0
	}
	t := dot / denom
	return r.At(t), t
}

// DistanceToRay returns the distance from p to the ray r.
// The result is always non-negative.
func DistanceToRay(p Vec2, r Ray) float64 {
	closest, _ := ClosestPointOnRay(p, r)
	return p.Distance(closest)
}

// ClosestPointOnSegment returns the point on the segment s closest to p,
// together with the normalized parameter t in [0, 1]: t = 0 means the
// result is s.A, t = 1 means it is s.B.
//
// A zero-length segment is reported to the package logger and falls back
// to (s.A, 0).
func ClosestPointOnSegment(p Vec2, s Segment) (Vec2, float64) {
	dir := s.Delta()
	denom := dir.Dot(dir)
	if denom < Epsilon {
		Logger().Warn("closest point on degenerate segment",
			"a", s.A, "b", s.B)
		return s.A, 0
	}
	dot := p.Sub(s.A).Dot(dir)
	if dot <= 0 {
		return s.A, 0
	}
	if dot >= denom {
		return s.B, 1
	}
	t := dot / denom
	return s.At(t), t
}

// DistanceToSegment returns the distance from p to the segment s.
// The result is always non-negative.
func DistanceToSegment(p Vec2, s Segment) float64 {
	closest, _ := ClosestPointOnSegment(p, s)
	return p.Distance(closest)
}

// ClosestPointOnCircle returns the point on the boundary of c closest to p.
//
// When p coincides with the circle center the direction to the boundary is
// undefined; the zero-safe Normalize then yields the center itself. This is
// an accepted edge case, not a reported degeneracy.
func ClosestPointOnCircle(p Vec2, c Circle) Vec2 {
	return c.Center.Add(p.Sub(c.Center).Normalize().Mul(c.Radius))
}

// DistanceToCircle returns the signed distance from p to the boundary of c:
// positive outside the circle, negative inside, zero on the boundary.
func DistanceToCircle(p Vec2, c Circle) float64 {
	return p.Distance(c.Center) - c.Radius
}
