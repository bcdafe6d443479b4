package geom2d

import "math"

// Intersection queries between primitives. A false result means the
// primitives do not intersect; it is an expected outcome, not an error,
// and all output points are zero in that case.

// IntersectPointCircle reports whether p lies strictly inside the circle c.
// Points on the boundary are not inside.
func IntersectPointCircle(p Vec2, c Circle) bool {
	return p.DistanceSq(c.Center) < c.Radius*c.Radius
}

// IntersectLineLine returns the intersection point of two infinite lines.
//
// Parallel lines that are not collinear do not intersect. Collinear lines
// share infinitely many points; the returned representative is a.Origin,
// an arbitrary but deterministic choice.
func IntersectLineLine(a, b Line) (Vec2, bool) {
	det := a.Dir.Cross(b.Dir)
	diff := a.Origin.Sub(b.Origin)
	pa := a.Dir.Cross(diff)
	pb := b.Dir.Cross(diff)

	if math.Abs(det) < Epsilon {
		// Parallel directions. The lines coincide only if both origin
		// offsets vanish as well.
		if math.Abs(pa) > Epsilon || math.Abs(pb) > Epsilon {
			return Vec2{}, false
		}
		return a.Origin, true
	}
	return a.At(pb / det), true
}

// IntersectSegmentSegment returns the intersection point of two bounded
// segments.
//
// Collinear overlapping segments share infinitely many points; the returned
// representative is the first endpoint found inside the overlap, checked in
// the order a.A, b.A, b.B.
func IntersectSegmentSegment(a, b Segment) (Vec2, bool) {
	da := a.Delta()
	db := b.Delta()
	det := da.Cross(db)
	diff := b.A.Sub(a.A)

	if math.Abs(det) < Epsilon {
		if math.Abs(da.Cross(diff)) > Epsilon || math.Abs(db.Cross(diff)) > Epsilon {
			return Vec2{}, false
		}
		for _, cand := range []struct {
			p Vec2
			s Segment
		}{{a.A, b}, {b.A, a}, {b.B, a}} {
			if containsCollinear(cand.s, cand.p) {
				return cand.p, true
			}
		}
		return Vec2{}, false
	}

	t := diff.Cross(db) / det
	u := diff.Cross(da) / det
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vec2{}, false
	}
	return a.At(t), true
}

// containsCollinear reports whether p, already known to lie on the line
// through s, falls within the segment's bounds.
func containsCollinear(s Segment, p Vec2) bool {
	d := s.Delta()
	denom := d.LengthSq()
	if denom < Epsilon {
		return p.Approx(s.A, Epsilon)
	}
	t := p.Sub(s.A).Dot(d) / denom
	return t >= 0 && t <= 1
}

// IntersectLineCircle returns the up to two points where the infinite line
// l crosses the boundary of c, ordered by ascending parameter along l.Dir.
//
// l.Dir must be unit length: the perpendicular distance from the circle
// center to the line is derived by Pythagoras from the projection onto
// l.Dir, which scales incorrectly for non-unit directions. The precondition
// is documented rather than checked or silently normalized, so that the
// parameter scale of l.At stays consistent with the caller's direction.
//
// A tangent line yields two coincident points rather than collapsing to
// one.
func IntersectLineCircle(l Line, c Circle) (Vec2, Vec2, bool) {
	toCenter := c.Center.Sub(l.Origin)
	proj := toCenter.Dot(l.Dir)
	sqrDist := toCenter.LengthSq() - proj*proj

	r2 := c.Radius * c.Radius
	if sqrDist > r2 {
		return Vec2{}, Vec2{}, false
	}
	halfChord := math.Sqrt(r2 - sqrDist)
	return l.At(proj - halfChord), l.At(proj + halfChord), true
}

// IntersectRayCircle returns the up to two points where the ray r crosses
// the boundary of c, ordered by ascending parameter along r.Dir. Crossings
// behind the ray origin are discarded; when only the far crossing lies on
// the ray, both returned points equal it, mirroring the coincident-point
// convention of IntersectLineCircle.
//
// The same unit-length precondition on r.Dir applies as for
// IntersectLineCircle.
func IntersectRayCircle(r Ray, c Circle) (Vec2, Vec2, bool) {
	toCenter := c.Center.Sub(r.Origin)
	proj := toCenter.Dot(r.Dir)
	sqrDist := toCenter.LengthSq() - proj*proj

	r2 := c.Radius * c.Radius
	if sqrDist > r2 {
		return Vec2{}, Vec2{}, false
	}
	halfChord := math.Sqrt(r2 - sqrDist)
	near := proj - halfChord
	far := proj + halfChord
	if far < 0 {
		// The whole circle lies behind the ray origin.
		return Vec2{}, Vec2{}, false
	}
	if near < 0 {
		p := r.At(far)
		return p, p, true
	}
	return r.At(near), r.At(far), true
}
