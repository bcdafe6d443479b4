// Package geom2d provides a stateless 2D computational-geometry kernel.
//
// # Overview
//
// geom2d is a library of closest-point, distance, and intersection routines
// between the primitives point, line, ray, line segment, and circle. All
// primitives are plain float64 value types and every routine is a pure
// function: inputs are never mutated and no state is kept between calls.
//
// # Quick Start
//
//	import "github.com/icreate/geom2d"
//
//	line := geom2d.L(geom2d.V2(0, 0), geom2d.V2(1, 0))
//	closest, t := geom2d.ClosestPointOnLine(geom2d.V2(3, 4), line)
//	// closest = (3, 0), t = 3
//
//	circle := geom2d.C(geom2d.V2(0, 0), 5)
//	a, b, ok := geom2d.IntersectLineCircle(line, circle)
//	// a = (-5, 0), b = (5, 0), ok = true
//
// # Degenerate Inputs
//
// A line, ray, or segment whose direction has squared length below
// [Epsilon] is degenerate. Degenerate inputs never cause a failure: the
// routine falls back to a documented value (the primitive's origin, t = 0)
// and reports the inputs through the package logger. Call [SetLogger] to
// receive these reports; by default they are discarded.
//
// Missing intersections (parallel lines, a circle outside or behind a ray)
// are expected outcomes signaled by a false return, never errors.
//
// # Preconditions
//
// The circle intersection routines assume unit-length directions; see
// [IntersectLineCircle]. The other routines tolerate any non-zero
// direction.
//
// # Concurrency
//
// Every routine is safe to call concurrently from any number of
// goroutines without coordination. [SetLogger] and [Logger] are also safe
// for concurrent use.
package geom2d
