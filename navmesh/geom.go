package navmesh

import "math"

// TOL is the tolerance used by every geometric predicate in this
// package: side-of-plane classification, split, adjacency and overlap
// tests. Scene-unit dependent; the default suits scene units of order
// 100-1000. Changing it changes classification behavior.
const TOL float32 = 0.1

// Vec2 is a two dimensional point or vector.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

// PerpDot is the 2D analogue of the cross product's Z component:
// o.Perp().Dot(v), the negation of v.Perp().Dot(o).
func (v Vec2) PerpDot(o Vec2) float32 { return v.X*o.Y - v.Y*o.X }

// Perp rotates v by -90 degrees: (x, y) -> (y, -x).
func (v Vec2) Perp() Vec2 { return Vec2{v.Y, -v.X} }

func (v Vec2) LengthSquared() float32 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Length() float32 { return float32(math.Sqrt(float64(v.LengthSquared()))) }

func (v Vec2) Distance(o Vec2) float32 { return v.Sub(o).Length() }

func (v Vec2) DistanceSquared(o Vec2) float32 { return v.Sub(o).LengthSquared() }

// Normalize returns v scaled to unit length. Returns the zero vector
// for a zero-length input rather than producing NaN.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

func (v Vec2) Min(o Vec2) Vec2 { return Vec2{min32(v.X, o.X), min32(v.Y, o.Y)} }
func (v Vec2) Max(o Vec2) Vec2 { return Vec2{max32(v.X, o.X), max32(v.Y, o.Y)} }

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func absF(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}

// Side is the result of classifying a Face against a plane.
type Side int

const (
	Front Side = iota
	Back
	Coplanar
	Intersecting
)

func (s Side) String() string {
	switch s {
	case Front:
		return "Front"
	case Back:
		return "Back"
	case Coplanar:
		return "Coplanar"
	case Intersecting:
		return "Intersecting"
	default:
		return "Unknown"
	}
}

// Face is an oriented line segment carrying a unit normal derived from
// winding: the normal points "out" of the obstacle per right-hand
// winding of (V0, V1).
type Face struct {
	V0, V1 Vec2
	Normal Vec2
}

// NewFace builds a Face from two distinct vertices, deriving the unit
// normal from their winding.
func NewFace(v0, v1 Vec2) Face {
	dir := v1.Sub(v0).Normalize()
	return Face{V0: v0, V1: v1, Normal: Vec2{dir.Y, -dir.X}}
}

// Vertices returns the face's two endpoints.
func (f Face) Vertices() [2]Vec2 { return [2]Vec2{f.V0, f.V1} }

// Dir returns the unit direction from V0 to V1.
func (f Face) Dir() Vec2 { return f.V1.Sub(f.V0).Normalize() }

// Midpoint returns the midpoint of the face.
func (f Face) Midpoint() Vec2 { return f.V0.Add(f.V1).Scale(0.5) }

// Length returns the Euclidean length of the face.
func (f Face) Length() float32 { return f.V0.Distance(f.V1) }

// SideOf classifies f against the plane through p with normal n.
// Tolerance is asymmetric: a face touching the plane at one endpoint
// is classified by the other.
func (f Face) SideOf(p, n Vec2) Side {
	a := f.V0.Sub(p).Dot(n)
	b := f.V1.Sub(p).Dot(n)

	switch {
	case absF(a) < TOL && absF(b) < TOL:
		return Coplanar
	case a >= -TOL && b >= -TOL:
		return Front
	case a <= TOL && b <= TOL:
		return Back
	default:
		return Intersecting
	}
}

// Split divides f at its intersection with the plane through p with
// normal n. The returned pair is ordered so the first piece is on the
// Front side and the second on the Back side; both retain f's winding.
func (f Face) Split(p, n Vec2) [2]Face {
	dir := f.V1.Sub(f.V0)
	denom := dir.Dot(n)
	t := p.Sub(f.V0).Dot(n) / denom
	i := f.V0.Add(dir.Scale(t))

	a := f.V0.Sub(p).Dot(n)
	if a >= -TOL {
		return [2]Face{NewFace(f.V0, i), NewFace(i, f.V1)}
	}
	return [2]Face{NewFace(i, f.V1), NewFace(f.V0, i)}
}

// Adjacent reports whether other touches f end to end: other's midpoint
// lies on f's line, the two do not overlap by more than TOL, and an
// endpoint of f coincides with an endpoint of other (all within TOL).
func (f Face) Adjacent(other Face) bool {
	if absF(other.Midpoint().Sub(f.V0).Dot(f.Normal)) >= TOL || f.Overlaps(other) {
		return false
	}
	for _, v := range f.Vertices() {
		for _, w := range other.Vertices() {
			if v.DistanceSquared(w) < TOL*TOL {
				return true
			}
		}
	}
	return false
}

// Overlaps reports whether other overlaps f along f's direction by
// more than TOL.
func (f Face) Overlaps(other Face) bool {
	dir := f.Dir()

	p := f.V0.Dot(dir)
	q := f.V1.Dot(dir)
	a := other.V0.Dot(dir)
	b := other.V1.Dot(dir)

	if dir.Dot(other.Dir()) <= 0 {
		a, b = b, a
	}

	la := q - a
	lb := b - p
	overlap := min32(la, lb)

	return overlap > TOL
}

// ContainsPoint reports whether p projects onto f's segment, within
// tolerance on either end.
func (f Face) ContainsPoint(p Vec2) bool {
	dir := f.Dir()
	d := p.Sub(f.V0).Dot(dir)
	return d >= -TOL && d <= f.Length()+TOL
}

// Intersect is the result of intersecting a line against a plane.
type Intersect struct {
	Point    Vec2
	Distance float32
}

// faceIntersect intersects the infinite line through (a0, a1) against
// the plane through p with normal n. Distance is the parameter along
// (a1-a0) at which the intersection occurs; 0 at a0, 1 at a1. Infinite
// or NaN distance indicates the line is parallel to the plane; callers
// must guard against this.
func faceIntersect(a0, a1, p, n Vec2) Intersect {
	dir := a1.Sub(a0)
	return faceIntersectDir(a0, dir, p, n)
}

// faceIntersectDir is faceIntersect with the direction vector supplied
// directly rather than derived from two points.
func faceIntersectDir(a, dir, p, n Vec2) Intersect {
	l := p.Sub(a).Dot(n) / dir.Dot(n)
	return Intersect{Point: a.Add(dir.Scale(l)), Distance: l}
}

// shrinkFace moves both endpoints of f inward along its direction by
// radius. The second return value is false if the shrunk segment has
// non-positive length.
func shrinkFace(f Face, radius float32) (Face, bool) {
	if radius <= 0 {
		return f, true
	}
	dir := f.Dir()
	a := f.V0.Add(dir.Scale(radius))
	b := f.V1.Sub(dir.Scale(radius))
	if b.Sub(a).Dot(dir) <= 0 {
		return Face{}, false
	}
	return NewFace(a, b), true
}
