package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Axis identifies a coordinate axis of the canonical object space.
type Axis int

// Coordinate axes.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// plane is an axis-aligned plane at a fixed elevation along one axis. It is
// the shared solver for the bounded planar components (Square, Circle).
type plane struct {
	axis      Axis
	elevation float64
}

// intersect solves t = (elevation - origin[axis]) / direction[axis]. A zero
// direction component means the ray never crosses the plane; t < 0 is behind
// the ray.
func (p plane) intersect(ray core.Ray) (float64, bool) {
	direction := component(ray.Direction, p.axis)
	if direction == 0 {
		return 0, false
	}

	t := (p.elevation - component(ray.Origin, p.axis)) / direction
	if t < 0 {
		return 0, false
	}

	return t, true
}

// normal returns the plane normal, pointing away from the primitive center.
func (p plane) normal() core.Vec3 {
	sign := 1.0
	if p.elevation < 0 {
		sign = -1.0
	}

	switch p.axis {
	case AxisX:
		return core.NewVec3(sign, 0, 0)
	case AxisY:
		return core.NewVec3(0, sign, 0)
	default:
		return core.NewVec3(0, 0, sign)
	}
}

// flatten drops the plane's axis from the point, returning the remaining two
// coordinates (in axis order) for the bounds checks.
func (p plane) flatten(point core.Vec3) (float64, float64) {
	switch p.axis {
	case AxisX:
		return point.Y, point.Z
	case AxisY:
		return point.X, point.Z
	default:
		return point.X, point.Y
	}
}

// uvAt maps the hit point onto the two free axes and shifts into [0, 1].
// The sign convention per axis/elevation keeps the mapping continuous when
// walking around the faces of a cube: u runs left-to-right as seen from
// outside each face, v runs bottom-to-top.
func (p plane) uvAt(point core.Vec3) core.Vec2 {
	switch {
	case p.axis == AxisX && p.elevation > 0:
		return core.NewVec2(0.5-point.Z, point.Y+0.5)
	case p.axis == AxisX:
		return core.NewVec2(point.Z+0.5, point.Y+0.5)
	case p.axis == AxisY && p.elevation > 0:
		return core.NewVec2(point.X+0.5, 0.5-point.Z)
	case p.axis == AxisY:
		return core.NewVec2(point.X+0.5, point.Z+0.5)
	case p.elevation > 0:
		return core.NewVec2(point.X+0.5, point.Y+0.5)
	default:
		return core.NewVec2(0.5-point.X, point.Y+0.5)
	}
}

// component extracts one coordinate of a vector by axis.
func component(v core.Vec3, axis Axis) float64 {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// Square is a unit square in an axis-aligned plane: both flattened
// coordinates must lie in [-0.5, 0.5]. Six of these form a cube.
type Square struct {
	plane
}

// NewSquare creates a square at the given elevation along the given axis
func NewSquare(axis Axis, elevation float64) Square {
	return Square{plane{axis: axis, elevation: elevation}}
}

// Intersect implements the Component interface
func (s Square) Intersect(ray core.Ray) (ComponentIntersection, bool) {
	t, ok := s.plane.intersect(ray)
	if !ok {
		return ComponentIntersection{}, false
	}

	point := ray.At(t)
	a, b := s.flatten(point)
	if a < -0.5 || a > 0.5 || b < -0.5 || b > 0.5 {
		return ComponentIntersection{}, false
	}

	return ComponentIntersection{T: t, Normal: s.normal(), UV: s.uvAt(point)}, true
}

// Circle is a disc of radius 0.5 in an axis-aligned plane, used for the
// end caps of cylinders and cones.
type Circle struct {
	plane
}

// NewCircle creates a circle at the given elevation along the given axis
func NewCircle(axis Axis, elevation float64) Circle {
	return Circle{plane{axis: axis, elevation: elevation}}
}

// Intersect implements the Component interface
func (c Circle) Intersect(ray core.Ray) (ComponentIntersection, bool) {
	t, ok := c.plane.intersect(ray)
	if !ok {
		return ComponentIntersection{}, false
	}

	point := ray.At(t)
	a, b := c.flatten(point)
	if a*a+b*b > 0.25 {
		return ComponentIntersection{}, false
	}

	return ComponentIntersection{T: t, Normal: c.normal(), UV: c.uvAt(point)}, true
}
