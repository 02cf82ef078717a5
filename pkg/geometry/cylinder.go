package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// CylinderBody is the curved surface of the canonical cylinder:
// x² + z² = 0.25, unbounded in y until the shared height constraint clips
// it to [-0.5, 0.5]. The cylinder primitive adds two Circle caps.
type CylinderBody struct{}

// Intersect implements the Component interface
func (c CylinderBody) Intersect(ray core.Ray) (ComponentIntersection, bool) {
	return intersectQuadratic(c, ray)
}

func (c CylinderBody) coefficients(ray core.Ray) (float64, float64, float64) {
	o, d := ray.Origin, ray.Direction
	a := d.X*d.X + d.Z*d.Z
	b := 2 * (o.X*d.X + o.Z*d.Z)
	cc := o.X*o.X + o.Z*o.Z - 0.25
	return a, b, cc
}

// normalAt returns the gradient (2x, 0, 2z), normalized: radially outward.
func (c CylinderBody) normalAt(point core.Vec3) core.Vec3 {
	return core.NewVec3(point.X, 0, point.Z).Normalize()
}

func (c CylinderBody) uvAt(point core.Vec3) core.Vec2 {
	return core.NewVec2(uFromAngle(point), point.Y+0.5)
}
