package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// ConeBody is the curved surface of the canonical cone: the apex sits at
// y = 0.5 and the base circle of radius 0.5 at y = -0.5, so the surface
// satisfies x² + z² = ((1-2y)/4)². The cone primitive adds a Circle base cap.
type ConeBody struct{}

// Intersect implements the Component interface
func (c ConeBody) Intersect(ray core.Ray) (ComponentIntersection, bool) {
	return intersectQuadratic(c, ray)
}

func (c ConeBody) coefficients(ray core.Ray) (float64, float64, float64) {
	o, d := ray.Origin, ray.Direction

	// Radius of the cone at the ray origin's height: (1-2y)/4
	r0 := 0.25 - o.Y/2

	a := d.X*d.X + d.Z*d.Z - d.Y*d.Y/4
	b := 2*(o.X*d.X+o.Z*d.Z) + r0*d.Y
	cc := o.X*o.X + o.Z*o.Z - r0*r0
	return a, b, cc
}

// normalAt returns the gradient (2x, (1-2y)/4, 2z), normalized. The slope
// term makes the normal lean away from the apex.
func (c ConeBody) normalAt(point core.Vec3) core.Vec3 {
	return core.NewVec3(2*point.X, 0.25-point.Y/2, 2*point.Z).Normalize()
}

func (c ConeBody) uvAt(point core.Vec3) core.Vec2 {
	return core.NewVec2(uFromAngle(point), point.Y+0.5)
}
