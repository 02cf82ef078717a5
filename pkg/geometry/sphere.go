package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SphereBody is the canonical unit sphere: x² + y² + z² = 0.25, centered at
// the origin with radius 0.5. It is the only component of the sphere
// primitive.
type SphereBody struct{}

// Intersect implements the Component interface
func (s SphereBody) Intersect(ray core.Ray) (ComponentIntersection, bool) {
	return intersectQuadratic(s, ray)
}

func (s SphereBody) coefficients(ray core.Ray) (float64, float64, float64) {
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Origin.Dot(ray.Direction)
	c := ray.Origin.Dot(ray.Origin) - 0.25
	return a, b, c
}

// normalAt returns the gradient (2x, 2y, 2z), normalized.
func (s SphereBody) normalAt(point core.Vec3) core.Vec3 {
	return point.Normalize()
}

// uvAt maps azimuth to u and latitude to v.
func (s SphereBody) uvAt(point core.Vec3) core.Vec2 {
	// asin(y/r) in [-π/2, π/2] shifted into [0, 1]
	v := math.Asin(point.Y/0.5)/math.Pi + 0.5
	return core.NewVec2(uFromAngle(point), v)
}
