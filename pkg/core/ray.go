package core

import "github.com/go-gl/mathgl/mgl64"

// Ray represents a ray with an origin and direction. Rays are value types,
// created per pixel, per shadow test, and per reflection bounce.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform applies an affine transformation to the ray. The origin is
// transformed as a position (w = 1) and the direction as a direction (w = 0).
// If normalizeDirection is set, the resulting direction is renormalized;
// object-space rays must NOT renormalize so that t values stay consistent
// with world-space distance along the same line.
func (r Ray) Transform(transformation mgl64.Mat4, normalizeDirection bool) Ray {
	origin := FromMGL4(transformation.Mul4x1(r.Origin.Point()))
	direction := FromMGL4(transformation.Mul4x1(r.Direction.Direction()))

	if normalizeDirection {
		direction = direction.Normalize()
	}

	return Ray{Origin: origin, Direction: direction}
}
