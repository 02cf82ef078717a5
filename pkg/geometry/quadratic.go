package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// solveQuadratic returns the real roots of a*t² + b*t + c = 0.
// A zero leading coefficient yields no roots rather than propagating Inf/NaN
// into the t comparisons. A near-zero discriminant collapses to a single
// root; reporting the double root once is harmless.
func solveQuadratic(a, b, c float64) []float64 {
	if a == 0 {
		return nil
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	root := math.Sqrt(discriminant)
	t1 := (-b + root) / (2 * a)
	if discriminant == 0 {
		return []float64{t1}
	}

	return []float64{t1, (-b - root) / (2 * a)}
}

// quadraticBody unifies the components whose intersections are the roots of a
// quadratic equation: the sphere, the cylinder body, and the cone body.
type quadraticBody interface {
	// coefficients derives (a, b, c) of a*t² + b*t + c = 0 by substituting
	// the parametric ray into the component's implicit surface equation.
	coefficients(ray core.Ray) (a, b, c float64)
	// normalAt returns the analytic surface gradient at a point on the
	// surface, normalized.
	normalAt(point core.Vec3) core.Vec3
	// uvAt returns the UV coordinate at a point on the surface.
	uvAt(point core.Vec3) core.Vec2
}

// intersectQuadratic solves a quadratic body against an object-space ray:
// each root is filtered by t >= 0 and by the shared height constraint
// -0.5 <= y <= 0.5, and the minimum surviving root wins.
func intersectQuadratic(body quadraticBody, ray core.Ray) (ComponentIntersection, bool) {
	a, b, c := body.coefficients(ray)

	best := 0.0
	found := false
	for _, t := range solveQuadratic(a, b, c) {
		if t < 0 {
			continue
		}
		if y := ray.At(t).Y; y < -0.5 || y > 0.5 {
			continue
		}
		if !found || t < best {
			best = t
			found = true
		}
	}

	if !found {
		return ComponentIntersection{}, false
	}

	point := ray.At(best)
	return ComponentIntersection{T: best, Normal: body.normalAt(point), UV: body.uvAt(point)}, true
}

// uFromAngle maps the azimuthal angle atan2(z, x) of a point on a curved
// body to u in [0, 1], winding in the same direction as the planar UV
// convention so textures wrap continuously around the shape.
func uFromAngle(point core.Vec3) float64 {
	theta := math.Atan2(point.Z, point.X)
	if theta < 0 {
		return -theta / (2 * math.Pi)
	}
	return 1 - theta/(2*math.Pi)
}
