package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Component is one analytic surface piece of a canonical primitive. Each
// component is intersected in object space, where primitives are unit-sized:
// extents in [-0.5, 0.5] and radius 0.5 for curved bodies. The catalog is
// closed: Square, Circle, SphereBody, CylinderBody, and ConeBody.
type Component interface {
	// Intersect tests the component against an object-space ray. Hits with
	// t < 0 are rejected uniformly in every component.
	Intersect(ray core.Ray) (ComponentIntersection, bool)
}
