package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ComponentIntersection records where a ray strikes one component of a
// primitive (one face of a cube, the body of a cone, ...). T is the exact
// ray parameter of the hit: ray.Origin + T*ray.Direction lies on the surface.
type ComponentIntersection struct {
	T      float64
	Normal core.Vec3
	UV     core.Vec2
}

// Closer reports whether ci is strictly closer to the ray origin than other.
// Comparisons involving NaN report false, so minimum-t selection stays total
// and never panics on degenerate values.
func (ci ComponentIntersection) Closer(other ComponentIntersection) bool {
	return ci.T < other.T
}

// Intersection couples a component intersection with the material of the
// shape that was struck. Built per intersection test and discarded after
// shading.
type Intersection struct {
	ComponentIntersection
	Material *material.Material
}
