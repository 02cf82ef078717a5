package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape is a world-space instance of a shared canonical Primitive with its
// own material and cumulative transformation matrix (CTM). Shapes are built
// once during scene flattening and are read-only during rendering.
type Shape struct {
	primitive *Primitive
	Material  material.Material
	ctm       mgl64.Mat4

	// Cached derived values
	inverseCTM   mgl64.Mat4
	normalMatrix mgl64.Mat3 // Inverse-transpose of the CTM's 3x3 linear block
}

// NewShape creates a shape instance of a canonical primitive. A singular CTM
// inverts to the zero matrix, so every ray degenerates and intersection
// tests report "no hit" rather than an error.
func NewShape(primitive *Primitive, mat material.Material, ctm mgl64.Mat4) *Shape {
	return &Shape{
		primitive:    primitive,
		Material:     mat,
		ctm:          ctm,
		inverseCTM:   ctm.Inv(),
		normalMatrix: ctm.Mat3().Transpose().Inv(),
	}
}

// CTM returns the shape's object-to-world transformation matrix.
func (s *Shape) CTM() mgl64.Mat4 {
	return s.ctm
}

// Intersect tests a world-space ray against the shape. The ray is taken to
// object space without renormalizing its direction so the returned t remains
// consistent with world-space distance along the same line. On a hit, the
// object-space normal is re-expressed in world space through the
// inverse-transpose of the CTM's linear block and renormalized; the raw CTM
// would skew normals under non-uniform scaling.
func (s *Shape) Intersect(ray core.Ray) (*Intersection, bool) {
	objectRay := ray.Transform(s.inverseCTM, false)

	hit, ok := s.primitive.Intersect(objectRay)
	if !ok {
		return nil, false
	}

	hit.Normal = core.FromMGL(s.normalMatrix.Mul3x1(hit.Normal.ToMGL())).Normalize()

	return &Intersection{ComponentIntersection: hit, Material: &s.Material}, true
}
