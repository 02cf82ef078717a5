package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PrimitiveType identifies one of the four canonical primitives.
type PrimitiveType int

// Primitive kinds supported by the scene description.
const (
	Cube PrimitiveType = iota
	Cone
	Cylinder
	Sphere
)

// Primitive is an immutable ordered collection of components forming one
// canonical unit-sized shape. Primitives are shared by reference between
// all the Shapes that instance them and are never mutated after
// construction.
type Primitive struct {
	components []Component
}

// NewPrimitive creates a primitive from its components
func NewPrimitive(components ...Component) *Primitive {
	return &Primitive{components: components}
}

// Intersect queries every component with the object-space ray, discards
// misses, and returns the minimum-t hit. Ties break arbitrarily; equal t
// means coincident surfaces.
func (p *Primitive) Intersect(ray core.Ray) (ComponentIntersection, bool) {
	var closest ComponentIntersection
	found := false

	for _, component := range p.components {
		hit, ok := component.Intersect(ray)
		if !ok {
			continue
		}
		if !found || hit.Closer(closest) {
			closest = hit
			found = true
		}
	}

	return closest, found
}

// Primitives is the catalog of canonical primitives. Exactly one of each
// exists per render; every Shape holds a reference into this catalog.
type Primitives struct {
	Cube     *Primitive
	Cone     *Primitive
	Cylinder *Primitive
	Sphere   *Primitive
}

// NewPrimitives builds the four canonical primitives:
// cube = 6 unit squares, cone = body + base cap, cylinder = body + 2 caps,
// sphere = 1 quadratic body.
func NewPrimitives() *Primitives {
	return &Primitives{
		Cube: NewPrimitive(
			NewSquare(AxisX, 0.5), NewSquare(AxisX, -0.5),
			NewSquare(AxisY, 0.5), NewSquare(AxisY, -0.5),
			NewSquare(AxisZ, 0.5), NewSquare(AxisZ, -0.5),
		),
		Cone:     NewPrimitive(ConeBody{}, NewCircle(AxisY, -0.5)),
		Cylinder: NewPrimitive(CylinderBody{}, NewCircle(AxisY, 0.5), NewCircle(AxisY, -0.5)),
		Sphere:   NewPrimitive(SphereBody{}),
	}
}

// Primitive returns the canonical primitive for the given type.
func (p *Primitives) Primitive(primitiveType PrimitiveType) *Primitive {
	switch primitiveType {
	case Cube:
		return p.Cube
	case Cone:
		return p.Cone
	case Cylinder:
		return p.Cylinder
	default:
		return p.Sphere
	}
}
