package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// SelfIntersectOffset is the distance secondary rays (shadow and reflection)
// are pushed off a surface to avoid re-intersecting the surface they
// originate from.
const SelfIntersectOffset = 0.001

// Light is a scene light source. The catalog is closed: point, directional,
// and spot.
type Light interface {
	// DirectionToPoint returns the normalized direction from the light
	// toward the given point.
	DirectionToPoint(point core.Vec3) core.Vec3
	// DistanceTo returns the distance from the light to the point.
	// ok is false for directional lights, which sit at infinity.
	DistanceTo(point core.Vec3) (distance float64, ok bool)
	// IntensityAt returns the light color at the point after distance
	// attenuation and, for spot lights, angular falloff.
	IntensityAt(point core.Vec3) core.Vec3
}

// PointLight emanates from a single position in all directions.
type PointLight struct {
	Color       core.Vec3
	Position    core.Vec3
	Attenuation core.Vec3 // (constant, linear, quadratic) coefficients
}

// DirectionToPoint implements the Light interface
func (l PointLight) DirectionToPoint(point core.Vec3) core.Vec3 {
	return point.Subtract(l.Position).Normalize()
}

// DistanceTo implements the Light interface
func (l PointLight) DistanceTo(point core.Vec3) (float64, bool) {
	return l.Position.Subtract(point).Length(), true
}

// IntensityAt implements the Light interface
func (l PointLight) IntensityAt(point core.Vec3) core.Vec3 {
	distance, _ := l.DistanceTo(point)
	return l.Color.Multiply(attenuationOverDistance(l.Attenuation, distance))
}

// DirectionalLight emanates in a fixed direction from infinitely far away.
// It has no position, casts parallel rays, and does not attenuate.
type DirectionalLight struct {
	Color     core.Vec3
	Direction core.Vec3
}

// DirectionToPoint implements the Light interface
func (l DirectionalLight) DirectionToPoint(core.Vec3) core.Vec3 {
	return l.Direction.Normalize()
}

// DistanceTo implements the Light interface
func (l DirectionalLight) DistanceTo(core.Vec3) (float64, bool) {
	return 0, false
}

// IntensityAt implements the Light interface
func (l DirectionalLight) IntensityAt(core.Vec3) core.Vec3 {
	return l.Color
}

// SpotLight emanates in a cone from a position. Intensity is full inside
// Angle-Penumbra, zero beyond Angle, and falls off smoothly in between.
type SpotLight struct {
	Color       core.Vec3
	Position    core.Vec3
	Direction   core.Vec3
	Attenuation core.Vec3
	Angle       float64 // Outer cone angle, radians
	Penumbra    float64 // Width of the falloff band, radians
}

// DirectionToPoint implements the Light interface
func (l SpotLight) DirectionToPoint(point core.Vec3) core.Vec3 {
	return point.Subtract(l.Position).Normalize()
}

// DistanceTo implements the Light interface
func (l SpotLight) DistanceTo(point core.Vec3) (float64, bool) {
	return l.Position.Subtract(point).Length(), true
}

// IntensityAt implements the Light interface
func (l SpotLight) IntensityAt(point core.Vec3) core.Vec3 {
	distance, _ := l.DistanceTo(point)
	attenuated := l.Color.Multiply(attenuationOverDistance(l.Attenuation, distance))

	innerAngle := l.Angle - l.Penumbra
	angleToPoint := math.Acos(l.Direction.Normalize().Dot(l.DirectionToPoint(point)))

	// Inside the inner cone the spot is at full strength
	if angleToPoint <= innerAngle {
		return attenuated
	}

	// Beyond the outer angle the spot contributes nothing
	if angleToPoint > l.Angle {
		return core.Vec3{}
	}

	// Smooth cubic falloff across the penumbra: -2x³ + 3x²
	x := (angleToPoint - innerAngle) / l.Penumbra
	falloff := -2*x*x*x + 3*x*x

	return attenuated.Multiply(1 - falloff)
}

// attenuationOverDistance evaluates the attenuation function
// min(1, 1/(c2*d² + c1*d + c0)) for coefficients (c0, c1, c2).
func attenuationOverDistance(coefficients core.Vec3, distance float64) float64 {
	return math.Min(1, 1/(coefficients.Z*distance*distance+coefficients.Y*distance+coefficients.X))
}

// Visible reports whether the point can see the light: a ray cast from the
// point toward the light, offset off the surface, must reach the light
// before striking any shape. Directional lights sit at infinity, so any
// intersection at all occludes them.
func Visible(light Light, point core.Vec3, shapes []*geometry.Shape) bool {
	toLight := light.DirectionToPoint(point).Negate()
	shadowRay := core.NewRay(point.Add(toLight.Multiply(SelfIntersectOffset)), toLight)
	distance, bounded := light.DistanceTo(point)

	for _, shape := range shapes {
		hit, ok := shape.Intersect(shadowRay)
		if !ok {
			continue
		}
		if !bounded || hit.T < distance {
			return false
		}
	}

	return true
}
