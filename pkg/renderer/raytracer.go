package renderer

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// MaxReflectionDepth bounds the recursive mirror bounces per camera ray.
const MaxReflectionDepth = 4

// Raytracer renders a flattened scene with direct Phong illumination and
// recursive mirror reflection.
type Raytracer struct {
	scene  *scene.Scene
	config Config
	logger core.Logger

	// Cached viewplane dimensions at distance 1 from the camera
	viewplaneWidth  float64
	viewplaneHeight float64
}

// NewRaytracer creates a new raytracer for the given scene
func NewRaytracer(scn *scene.Scene, config Config, logger core.Logger) *Raytracer {
	viewplaneHeight := 2 * math.Tan(scn.Camera().HeightAngle/2)
	viewplaneWidth := viewplaneHeight * float64(config.Width) / float64(config.Height)

	return &Raytracer{
		scene:           scn,
		config:          config,
		logger:          logger,
		viewplaneWidth:  viewplaneWidth,
		viewplaneHeight: viewplaneHeight,
	}
}

// pixelRay builds the world-space camera ray through pixel (col, row).
// The jitter offsets are in [0, 1) pixel units; zero jitter aims at the
// pixel's exact lower-left sample position.
func (rt *Raytracer) pixelRay(col, row int, jitterX, jitterY float64) core.Ray {
	x := (float64(col)+jitterX)/float64(rt.config.Width) - 0.5
	y := (float64(rt.config.Height-1-row)+jitterY)/float64(rt.config.Height) - 0.5

	// Camera space: eye at the origin looking down -z
	direction := core.NewVec3(rt.viewplaneWidth*x, rt.viewplaneHeight*y, -1).Normalize()
	cameraRay := core.NewRay(core.Vec3{}, direction)

	return cameraRay.Transform(rt.scene.Camera().InverseViewMatrix, false)
}

// closestIntersection scans every shape and keeps the nearest hit.
func (rt *Raytracer) closestIntersection(ray core.Ray) (*geometry.Intersection, bool) {
	var closest *geometry.Intersection
	for _, shape := range rt.scene.Shapes() {
		hit, ok := shape.Intersect(ray)
		if ok && (closest == nil || hit.Closer(closest.ComponentIntersection)) {
			closest = hit
		}
	}
	return closest, closest != nil
}

// traceRay returns the color carried back along ray. Rays that escape the
// scene contribute black.
func (rt *Raytracer) traceRay(ray core.Ray, depth int) core.Vec3 {
	closest, ok := rt.closestIntersection(ray)
	if !ok {
		return core.Vec3{}
	}

	opts := lights.Options{
		Shadows:  rt.config.EnableShadows,
		Textures: rt.config.EnableTextures,
	}
	pixelColor := lights.Phong(rt.scene, opts, closest, ray)

	if rt.config.EnableReflections && closest.Material.IsReflective() && depth < MaxReflectionDepth {
		reflected := core.Reflect(ray.Direction, closest.Normal)
		origin := ray.At(closest.T).Add(reflected.Multiply(lights.SelfIntersectOffset))
		bounce := rt.traceRay(core.NewRay(origin, reflected), depth+1)

		contribution := closest.Material.Reflective.Multiply(rt.scene.Coefficients().KS)
		pixelColor = pixelColor.Add(contribution.MultiplyVec(bounce))
	}

	return pixelColor
}

// renderPixel traces all samples for one pixel and averages them. The first
// sample is always unjittered so single-sample renders are deterministic.
func (rt *Raytracer) renderPixel(col, row int, random *rand.Rand) color.RGBA {
	accum := core.Vec3{}
	for sample := 0; sample < rt.config.Samples; sample++ {
		jitterX, jitterY := 0.0, 0.0
		if sample > 0 {
			jitterX = random.Float64()
			jitterY = random.Float64()
		}
		ray := rt.pixelRay(col, row, jitterX, jitterY)
		accum = accum.Add(rt.traceRay(ray, 0))
	}
	return toRGBA(accum.Multiply(1.0 / float64(rt.config.Samples)))
}

// toRGBA converts a color vector to RGBA with clamping
func toRGBA(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
