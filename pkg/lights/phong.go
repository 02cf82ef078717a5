package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// GlobalCoefficients are the scalar lighting weights applied uniformly to
// the ambient, diffuse, and specular terms of every material.
type GlobalCoefficients struct {
	KA float64
	KD float64
	KS float64
}

// Scene provides the parts of a scene that illumination needs.
// Defined here to avoid a circular import with the scene package.
type Scene interface {
	Lights() []Light
	Shapes() []*geometry.Shape
	Coefficients() GlobalCoefficients
	// Texture returns the decoded raster for a texture filename. The
	// flattening phase guarantees every referenced texture is loaded, so a
	// missing entry is an invariant violation.
	Texture(filename string) *material.ImageTexture
}

// Options control the optional illumination features.
type Options struct {
	Shadows  bool
	Textures bool
}

// Phong computes local illumination at a world-space intersection: the
// material's ambient term plus, for each light that survives the shadow
// test, attenuated diffuse and specular contributions.
func Phong(scn Scene, opts Options, intersection *geometry.Intersection, ray core.Ray) core.Vec3 {
	coefficients := scn.Coefficients()
	mat := intersection.Material

	illumination := mat.Ambient.Multiply(coefficients.KA)

	point := ray.At(intersection.T)
	normal := intersection.Normal
	toCamera := ray.Direction.Negate().Normalize()

	for _, light := range scn.Lights() {
		if opts.Shadows && !Visible(light, point, scn.Shapes()) {
			continue
		}

		lightToPoint := light.DirectionToPoint(point)
		toLight := lightToPoint.Negate()

		diffuseAngle := normal.Dot(toLight)
		if diffuseAngle < 0 {
			diffuseAngle = 0
		}

		var diffuse core.Vec3
		if opts.Textures && mat.Texture != nil {
			// Blend the UV-sampled texel into the diffuse color; the
			// incidence angle still applies multiplicatively.
			texel := scn.Texture(mat.Texture.Filename).
				Sample(intersection.UV, mat.Texture.RepeatU, mat.Texture.RepeatV)
			diffuse = mat.Diffuse.Multiply((1 - mat.Texture.Blend) * coefficients.KD).
				Add(texel.Multiply(mat.Texture.Blend)).
				Multiply(diffuseAngle)
		} else {
			diffuse = mat.Diffuse.Multiply(coefficients.KD * diffuseAngle)
		}

		mirror := core.Reflect(lightToPoint, normal)
		specularAngle := mirror.Dot(toCamera)
		if specularAngle < 0 {
			specularAngle = 0
		} else {
			specularAngle = math.Pow(specularAngle, mat.Shininess)
		}
		specular := mat.Specular.Multiply(coefficients.KS * specularAngle)

		illumination = illumination.Add(light.IntensityAt(point).MultiplyVec(diffuse.Add(specular)))
	}

	return illumination
}
