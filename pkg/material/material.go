package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Texture references a texture image by filename, with tiling and blending
// parameters. The raster data itself is loaded once during scene flattening
// and looked up by filename at shading time.
type Texture struct {
	Filename string
	RepeatU  float64
	RepeatV  float64
	Blend    float64 // Weight of the texel in the diffuse term, in [0, 1]
}

// Material describes how a surface responds to light
type Material struct {
	Ambient    core.Vec3
	Diffuse    core.Vec3
	Specular   core.Vec3
	Reflective core.Vec3
	Shininess  float64
	Texture    *Texture // nil when the material has no texture map
}

// IsReflective reports whether the material has any mirror component
func (m *Material) IsReflective() bool {
	return m.Reflective != (core.Vec3{})
}
