// Package scene models the scene description consumed by the renderer: the
// parsed scene graph (a DAG of transform nodes), the flattened render-ready
// scene, and the XML scenefile parser that produces the former.
package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene is the flattened, render-ready scene: world-space shapes with
// resolved materials and CTMs, lights, the camera, and decoded texture
// rasters. Nothing in a Scene is mutated once rendering begins.
type Scene struct {
	camera       *Camera
	coefficients lights.GlobalCoefficients
	lightSources []lights.Light
	shapes       []*geometry.Shape
	textures     map[string]*material.ImageTexture
}

// NewScene assembles a flattened scene
func NewScene(
	camera *Camera,
	coefficients lights.GlobalCoefficients,
	lightSources []lights.Light,
	shapes []*geometry.Shape,
	textures map[string]*material.ImageTexture,
) *Scene {
	return &Scene{
		camera:       camera,
		coefficients: coefficients,
		lightSources: lightSources,
		shapes:       shapes,
		textures:     textures,
	}
}

// Camera returns the scene camera
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Coefficients returns the global lighting coefficients
func (s *Scene) Coefficients() lights.GlobalCoefficients {
	return s.coefficients
}

// Lights returns the scene's lights in declaration order
func (s *Scene) Lights() []lights.Light {
	return s.lightSources
}

// Shapes returns the flattened world-space shapes
func (s *Scene) Shapes() []*geometry.Shape {
	return s.shapes
}

// Texture returns the decoded raster for a texture filename, or nil if the
// filename was never loaded. The flattening phase loads every referenced
// texture, so nil here is an invariant violation.
func (s *Scene) Texture(filename string) *material.ImageTexture {
	return s.textures[filename]
}
