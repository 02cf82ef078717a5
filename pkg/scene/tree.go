package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Transformation is a single node-level transform. The catalog is closed:
// translate, scale, and rotate.
type Transformation interface {
	Matrix() mgl64.Mat4
}

// Translate moves by an offset
type Translate struct {
	Offset core.Vec3
}

// Matrix implements the Transformation interface
func (t Translate) Matrix() mgl64.Mat4 {
	return mgl64.Translate3D(t.Offset.X, t.Offset.Y, t.Offset.Z)
}

// Scale scales by per-axis factors
type Scale struct {
	Factors core.Vec3
}

// Matrix implements the Transformation interface
func (s Scale) Matrix() mgl64.Mat4 {
	return mgl64.Scale3D(s.Factors.X, s.Factors.Y, s.Factors.Z)
}

// Rotate rotates around an axis by an angle in radians
type Rotate struct {
	Axis  core.Vec3
	Angle float64
}

// Matrix implements the Transformation interface
func (r Rotate) Matrix() mgl64.Mat4 {
	return mgl64.HomogRotate3D(r.Angle, r.Axis.ToMGL().Normalize())
}

// ParsedShape is a primitive instance awaiting flattening: its kind plus the
// material parsed from the scenefile.
type ParsedShape struct {
	Type     geometry.PrimitiveType
	Material material.Material
}

// Node is one scene-graph node: its transformations (applied in order), the
// primitives attached directly to it, and its children. Children may be
// shared between parents through master-object references, so the graph is
// a DAG rather than a tree.
type Node struct {
	Transformations []Transformation
	Shapes          []ParsedShape
	Children        []*Node
}

// TreeScene is the parsed scene graph before flattening.
type TreeScene struct {
	Coefficients lights.GlobalCoefficients
	Camera       *Camera
	Lights       []lights.Light
	Root         *Node
}

// Flatten converts the tree scene into a render-ready Scene: a depth-first
// traversal accumulates each node's transformations into a cumulative
// transformation matrix and instances every primitive it passes as a
// world-space Shape. Shared subtrees are visited once per referencing
// parent, each time under that parent's CTM. Referenced textures are
// decoded here so the render phase never touches the filesystem.
func (ts *TreeScene) Flatten() (*Scene, error) {
	primitives := geometry.NewPrimitives()
	var shapes []*geometry.Shape

	var walk func(node *Node, ctm mgl64.Mat4)
	walk = func(node *Node, ctm mgl64.Mat4) {
		for _, transformation := range node.Transformations {
			ctm = ctm.Mul4(transformation.Matrix())
		}
		for _, parsed := range node.Shapes {
			shapes = append(shapes, geometry.NewShape(primitives.Primitive(parsed.Type), parsed.Material, ctm))
		}
		for _, child := range node.Children {
			walk(child, ctm)
		}
	}
	walk(ts.Root, mgl64.Ident4())

	textures, err := loadTextures(shapes)
	if err != nil {
		return nil, err
	}

	return NewScene(ts.Camera, ts.Coefficients, ts.Lights, shapes, textures), nil
}

// loadTextures decodes every texture referenced by the flattened shapes,
// once per unique filename.
func loadTextures(shapes []*geometry.Shape) (map[string]*material.ImageTexture, error) {
	textures := make(map[string]*material.ImageTexture)

	for _, shape := range shapes {
		texture := shape.Material.Texture
		if texture == nil {
			continue
		}
		if _, loaded := textures[texture.Filename]; loaded {
			continue
		}

		raster, err := loaders.LoadTexture(texture.Filename)
		if err != nil {
			return nil, fmt.Errorf("scene: load texture %s: %w", texture.Filename, err)
		}
		textures[texture.Filename] = raster
	}

	return textures, nil
}
