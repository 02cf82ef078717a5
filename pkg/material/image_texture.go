package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ImageTexture holds decoded raster data sampled during shading
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Sample returns the texel for the given UV coordinate using nearest-neighbor
// filtering. UV is scaled by the image dimensions and the independent repeat
// factors, floored, and wrapped modulo the image size. The row index uses 1-v
// because raster row 0 is the top of the image while v grows upward.
func (t *ImageTexture) Sample(uv core.Vec2, repeatU, repeatV float64) core.Vec3 {
	col := int(math.Floor(uv.X*float64(t.Width)*repeatU)) % t.Width
	row := int(math.Floor((1.0-uv.Y)*float64(t.Height)*repeatV)) % t.Height

	if col < 0 {
		col += t.Width
	}
	if row < 0 {
		row += t.Height
	}

	return t.Pixels[row*t.Width+col]
}
