// Package loaders decodes external resources referenced by scenefiles.
package loaders

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/ftrvxmtrx/tga"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// LoadTexture decodes a texture image into the raster form sampled during
// shading. PNG, JPEG, GIF, BMP, and TIFF are detected from the file header;
// TGA has no magic bytes, so .tga files are dispatched by extension.
func LoadTexture(filename string) (*material.ImageTexture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loaders: open texture: %w", err)
	}
	defer file.Close()

	img, err := decodeImage(file, filename)
	if err != nil {
		return nil, fmt.Errorf("loaders: decode texture %s: %w", filename, err)
	}

	// Convert to the raster form sampled during shading
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return material.NewImageTexture(width, height, pixels), nil
}

// decodeImage picks the decoder for a texture file. Registering the tga
// package for sniffing would be wrong: TGA has no magic bytes, so its
// registered format matches any input and shadows the real decoders.
func decodeImage(r io.Reader, filename string) (image.Image, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".tga" {
		return tga.Decode(r)
	}

	img, _, err := image.Decode(r)
	return img, err
}
