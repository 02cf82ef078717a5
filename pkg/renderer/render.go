package renderer

import (
	"image"
	"math/rand"
	"time"
)

// Render raytraces the full image. pixelFinished, if non-nil, is invoked once
// per completed pixel and may be used to drive a progress indicator. It is
// always called from the goroutine that called Render.
func (rt *Raytracer) Render(pixelFinished func()) *image.RGBA {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, rt.config.Width, rt.config.Height))

	if rt.config.EnableParallelism {
		rt.renderParallel(img, pixelFinished)
	} else {
		rt.renderSequential(img, pixelFinished)
	}

	if rt.logger != nil {
		rt.logger.Printf("Rendered %dx%d image in %v\n", rt.config.Width, rt.config.Height, time.Since(start))
	}

	return img
}

func (rt *Raytracer) renderSequential(img *image.RGBA, pixelFinished func()) {
	random := rand.New(rand.NewSource(42))

	for row := 0; row < rt.config.Height; row++ {
		for col := 0; col < rt.config.Width; col++ {
			img.SetRGBA(col, row, rt.renderPixel(col, row, random))
			if pixelFinished != nil {
				pixelFinished()
			}
		}
	}
}
