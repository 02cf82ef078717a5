package renderer

import (
	"image"
	"image/color"
	"math/rand"
	"runtime"
	"sync"
)

// pixelResult carries one shaded pixel from a worker back to the image writer
type pixelResult struct {
	col, row int
	color    color.RGBA
}

// renderParallel fans individual pixels out to a pool of worker goroutines.
// Only the calling goroutine writes to img, so no locking is needed on the
// image itself.
func (rt *Raytracer) renderParallel(img *image.RGBA, pixelFinished func()) {
	numWorkers := runtime.NumCPU()
	totalPixels := rt.config.Width * rt.config.Height

	indices := make(chan int, numWorkers)
	results := make(chan pixelResult, numWorkers)

	// Feed pixel indices to the workers
	go func() {
		for i := 0; i < totalPixels; i++ {
			indices <- i
		}
		close(indices)
	}()

	var wg sync.WaitGroup
	for workerID := 0; workerID < numWorkers; workerID++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			random := rand.New(rand.NewSource(42 + int64(workerID)))
			for index := range indices {
				col, row := index%rt.config.Width, index/rt.config.Width
				results <- pixelResult{col: col, row: row, color: rt.renderPixel(col, row, random)}
			}
		}(workerID)
	}

	// Close the result channel once every worker has drained the indices
	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		img.SetRGBA(result.col, result.row, result.color)
		if pixelFinished != nil {
			pixelFinished()
		}
	}
}
