package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/schollz/progressbar/v3"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	scenefile := flag.String("scene", "", "Path to the scenefile XML (required)")
	output := flag.String("output", "render.png", "Output image path (.png, .webp, .jpg)")
	texturesDir := flag.String("textures", ".", "Directory texture file paths are resolved against")
	width := flag.Int("width", 512, "Output image width in pixels")
	height := flag.Int("height", 384, "Output image height in pixels")
	samples := flag.Int("samples", 1, "Rays per pixel")
	shadows := flag.Bool("shadows", true, "Cast shadow rays")
	reflections := flag.Bool("reflections", true, "Trace mirror reflections")
	textures := flag.Bool("texture-maps", true, "Sample texture maps")
	parallel := flag.Bool("parallel", true, "Render pixels on multiple goroutines")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer -scene <scenefile.xml> [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if err := run(*scenefile, *output, *texturesDir, renderer.Config{
		Width:             *width,
		Height:            *height,
		Samples:           *samples,
		EnableShadows:     *shadows,
		EnableReflections: *reflections,
		EnableTextures:    *textures,
		EnableParallelism: *parallel,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(scenefile, output, texturesDir string, config renderer.Config) error {
	if scenefile == "" {
		return fmt.Errorf("a scenefile is required, pass one with -scene")
	}
	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", config.Width, config.Height)
	}
	if config.Samples < 1 {
		return fmt.Errorf("samples must be at least 1, got %d", config.Samples)
	}

	tree, err := scene.ParseFile(scenefile, texturesDir)
	if err != nil {
		return err
	}

	flattened, err := tree.Flatten()
	if err != nil {
		return err
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	raytracer := renderer.NewRaytracer(flattened, config, logger)

	bar := progressbar.Default(int64(config.Width * config.Height))
	img := raytracer.Render(func() {
		bar.Add(1)
	})

	if err := saveImage(img, output); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", output)
	return nil
}

// saveImage encodes the render in the format implied by the output extension.
func saveImage(img *image.RGBA, output string) error {
	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(output)) {
	case ".png":
		err = png.Encode(file, img)
	case ".webp":
		err = nativewebp.Encode(file, img, nil)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(file, img, nil)
	default:
		return fmt.Errorf("unsupported output format %q, use .png, .webp or .jpg", filepath.Ext(output))
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", output, err)
	}
	return nil
}
