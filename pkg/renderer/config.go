package renderer

// Config contains rendering configuration
type Config struct {
	Width             int  // Output image width in pixels
	Height            int  // Output image height in pixels
	Samples           int  // Rays per pixel; the first sample is unjittered
	EnableShadows     bool // Cast shadow rays during shading
	EnableReflections bool // Trace mirror reflection rays
	EnableTextures    bool // Sample texture maps during diffuse shading
	EnableParallelism bool // Distribute pixels across worker goroutines
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:             512,
		Height:            384,
		Samples:           1,
		EnableShadows:     true,
		EnableReflections: true,
		EnableTextures:    true,
		EnableParallelism: true,
	}
}
