// Package config validates the CLI-facing render configuration before
// any rendering work begins.
package config

import "fmt"

// RenderConfig is an immutable, validated set of render parameters.
// The only way to construct one is New, which rejects every invalid
// combination up front.
type RenderConfig struct {
	Output     string
	SceneName  string
	Width      int
	Height     int
	Samples    int
	Recursions int
	Threads    int
	Seed       int64
	Verify     bool
}

// New validates every field and returns a RenderConfig, or a
// descriptive error naming the first invalid field found.
func New(output, sceneName string, width, height, samples, recursions, threads int, seed int64, verify bool) (RenderConfig, error) {
	if output == "" {
		return RenderConfig{}, fmt.Errorf("config: output path must not be empty")
	}
	if sceneName == "" {
		return RenderConfig{}, fmt.Errorf("config: scene name must not be empty")
	}
	if width <= 0 {
		return RenderConfig{}, fmt.Errorf("config: width must be positive, got %d", width)
	}
	if height <= 0 {
		return RenderConfig{}, fmt.Errorf("config: height must be positive, got %d", height)
	}
	if samples <= 0 {
		return RenderConfig{}, fmt.Errorf("config: samples must be positive, got %d", samples)
	}
	if recursions <= 0 {
		return RenderConfig{}, fmt.Errorf("config: recursions must be positive, got %d", recursions)
	}
	if threads <= 0 {
		return RenderConfig{}, fmt.Errorf("config: threads must be positive, got %d", threads)
	}

	return RenderConfig{
		Output:     output,
		SceneName:  sceneName,
		Width:      width,
		Height:     height,
		Samples:    samples,
		Recursions: recursions,
		Threads:    threads,
		Seed:       seed,
		Verify:     verify,
	}, nil
}

// Default returns the documented default configuration.
func Default() RenderConfig {
	cfg, err := New("card.ppm", "aek", 512, 512, 64, 8, 1, 0, false)
	if err != nil {
		panic(fmt.Sprintf("config: default configuration is invalid: %v", err))
	}
	return cfg
}
