package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"cardtracer/pkg/config"
	"cardtracer/pkg/ppm"
	"cardtracer/pkg/renderer"
	"cardtracer/pkg/scene"
)

func main() {
	defaults := config.Default()

	output := flag.String("output", defaults.Output, "path to the output PPM file")
	sceneName := flag.String("scene", defaults.SceneName, "scene to render: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", defaults.Width, "image width in pixels")
	height := flag.Int("height", defaults.Height, "image height in pixels")
	samples := flag.Int("samples", defaults.Samples, "samples per pixel")
	recursions := flag.Int("recursions", defaults.Recursions, "maximum reflection/refraction recursion depth")
	threads := flag.Int("threads", defaults.Threads, "number of worker goroutines")
	seed := flag.Int64("seed", defaults.Seed, "base random seed; 0 renders non-deterministically")
	verify := flag.Bool("verify", defaults.Verify, "re-read the written file and report its header")
	flag.Parse()

	cfg, err := config.New(*output, *sceneName, *width, *height, *samples, *recursions, *threads, *seed, *verify)
	if err != nil {
		log.Fatalf("card: %v", err)
	}

	s, err := scene.Create(cfg.SceneName)
	if err != nil {
		log.Fatalf("card: %v", err)
	}

	file, err := os.Create(cfg.Output)
	if err != nil {
		log.Fatalf("card: creating %s: %v", cfg.Output, err)
	}
	defer file.Close()

	writer := ppm.NewWriter(file)
	if err := writer.Open(cfg.Width, cfg.Height, 255); err != nil {
		log.Fatalf("card: %v", err)
	}

	start := time.Now()
	err = renderer.Render(context.Background(), s, writer, cfg.Width, cfg.Height, cfg.Samples, cfg.Recursions, cfg.Threads, cfg.Seed)
	elapsed := time.Since(start)
	if err != nil {
		log.Fatalf("card: %v", err)
	}
	log.Printf("rendered %s (%dx%d, %d samples) in %v", cfg.Output, cfg.Width, cfg.Height, cfg.Samples, elapsed)

	if err := writer.Store(); err != nil {
		log.Fatalf("card: %v", err)
	}
	if err := writer.Close(); err != nil {
		log.Fatalf("card: %v", err)
	}

	if cfg.Verify {
		if err := verifyOutput(cfg.Output); err != nil {
			log.Fatalf("card: verify: %v", err)
		}
	}
}

// verifyOutput re-opens the written file through the PPM reader and
// reports its header, as a sanity check that Store wrote a well-formed
// image.
func verifyOutput(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	reader := ppm.NewReader(file)
	width, height, maxval, err := reader.Open()
	if err != nil {
		return err
	}
	log.Printf("verify: %s is P6 %dx%d maxval=%d", path, width, height, maxval)
	return nil
}
