package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dxf-scene-importer/internal/batch"
	"dxf-scene-importer/internal/config"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	testN := flag.Int("test", 0, "Render only first N drawings for testing")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	inputDir := flag.String("input", "", "Directory with .dxf drawings (default: current dir)")
	outputDir := flag.String("output", "", "Output directory (default: previews)")
	format := flag.String("format", "", "Output format: webp or tga (default: webp)")
	size := flag.Int("size", 0, "Preview size in pixels (default: 512)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		InputDir:   *inputDir,
		OutputDir:  *outputDir,
		Format:     *format,
		RenderSize: *size,
		Workers:    *workers,
	})

	if cfg.Format != "webp" && cfg.Format != "tga" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (webp or tga)\n", cfg.Format)
		os.Exit(1)
	}

	files, err := batch.FindDrawings(cfg.InputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Limit for testing
	if *testN > 0 && *testN < len(files) {
		files = files[:*testN]
	}

	if len(files) == 0 {
		fmt.Println("No drawings to render.")
		os.Exit(0)
	}

	mode := ""
	if *testN > 0 {
		mode = fmt.Sprintf(" (TEST: first %d)", *testN)
	}

	fmt.Printf("DXF Scene Importer → %s previews%s\n", cfg.Format, mode)
	fmt.Printf("Drawings: %d, Workers: %d\n", len(files), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		InputDir:    cfg.InputDir,
		OutputDir:   cfg.OutputDir,
		Format:      cfg.Format,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
	}, files)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(files))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.File, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
