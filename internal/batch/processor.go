package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"dxf-scene-importer/internal/dxf"
	"dxf-scene-importer/internal/raster"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Config holds all shared settings for a batch run.
type Config struct {
	InputDir    string
	OutputDir   string
	Format      string // "webp" or "tga"
	RenderSize  int
	Supersample int
	Workers     int
}

// Result holds the outcome of processing one drawing.
type Result struct {
	File      string
	Image     string
	Lines     int
	Polylines int
	Points    int
	Layers    int
	Bounds    dxf.Bounds
	Success   bool
	Error     string
}

// FindDrawings returns the .dxf files directly under dir, sorted by ReadDir.
func FindDrawings(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: scan %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".dxf") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

// Run renders all drawings using a worker pool.
func Run(cfg Config, files []string) []Result {
	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f drawings/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	fileChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range fileChan {
				results[idx] = processDrawing(cfg, files[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range files {
		fileChan <- i
	}
	close(fileChan)

	wg.Wait()
	close(done)

	return results
}

func processDrawing(cfg Config, path string) Result {
	res := Result{File: filepath.Base(path)}

	raw, err := os.ReadFile(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	scene := dxf.Parse(string(raw))
	res.Lines = len(scene.Lines)
	res.Polylines = len(scene.Polylines)
	res.Points = len(scene.Points)
	res.Layers = len(scene.Layers)
	res.Bounds = scene.Bounds

	img := raster.Render(scene, cfg.RenderSize, cfg.Supersample)
	if cfg.Supersample > 1 {
		img = raster.Downsample(img, cfg.RenderSize)
	}

	stem := strings.TrimSuffix(res.File, filepath.Ext(res.File))
	outPath := filepath.Join(cfg.OutputDir, stem+"."+cfg.Format)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := encode(f, img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Image = filepath.Base(outPath)
	res.Success = true
	return res
}

func encode(f *os.File, img *image.NRGBA, format string) error {
	switch format {
	case "tga":
		if err := tga.Encode(f, img); err != nil {
			return fmt.Errorf("TGA encode: %w", err)
		}
	default:
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
	}
	return nil
}
