package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one drawing in the output manifest.
type ManifestEntry struct {
	File      string     `json:"file"`
	Image     string     `json:"image,omitempty"`
	Lines     int        `json:"lines"`
	Polylines int        `json:"polylines"`
	Points    int        `json:"points"`
	Layers    int        `json:"layers"`
	Bounds    [6]float64 `json:"bounds"` // minX, minY, minZ, maxX, maxY, maxZ
}

// WriteManifest writes manifest.json summarizing a batch run.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			File:      r.File,
			Image:     r.Image,
			Lines:     r.Lines,
			Polylines: r.Polylines,
			Points:    r.Points,
			Layers:    r.Layers,
			Bounds: [6]float64{
				r.Bounds.MinX, r.Bounds.MinY, r.Bounds.MinZ,
				r.Bounds.MaxX, r.Bounds.MaxY, r.Bounds.MaxZ,
			},
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
