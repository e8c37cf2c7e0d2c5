package main

import (
	"fmt"
	"os"
	"sort"

	"dxf-scene-importer/internal/dxf"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect <drawing.dxf>")
		os.Exit(1)
	}
	path := os.Args[1]
	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	scene := dxf.Parse(string(raw))

	fmt.Printf("Lines: %d, Polylines: %d, Points: %d\n",
		len(scene.Lines), len(scene.Polylines), len(scene.Points))

	b := scene.Bounds
	fmt.Printf("BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n",
		b.MinX, b.MaxX, b.MinY, b.MaxY, b.MinZ, b.MaxZ)
	fmt.Printf("Size: %.3f x %.3f x %.3f\n",
		b.MaxX-b.MinX, b.MaxY-b.MinY, b.MaxZ-b.MinZ)
	fmt.Printf("Snap vertices: %d\n", len(scene.SnapVertices()))

	names := make([]string, 0, len(scene.Layers))
	for name := range scene.Layers {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("Layers: %d\n", len(names))
	for _, name := range names {
		ly := scene.Layers[name]
		state := "on"
		if !ly.Visible {
			state = "off"
		}
		fmt.Printf("  %-24q color=%-3d %s\n", ly.Name, ly.ACI, state)
	}

	segs := 0
	for _, p := range scene.Polylines {
		segs += len(p.Vertices) - 1
		if p.Closed {
			segs++
		}
	}
	fmt.Printf("Polyline segments: %d\n", segs)
}
