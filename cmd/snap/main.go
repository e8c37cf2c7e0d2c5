package main

import (
	"flag"
	"fmt"
	"os"

	"dxf-scene-importer/internal/dxf"
	"dxf-scene-importer/internal/spatial"
)

func main() {
	x := flag.Float64("x", 0, "Query X in model units")
	y := flag.Float64("y", 0, "Query Y in model units")
	radius := flag.Float64("radius", 10, "Snap radius in model units")
	cell := flag.Float64("cell", spatial.DefaultCellSize, "Grid cell size in model units")

	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: snap [flags] <drawing.dxf>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	raw, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scene := dxf.Parse(string(raw))
	verts := scene.SnapVertices()

	grid := spatial.NewGrid(*cell)
	grid.Build(verts)

	fmt.Printf("Indexed %d vertices (cell size %.2f)\n", len(verts), *cell)

	v, dist, ok := grid.Nearest(*x, *y, *radius)
	if !ok {
		fmt.Printf("No vertex within %.3f of (%.3f, %.3f)\n", *radius, *x, *y)
		return
	}
	fmt.Printf("Nearest: (%.3f, %.3f, %.3f) at distance %.3f\n", v[0], v[1], v[2], dist)
}
