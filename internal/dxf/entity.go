package dxf

import "dxf-scene-importer/internal/palette"

// Vertex is a model-space coordinate (value type, no identity).
type Vertex struct {
	X, Y, Z float64
}

// Entity is the closed set of decoded drawing entities. Consumers switch over
// the concrete types; Insert never survives past explosion.
type Entity interface {
	entity()
}

// Line is a straight segment between two vertices.
type Line struct {
	Start, End   Vertex
	Layer        string
	Color        palette.RGB
	ColorByBlock bool
}

// Polyline is an ordered vertex chain. Closed means the last vertex connects
// back to the first; the first vertex is not duplicated at the end except for
// tessellated circles.
type Polyline struct {
	Vertices     []Vertex
	Closed       bool
	Layer        string
	Color        palette.RGB
	ColorByBlock bool
}

// Point is a single marker vertex.
type Point struct {
	At           Vertex
	Layer        string
	Color        palette.RGB
	ColorByBlock bool
}

// Insert places a scaled, rotated, translated instance of a named block.
// ColorByBlock on an Insert means the inherited color is itself still
// provisional; chains resolve outward during explosion.
type Insert struct {
	BlockName    string
	At           Vertex
	ScaleX       float64
	ScaleY       float64
	ScaleZ       float64
	RotationDeg  float64
	Layer        string
	Color        palette.RGB
	ColorByBlock bool
}

func (Line) entity()     {}
func (Polyline) entity() {}
func (Point) entity()    {}
func (Insert) entity()   {}
