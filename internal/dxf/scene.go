package dxf

import "dxf-scene-importer/internal/mathutil"

// Scene is the immutable result of one Parse call: post-explosion primitives
// grouped by kind, the layer table, and the bounding volume. Inserts never
// appear here.
type Scene struct {
	Lines     []Line
	Polylines []Polyline
	Points    []Point
	Layers    map[string]Layer
	Bounds    Bounds
}

// EntityCount returns the total number of primitives.
func (s *Scene) EntityCount() int {
	return len(s.Lines) + len(s.Polylines) + len(s.Points)
}

// SnapVertices extracts every primitive vertex for snap indexing: both line
// endpoints, every polyline vertex, and every point.
func (s *Scene) SnapVertices() []mathutil.Vec3 {
	n := 2*len(s.Lines) + len(s.Points)
	for _, p := range s.Polylines {
		n += len(p.Vertices)
	}
	verts := make([]mathutil.Vec3, 0, n)

	for _, l := range s.Lines {
		verts = append(verts,
			mathutil.Vec3{l.Start.X, l.Start.Y, l.Start.Z},
			mathutil.Vec3{l.End.X, l.End.Y, l.End.Z})
	}
	for _, p := range s.Polylines {
		for _, v := range p.Vertices {
			verts = append(verts, mathutil.Vec3{v.X, v.Y, v.Z})
		}
	}
	for _, p := range s.Points {
		verts = append(verts, mathutil.Vec3{p.At.X, p.At.Y, p.At.Z})
	}
	return verts
}
