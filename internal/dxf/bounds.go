package dxf

// Bounds is the axis-aligned bounding volume of a scene's final primitives.
// With no primitive at all, every field is zero; callers never see sentinel
// infinities.
type Bounds struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// computeBounds folds over every coordinate of every final primitive.
func computeBounds(ents []Entity) Bounds {
	var b Bounds
	seen := false

	add := func(v Vertex) {
		if !seen {
			b = Bounds{v.X, v.Y, v.Z, v.X, v.Y, v.Z}
			seen = true
			return
		}
		if v.X < b.MinX {
			b.MinX = v.X
		}
		if v.Y < b.MinY {
			b.MinY = v.Y
		}
		if v.Z < b.MinZ {
			b.MinZ = v.Z
		}
		if v.X > b.MaxX {
			b.MaxX = v.X
		}
		if v.Y > b.MaxY {
			b.MaxY = v.Y
		}
		if v.Z > b.MaxZ {
			b.MaxZ = v.Z
		}
	}

	for _, e := range ents {
		switch v := e.(type) {
		case Line:
			add(v.Start)
			add(v.End)
		case Polyline:
			for _, p := range v.Vertices {
				add(p)
			}
		case Point:
			add(v.At)
		}
	}
	return b
}
