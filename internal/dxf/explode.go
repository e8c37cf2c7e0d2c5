package dxf

import (
	"strings"

	"dxf-scene-importer/internal/mathutil"
	"dxf-scene-importer/internal/palette"
)

// maxInsertDepth bounds block instantiation. Self-referential or pathological
// block graphs truncate at this ceiling instead of recursing forever.
const maxInsertDepth = 50

// explode recursively replaces every Insert with a transformed, color-resolved
// copy of its block's contents, bottoming out in only Line/Polyline/Point.
// Inserts naming an unknown block contribute nothing; their siblings are
// unaffected.
func explode(ents []Entity, blocks map[string][]Entity, depth int) []Entity {
	if depth > maxInsertDepth {
		return nil
	}

	var out []Entity
	for _, e := range ents {
		ins, ok := e.(Insert)
		if !ok {
			out = append(out, e)
			continue
		}
		children, ok := blocks[strings.ToUpper(ins.BlockName)]
		if !ok {
			continue
		}
		transformed := make([]Entity, 0, len(children))
		for _, child := range children {
			transformed = append(transformed, ins.place(child))
		}
		out = append(out, explode(transformed, blocks, depth+1)...)
	}
	return out
}

// place maps one block child into the Insert's frame: scale, rotate about Z,
// translate. A ByBlock child takes the Insert's own resolved color, which may
// itself still be provisional when the Insert is nested.
func (ins Insert) place(e Entity) Entity {
	m := mathutil.Mat3Mul(
		mathutil.RotZ(mathutil.Deg2Rad(ins.RotationDeg)),
		mathutil.Mat3Diag(ins.ScaleX, ins.ScaleY, ins.ScaleZ),
	)
	mapVertex := func(v Vertex) Vertex {
		t := m.MulVec3(mathutil.Vec3{v.X, v.Y, v.Z}).Add(mathutil.Vec3{ins.At.X, ins.At.Y, ins.At.Z})
		return Vertex{X: t[0], Y: t[1], Z: t[2]}
	}

	switch c := e.(type) {
	case Line:
		c.Start = mapVertex(c.Start)
		c.End = mapVertex(c.End)
		c.Color, c.ColorByBlock = ins.childColor(c.Color, c.ColorByBlock)
		return c
	case Polyline:
		verts := make([]Vertex, len(c.Vertices))
		for i, v := range c.Vertices {
			verts[i] = mapVertex(v)
		}
		c.Vertices = verts
		c.Color, c.ColorByBlock = ins.childColor(c.Color, c.ColorByBlock)
		return c
	case Point:
		c.At = mapVertex(c.At)
		c.Color, c.ColorByBlock = ins.childColor(c.Color, c.ColorByBlock)
		return c
	case Insert:
		c.At = mapVertex(c.At)
		c.ScaleX *= ins.ScaleX
		c.ScaleY *= ins.ScaleY
		c.ScaleZ *= ins.ScaleZ
		c.RotationDeg += ins.RotationDeg
		c.Color, c.ColorByBlock = ins.childColor(c.Color, c.ColorByBlock)
		return c
	}
	return e
}

// childColor resolves the ByBlock chain one level outward.
func (ins Insert) childColor(c palette.RGB, byBlock bool) (palette.RGB, bool) {
	if !byBlock {
		return c, false
	}
	return ins.Color, ins.ColorByBlock
}
