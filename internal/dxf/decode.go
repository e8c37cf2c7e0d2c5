package dxf

import (
	"math"
	"strings"
)

const circleSegments = 36

// entityAttrs accumulates the fields common to every entity: owning layer and
// explicit color.
type entityAttrs struct {
	layer string
	color colorRef
}

// consume claims a tag if it is a common field, returning whether it did.
func (a *entityAttrs) consume(p pair) bool {
	switch p.code {
	case "8":
		a.layer = p.value
	case "62":
		a.color.aci = intOrZero(p.value)
		a.color.hasACI = true
	case "420":
		a.color.trueColor = intOrZero(p.value)
		a.color.hasTrue = true
	default:
		return false
	}
	return true
}

// decodeEntity dispatches on the entity type tag's value and returns the
// decoded entity, or (nil, false) when the type is unsupported or the
// resolver marks the entity invisible. On return the scanner rests on the
// next code-0 pair (or EOF).
func decodeEntity(s *scanner, typ string, layers map[string]Layer) (Entity, bool) {
	switch strings.ToUpper(typ) {
	case "LINE":
		return decodeLine(s, layers)
	case "LWPOLYLINE":
		return decodeLWPolyline(s, layers)
	case "POLYLINE":
		return decodePolyline(s, layers)
	case "POINT":
		return decodePoint(s, layers)
	case "CIRCLE":
		return decodeCircle(s, layers)
	case "ARC":
		return decodeArc(s, layers)
	case "INSERT":
		return decodeInsert(s, layers)
	default:
		s.skipFields()
		return nil, false
	}
}

func decodeLine(s *scanner, layers map[string]Layer) (Entity, bool) {
	var attrs entityAttrs
	var start, end Vertex

	for {
		p, ok := s.peek()
		if !ok || p.code == "0" {
			break
		}
		s.off++
		if attrs.consume(p) {
			continue
		}
		switch p.code {
		case "10":
			start.X = floatOrZero(p.value)
		case "20":
			start.Y = floatOrZero(p.value)
		case "30":
			start.Z = floatOrZero(p.value)
		case "11":
			end.X = floatOrZero(p.value)
		case "21":
			end.Y = floatOrZero(p.value)
		case "31":
			end.Z = floatOrZero(p.value)
		}
	}

	c, byBlock, visible := resolveColor(attrs.layer, attrs.color, layers)
	if !visible {
		return nil, false
	}
	return Line{Start: start, End: end, Layer: attrs.layer, Color: c, ColorByBlock: byBlock}, true
}

// pendingVertex defers committing a lightweight-polyline vertex until the next
// code 10 (or entity end). Producers emit X/Y/Z in arbitrary order within a
// vertex, so eager commit on any one field would mis-group them.
type pendingVertex struct {
	x, y, z    float64
	hasX, hasZ bool
}

// finalize appends the pending vertex (if one was started) and resets the
// accumulator. A vertex with no explicit Z takes the polyline's elevation.
func (pv *pendingVertex) finalize(elevation float64, dst []Vertex) []Vertex {
	if !pv.hasX {
		return dst
	}
	z := pv.z
	if !pv.hasZ {
		z = elevation
	}
	dst = append(dst, Vertex{X: pv.x, Y: pv.y, Z: z})
	*pv = pendingVertex{}
	return dst
}

func decodeLWPolyline(s *scanner, layers map[string]Layer) (Entity, bool) {
	var attrs entityAttrs
	var pv pendingVertex
	var verts []Vertex
	var closed bool
	elevation := 0.0

	for {
		p, ok := s.peek()
		if !ok || p.code == "0" {
			break
		}
		s.off++
		if attrs.consume(p) {
			continue
		}
		switch p.code {
		case "10":
			// A recurring X starts the next vertex.
			verts = pv.finalize(elevation, verts)
			pv.x = floatOrZero(p.value)
			pv.hasX = true
		case "20":
			pv.y = floatOrZero(p.value)
		case "30":
			pv.z = floatOrZero(p.value)
			pv.hasZ = true
		case "38":
			elevation = floatOrZero(p.value)
		case "70":
			closed = intOrZero(p.value)&1 != 0
		}
	}
	verts = pv.finalize(elevation, verts)

	if len(verts) == 0 {
		return nil, false
	}
	c, byBlock, visible := resolveColor(attrs.layer, attrs.color, layers)
	if !visible {
		return nil, false
	}
	return Polyline{Vertices: verts, Closed: closed, Layer: attrs.layer, Color: c, ColorByBlock: byBlock}, true
}

// decodePolyline handles the heavy POLYLINE form: header fields, then VERTEX
// sub-records terminated by SEQEND. The header's code 30 is the polyline's
// constant elevation, inherited by vertices without their own Z.
func decodePolyline(s *scanner, layers map[string]Layer) (Entity, bool) {
	var attrs entityAttrs
	var closed bool
	elevation := 0.0

	for {
		p, ok := s.peek()
		if !ok || p.code == "0" {
			break
		}
		s.off++
		if attrs.consume(p) {
			continue
		}
		switch p.code {
		case "30":
			elevation = floatOrZero(p.value)
		case "70":
			closed = intOrZero(p.value)&1 != 0
		}
	}

	var verts []Vertex
	for {
		p, ok := s.peek()
		if !ok || p.code != "0" {
			break
		}
		if isKeyword(p.value, "SEQEND") {
			s.off++
			s.skipFields()
			break
		}
		if !isKeyword(p.value, "VERTEX") {
			// Belongs to the next entity.
			break
		}
		s.off++

		v := Vertex{Z: elevation}
		for {
			f, ok := s.peek()
			if !ok || f.code == "0" {
				break
			}
			s.off++
			switch f.code {
			case "10":
				v.X = floatOrZero(f.value)
			case "20":
				v.Y = floatOrZero(f.value)
			case "30":
				v.Z = floatOrZero(f.value)
			}
		}
		verts = append(verts, v)
	}

	if len(verts) == 0 {
		return nil, false
	}
	c, byBlock, visible := resolveColor(attrs.layer, attrs.color, layers)
	if !visible {
		return nil, false
	}
	return Polyline{Vertices: verts, Closed: closed, Layer: attrs.layer, Color: c, ColorByBlock: byBlock}, true
}

func decodePoint(s *scanner, layers map[string]Layer) (Entity, bool) {
	var attrs entityAttrs
	var at Vertex

	for {
		p, ok := s.peek()
		if !ok || p.code == "0" {
			break
		}
		s.off++
		if attrs.consume(p) {
			continue
		}
		switch p.code {
		case "10":
			at.X = floatOrZero(p.value)
		case "20":
			at.Y = floatOrZero(p.value)
		case "30":
			at.Z = floatOrZero(p.value)
		}
	}

	c, byBlock, visible := resolveColor(attrs.layer, attrs.color, layers)
	if !visible {
		return nil, false
	}
	return Point{At: at, Layer: attrs.layer, Color: c, ColorByBlock: byBlock}, true
}

// decodeCircle tessellates immediately into a closed 36-segment polyline with
// an explicit closing duplicate of the first vertex.
func decodeCircle(s *scanner, layers map[string]Layer) (Entity, bool) {
	var attrs entityAttrs
	var center Vertex
	radius := 0.0

	for {
		p, ok := s.peek()
		if !ok || p.code == "0" {
			break
		}
		s.off++
		if attrs.consume(p) {
			continue
		}
		switch p.code {
		case "10":
			center.X = floatOrZero(p.value)
		case "20":
			center.Y = floatOrZero(p.value)
		case "30":
			center.Z = floatOrZero(p.value)
		case "40":
			radius = floatOrZero(p.value)
		}
	}

	verts := make([]Vertex, 0, circleSegments+1)
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		verts = append(verts, Vertex{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
			Z: center.Z,
		})
	}
	verts = append(verts, verts[0])

	c, byBlock, visible := resolveColor(attrs.layer, attrs.color, layers)
	if !visible {
		return nil, false
	}
	return Polyline{Vertices: verts, Closed: true, Layer: attrs.layer, Color: c, ColorByBlock: byBlock}, true
}

// decodeArc tessellates into an open polyline. An end angle below the start
// wraps past 360; the segment count scales with the sweep, floored at 4.
func decodeArc(s *scanner, layers map[string]Layer) (Entity, bool) {
	var attrs entityAttrs
	var center Vertex
	radius := 0.0
	startDeg := 0.0
	endDeg := 0.0

	for {
		p, ok := s.peek()
		if !ok || p.code == "0" {
			break
		}
		s.off++
		if attrs.consume(p) {
			continue
		}
		switch p.code {
		case "10":
			center.X = floatOrZero(p.value)
		case "20":
			center.Y = floatOrZero(p.value)
		case "30":
			center.Z = floatOrZero(p.value)
		case "40":
			radius = floatOrZero(p.value)
		case "50":
			startDeg = floatOrZero(p.value)
		case "51":
			endDeg = floatOrZero(p.value)
		}
	}

	if endDeg < startDeg {
		endDeg += 360
	}
	sweep := endDeg - startDeg
	segments := int(sweep / 10)
	if segments < 4 {
		segments = 4
	}

	verts := make([]Vertex, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := (startDeg + sweep*float64(i)/float64(segments)) * math.Pi / 180
		verts = append(verts, Vertex{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
			Z: center.Z,
		})
	}

	c, byBlock, visible := resolveColor(attrs.layer, attrs.color, layers)
	if !visible {
		return nil, false
	}
	return Polyline{Vertices: verts, Closed: false, Layer: attrs.layer, Color: c, ColorByBlock: byBlock}, true
}

func decodeInsert(s *scanner, layers map[string]Layer) (Entity, bool) {
	var attrs entityAttrs
	ins := Insert{ScaleX: 1, ScaleY: 1, ScaleZ: 1}

	for {
		p, ok := s.peek()
		if !ok || p.code == "0" {
			break
		}
		s.off++
		if attrs.consume(p) {
			continue
		}
		switch p.code {
		case "2":
			ins.BlockName = p.value
		case "10":
			ins.At.X = floatOrZero(p.value)
		case "20":
			ins.At.Y = floatOrZero(p.value)
		case "30":
			ins.At.Z = floatOrZero(p.value)
		case "41":
			ins.ScaleX = floatOrZero(p.value)
		case "42":
			ins.ScaleY = floatOrZero(p.value)
		case "43":
			ins.ScaleZ = floatOrZero(p.value)
		case "50":
			ins.RotationDeg = floatOrZero(p.value)
		}
	}

	c, byBlock, visible := resolveColor(attrs.layer, attrs.color, layers)
	if !visible {
		return nil, false
	}
	ins.Layer = attrs.layer
	ins.Color = c
	ins.ColorByBlock = byBlock
	return ins, true
}
