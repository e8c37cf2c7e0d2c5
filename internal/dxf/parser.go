package dxf

import "strings"

// Parse decodes the plain-text tag/value form of a DXF drawing into a Scene.
// It never fails: malformed numeric fields decode as zero, unknown sections,
// entity types, and dangling block references are skipped, and a truncated
// stream simply ends the current scan. The result is always a complete Scene,
// possibly empty.
func Parse(text string) *Scene {
	s := &scanner{pairs: tokenize(text)}
	layers := map[string]Layer{}
	blocks := map[string][]Entity{}
	var pending []Entity

	for {
		p, ok := s.next()
		if !ok {
			break
		}
		if p.code != "0" || !isKeyword(p.value, "SECTION") {
			continue
		}
		name, ok := s.next()
		if !ok {
			break
		}
		switch strings.ToUpper(name.value) {
		case "TABLES":
			parseTables(s, layers)
		case "BLOCKS":
			parseBlocks(s, blocks, layers)
		case "ENTITIES":
			pending = append(pending, parseEntities(s, layers)...)
		default:
			skipSection(s)
		}
	}

	final := explode(pending, blocks, 0)

	scene := &Scene{Layers: layers}
	for _, e := range final {
		switch v := e.(type) {
		case Line:
			scene.Lines = append(scene.Lines, v)
		case Polyline:
			scene.Polylines = append(scene.Polylines, v)
		case Point:
			scene.Points = append(scene.Points, v)
		}
	}
	scene.Bounds = computeBounds(final)
	return scene
}

// parseTables walks a TABLES section, collecting LAYER records. Other table
// types pass through unrecognized.
func parseTables(s *scanner, layers map[string]Layer) {
	for {
		p, ok := s.next()
		if !ok {
			return
		}
		if p.code != "0" {
			continue
		}
		if isKeyword(p.value, "ENDSEC") {
			return
		}
		if isKeyword(p.value, "LAYER") {
			ly := decodeLayerRecord(s)
			layers[ly.Name] = ly
		}
	}
}

// parseBlocks walks a BLOCKS section, decoding each BLOCK..ENDBLK run with the
// regular entity decoders and storing the result under the block's name.
// Redeclaring a name overwrites the previous definition.
func parseBlocks(s *scanner, blocks map[string][]Entity, layers map[string]Layer) {
	for {
		p, ok := s.next()
		if !ok {
			return
		}
		if p.code != "0" {
			continue
		}
		if isKeyword(p.value, "ENDSEC") {
			return
		}
		if !isKeyword(p.value, "BLOCK") {
			continue
		}

		// Block header: the name arrives on code 2 (or its handle-era
		// duplicate, code 3).
		name := ""
		for {
			f, ok := s.peek()
			if !ok || f.code == "0" {
				break
			}
			s.off++
			if f.code == "2" || f.code == "3" {
				name = f.value
			}
		}

		var ents []Entity
		done := false
		for !done {
			t, ok := s.peek()
			if !ok {
				done = true
				break
			}
			if t.code != "0" {
				s.off++
				continue
			}
			switch {
			case isKeyword(t.value, "ENDBLK"):
				s.off++
				s.skipFields()
				done = true
			case isKeyword(t.value, "ENDSEC"):
				done = true
			default:
				s.off++
				if e, ok := decodeEntity(s, t.value, layers); ok {
					ents = append(ents, e)
				}
			}
		}
		blocks[strings.ToUpper(name)] = ents
	}
}

// parseEntities decodes a run of top-level entities up to ENDSEC.
func parseEntities(s *scanner, layers map[string]Layer) []Entity {
	var ents []Entity
	for {
		p, ok := s.next()
		if !ok {
			return ents
		}
		if p.code != "0" {
			continue
		}
		if isKeyword(p.value, "ENDSEC") {
			return ents
		}
		if e, ok := decodeEntity(s, p.value, layers); ok {
			ents = append(ents, e)
		}
	}
}

// skipSection drops an unrecognized section pair-by-pair until its ENDSEC.
func skipSection(s *scanner) {
	for {
		p, ok := s.next()
		if !ok {
			return
		}
		if p.code == "0" && isKeyword(p.value, "ENDSEC") {
			return
		}
	}
}
