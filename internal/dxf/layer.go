package dxf

// Layer is one row of the drawing's layer table.
type Layer struct {
	Name    string
	ACI     int // palette index, stored as absolute value
	Visible bool
}

// decodeLayerRecord scans the fields of one LAYER table record, from just
// after its (0, LAYER) tag up to the next code-0 pair.
//
// A negative code-62 value conventionally means "layer off"; the index itself
// is kept as its absolute value. Bit 0 of the code-70 flags marks the layer
// frozen. Missing index defaults to 7.
func decodeLayerRecord(s *scanner) Layer {
	name := ""
	aci := 7
	off := false
	flags := 0

	for {
		p, ok := s.peek()
		if !ok || p.code == "0" {
			break
		}
		s.off++
		switch p.code {
		case "2":
			name = p.value
		case "62":
			v := intOrZero(p.value)
			off = v < 0
			if v < 0 {
				v = -v
			}
			aci = v
		case "70":
			flags = intOrZero(p.value)
		}
	}

	return Layer{
		Name:    name,
		ACI:     aci,
		Visible: !off && flags&1 == 0,
	}
}
