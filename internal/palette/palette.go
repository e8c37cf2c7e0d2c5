package palette

// RGB is an opaque 8-bit-per-channel color (value type).
type RGB struct {
	R, G, B uint8
}

// Default is the fallback drawing color: ACI index 7 ("white").
var Default = Table[7]

// ByIndex returns the palette color for an ACI index.
// Out-of-range indices fall back to index 7.
func ByIndex(i int) RGB {
	if i < 0 || i > 255 {
		return Table[7]
	}
	return Table[i]
}

// TrueColor decodes a packed 24-bit 0xRRGGBB integer.
func TrueColor(v int) RGB {
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}
