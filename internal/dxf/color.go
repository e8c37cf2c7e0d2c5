package dxf

import "dxf-scene-importer/internal/palette"

// colorRef carries an entity's explicit color fields as decoded from the tag
// stream. Presence matters: an absent ACI and an ACI of 256 resolve
// differently.
type colorRef struct {
	aci       int
	hasACI    bool
	trueColor int
	hasTrue   bool
}

// resolveColor decides an entity's final color and whether it is rendered at
// all. visible == false means the entity must be discarded before it reaches
// any downstream list. byBlock marks the returned color as provisional, to be
// overridden by an enclosing Insert during explosion.
//
// Precedence: explicit invisibility (negative ACI), then layer visibility,
// then true color, then ACI (0 = ByBlock, 256 = ByLayer, otherwise a palette
// lookup), then the owning layer's color.
func resolveColor(layerName string, ref colorRef, layers map[string]Layer) (c palette.RGB, byBlock, visible bool) {
	if ref.hasACI && ref.aci < 0 {
		return palette.RGB{}, false, false
	}
	if ly, ok := layers[layerName]; ok && !ly.Visible {
		return palette.RGB{}, false, false
	}
	if ref.hasTrue {
		return palette.TrueColor(ref.trueColor), false, true
	}
	if ref.hasACI {
		switch ref.aci {
		case 0:
			return layerColor(layerName, layers), true, true
		case 256:
			return layerColor(layerName, layers), false, true
		default:
			return palette.ByIndex(ref.aci), false, true
		}
	}
	return layerColor(layerName, layers), false, true
}

// layerColor is the layer's resolved drawing color: its palette index when the
// layer is known, otherwise the default index 7 ("white").
func layerColor(name string, layers map[string]Layer) palette.RGB {
	if ly, ok := layers[name]; ok {
		return palette.ByIndex(ly.ACI)
	}
	return palette.Default
}
