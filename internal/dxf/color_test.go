package dxf

import (
	"testing"

	"dxf-scene-importer/internal/palette"

	"github.com/stretchr/testify/assert"
)

func TestResolveColor(t *testing.T) {
	layers := map[string]Layer{
		"WALLS":  {Name: "WALLS", ACI: 1, Visible: true},
		"HIDDEN": {Name: "HIDDEN", ACI: 2, Visible: false},
	}
	aci := func(v int) colorRef { return colorRef{aci: v, hasACI: true} }

	tests := []struct {
		name        string
		layer       string
		ref         colorRef
		wantColor   palette.RGB
		wantByBlock bool
		wantVisible bool
	}{
		{"negative index hides entity", "WALLS", aci(-1), palette.RGB{}, false, false},
		{"invisible layer hides entity", "HIDDEN", aci(3), palette.RGB{}, false, false},
		{"invisible layer hides even without explicit color", "HIDDEN", colorRef{}, palette.RGB{}, false, false},
		{"true color wins over index", "WALLS", colorRef{aci: 3, hasACI: true, trueColor: 0x102030, hasTrue: true}, palette.RGB{R: 0x10, G: 0x20, B: 0x30}, false, true},
		{"index 0 is ByBlock with layer color placeholder", "WALLS", aci(0), palette.ByIndex(1), true, true},
		{"index 256 is ByLayer", "WALLS", aci(256), palette.ByIndex(1), false, true},
		{"explicit index is a palette lookup", "WALLS", aci(5), palette.ByIndex(5), false, true},
		{"no explicit color falls back to layer", "WALLS", colorRef{}, palette.ByIndex(1), false, true},
		{"unknown layer falls back to white", "GHOST", colorRef{}, palette.Default, false, true},
		{"unknown layer ByLayer falls back to white", "GHOST", aci(256), palette.Default, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, byBlock, visible := resolveColor(tt.layer, tt.ref, layers)
			assert.Equal(t, tt.wantVisible, visible)
			if !tt.wantVisible {
				return
			}
			assert.Equal(t, tt.wantColor, c)
			assert.Equal(t, tt.wantByBlock, byBlock)
		})
	}
}

func TestNegativeIndexWinsOverTrueColor(t *testing.T) {
	ref := colorRef{aci: -1, hasACI: true, trueColor: 0xFF0000, hasTrue: true}
	_, _, visible := resolveColor("", ref, nil)
	assert.False(t, visible)
}
