package raster

import (
	"testing"

	"dxf-scene-importer/internal/dxf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmptySceneIsTransparent(t *testing.T) {
	img := Render(&dxf.Scene{}, 64, 1)
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 64, img.Bounds().Dy())
	for _, p := range img.Pix {
		if p != 0 {
			t.Fatal("expected a fully transparent canvas")
		}
	}
}

func TestRenderSupersampledCanvasSize(t *testing.T) {
	img := Render(&dxf.Scene{}, 64, 2)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestRenderDrawsLine(t *testing.T) {
	scene := dxf.Parse("0\nSECTION\n2\nENTITIES\n" +
		"0\nLINE\n62\n1\n10\n0\n20\n0\n11\n10\n21\n10\n" +
		"0\nENDSEC\n")
	img := Render(scene, 64, 1)

	lit := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			lit++
		}
	}
	assert.Greater(t, lit, 10, "line should cover pixels")
}

func TestRenderUsesEntityColor(t *testing.T) {
	scene := dxf.Parse("0\nSECTION\n2\nENTITIES\n" +
		"0\nPOINT\n62\n1\n10\n0\n20\n0\n" +
		"0\nENDSEC\n")
	img := Render(scene, 64, 1)

	sawRed := false
	for i := 0; i+3 < len(img.Pix); i += 4 {
		if img.Pix[i+3] != 0 {
			assert.Equal(t, uint8(255), img.Pix[i])
			assert.Equal(t, uint8(0), img.Pix[i+1])
			sawRed = true
		}
	}
	assert.True(t, sawRed)
}

func TestDownsampleTargetSize(t *testing.T) {
	scene := dxf.Parse("0\nSECTION\n2\nENTITIES\n" +
		"0\nLINE\n10\n0\n20\n0\n11\n10\n21\n10\n" +
		"0\nENDSEC\n")
	img := Render(scene, 32, 4)
	require.Equal(t, 128, img.Bounds().Dx())

	out := Downsample(img, 32)
	assert.Equal(t, 32, out.Bounds().Dx())
	assert.Equal(t, 32, out.Bounds().Dy())
}

func TestDownsampleNoUpscale(t *testing.T) {
	img := Render(&dxf.Scene{}, 16, 1)
	out := Downsample(img, 64)
	assert.Equal(t, 16, out.Bounds().Dx())
}
