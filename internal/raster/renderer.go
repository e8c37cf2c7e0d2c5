package raster

import (
	"image"
	"math"

	"dxf-scene-importer/internal/dxf"
	"dxf-scene-importer/internal/palette"
)

// Render draws a parsed scene into a square NRGBA canvas of
// size*supersample pixels, fitted to the scene's bounds with a margin.
// Geometry is projected top-down (model +Y is up, so image rows run against
// it); Z is ignored. An empty scene renders a fully transparent canvas.
func Render(scene *dxf.Scene, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample
	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))

	if scene.EntityCount() == 0 {
		return img
	}

	b := scene.Bounds
	cx := (b.MinX + b.MaxX) / 2
	cy := (b.MinY + b.MaxY) / 2
	span := b.MaxX - b.MinX
	if s := b.MaxY - b.MinY; s > span {
		span = s
	}
	if span < 0.001 {
		span = 0.001
	}

	margin := 16 * supersample
	scale := float64(renderSize-2*margin) / span

	proj := func(v dxf.Vertex) (float64, float64) {
		px := (v.X-cx)*scale + float64(renderSize)/2
		py := float64(renderSize)/2 - (v.Y-cy)*scale
		return px, py
	}

	for _, l := range scene.Lines {
		x0, y0 := proj(l.Start)
		x1, y1 := proj(l.End)
		drawLine(img, x0, y0, x1, y1, l.Color)
	}
	for _, p := range scene.Polylines {
		for i := 0; i+1 < len(p.Vertices); i++ {
			x0, y0 := proj(p.Vertices[i])
			x1, y1 := proj(p.Vertices[i+1])
			drawLine(img, x0, y0, x1, y1, p.Color)
		}
		if p.Closed && len(p.Vertices) > 2 {
			x0, y0 := proj(p.Vertices[len(p.Vertices)-1])
			x1, y1 := proj(p.Vertices[0])
			drawLine(img, x0, y0, x1, y1, p.Color)
		}
	}
	for _, p := range scene.Points {
		x, y := proj(p.At)
		drawMarker(img, x, y, supersample, p.Color)
	}

	return img
}

// drawLine plots an unclipped DDA segment; out-of-canvas samples are dropped
// per pixel.
func drawLine(img *image.NRGBA, x0, y0, x1, y1 float64, c palette.RGB) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		setPixel(img, int(x0+dx*t+0.5), int(y0+dy*t+0.5), c)
	}
}

// drawMarker plots a small filled square around a point vertex, scaled with
// the supersample factor so it survives downscaling.
func drawMarker(img *image.NRGBA, x, y float64, supersample int, c palette.RGB) {
	r := supersample
	xi := int(x + 0.5)
	yi := int(y + 0.5)
	for py := yi - r; py <= yi+r; py++ {
		for px := xi - r; px <= xi+r; px++ {
			setPixel(img, px, py, c)
		}
	}
}

func setPixel(img *image.NRGBA, x, y int, c palette.RGB) {
	if !(image.Point{x, y}).In(img.Rect) {
		return
	}
	i := img.PixOffset(x, y)
	img.Pix[i] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = 255
}
