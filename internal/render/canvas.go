// Package render rasterizes the chamber readout into a flat ARGB pixel buffer.
// Coordinates are normalized to the canvas width on both axes, so a square
// glyph stays square whatever the canvas height is.
package render

import (
	"fmt"

	"github.com/vovakirdan/ball-chamber/internal/core"
)

// Canvas is a row-major view of width*height pixels over a larger buffer.
type Canvas struct {
	Pix    []uint32
	Width  int
	Height int
}

// NewCanvas returns a view of the first width*height pixels of pix.
// It panics if pix cannot hold them.
func NewCanvas(pix []uint32, width, height int) Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("render: negative canvas size %dx%d", width, height))
	}
	if !core.AreaFits(width, height, len(pix)) {
		panic(fmt.Sprintf("render: canvas %dx%d exceeds buffer of %d pixels", width, height, len(pix)))
	}
	return Canvas{Pix: pix[:width*height], Width: width, Height: height}
}

// Fill sets every pixel of the view to color.
func (c Canvas) Fill(color uint32) {
	for i := range c.Pix {
		c.Pix[i] = color
	}
}

// FillRect sets every pixel of r, clipped to the canvas, to color.
func (c Canvas) FillRect(r core.Rect, color uint32) {
	r = r.Clip(c.Width, c.Height)
	if r.Empty() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		row := c.Pix[y*c.Width : (y+1)*c.Width]
		for x := r.X; x < r.Right(); x++ {
			row[x] = color
		}
	}
}

// At returns the pixel at (x, y).
func (c Canvas) At(x, y int) uint32 {
	return c.Pix[y*c.Width+x]
}

// toPixels converts a normalized coordinate to a pixel index by truncation.
// Negative values saturate at zero.
func (c Canvas) toPixels(v float32) int {
	px := v * float32(c.Width)
	if !(px > 0) {
		return 0
	}
	return int(px)
}
