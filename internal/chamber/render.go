package chamber

import (
	"fmt"

	"github.com/vovakirdan/ball-chamber/internal/core"
	"github.com/vovakirdan/ball-chamber/internal/render"
)

// Render repaints the first width*height pixels: background first, then the
// ball count as a three digit counter.
func (c *Chamber) Render(width, height int) {
	c.mustInit()
	if !core.AreaFits(width, height, len(c.canvas)) {
		panic(fmt.Sprintf("chamber: render %dx%d exceeds canvas capacity %d", width, height, len(c.canvas)))
	}

	canvas := render.NewCanvas(c.canvas, width, height)
	canvas.Fill(core.PixelBackground)
	canvas.DrawCounter(c.state.NumBalls)
}
