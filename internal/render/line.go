package render

import (
	"github.com/vovakirdan/ball-chamber/internal/core"
)

// LineKind tags which coordinate fields of a Line are meaningful.
type LineKind uint8

const (
	Horizontal LineKind = iota // Pos is y, Start/End run along x
	Vertical                   // Pos is x, Start/End run along y
)

// Line is an axis-aligned segment in normalized coordinates.
type Line struct {
	Kind  LineKind
	Pos   float32
	Start float32
	End   float32
}

// Band geometry in pixels.
const (
	halfThickness = 3
	endPadding    = 2
)

// HLine returns a horizontal line at y from start to end.
func HLine(y, start, end float32) Line {
	return Line{Kind: Horizontal, Pos: y, Start: start, End: end}
}

// VLine returns a vertical line at x from start to end.
func VLine(x, start, end float32) Line {
	return Line{Kind: Vertical, Pos: x, Start: start, End: end}
}

// Translate returns the line moved by (dx, dy).
func (l Line) Translate(dx, dy float32) Line {
	switch l.Kind {
	case Horizontal:
		l.Pos += dy
		l.Start += dx
		l.End += dx
	case Vertical:
		l.Pos += dx
		l.Start += dy
		l.End += dy
	}
	return l
}

// Band returns the pixel rectangle a line covers on c, already clipped.
// Horizontal lines are 6 rows tall, vertical ones 6 columns wide, and both
// ends are padded by 2 pixels.
func (c Canvas) Band(l Line) core.Rect {
	pos := c.toPixels(l.Pos)
	start := core.SatSub(c.toPixels(l.Start), endPadding)
	end := core.Min(c.toPixels(l.End)+endPadding, c.Width)

	var r core.Rect
	switch l.Kind {
	case Horizontal:
		r = core.RectFromBounds(start, core.SatSub(pos, halfThickness), end, pos+halfThickness)
	case Vertical:
		r = core.RectFromBounds(core.SatSub(pos, halfThickness), start, core.Min(pos+halfThickness, c.Width), end)
	}
	return r.Clip(c.Width, c.Height)
}

// DrawLine rasterizes l onto c with color.
func (c Canvas) DrawLine(l Line, color uint32) {
	c.FillRect(c.Band(l), color)
}
