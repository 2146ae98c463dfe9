package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Terminal colors used by the chamber preview.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorWhite
	ColorGray
	ColorBrightWhite

	// ColorPalette is the first of a run of colors a renderer may assign.
	ColorPalette Color = 16
)

// ARGB pixel values written into the chamber canvas.
const (
	PixelBackground uint32 = 0xffffffff
	PixelForeground uint32 = 0xff000000
)

// Luma returns the perceived brightness of an ARGB pixel in [0, 255].
// The byte order is the one a host sees when it reads the canvas as RGBA bytes
// on a little endian machine: R in the low byte.
func Luma(px uint32) int {
	r := int(px & 0xff)
	g := int(px >> 8 & 0xff)
	b := int(px >> 16 & 0xff)
	return (299*r + 587*g + 114*b) / 1000
}
