package render

import (
	"fmt"

	"github.com/vovakirdan/ball-chamber/internal/core"
)

// Segment indices:
//
//	     0
//	   ____
//	  |    |
//	5 |__6_| 1
//	  |    |
//	4 |____| 2
//	     3
var segments = [7]Line{
	HLine(0.0, 0.0, 0.1),
	VLine(0.1, 0.0, 0.1),
	VLine(0.1, 0.1, 0.2),
	HLine(0.2, 0.0, 0.1),
	VLine(0.0, 0.1, 0.2),
	VLine(0.0, 0.0, 0.1),
	HLine(0.1, 0.0, 0.1),
}

// digitMasks has bit i set when segment i is lit.
var digitMasks = [10]uint8{
	0b00111111,
	0b00000110,
	0b01011011,
	0b01001111,
	0b01100110,
	0b01101101,
	0b01111101,
	0b00000111,
	0b01111111,
	0b01101111,
}

// Counter layout. Units sit rightmost.
var (
	CounterX = [3]float32{0.60, 0.45, 0.30} // units, tens, hundreds
	CounterY = float32(0.2)
)

// Mask returns the segment mask of digit. It panics for digit >= 10.
func Mask(digit uint8) uint8 {
	if digit >= 10 {
		panic(fmt.Sprintf("render: digit %d out of range", digit))
	}
	return digitMasks[digit]
}

// Segments returns the lit segments of digit in segment order, untranslated.
func Segments(digit uint8) []Line {
	bits := Mask(digit)
	lines := make([]Line, 0, len(segments))
	for _, l := range segments {
		if bits&1 == 1 {
			lines = append(lines, l)
		}
		bits >>= 1
	}
	return lines
}

// DrawDigit draws digit with its top-left corner at (x, y).
func (c Canvas) DrawDigit(digit uint8, x, y float32) {
	for _, l := range Segments(digit) {
		c.DrawLine(l.Translate(x, y), core.PixelForeground)
	}
}

// DrawCounter draws value as three zero-padded digits.
func (c Canvas) DrawCounter(value uint8) {
	c.DrawDigit(value%10, CounterX[0], CounterY)
	c.DrawDigit((value/10)%10, CounterX[1], CounterY)
	c.DrawDigit((value/100)%10, CounterX[2], CounterY)
}

// CounterBands returns every pixel rectangle DrawCounter would paint for value.
func (c Canvas) CounterBands(value uint8) []core.Rect {
	var bands []core.Rect
	digits := [3]uint8{value % 10, (value / 10) % 10, (value / 100) % 10}
	for i, d := range digits {
		for _, l := range Segments(d) {
			bands = append(bands, c.Band(l.Translate(CounterX[i], CounterY)))
		}
	}
	return bands
}
