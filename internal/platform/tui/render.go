package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/crazy3lf/colorconv"

	"github.com/vovakirdan/ball-chamber/internal/core"
	"github.com/vovakirdan/ball-chamber/internal/physics"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorBlack:       lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

// Balls cycle through paletteSize hues, stored in colorStyles from
// core.ColorPalette on.
const paletteSize = 8

func init() {
	for i := 0; i < paletteSize; i++ {
		hue := float64(i) * 360 / paletteSize
		r, g, b, err := colorconv.HSVToRGB(hue, 0.7, 1)
		if err != nil {
			continue
		}
		hex := fmt.Sprintf("#%02x%02x%02x", r, g, b)
		colorStyles[ballColor(i)] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
}

// ballColor returns the palette color of the i-th ball.
func ballColor(i int) core.Color {
	return core.ColorPalette + core.Color(i%paletteSize)
}

// Preview glyphs.
const (
	glyphInk   = '█'
	glyphHalf  = '▒'
	glyphBall  = 'o'
	glyphFloor = '─'
)

// darkLuma is the brightness below which a canvas pixel counts as ink.
const darkLuma = 128

// cellSpan returns the half-open source range covered by cell i of n
// when size source units are spread over n cells. Never empty.
func cellSpan(i, n, size int) (int, int) {
	lo := i * size / n
	hi := (i + 1) * size / n
	if hi <= lo {
		hi = lo + 1
	}
	return lo, core.Min(hi, size)
}

// DrawCanvas downsamples a width x height canvas onto the whole screen.
// Cells that are mostly ink become a full block, partly inked cells a shade.
func DrawCanvas(s *core.Screen, pix []uint32, width, height int) {
	sw, sh := s.Width(), s.Height()
	if sw == 0 || sh == 0 || width <= 0 || height <= 0 {
		return
	}

	for cy := 0; cy < sh; cy++ {
		y0, y1 := cellSpan(cy, sh, height)
		for cx := 0; cx < sw; cx++ {
			x0, x1 := cellSpan(cx, sw, width)

			ink, total := 0, 0
			for y := y0; y < y1; y++ {
				row := pix[y*width : (y+1)*width]
				for x := x0; x < x1; x++ {
					if core.Luma(row[x]) < darkLuma {
						ink++
					}
					total++
				}
			}

			switch {
			case total > 0 && ink*2 >= total:
				s.SetCell(cx, cy, core.Cell{Rune: glyphInk, Color: core.ColorBrightWhite})
			case ink > 0:
				s.SetCell(cx, cy, core.Cell{Rune: glyphHalf, Color: core.ColorWhite})
			default:
				s.SetCell(cx, cy, core.Cell{Rune: ' ', Color: core.ColorDefault})
			}
		}
	}
}

// DrawBalls overlays balls and the floor. Canvas rows grow downward while
// ball coordinates grow upward from the floor, so y is flipped; the floor
// sits on the last screen row.
func DrawBalls(s *core.Screen, balls []physics.Ball, width, height int) {
	sw, sh := s.Width(), s.Height()
	if sw == 0 || sh == 0 || width <= 0 || height <= 0 {
		return
	}

	for x := 0; x < sw; x++ {
		s.SetCell(x, sh-1, core.Cell{Rune: glyphFloor, Color: core.ColorGray})
	}

	top := float32(height) / float32(width)
	for i, b := range balls {
		if b.Pos.Y < 0 || b.Pos.Y > top || b.Pos.X < 0 || b.Pos.X > 1 {
			continue
		}
		cx := int(b.Pos.X * float32(sw))
		cy := int((top - b.Pos.Y) / top * float32(sh))
		s.SetCell(core.Clamp(cx, 0, sw-1), core.Clamp(cy, 0, sh-1), core.Cell{Rune: glyphBall, Color: ballColor(i)})
	}
}

// pausedLabel is drawn across the middle row while stepping is paused.
const pausedLabel = " PAUSED "

// DrawPaused centers the paused label on s.
func DrawPaused(s *core.Screen) {
	x := core.SatSub(s.Width(), len(pausedLabel)) / 2
	s.DrawText(x, s.Height()/2, pausedLabel)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
