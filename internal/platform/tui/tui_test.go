package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ball-chamber/internal/core"
	"github.com/vovakirdan/ball-chamber/internal/physics"
	"github.com/vovakirdan/ball-chamber/internal/sim"
	"github.com/vovakirdan/ball-chamber/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"a adds", runeKey('a'), core.ActionAddBall},
		{"plus adds", runeKey('+'), core.ActionAddBall},
		{"x removes", runeKey('x'), core.ActionRemoveBall},
		{"s saves", runeKey('s'), core.ActionSave},
		{"l loads", runeKey('l'), core.ActionLoad},
		{"r resets", runeKey('r'), core.ActionReset},
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help is viewer only", runeKey('?'), core.ActionNone},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	if keys.MapKeyToFrame(runeKey('a'), &frame) {
		t.Error("a should not quit")
	}
	if !frame.Has(core.ActionAddBall) {
		t.Error("frame should have AddBall")
	}
	if !keys.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
}

func TestDrawCanvasDownsamples(t *testing.T) {
	// 4x4 canvas, top-left quarter inked.
	pix := make([]uint32, 16)
	for i := range pix {
		pix[i] = core.PixelBackground
	}
	for _, i := range []int{0, 1, 4, 5} {
		pix[i] = core.PixelForeground
	}

	s := core.NewScreen(2, 2)
	DrawCanvas(s, pix, 4, 4)

	if got := s.GetCell(0, 0).Rune; got != glyphInk {
		t.Errorf("cell (0,0) = %q, expected ink", got)
	}
	for _, p := range [][2]int{{1, 0}, {0, 1}, {1, 1}} {
		if got := s.GetCell(p[0], p[1]).Rune; got != ' ' {
			t.Errorf("cell %v = %q, expected blank", p, got)
		}
	}
}

func TestDrawCanvasPartialInk(t *testing.T) {
	pix := []uint32{
		core.PixelForeground, core.PixelBackground, core.PixelBackground, core.PixelBackground,
		core.PixelBackground, core.PixelBackground, core.PixelBackground, core.PixelBackground,
	}
	s := core.NewScreen(1, 1)
	DrawCanvas(s, pix, 4, 2)

	if got := s.GetCell(0, 0).Rune; got != glyphHalf {
		t.Errorf("cell = %q, expected half shade", got)
	}
}

func TestDrawBalls(t *testing.T) {
	s := core.NewScreen(10, 5)
	balls := []physics.Ball{
		{Pos: physics.Pos2{X: 0.5, Y: 0.5}, R: 0.02},
		{Pos: physics.Pos2{X: 2, Y: 0.5}, R: 0.02}, // outside, skipped
	}

	DrawBalls(s, balls, 100, 100)

	if got := s.GetCell(5, 2).Rune; got != glyphBall {
		t.Errorf("ball cell = %q, expected %q\n%s", got, glyphBall, s.String())
	}
	if got := s.GetCell(0, 4).Rune; got != glyphFloor {
		t.Errorf("floor cell = %q, expected %q", got, glyphFloor)
	}
	if n := strings.Count(s.String(), string(glyphBall)); n != 1 {
		t.Errorf("drew %d balls, expected 1", n)
	}
}

func TestDrawPaused(t *testing.T) {
	s := core.NewScreen(20, 5)
	DrawPaused(s)

	row := strings.Split(s.String(), "\n")[2]
	if row != "       PAUSED       " {
		t.Errorf("middle row = %q, expected the centered label", row)
	}

	narrow := core.NewScreen(4, 1)
	DrawPaused(narrow)
	if got := narrow.String(); got != " PAU" {
		t.Errorf("narrow screen = %q, expected the clipped label", got)
	}
}

func testDriver(t *testing.T) *sim.Driver {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.CanvasW, cfg.CanvasH = 40, 40
	cfg.MaxPixels = 40 * 40
	cfg.MaxBalls = 8
	cfg.InitialBalls = 3
	cfg.Seed = 1

	d, err := sim.New(cfg, physics.NewEngine(), nil)
	if err != nil {
		t.Fatalf("sim.New() failed: %v", err)
	}
	return d
}

func step(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestModelSaveAndLoad(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	d := testDriver(t)
	m := NewModel(d, store, "test")

	// First tick sets the counter, then save it.
	m = step(t, m, TickMsg{}, runeKey('s'), TickMsg{})

	e, err := store.LatestSlot("test")
	if err != nil || e == nil {
		t.Fatalf("LatestSlot() = %v, %v", e, err)
	}
	if e.NumBalls != 3 {
		t.Errorf("saved count = %d, expected 3", e.NumBalls)
	}

	m = step(t, m, runeKey('x'), TickMsg{})
	if d.Active() != 2 {
		t.Fatalf("Active() = %d after remove, expected 2", d.Active())
	}

	m = step(t, m, runeKey('l'), TickMsg{})
	if d.Active() != 3 {
		t.Errorf("Active() = %d after load, expected 3", d.Active())
	}
	if !strings.Contains(m.Status(), "loaded 3") {
		t.Errorf("status = %q", m.Status())
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := NewModel(testDriver(t), nil, "")
	m = step(t, m, runeKey('s'), TickMsg{})

	if m.Status() != "no save database" {
		t.Errorf("status = %q", m.Status())
	}
}

func TestModelViewShowsCount(t *testing.T) {
	m := NewModel(testDriver(t), nil, "")
	m = step(t, m, tea.WindowSizeMsg{Width: 40, Height: 20}, TickMsg{})

	view := m.View()
	if !strings.Contains(view, "count 003") {
		t.Errorf("view header missing count:\n%s", view)
	}
	if !strings.Contains(view, string(glyphInk)) {
		t.Error("view should contain the counter ink")
	}
}

func TestModelViewShowsPaused(t *testing.T) {
	m := NewModel(testDriver(t), nil, "")
	m = step(t, m, tea.WindowSizeMsg{Width: 40, Height: 20}, tea.KeyMsg{Type: tea.KeySpace}, TickMsg{})

	view := m.View()
	if !strings.Contains(view, "[paused]") || !strings.Contains(view, "PAUSED") {
		t.Errorf("paused view should show the label:\n%s", view)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(testDriver(t), nil, "")
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestSlotsBrowserLoadsChosenSlot(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveSlot("other", []byte{5}); err != nil {
		t.Fatalf("SaveSlot() failed: %v", err)
	}

	d := testDriver(t)
	m := NewModel(d, store, "mine")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showSlots {
		t.Fatal("tab should open the slot browser")
	}
	if !strings.Contains(m.View(), "other") {
		t.Errorf("browser should list the slot:\n%s", m.View())
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.showSlots {
		t.Error("enter should close the browser")
	}
	if m.slot != "other" {
		t.Errorf("slot = %q, expected other", m.slot)
	}
	if d.Active() != 5 {
		t.Errorf("Active() = %d, expected 5", d.Active())
	}
}

func TestBallPalette(t *testing.T) {
	for i := 0; i < paletteSize; i++ {
		if _, ok := colorStyles[ballColor(i)]; !ok {
			t.Errorf("no style for ball color %d", i)
		}
	}
	if ballColor(paletteSize) != ballColor(0) {
		t.Error("palette should wrap")
	}
	if ballColor(0) < core.ColorPalette {
		t.Error("ball colors must not overlap the fixed colors")
	}
}
