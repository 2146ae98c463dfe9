package host

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ball-chamber/internal/physics"
)

func TestHostScenario(t *testing.T) {
	Init(10, 10000)

	balls := unsafe.Slice((*physics.Ball)(BallsMemory()), 10)
	balls[0] = physics.Ball{
		Pos:      physics.Pos2{X: 0.5, Y: 0.05},
		R:        0.05,
		Velocity: physics.Vec2{Y: -1},
	}

	Step(1, 0.1)

	if balls[0].Pos.Y < balls[0].R {
		t.Errorf("ball penetrates the floor: %+v", balls[0])
	}
	Save()
	if got := *(*byte)(SaveMemory()); got != 1 {
		t.Errorf("saved count = %d, expected 1", got)
	}
}

func TestHostSaveLoad(t *testing.T) {
	Init(20, 0)
	Step(17, 0.016)
	Save()

	if got := *(*byte)(SaveMemory()); got != 17 {
		t.Fatalf("save byte = %d, expected 17", got)
	}
	if SaveSize() != 1 {
		t.Errorf("SaveSize() = %d, expected 1", SaveSize())
	}

	*(*byte)(SaveMemory()) = 3
	Load()
	*(*byte)(SaveMemory()) = 0
	Save()
	if got := *(*byte)(SaveMemory()); got != 3 {
		t.Errorf("count after Load = %d, expected 3", got)
	}
}

func TestHostRenderWritesCanvas(t *testing.T) {
	Init(1, 64*64)
	Render(64, 64)

	pixels := unsafe.Slice((*uint32)(CanvasMemory()), 64*64)
	if pixels[0] != 0xffffffff {
		t.Errorf("pixel 0 = %#x, expected background", pixels[0])
	}
}

func TestHostRenderHugeSizePanics(t *testing.T) {
	Init(1, 16)

	defer func() {
		msg, ok := recover().(string)
		if !ok || !strings.HasPrefix(msg, "chamber:") {
			t.Errorf("Render(0xffffffff, 0xffffffff) panic = %q, expected a chamber: message", msg)
		}
	}()
	Render(0xffffffff, 0xffffffff)
}

func TestLogSink(t *testing.T) {
	var lines []string
	SetLogSink(func(msg string) { lines = append(lines, msg) })
	SetLogLevel(log.DebugLevel)
	defer func() {
		SetLogSink(nil)
		SetLogLevel(log.InfoLevel)
	}()

	Init(2, 4)

	if len(lines) == 0 {
		t.Fatal("expected the sink to receive the init log line")
	}
	if !strings.Contains(lines[0], "chamber initialized") {
		t.Errorf("unexpected log line %q", lines[0])
	}
}
