//go:build wasip1

// chamber-wasm builds the chamber as a WebAssembly reactor module. The host
// instantiates it, calls init once, writes balls into ballsMemory, and then
// drives step/render each frame, reading pixels from canvasMemory.
//
// Build with:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o chamber.wasm ./cmd/chamber-wasm
package main

import (
	"unsafe"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ball-chamber/internal/host"
)

//go:wasmimport env logWasm
func logWasm(ptr unsafe.Pointer, size uint32)

func init() {
	host.SetLogSink(func(msg string) {
		if len(msg) == 0 {
			return
		}
		b := []byte(msg)
		logWasm(unsafe.Pointer(unsafe.SliceData(b)), uint32(len(b)))
	})
}

// setLogLevel takes a charmbracelet/log level: -4 debug, 0 info, 4 warn,
// 8 error.
//
//go:wasmexport setLogLevel
func setLogLevel(level int32) { host.SetLogLevel(log.Level(level)) }

//go:wasmexport init
func wasmInit(maxBalls, maxChamberPixels uint32) {
	host.Init(maxBalls, maxChamberPixels)
}

//go:wasmexport ballsMemory
func ballsMemory() unsafe.Pointer { return host.BallsMemory() }

//go:wasmexport canvasMemory
func canvasMemory() unsafe.Pointer { return host.CanvasMemory() }

//go:wasmexport saveMemory
func saveMemory() unsafe.Pointer { return host.SaveMemory() }

//go:wasmexport saveSize
func saveSize() uint32 { return host.SaveSize() }

//go:wasmexport save
func save() { host.Save() }

//go:wasmexport load
func load() { host.Load() }

//go:wasmexport step
func step(numBalls uint32, delta float32) { host.Step(numBalls, delta) }

//go:wasmexport render
func render(canvasWidth, canvasHeight uint32) { host.Render(canvasWidth, canvasHeight) }

func main() {}
