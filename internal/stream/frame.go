// Package stream broadcasts rendered chamber frames to websocket clients.
package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderSize is the size of the frame header: width, height, count.
const HeaderSize = 4 + 4 + 1

// Frame is one decoded broadcast message.
type Frame struct {
	Width  uint32
	Height uint32
	Count  uint8
	Pixels []uint32
}

// EncodeFrame appends a frame message to dst: uint32 width, uint32 height,
// uint8 count, then width*height pixels, all little endian.
func EncodeFrame(dst []byte, width, height int, count uint8, pix []uint32) []byte {
	n := width * height
	if len(pix) < n {
		panic(fmt.Sprintf("stream: %d pixels for a %dx%d frame", len(pix), width, height))
	}

	dst = binary.LittleEndian.AppendUint32(dst, uint32(width))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(height))
	dst = append(dst, count)
	for _, p := range pix[:n] {
		dst = binary.LittleEndian.AppendUint32(dst, p)
	}
	return dst
}

// DecodeFrame parses a frame message.
func DecodeFrame(msg []byte) (Frame, error) {
	if len(msg) < HeaderSize {
		return Frame{}, errors.New("stream: short frame header")
	}

	f := Frame{
		Width:  binary.LittleEndian.Uint32(msg[0:4]),
		Height: binary.LittleEndian.Uint32(msg[4:8]),
		Count:  msg[8],
	}

	body := msg[HeaderSize:]
	n := int(f.Width) * int(f.Height)
	if len(body) != n*4 {
		return Frame{}, fmt.Errorf("stream: frame body is %d bytes, expected %d", len(body), n*4)
	}

	f.Pixels = make([]uint32, n)
	for i := range f.Pixels {
		f.Pixels[i] = binary.LittleEndian.Uint32(body[i*4:])
	}
	return f, nil
}
