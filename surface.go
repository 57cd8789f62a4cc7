package main

import (
	"github.com/mkral/mazecaster/model"
)

// frameBuffer is an RGBA pixel buffer implementing game.Surface. The
// renderer writes columns into it and the app pushes the bytes to an
// offscreen ebiten image once per frame.
type frameBuffer struct {
	width  int
	height int
	pix    []byte
}

func newFrameBuffer(width, height int) *frameBuffer {
	return &frameBuffer{
		width:  width,
		height: height,
		pix:    make([]byte, 4*width*height),
	}
}

func (fb *frameBuffer) Fill(c model.GameColor) {
	r, g, b := c.RGBA()
	for i := 0; i < len(fb.pix); i += 4 {
		fb.pix[i] = r
		fb.pix[i+1] = g
		fb.pix[i+2] = b
		fb.pix[i+3] = 0xff
	}
}

func (fb *frameBuffer) VLine(x, y0, y1 int, c model.GameColor) {
	if x < 0 || x >= fb.width {
		return
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 > fb.height-1 {
		y1 = fb.height - 1
	}
	r, g, b := c.RGBA()
	for y := y0; y <= y1; y++ {
		i := 4 * (y*fb.width + x)
		fb.pix[i] = r
		fb.pix[i+1] = g
		fb.pix[i+2] = b
		fb.pix[i+3] = 0xff
	}
}
