// Package render adapts an ebiten image to the splash drawing surface.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas draws antialiased circles onto an ebiten image.
type Canvas struct {
	dst *ebiten.Image
}

func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

func (c *Canvas) Fill(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *Canvas) DrawCircle(cx, cy, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (c *Canvas) DrawStrokedCircle(cx, cy, r, strokeWidth float64, clr color.Color) {
	if strokeWidth <= 0 {
		return
	}
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), float32(strokeWidth), clr, true)
}
