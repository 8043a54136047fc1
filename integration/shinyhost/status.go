// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shinyhost

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/clickdraw"
)

const statusHeight = 20

var (
	statusBackground = color.NRGBA{0, 0, 0, 160}
	statusForeground = color.White
)

// statusLine describes the active selection.
func statusLine(st *clickdraw.State, shapes int) string {
	return fmt.Sprintf("shape: %s   color: %s   mode: %s   shapes: %d",
		st.Kind(), st.Color().Name, st.Style(), shapes)
}

// drawStatus draws text on a translucent strip along the top of dst.
func drawStatus(dst *image.RGBA, text string) {
	b := dst.Bounds()
	strip := image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+statusHeight).Intersect(b)
	if strip.Empty() {
		return
	}
	draw.Draw(dst, strip, image.NewUniform(statusBackground), image.Point{}, draw.Over)

	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(statusForeground),
		Face: face,
		Dot:  fixed.P(b.Min.X+6, b.Min.Y+face.Ascent+3),
	}
	d.DrawString(text)
}
