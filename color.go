// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clickdraw

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidColor is returned when a color string is not six hex digits.
var ErrInvalidColor = errors.New("clickdraw: invalid color")

// Color is an opaque RGB color. Each component is in the range [0, 1].
type Color struct {
	R, G, B float64
}

// RGB creates a color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// ParseHex parses a color in "#RRGGBB" or "RRGGBB" form.
// Each channel is divided by 255. Any other length or a non-hex digit
// yields ErrInvalidColor.
func ParseHex(s string) (Color, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q: want 6 hex digits", ErrInvalidColor, s)
	}

	var ch [3]uint32
	for i := range ch {
		v, ok := parseHexByte(hex[i*2], hex[i*2+1])
		if !ok {
			return Color{}, fmt.Errorf("%w: %q: bad hex digit", ErrInvalidColor, s)
		}
		ch[i] = v
	}

	return Color{
		R: float64(ch[0]) / 255,
		G: float64(ch[1]) / 255,
		B: float64(ch[2]) / 255,
	}, nil
}

// MustParseHex is like ParseHex but panics on error.
// Use only for hardcoded colors.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHexByte decodes two hex digits.
func parseHexByte(hi, lo byte) (uint32, bool) {
	h, ok := hexDigit(hi)
	if !ok {
		return 0, false
	}
	l, ok := hexDigit(lo)
	if !ok {
		return 0, false
	}
	return h<<4 | l, true
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	default:
		return 0, false
	}
}

// Float32 returns the components as a uniform-ready triple.
func (c Color) Float32() [3]float32 {
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}

// NRGBA converts the color to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(round255(c.R * 255)),
		G: uint8(round255(c.G * 255)),
		B: uint8(round255(c.B * 255)),
		A: 255,
	}
}

// round255 restricts a value to [0, 255] and rounds it to the nearest integer.
func round255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return math.Round(x)
}
