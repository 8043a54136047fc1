// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clickdraw

import (
	"errors"
	"fmt"
)

// Errors returned by shape construction and placement.
var (
	// ErrOutOfBounds is returned when a shape is requested at a position
	// with a non-finite coordinate, which input trackers report for clicks
	// outside the canvas.
	ErrOutOfBounds = errors.New("clickdraw: position out of bounds")

	// ErrEmptyCanvas is returned when a shape is built against a canvas
	// with zero width or height.
	ErrEmptyCanvas = errors.New("clickdraw: empty canvas")
)

// Shape is a single drawable placed by a click.
//
// The anchor is stored as the raw click position. On the first build it is
// converted to a ratio of the canvas size, and every later build places the
// shape relative to that ratio, so the shape keeps its relative position
// across resizes while its size follows the canvas height.
//
// Shape is NOT safe for concurrent use.
type Shape struct {
	kind      Kind
	style     Style
	color     Color
	anchor    Point
	offsets   []Point
	primitive Primitive

	ratio    Point
	ratioSet bool

	vertices []float32 // device coordinates, nil while unbuilt
	buffer   Buffer    // device upload of vertices
}

// NewShape creates a shape of the given kind anchored at a pixel position.
// Style only affects triangles and squares.
//
// Returns ErrOutOfBounds if either coordinate is infinite or NaN.
func NewShape(kind Kind, at Point, c Color, style Style) (*Shape, error) {
	if !at.IsFinite() {
		return nil, fmt.Errorf("%w: (%v, %v)", ErrOutOfBounds, at.X, at.Y)
	}
	offsets, prim, err := Geometry(kind, style)
	if err != nil {
		return nil, err
	}
	if kind != KindTriangle && kind != KindSquare {
		style = StyleFilled
	}
	return &Shape{
		kind:      kind,
		style:     style,
		color:     c,
		anchor:    at,
		offsets:   offsets,
		primitive: prim,
	}, nil
}

// Kind returns the shape kind.
func (s *Shape) Kind() Kind { return s.kind }

// Style returns the draw style. Kinds without a style report StyleFilled.
func (s *Shape) Style() Style { return s.style }

// Color returns the shape color.
func (s *Shape) Color() Color { return s.color }

// Anchor returns the click position the shape was created at.
func (s *Shape) Anchor() Point { return s.anchor }

// Primitive returns the draw mode for the shape.
func (s *Shape) Primitive() Primitive { return s.primitive }

// VertexCount returns the number of vertices drawn for the shape.
func (s *Shape) VertexCount() int { return len(s.offsets) }

// AnchorRatio returns the anchor as a fraction of the canvas size.
// ok is false until the shape has been built once.
func (s *Shape) AnchorRatio() (ratio Point, ok bool) {
	return s.ratio, s.ratioSet
}

// Built reports whether the shape holds device coordinates for the current
// canvas size.
func (s *Shape) Built() bool {
	return s.vertices != nil
}

// Vertices returns the cached device coordinates as interleaved x, y
// pairs, or nil if the shape is unbuilt.
func (s *Shape) Vertices() []float32 {
	return s.vertices
}

// Build computes device coordinates for a canvas of the given size and
// caches them. A built shape returns its cached coordinates unchanged.
//
// The anchor ratio is fixed on the first successful build.
func (s *Shape) Build(width, height int) ([]float32, error) {
	if s.vertices != nil {
		return s.vertices, nil
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyCanvas, width, height)
	}

	w, h := float64(width), float64(height)
	if !s.ratioSet {
		s.ratio = Pt(s.anchor.X/w, s.anchor.Y/h)
		s.ratioSet = true
	}

	origin := s.ratio.Scale(Pt(w, h))
	vertices := make([]float32, 0, 2*len(s.offsets))
	for _, off := range s.offsets {
		p := origin.Add(off.Mul(h))
		vertices = append(vertices, float32(p.X), float32(p.Y))
	}
	s.vertices = vertices

	Logger().Debug("clickdraw: shape built",
		"kind", s.kind, "width", width, "height", height, "vertices", len(s.offsets))
	return vertices, nil
}

// Invalidate drops the cached device coordinates and releases the device
// buffer. The anchor ratio is kept.
func (s *Shape) Invalidate() {
	s.vertices = nil
	s.releaseBuffer()
}

func (s *Shape) releaseBuffer() {
	if s.buffer != nil {
		s.buffer.Release()
		s.buffer = nil
	}
}
