// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clickdraw

import "fmt"

// DefaultPointScale divides the canvas height to get the point size.
const DefaultPointScale = 100

// Stats reports the work done by one Render call.
type Stats struct {
	Shapes  int // shapes visited
	Uploads int // buffers (re)built and uploaded
	Draws   int // draw calls issued
}

// Renderer draws a scene to a device, one draw call per shape.
type Renderer struct {
	background Color
	pointScale float64
}

// NewRenderer creates a renderer with the given background color.
// A non-positive pointScale selects DefaultPointScale.
func NewRenderer(background Color, pointScale float64) *Renderer {
	if pointScale <= 0 {
		pointScale = DefaultPointScale
	}
	return &Renderer{background: background, pointScale: pointScale}
}

// Render clears the device and draws every shape in scene order.
//
// Unbuilt shapes are built and uploaded against the current canvas size.
// Each shape binds its own buffer and sets every uniform, so no state is
// carried over from the previous shape. A canvas with zero width or height
// is cleared but nothing is drawn. A nil scene draws nothing.
func (r *Renderer) Render(dev Device, scene *Scene) (Stats, error) {
	var st Stats
	if dev == nil {
		return st, ErrNoDevice
	}

	dev.Clear(r.background)

	w, h := dev.Size()
	if scene == nil || w <= 0 || h <= 0 {
		return st, nil
	}

	res := [2]float32{float32(w), float32(h)}
	pointSize := float32(float64(h) / r.pointScale)

	for i, sh := range scene.Shapes() {
		st.Shapes++
		uploaded, err := sh.upload(dev, w, h)
		if err != nil {
			return st, fmt.Errorf("shape %d (%s): %w", i, sh.kind, err)
		}
		if uploaded {
			st.Uploads++
		}

		if err := dev.Bind(sh.buffer); err != nil {
			return st, fmt.Errorf("shape %d (%s): bind: %w", i, sh.kind, err)
		}
		dev.SetUniforms(Uniforms{
			Color:      sh.color.Float32(),
			PointSize:  pointSize,
			Resolution: res,
		})
		if err := dev.Draw(sh.primitive, 0, sh.VertexCount()); err != nil {
			return st, fmt.Errorf("shape %d (%s): draw: %w", i, sh.kind, err)
		}
		st.Draws++
	}
	return st, nil
}

// upload makes sure the shape has a device buffer for the current canvas
// size. It reports whether a new buffer was created.
func (s *Shape) upload(dev Device, width, height int) (bool, error) {
	if s.Built() && s.buffer != nil {
		return false, nil
	}
	vertices, err := s.Build(width, height)
	if err != nil {
		return false, err
	}
	s.releaseBuffer()
	buf, err := dev.Upload(vertices)
	if err != nil {
		return false, fmt.Errorf("upload: %w", err)
	}
	s.buffer = buf
	return true, nil
}
