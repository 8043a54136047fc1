// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clickdraw

import "errors"

// Common device errors. Device implementations return these (optionally
// wrapped) so callers can check them with errors.Is.
var (
	// ErrNoDevice is returned when no rendering device is available.
	ErrNoDevice = errors.New("clickdraw: no rendering device")

	// ErrNoBuffer is returned by Draw when no vertex buffer is bound.
	ErrNoBuffer = errors.New("clickdraw: no vertex buffer bound")

	// ErrBufferOverrun is returned by Draw when the requested vertex range
	// exceeds the bound buffer.
	ErrBufferOverrun = errors.New("clickdraw: draw range exceeds buffer")

	// ErrForeignBuffer is returned by Bind implementations that receive a
	// buffer created by another device.
	ErrForeignBuffer = errors.New("clickdraw: buffer belongs to another device")
)

// Buffer is a vertex buffer uploaded to a Device.
type Buffer interface {
	// Len returns the number of vertices held by the buffer.
	Len() int

	// Release frees the buffer. Calling Release more than once is a no-op.
	Release()
}

// Uniforms are the per-draw shader parameters.
type Uniforms struct {
	Color      [3]float32
	PointSize  float32
	Resolution [2]float32
}

// Device is the rendering context shapes are drawn to.
//
// A Device behaves like a single set of binding registers: Bind and
// SetUniforms overwrite the previous state, and Draw uses whatever is
// currently bound.
type Device interface {
	// Size returns the current canvas size in pixels.
	Size() (width, height int)

	// Clear starts a frame by filling the canvas with c.
	Clear(c Color)

	// Upload creates a buffer holding interleaved x, y vertex coordinates.
	Upload(vertices []float32) (Buffer, error)

	// Bind makes buf the source for subsequent draws.
	Bind(buf Buffer) error

	// SetUniforms replaces the shader parameters for subsequent draws.
	SetUniforms(u Uniforms)

	// Draw renders count vertices starting at first from the bound buffer.
	Draw(p Primitive, first, count int) error
}

// Resizer is implemented by devices whose canvas can be resized.
type Resizer interface {
	Resize(width, height int) error
}
