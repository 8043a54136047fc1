// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clickdraw

import (
	"fmt"
	"math"
)

// fakeBuffer is a vertex buffer owned by a fakeDevice.
type fakeBuffer struct {
	dev      *fakeDevice
	data     []float32
	released bool
}

func (b *fakeBuffer) Len() int { return len(b.data) / 2 }

func (b *fakeBuffer) Release() {
	if b.released {
		return
	}
	b.released = true
	b.dev.live--
}

// drawCall is one recorded Draw on a fakeDevice.
type drawCall struct {
	prim     Primitive
	first    int
	count    int
	uniforms Uniforms
	vertices []float32
}

// fakeDevice records draw calls of the current frame.
type fakeDevice struct {
	w, h      int
	clears    int
	uploads   int
	live      int
	bound     *fakeBuffer
	uniforms  Uniforms
	draws     []drawCall
	uploadErr error
}

func newFakeDevice(w, h int) *fakeDevice {
	return &fakeDevice{w: w, h: h}
}

func (d *fakeDevice) Size() (int, int) { return d.w, d.h }

func (d *fakeDevice) Clear(Color) {
	d.clears++
	d.draws = nil
}

func (d *fakeDevice) Upload(v []float32) (Buffer, error) {
	if d.uploadErr != nil {
		return nil, d.uploadErr
	}
	d.uploads++
	d.live++
	data := make([]float32, len(v))
	copy(data, v)
	return &fakeBuffer{dev: d, data: data}, nil
}

func (d *fakeDevice) Bind(buf Buffer) error {
	b, ok := buf.(*fakeBuffer)
	if !ok || b.dev != d {
		return ErrForeignBuffer
	}
	d.bound = b
	return nil
}

func (d *fakeDevice) SetUniforms(u Uniforms) { d.uniforms = u }

func (d *fakeDevice) Draw(p Primitive, first, count int) error {
	if d.bound == nil || d.bound.released {
		return ErrNoBuffer
	}
	if first+count > d.bound.Len() {
		return fmt.Errorf("%w: %d > %d", ErrBufferOverrun, first+count, d.bound.Len())
	}
	d.draws = append(d.draws, drawCall{
		prim:     p,
		first:    first,
		count:    count,
		uniforms: d.uniforms,
		vertices: d.bound.data[2*first : 2*(first+count)],
	})
	return nil
}

func (d *fakeDevice) Resize(w, h int) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("bad size %dx%d", w, h)
	}
	d.w, d.h = w, h
	return nil
}

// fakeInput is a scripted Input.
type fakeInput struct {
	keys    map[Key]bool
	clicked bool
	x, y    float64
	ended   int
}

func (in *fakeInput) KeyPressed(k Key) bool { return in.keys[k] }

func (in *fakeInput) MouseClicked(b MouseButton) bool { return b == MouseLeft && in.clicked }

func (in *fakeInput) MousePosition() (float64, float64) { return in.x, in.y }

func (in *fakeInput) EndFrame() {
	in.ended++
	in.clicked = false
}

func (in *fakeInput) press(keys ...Key) {
	in.keys = make(map[Key]bool, len(keys))
	for _, k := range keys {
		in.keys[k] = true
	}
}

func (in *fakeInput) click(x, y float64) {
	in.x, in.y = x, y
	in.clicked = true
}

const tolerance = 1e-4

func absDiff(a, b float64) float64 {
	return math.Abs(a - b)
}

// distance returns the Euclidean distance between two points.
func distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// vertexAt returns the i-th vertex of interleaved coordinates.
func vertexAt(v []float32, i int) Point {
	return Pt(float64(v[2*i]), float64(v[2*i+1]))
}
