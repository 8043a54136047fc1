// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster provides a clickdraw device that rasterizes into a
// gg.Context.
//
// Points are drawn as filled squares with the point size as side length,
// matching GPU point sprites. The triangles of one draw are filled as a
// single path, so adjacent triangles meet without seams. Line loops are
// stroked as closed paths.
//
// When the gg GPU accelerator is registered (import _ "github.com/gogpu/gg/gpu"),
// fills and strokes are offloaded to the GPU. Clear, Resize, Image and
// SavePNG flush pending GPU work first.
//
// Device is NOT safe for concurrent use.
package raster

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/clickdraw"
	"github.com/gogpu/clickdraw/backend"
	"github.com/gogpu/gg"
)

// Name is the registry name of this backend.
const Name = "raster"

// ErrUnsupportedPrimitive is returned by Draw for unknown primitives.
var ErrUnsupportedPrimitive = errors.New("raster: unsupported primitive")

func init() {
	backend.Register(Name, func(width, height int) (clickdraw.Device, error) {
		if width <= 0 || height <= 0 {
			return nil, fmt.Errorf("raster: invalid dimensions: width=%d, height=%d", width, height)
		}
		return New(width, height), nil
	})
}

// Option configures a Device.
type Option func(*Device)

// WithLineWidth sets the stroke width used for line loops.
// The default is 1 pixel.
func WithLineWidth(w float64) Option {
	return func(d *Device) {
		if w > 0 {
			d.lineWidth = w
		}
	}
}

// Device draws clickdraw primitives into a gg.Context.
type Device struct {
	dc        *gg.Context
	bound     *buffer
	uniforms  clickdraw.Uniforms
	lineWidth float64
}

// Compile-time interface checks.
var (
	_ clickdraw.Device  = (*Device)(nil)
	_ clickdraw.Resizer = (*Device)(nil)
)

// New creates a device with a canvas of the given size.
func New(width, height int, opts ...Option) *Device {
	d := &Device{
		dc:        gg.NewContext(width, height),
		lineWidth: 1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Context returns the underlying gg drawing context.
func (d *Device) Context() *gg.Context {
	return d.dc
}

// Size implements clickdraw.Device.
func (d *Device) Size() (width, height int) {
	return d.dc.Width(), d.dc.Height()
}

// Resize implements clickdraw.Resizer. The canvas content is discarded.
func (d *Device) Resize(width, height int) error {
	d.flush()
	return d.dc.Resize(width, height)
}

// Clear implements clickdraw.Device. Shapes still queued by the GPU
// accelerator are flushed first so they cannot land on the new frame.
func (d *Device) Clear(c clickdraw.Color) {
	d.flush()
	d.dc.ClearWithColor(gg.RGB(c.R, c.G, c.B))
}

// flush writes pending accelerator work into the pixmap.
func (d *Device) flush() {
	if err := d.dc.FlushGPU(); err != nil {
		// Non-fatal: CPU-rendered content is already in the pixmap.
		clickdraw.Logger().Warn("raster: GPU flush failed", "err", err)
	}
}

// buffer is a CPU-side vertex buffer.
type buffer struct {
	owner *Device
	data  []float32
}

func (b *buffer) Len() int { return len(b.data) / 2 }
func (b *buffer) Release() { b.data = nil }

// Upload implements clickdraw.Device.
func (d *Device) Upload(vertices []float32) (clickdraw.Buffer, error) {
	if len(vertices)%2 != 0 {
		return nil, fmt.Errorf("raster: odd coordinate count %d", len(vertices))
	}
	data := make([]float32, len(vertices))
	copy(data, vertices)
	return &buffer{owner: d, data: data}, nil
}

// Bind implements clickdraw.Device.
func (d *Device) Bind(buf clickdraw.Buffer) error {
	b, ok := buf.(*buffer)
	if !ok || b == nil || b.owner != d {
		return clickdraw.ErrForeignBuffer
	}
	d.bound = b
	return nil
}

// SetUniforms implements clickdraw.Device.
func (d *Device) SetUniforms(u clickdraw.Uniforms) {
	d.uniforms = u
}

// Draw implements clickdraw.Device.
func (d *Device) Draw(p clickdraw.Primitive, first, count int) error {
	if d.bound == nil || d.bound.data == nil {
		return clickdraw.ErrNoBuffer
	}
	if first < 0 || count < 0 || first+count > d.bound.Len() {
		return fmt.Errorf("%w: [%d, %d) of %d", clickdraw.ErrBufferOverrun, first, first+count, d.bound.Len())
	}
	if count == 0 {
		return nil
	}

	pts := d.bound.data[2*first : 2*(first+count)]
	c := d.uniforms.Color
	d.dc.SetRGB(float64(c[0]), float64(c[1]), float64(c[2]))
	d.dc.SetFillRule(gg.FillRuleNonZero)

	switch p {
	case clickdraw.PrimitivePoints:
		return d.drawPoints(pts)
	case clickdraw.PrimitiveTriangles:
		for i := 0; i+6 <= len(pts); i += 6 {
			d.addTriangle(pts[i:i+6], false)
		}
		return d.dc.Fill()
	case clickdraw.PrimitiveTriangleStrip:
		for i, n := 0, 0; i+6 <= len(pts); i, n = i+2, n+1 {
			d.addTriangle(pts[i:i+6], n%2 == 1)
		}
		return d.dc.Fill()
	case clickdraw.PrimitiveLineLoop:
		return d.strokeLoop(pts)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedPrimitive, p)
	}
}

func (d *Device) drawPoints(pts []float32) error {
	size := float64(d.uniforms.PointSize)
	if size < 1 {
		size = 1
	}
	for i := 0; i+2 <= len(pts); i += 2 {
		x, y := float64(pts[i]), float64(pts[i+1])
		d.dc.DrawRectangle(x-size/2, y-size/2, size, size)
	}
	return d.dc.Fill()
}

// addTriangle appends one triangle as a subpath of the current path.
// All triangles of a draw are filled together so shared edges are not
// blended twice. Odd strip triangles have their first two vertices swapped
// to keep a consistent winding under the non-zero rule.
func (d *Device) addTriangle(pts []float32, swap bool) {
	a, b := 0, 2
	if swap {
		a, b = 2, 0
	}
	d.dc.MoveTo(float64(pts[a]), float64(pts[a+1]))
	d.dc.LineTo(float64(pts[b]), float64(pts[b+1]))
	d.dc.LineTo(float64(pts[4]), float64(pts[5]))
	d.dc.ClosePath()
}

func (d *Device) strokeLoop(pts []float32) error {
	d.dc.MoveTo(float64(pts[0]), float64(pts[1]))
	for i := 2; i+2 <= len(pts); i += 2 {
		d.dc.LineTo(float64(pts[i]), float64(pts[i+1]))
	}
	d.dc.ClosePath()
	d.dc.SetLineWidth(d.lineWidth)
	return d.dc.Stroke()
}

// Image returns the rendered canvas.
func (d *Device) Image() image.Image {
	d.flush()
	return d.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (d *Device) SavePNG(path string) error {
	return d.dc.SavePNG(path)
}

// EncodePNG writes the canvas as PNG to w.
func (d *Device) EncodePNG(w io.Writer) error {
	d.flush()
	return d.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (d *Device) Close() error {
	d.bound = nil
	return d.dc.Close()
}
