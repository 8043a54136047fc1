// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"fmt"

	"github.com/gogpu/clickdraw"
	"github.com/gogpu/clickdraw/backend"
)

// Name is the registry name of this backend.
const Name = "record"

// DefaultMaxFrames is the number of frames kept by a Recorder.
const DefaultMaxFrames = 8

func init() {
	backend.Register(Name, func(width, height int) (clickdraw.Device, error) {
		if width < 0 || height < 0 {
			return nil, fmt.Errorf("recording: invalid dimensions: width=%d, height=%d", width, height)
		}
		return NewRecorder(width, height), nil
	})
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithTarget forwards every device call to target while recording.
// The canvas size is then reported by the target.
func WithTarget(target clickdraw.Device) Option {
	return func(r *Recorder) {
		r.target = target
	}
}

// WithMaxFrames sets how many frames are retained. Older frames are
// dropped first. Values below 1 keep a single frame.
func WithMaxFrames(n int) Option {
	return func(r *Recorder) {
		if n < 1 {
			n = 1
		}
		r.maxFrames = n
	}
}

// buffer is a recorded vertex buffer.
type buffer struct {
	owner    *Recorder
	id       BufferID
	data     []float32
	target   clickdraw.Buffer // forwarded buffer, nil without a target
	released bool
}

func (b *buffer) Len() int { return len(b.data) / 2 }

func (b *buffer) Release() {
	if b.released {
		return
	}
	b.released = true
	b.data = nil
	if b.target != nil {
		b.target.Release()
		b.target = nil
	}
	b.owner.live--
}

// Recorder is a clickdraw.Device that records commands per frame.
//
// Recorder is NOT safe for concurrent use.
type Recorder struct {
	width, height int
	target        clickdraw.Device
	maxFrames     int

	frames   [][]Command
	bound    *buffer
	uniforms clickdraw.Uniforms
	nextID   BufferID
	live     int
}

// Compile-time interface checks.
var (
	_ clickdraw.Device  = (*Recorder)(nil)
	_ clickdraw.Resizer = (*Recorder)(nil)
)

// NewRecorder creates a recorder with a canvas of the given size.
func NewRecorder(width, height int, opts ...Option) *Recorder {
	r := &Recorder{
		width:     width,
		height:    height,
		maxFrames: DefaultMaxFrames,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Size implements clickdraw.Device.
func (r *Recorder) Size() (width, height int) {
	if r.target != nil {
		return r.target.Size()
	}
	return r.width, r.height
}

// Resize implements clickdraw.Resizer.
func (r *Recorder) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("recording: invalid dimensions: width=%d, height=%d", width, height)
	}
	if rs, ok := r.target.(clickdraw.Resizer); ok {
		if err := rs.Resize(width, height); err != nil {
			return err
		}
	}
	r.width, r.height = width, height
	return nil
}

// Clear implements clickdraw.Device. It starts a new frame.
func (r *Recorder) Clear(c clickdraw.Color) {
	if len(r.frames) == r.maxFrames {
		copy(r.frames, r.frames[1:])
		r.frames = r.frames[:len(r.frames)-1]
	}
	r.frames = append(r.frames, nil)
	r.record(Command{Type: CmdClear, Color: c})
	if r.target != nil {
		r.target.Clear(c)
	}
}

// Upload implements clickdraw.Device.
func (r *Recorder) Upload(vertices []float32) (clickdraw.Buffer, error) {
	if len(vertices)%2 != 0 {
		return nil, fmt.Errorf("recording: odd coordinate count %d", len(vertices))
	}
	data := make([]float32, len(vertices))
	copy(data, vertices)

	b := &buffer{owner: r, id: r.nextID, data: data}
	if r.target != nil {
		tb, err := r.target.Upload(vertices)
		if err != nil {
			return nil, err
		}
		b.target = tb
	}
	r.nextID++
	r.live++
	r.record(Command{Type: CmdUpload, Buffer: b.id, Vertices: data})
	return b, nil
}

// Bind implements clickdraw.Device.
func (r *Recorder) Bind(buf clickdraw.Buffer) error {
	b, ok := buf.(*buffer)
	if !ok || b == nil || b.owner != r {
		return clickdraw.ErrForeignBuffer
	}
	if r.target != nil && b.target != nil {
		if err := r.target.Bind(b.target); err != nil {
			return err
		}
	}
	r.bound = b
	r.record(Command{Type: CmdBind, Buffer: b.id})
	return nil
}

// SetUniforms implements clickdraw.Device.
func (r *Recorder) SetUniforms(u clickdraw.Uniforms) {
	r.uniforms = u
	r.record(Command{Type: CmdSetUniforms, Uniforms: u})
	if r.target != nil {
		r.target.SetUniforms(u)
	}
}

// Draw implements clickdraw.Device.
func (r *Recorder) Draw(p clickdraw.Primitive, first, count int) error {
	if r.bound == nil || r.bound.released {
		return clickdraw.ErrNoBuffer
	}
	if first < 0 || count < 0 || first+count > r.bound.Len() {
		return fmt.Errorf("%w: [%d, %d) of %d", clickdraw.ErrBufferOverrun, first, first+count, r.bound.Len())
	}
	if r.target != nil {
		if err := r.target.Draw(p, first, count); err != nil {
			return err
		}
	}

	drawn := make([]float32, 2*count)
	copy(drawn, r.bound.data[2*first:2*(first+count)])
	r.record(Command{
		Type:      CmdDraw,
		Buffer:    r.bound.id,
		Vertices:  drawn,
		Uniforms:  r.uniforms,
		Primitive: p,
		First:     first,
		Count:     count,
	})
	return nil
}

func (r *Recorder) record(c Command) {
	if len(r.frames) == 0 {
		r.frames = append(r.frames, nil)
	}
	last := len(r.frames) - 1
	r.frames[last] = append(r.frames[last], c)
}

// Frames returns the number of retained frames.
func (r *Recorder) Frames() int {
	return len(r.frames)
}

// Frame returns the commands of the i-th retained frame, oldest first.
func (r *Recorder) Frame(i int) []Command {
	if i < 0 || i >= len(r.frames) {
		return nil
	}
	return r.frames[i]
}

// LastFrame returns the commands of the most recent frame.
func (r *Recorder) LastFrame() []Command {
	return r.Frame(len(r.frames) - 1)
}

// Draws returns the draw commands of the most recent frame.
func (r *Recorder) Draws() []Command {
	var draws []Command
	for _, c := range r.LastFrame() {
		if c.Type == CmdDraw {
			draws = append(draws, c)
		}
	}
	return draws
}

// LiveBuffers returns the number of uploaded buffers not yet released.
func (r *Recorder) LiveBuffers() int {
	return r.live
}

// Reset drops every recorded frame. Buffers stay valid.
func (r *Recorder) Reset() {
	r.frames = nil
}

// Playback replays the most recent frame onto dst. Each draw is replayed
// from the coordinates it actually drew, so buffers uploaded in earlier
// frames are not needed.
func (r *Recorder) Playback(dst clickdraw.Device) error {
	for i, c := range r.LastFrame() {
		switch c.Type {
		case CmdClear:
			dst.Clear(c.Color)
		case CmdDraw:
			if err := replayDraw(dst, c); err != nil {
				return fmt.Errorf("recording: playback command %d: %w", i, err)
			}
		}
	}
	return nil
}

func replayDraw(dst clickdraw.Device, c Command) error {
	buf, err := dst.Upload(c.Vertices)
	if err != nil {
		return err
	}
	defer buf.Release()

	if err := dst.Bind(buf); err != nil {
		return err
	}
	dst.SetUniforms(c.Uniforms)
	return dst.Draw(c.Primitive, 0, c.Count)
}
