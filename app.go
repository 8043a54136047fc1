// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clickdraw

import "fmt"

// App runs the interactive drawing loop against a device and an input
// source. The host calls Step once per frame and Resize when the canvas
// changes size.
//
// App is NOT safe for concurrent use. Step and Resize must be called from
// the goroutine that owns the device.
type App struct {
	cfg      Config
	dev      Device
	in       Input
	scene    *Scene
	state    *State
	renderer *Renderer
	last     Stats
}

// NewApp creates an App. It fails with ErrNoDevice if dev is nil, and with
// ErrInvalidConfig if the configuration does not validate.
func NewApp(dev Device, in Input, opts ...Option) (*App, error) {
	if dev == nil {
		return nil, ErrNoDevice
	}
	if in == nil {
		return nil, fmt.Errorf("%w: nil input", ErrInvalidConfig)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	// Validate guarantees these succeed.
	bg, _ := o.config.BackgroundColor()
	palette, _ := o.config.Palette()
	bindings, _ := o.config.Bindings()

	scene := o.scene
	if scene == nil {
		scene = NewScene()
	}

	return &App{
		cfg:      o.config,
		dev:      dev,
		in:       in,
		scene:    scene,
		state:    NewState(palette[0], bindings),
		renderer: NewRenderer(bg, o.config.PointScale),
	}, nil
}

// Config returns the configuration the app was created with.
func (a *App) Config() Config { return a.cfg }

// Scene returns the scene drawn by the app.
func (a *App) Scene() *Scene { return a.scene }

// State returns the interactive state.
func (a *App) State() *State { return a.state }

// Device returns the rendering device.
func (a *App) Device() Device { return a.dev }

// LastStats returns the render statistics of the most recent Step.
func (a *App) LastStats() Stats { return a.last }

// Step runs one frame: interpret input, end the input frame, render.
func (a *App) Step() error {
	a.state.Update(a.in, a.scene)
	if fe, ok := a.in.(frameEnder); ok {
		fe.EndFrame()
	}

	st, err := a.renderer.Render(a.dev, a.scene)
	a.last = st
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// boundsSetter is implemented by inputs that detect out-of-canvas
// pointers.
type boundsSetter interface {
	SetBounds(width, height int)
}

// Resize resizes the device and the input bounds, where supported, and
// invalidates every shape so it is rebuilt for the new size on the next
// Step.
func (a *App) Resize(width, height int) error {
	if r, ok := a.dev.(Resizer); ok {
		if err := r.Resize(width, height); err != nil {
			return fmt.Errorf("resize: %w", err)
		}
	}
	if b, ok := a.in.(boundsSetter); ok {
		b.SetBounds(width, height)
	}
	a.scene.Invalidate()
	Logger().Debug("clickdraw: canvas resized", "width", width, "height", height, "shapes", a.scene.Len())
	return nil
}
