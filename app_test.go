// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clickdraw

import (
	"errors"
	"testing"
)

func TestNewAppErrors(t *testing.T) {
	if _, err := NewApp(nil, &fakeInput{}); !errors.Is(err, ErrNoDevice) {
		t.Errorf("nil device: error = %v, want ErrNoDevice", err)
	}
	if _, err := NewApp(newFakeDevice(1, 1), nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("nil input: error = %v, want ErrInvalidConfig", err)
	}
	cfg := DefaultConfig()
	cfg.Colors = nil
	if _, err := NewApp(newFakeDevice(1, 1), &fakeInput{}, WithConfig(cfg)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("bad config: error = %v, want ErrInvalidConfig", err)
	}
}

func TestAppStep(t *testing.T) {
	dev := newFakeDevice(800, 600)
	in := &fakeInput{}
	app, err := NewApp(dev, in)
	if err != nil {
		t.Fatal(err)
	}

	in.press('g')
	in.click(400, 300)
	if err := app.Step(); err != nil {
		t.Fatal(err)
	}
	if in.ended != 1 || in.clicked {
		t.Errorf("EndFrame not called: ended = %d", in.ended)
	}
	if app.LastStats().Draws != 1 || len(dev.draws) != 1 {
		t.Fatalf("draws = %d", len(dev.draws))
	}
	gold := MustParseHex("#FFBF00").Float32()
	if dev.draws[0].uniforms.Color != gold {
		t.Errorf("color = %v, want gold", dev.draws[0].uniforms.Color)
	}

	// Nothing new on an idle frame; the shape is still drawn.
	in.press()
	if err := app.Step(); err != nil {
		t.Fatal(err)
	}
	if app.Scene().Len() != 1 || app.LastStats().Draws != 1 || app.LastStats().Uploads != 0 {
		t.Errorf("idle frame Stats = %+v", app.LastStats())
	}
}

func TestAppResize(t *testing.T) {
	dev := newFakeDevice(800, 600)
	tr := NewTracker(800, 600)
	app, err := NewApp(dev, tr)
	if err != nil {
		t.Fatal(err)
	}

	tr.MouseMove(400, 300)
	tr.MouseDown(MouseLeft)
	if err := app.Step(); err != nil {
		t.Fatal(err)
	}

	if err := app.Resize(1000, 500); err != nil {
		t.Fatal(err)
	}
	if w, h := dev.Size(); w != 1000 || h != 500 {
		t.Errorf("device size = %dx%d", w, h)
	}
	if err := app.Step(); err != nil {
		t.Fatal(err)
	}
	if got := vertexAt(dev.draws[0].vertices, 0); got != Pt(500, 250) {
		t.Errorf("point after resize = %v, want (500, 250)", got)
	}

	// The tracker now rejects positions beyond the old bounds.
	tr.MouseMove(900, 100)
	if x, _ := tr.MousePosition(); x != 900 {
		t.Errorf("x = %v, want 900", x)
	}

	if err := app.Resize(-1, 10); err == nil {
		t.Error("Resize(-1, 10) returned nil error")
	}
}

func TestAppStepRenderError(t *testing.T) {
	dev := newFakeDevice(100, 100)
	in := &fakeInput{}
	app, _ := NewApp(dev, in)
	dev.uploadErr = errors.New("lost device")

	in.click(10, 10)
	if err := app.Step(); err == nil {
		t.Error("Step() returned nil error")
	}
	if app.Scene().Len() != 1 {
		t.Error("shape not kept after render failure")
	}
}
