// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clickdraw

import (
	"errors"
	"testing"
)

func TestRenderOneDrawPerShape(t *testing.T) {
	s := NewScene()
	s.Add(mustShape(t, KindPoint, 10, 10))
	sq, _ := NewShape(KindSquare, Pt(100, 100), MustParseHex("#FFBF00"), StyleOutline)
	s.Add(sq)
	s.Add(mustShape(t, KindHLine, 50, 50))

	dev := newFakeDevice(800, 600)
	st, err := NewRenderer(Color{}, 0).Render(dev, s)
	if err != nil {
		t.Fatal(err)
	}
	if st != (Stats{Shapes: 3, Uploads: 3, Draws: 3}) {
		t.Errorf("Stats = %+v", st)
	}

	want := []struct {
		prim  Primitive
		count int
	}{
		{PrimitivePoints, 1},
		{PrimitiveLineLoop, 5},
		{PrimitiveLineLoop, 2},
	}
	if len(dev.draws) != len(want) {
		t.Fatalf("draws = %d, want %d", len(dev.draws), len(want))
	}
	for i, w := range want {
		d := dev.draws[i]
		if d.prim != w.prim || d.first != 0 || d.count != w.count {
			t.Errorf("draw %d = (%v, %d, %d), want (%v, 0, %d)", i, d.prim, d.first, d.count, w.prim, w.count)
		}
	}
	if dev.draws[1].uniforms.Color != sq.Color().Float32() {
		t.Errorf("draw 1 color = %v", dev.draws[1].uniforms.Color)
	}
}

func TestRenderUniforms(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		scale      float64
		wantPoint  float32
		wantResolv [2]float32
	}{
		{"default scale", 800, 600, 0, 6, [2]float32{800, 600}},
		{"tall canvas", 300, 1000, 0, 10, [2]float32{300, 1000}},
		{"custom scale", 800, 600, 50, 12, [2]float32{800, 600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene()
			s.Add(mustShape(t, KindPoint, 1, 1))
			dev := newFakeDevice(tt.w, tt.h)
			if _, err := NewRenderer(Color{}, tt.scale).Render(dev, s); err != nil {
				t.Fatal(err)
			}
			u := dev.draws[0].uniforms
			if u.PointSize != tt.wantPoint {
				t.Errorf("PointSize = %v, want %v", u.PointSize, tt.wantPoint)
			}
			if u.Resolution != tt.wantResolv {
				t.Errorf("Resolution = %v, want %v", u.Resolution, tt.wantResolv)
			}
		})
	}
}

func TestRenderEmptySceneOnlyClears(t *testing.T) {
	dev := newFakeDevice(800, 600)
	st, err := NewRenderer(Color{}, 0).Render(dev, NewScene())
	if err != nil {
		t.Fatal(err)
	}
	if dev.clears != 1 || len(dev.draws) != 0 || st.Draws != 0 {
		t.Errorf("clears = %d, draws = %d", dev.clears, len(dev.draws))
	}
}

func TestRenderUploadsOnlyUnbuiltShapes(t *testing.T) {
	s := NewScene()
	s.Add(mustShape(t, KindTriangle, 100, 100))
	s.Add(mustShape(t, KindSquare, 200, 200))
	dev := newFakeDevice(800, 600)
	r := NewRenderer(Color{}, 0)

	if _, err := r.Render(dev, s); err != nil {
		t.Fatal(err)
	}
	st, err := r.Render(dev, s)
	if err != nil {
		t.Fatal(err)
	}
	if st.Uploads != 0 || st.Draws != 2 {
		t.Errorf("second frame Stats = %+v, want no uploads and 2 draws", st)
	}
	if dev.uploads != 2 {
		t.Errorf("device uploads = %d, want 2", dev.uploads)
	}

	s.Add(mustShape(t, KindVLine, 300, 300))
	st, _ = r.Render(dev, s)
	if st.Uploads != 1 || st.Draws != 3 {
		t.Errorf("third frame Stats = %+v, want 1 upload and 3 draws", st)
	}
}

func TestRenderRebuildsAfterResize(t *testing.T) {
	s := NewScene()
	s.Add(mustShape(t, KindPoint, 400, 300))
	dev := newFakeDevice(800, 600)
	r := NewRenderer(Color{}, 0)
	if _, err := r.Render(dev, s); err != nil {
		t.Fatal(err)
	}

	_ = dev.Resize(1000, 500)
	s.Invalidate()
	st, err := r.Render(dev, s)
	if err != nil {
		t.Fatal(err)
	}
	if st.Uploads != 1 {
		t.Errorf("Uploads = %d, want 1", st.Uploads)
	}
	if got := vertexAt(dev.draws[0].vertices, 0); got != Pt(500, 250) {
		t.Errorf("point after resize = %v, want (500, 250)", got)
	}
	if dev.live != 1 {
		t.Errorf("live buffers = %d, want 1", dev.live)
	}
}

func TestRenderZeroSizeCanvas(t *testing.T) {
	s := NewScene()
	s.Add(mustShape(t, KindPoint, 10, 10))
	dev := newFakeDevice(800, 0)

	st, err := NewRenderer(Color{}, 0).Render(dev, s)
	if err != nil {
		t.Fatal(err)
	}
	if dev.clears != 1 || st.Draws != 0 {
		t.Errorf("clears = %d, Stats = %+v", dev.clears, st)
	}
	if s.Shapes()[0].Built() {
		t.Error("shape built against a zero-height canvas")
	}
}

func TestRenderNilScene(t *testing.T) {
	dev := newFakeDevice(100, 100)
	st, err := NewRenderer(Color{}, 0).Render(dev, nil)
	if err != nil {
		t.Fatal(err)
	}
	if dev.clears != 1 || st != (Stats{}) || len(dev.draws) != 0 {
		t.Errorf("clears = %d, Stats = %+v", dev.clears, st)
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := NewRenderer(Color{}, 0).Render(nil, NewScene()); !errors.Is(err, ErrNoDevice) {
		t.Errorf("nil device: error = %v, want ErrNoDevice", err)
	}

	boom := errors.New("out of memory")
	s := NewScene()
	s.Add(mustShape(t, KindPoint, 10, 10))
	dev := newFakeDevice(100, 100)
	dev.uploadErr = boom
	st, err := NewRenderer(Color{}, 0).Render(dev, s)
	if !errors.Is(err, boom) {
		t.Errorf("upload failure: error = %v", err)
	}
	if st.Draws != 0 {
		t.Errorf("Draws = %d after failed upload", st.Draws)
	}
}
