// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clickdraw

import (
	"errors"
	"math"
	"testing"
)

var testBlue = MustParseHex("#022851")

func TestNewShapeRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name string
		at   Point
	}{
		{"x +inf", Pt(math.Inf(1), 10)},
		{"x -inf", Pt(math.Inf(-1), 10)},
		{"y +inf", Pt(10, math.Inf(1))},
		{"both inf", Pt(math.Inf(1), math.Inf(1))},
		{"nan", Pt(math.NaN(), 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, err := NewShape(KindPoint, tt.at, testBlue, StyleFilled)
			if !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("NewShape() error = %v, want ErrOutOfBounds", err)
			}
			if sh != nil {
				t.Error("NewShape() returned a shape for an out-of-bounds position")
			}
		})
	}
}

func TestNewShapeStartsUnbuilt(t *testing.T) {
	sh, err := NewShape(KindSquare, Pt(10, 20), testBlue, StyleOutline)
	if err != nil {
		t.Fatal(err)
	}
	if sh.Built() {
		t.Error("new shape reports Built")
	}
	if _, ok := sh.AnchorRatio(); ok {
		t.Error("new shape has an anchor ratio")
	}
	if sh.Vertices() != nil {
		t.Error("new shape has vertices")
	}
	if sh.Style() != StyleOutline || sh.Kind() != KindSquare || sh.Color() != testBlue {
		t.Errorf("shape = %v/%v/%v", sh.Kind(), sh.Style(), sh.Color())
	}
}

func TestNewShapeIgnoresStyleForStylelessKinds(t *testing.T) {
	for _, kind := range []Kind{KindPoint, KindHLine, KindVLine} {
		sh, err := NewShape(kind, Pt(1, 1), testBlue, StyleOutline)
		if err != nil {
			t.Fatal(err)
		}
		if sh.Style() != StyleFilled {
			t.Errorf("%v: Style() = %v, want filled", kind, sh.Style())
		}
	}
}

func TestShapeBuildCenterPointAfterResize(t *testing.T) {
	sh, err := NewShape(KindPoint, Pt(400, 300), testBlue, StyleFilled)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sh.Build(800, 600); err != nil {
		t.Fatal(err)
	}
	ratio, ok := sh.AnchorRatio()
	if !ok || ratio != Pt(0.5, 0.5) {
		t.Fatalf("AnchorRatio() = %v, %v; want (0.5, 0.5)", ratio, ok)
	}

	sh.Invalidate()
	v, err := sh.Build(1000, 500)
	if err != nil {
		t.Fatal(err)
	}
	if got := vertexAt(v, 0); got != Pt(500, 250) {
		t.Errorf("vertex after resize = %v, want (500, 250)", got)
	}
}

func TestShapeAnchorRatioSurvivesResizes(t *testing.T) {
	sizes := [][2]int{{800, 600}, {1024, 768}, {333, 1200}, {640, 480}, {1920, 200}}

	for _, kind := range []Kind{KindPoint, KindHLine, KindVLine} {
		sh, err := NewShape(kind, Pt(123, 456), testBlue, StyleFilled)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := sh.Build(sizes[0][0], sizes[0][1]); err != nil {
			t.Fatal(err)
		}
		ratio, _ := sh.AnchorRatio()

		for _, sz := range sizes[1:] {
			sh.Invalidate()
			v, err := sh.Build(sz[0], sz[1])
			if err != nil {
				t.Fatal(err)
			}
			// Styleless kinds start with the anchor offset.
			got := vertexAt(v, 0)
			want := ratio.Scale(Pt(float64(sz[0]), float64(sz[1])))
			if absDiff(got.X, want.X) > tolerance || absDiff(got.Y, want.Y) > tolerance {
				t.Errorf("%v at %v: anchor = %v, want %v", kind, sz, got, want)
			}
			if r, _ := sh.AnchorRatio(); r != ratio {
				t.Errorf("%v: ratio changed from %v to %v", kind, ratio, r)
			}
		}
	}
}

func TestShapeSizeFollowsHeight(t *testing.T) {
	sh, err := NewShape(KindHLine, Pt(100, 100), testBlue, StyleFilled)
	if err != nil {
		t.Fatal(err)
	}
	v, _ := sh.Build(800, 600)
	if got := vertexAt(v, 1).X - vertexAt(v, 0).X; absDiff(got, 150) > tolerance {
		t.Errorf("line length at h=600: %v, want 150", got)
	}

	sh.Invalidate()
	v, _ = sh.Build(2000, 400)
	if got := vertexAt(v, 1).X - vertexAt(v, 0).X; absDiff(got, 100) > tolerance {
		t.Errorf("line length at h=400: %v, want 100", got)
	}
}

func TestShapeBuildIsIdempotent(t *testing.T) {
	sh, err := NewShape(KindTriangle, Pt(100, 100), testBlue, StyleOutline)
	if err != nil {
		t.Fatal(err)
	}
	first, _ := sh.Build(800, 600)
	snapshot := append([]float32(nil), first...)

	again, _ := sh.Build(800, 600)
	sh.Invalidate()
	rebuilt, _ := sh.Build(800, 600)

	for i := range snapshot {
		if again[i] != snapshot[i] || rebuilt[i] != snapshot[i] {
			t.Fatalf("coordinate %d: %v / %v, want %v", i, again[i], rebuilt[i], snapshot[i])
		}
	}
}

func TestShapeBuildTriangleExample(t *testing.T) {
	tests := []struct {
		style     Style
		wantCount int
		wantPrim  Primitive
	}{
		{StyleFilled, 3, PrimitiveTriangles},
		{StyleOutline, 4, PrimitiveLineLoop},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			sh, err := NewShape(KindTriangle, Pt(100, 100), testBlue, tt.style)
			if err != nil {
				t.Fatal(err)
			}
			v, err := sh.Build(800, 600)
			if err != nil {
				t.Fatal(err)
			}
			if len(v)/2 != tt.wantCount || sh.VertexCount() != tt.wantCount {
				t.Errorf("vertices = %d (VertexCount %d), want %d", len(v)/2, sh.VertexCount(), tt.wantCount)
			}
			if sh.Primitive() != tt.wantPrim {
				t.Errorf("Primitive() = %v, want %v", sh.Primitive(), tt.wantPrim)
			}
			// Top vertex sits sqrt(3)/32 of the height above the click.
			top := vertexAt(v, 1)
			if absDiff(top.X, 100) > tolerance || absDiff(top.Y, 100-600*math.Sqrt(3)/32) > tolerance {
				t.Errorf("top vertex = %v", top)
			}
		})
	}
}

func TestShapeBuildEmptyCanvas(t *testing.T) {
	sh, err := NewShape(KindPoint, Pt(10, 10), testBlue, StyleFilled)
	if err != nil {
		t.Fatal(err)
	}
	for _, sz := range [][2]int{{0, 600}, {800, 0}, {0, 0}} {
		if _, err := sh.Build(sz[0], sz[1]); !errors.Is(err, ErrEmptyCanvas) {
			t.Errorf("Build(%v) error = %v, want ErrEmptyCanvas", sz, err)
		}
	}
	if sh.Built() {
		t.Error("shape built against an empty canvas")
	}
	if _, ok := sh.AnchorRatio(); ok {
		t.Error("anchor ratio fixed against an empty canvas")
	}

	if _, err := sh.Build(100, 100); err != nil {
		t.Fatal(err)
	}
	if r, _ := sh.AnchorRatio(); r != Pt(0.1, 0.1) {
		t.Errorf("AnchorRatio() = %v, want (0.1, 0.1)", r)
	}
}

func TestShapeInvalidateKeepsRatio(t *testing.T) {
	sh, _ := NewShape(KindSquare, Pt(200, 300), testBlue, StyleFilled)
	_, _ = sh.Build(400, 600)
	sh.Invalidate()

	if sh.Built() {
		t.Error("Built() = true after Invalidate")
	}
	if r, ok := sh.AnchorRatio(); !ok || r != Pt(0.5, 0.5) {
		t.Errorf("AnchorRatio() = %v, %v after Invalidate", r, ok)
	}
}
