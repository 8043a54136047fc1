// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clickdraw

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned when parsing shape selectors.
var (
	ErrUnknownKind  = errors.New("clickdraw: unknown shape kind")
	ErrUnknownStyle = errors.New("clickdraw: unknown draw style")
)

// Kind identifies one of the drawable shape variants.
type Kind uint8

const (
	KindPoint    Kind = iota // Single point at the click position
	KindTriangle             // Equilateral triangle around the click position
	KindSquare               // Axis-aligned square around the click position
	KindHLine                // Horizontal line starting at the click position
	KindVLine                // Vertical line starting at the click position

	numKinds
)

var kindNames = [...]string{
	KindPoint:    "point",
	KindTriangle: "triangle",
	KindSquare:   "square",
	KindHLine:    "hline",
	KindVLine:    "vline",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k < numKinds
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Style selects between filled and outlined rendering.
// Only triangles and squares honor it.
type Style uint8

const (
	StyleFilled Style = iota
	StyleOutline

	numStyles
)

var styleNames = [...]string{
	StyleFilled:  "filled",
	StyleOutline: "outline",
}

// String returns the lower-case name of the style.
func (s Style) String() string {
	if s < numStyles {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", s)
}

// Valid reports whether s is one of the defined styles.
func (s Style) Valid() bool {
	return s < numStyles
}

// ParseStyle returns the style with the given name.
func ParseStyle(name string) (Style, error) {
	for s, n := range styleNames {
		if n == name {
			return Style(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// Primitive is the draw mode used for a single draw call.
type Primitive uint8

const (
	PrimitivePoints        Primitive = iota // One point per vertex
	PrimitiveTriangleStrip                  // Each vertex after the second adds a triangle
	PrimitiveTriangles                      // Independent triangles, three vertices each
	PrimitiveLineLoop                       // Connected segments, last vertex joined to first
)

var primitiveNames = [...]string{
	PrimitivePoints:        "points",
	PrimitiveTriangleStrip: "triangle strip",
	PrimitiveTriangles:     "triangles",
	PrimitiveLineLoop:      "line loop",
}

// String returns a human-readable name of the primitive.
func (p Primitive) String() string {
	if int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return fmt.Sprintf("Primitive(%d)", p)
}

// Shape template dimensions, in units of canvas height.
const (
	triangleHalfSide = 1.0 / 16
	squareHalfSide   = 0.05
	lineLength       = 0.25
)

// triangleHalfHeight is half the height of an equilateral triangle with
// side 2*triangleHalfSide.
var triangleHalfHeight = math.Sqrt(3) / 32

// template is the normalized geometry of one kind/style combination.
type template struct {
	offsets   []Point
	primitive Primitive
}

// templates is the dispatch table from kind and style to geometry.
// Kinds that ignore style carry the same template in both slots.
var templates [numKinds][numStyles]template

func init() {
	var (
		triBL = Pt(-triangleHalfSide, triangleHalfHeight)
		triT  = Pt(0, -triangleHalfHeight)
		triBR = Pt(triangleHalfSide, triangleHalfHeight)

		sqBL = Pt(-squareHalfSide, squareHalfSide)
		sqTL = Pt(-squareHalfSide, -squareHalfSide)
		sqTR = Pt(squareHalfSide, -squareHalfSide)
		sqBR = Pt(squareHalfSide, squareHalfSide)
	)

	point := template{offsets: []Point{{}}, primitive: PrimitivePoints}
	hline := template{offsets: []Point{{}, Pt(lineLength, 0)}, primitive: PrimitiveLineLoop}
	vline := template{offsets: []Point{{}, Pt(0, lineLength)}, primitive: PrimitiveLineLoop}

	templates[KindPoint] = [numStyles]template{point, point}
	templates[KindHLine] = [numStyles]template{hline, hline}
	templates[KindVLine] = [numStyles]template{vline, vline}

	templates[KindTriangle][StyleFilled] = template{
		offsets:   []Point{triBL, triT, triBR},
		primitive: PrimitiveTriangles,
	}
	templates[KindTriangle][StyleOutline] = template{
		offsets:   []Point{triBL, triT, triBR, triBL},
		primitive: PrimitiveLineLoop,
	}

	// Strip order keeps the two triangles from crossing over each other.
	templates[KindSquare][StyleFilled] = template{
		offsets:   []Point{sqBL, sqTL, sqBR, sqTR},
		primitive: PrimitiveTriangleStrip,
	}
	// Perimeter order, closed explicitly.
	templates[KindSquare][StyleOutline] = template{
		offsets:   []Point{sqBL, sqTL, sqTR, sqBR, sqBL},
		primitive: PrimitiveLineLoop,
	}
}

// Geometry returns the normalized offsets and primitive for a kind and
// style. The returned slice is a copy and may be modified by the caller.
func Geometry(kind Kind, style Style) ([]Point, Primitive, error) {
	if !kind.Valid() {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	if !style.Valid() {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownStyle, style)
	}
	t := templates[kind][style]
	offsets := make([]Point, len(t.offsets))
	copy(offsets, t.offsets)
	return offsets, t.primitive, nil
}
