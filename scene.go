// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clickdraw

// Scene is the ordered collection of active shapes.
// Insertion order is draw order.
//
// Scene is NOT safe for concurrent use; it is owned by the frame loop.
type Scene struct {
	shapes []*Shape
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends a shape. Nil shapes are ignored.
func (s *Scene) Add(shape *Shape) {
	if shape == nil {
		return
	}
	s.shapes = append(s.shapes, shape)
}

// Clear removes every shape and releases their device buffers.
func (s *Scene) Clear() {
	for _, sh := range s.shapes {
		sh.releaseBuffer()
	}
	s.shapes = nil
}

// Len returns the number of shapes.
func (s *Scene) Len() int {
	return len(s.shapes)
}

// Shapes returns the shapes in draw order.
// The slice is owned by the scene and must not be modified.
func (s *Scene) Shapes() []*Shape {
	return s.shapes
}

// Invalidate marks every shape unbuilt, typically after a canvas resize.
func (s *Scene) Invalidate() {
	for _, sh := range s.shapes {
		sh.Invalidate()
	}
}
