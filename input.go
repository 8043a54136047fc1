// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clickdraw

import (
	"math"
	"unicode"
)

// Key identifies a keyboard key by the lower-case character it produces.
type Key rune

// String returns the key character.
func (k Key) String() string {
	return string(rune(k))
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight

	numMouseButtons
)

// Input is the per-frame input state consulted by the app state.
type Input interface {
	// KeyPressed reports whether k is currently held down.
	KeyPressed(k Key) bool

	// MouseClicked reports whether b was pressed since the last frame.
	MouseClicked(b MouseButton) bool

	// MousePosition returns the pointer position in canvas pixels. Either
	// coordinate is infinite when the pointer is outside the canvas.
	MousePosition() (x, y float64)
}

// frameEnder is implemented by inputs that keep edge-triggered state.
type frameEnder interface {
	EndFrame()
}

// Tracker is an Input fed by window events.
//
// Keys are level-triggered: a key reads as pressed from KeyDown until
// KeyUp. Mouse clicks are edge-triggered: a press reads as clicked until
// the next EndFrame.
//
// Tracker is NOT safe for concurrent use. Feed it from the same goroutine
// that runs the frame step.
type Tracker struct {
	keys    map[Key]bool
	clicked [numMouseButtons]bool
	x, y    float64
	width   float64
	height  float64
}

// NewTracker creates a tracker for a canvas of the given size.
// The pointer starts outside the canvas.
func NewTracker(width, height int) *Tracker {
	t := &Tracker{keys: make(map[Key]bool)}
	t.SetBounds(width, height)
	t.Leave()
	return t
}

// SetBounds updates the canvas size used for out-of-bounds detection.
func (t *Tracker) SetBounds(width, height int) {
	t.width, t.height = float64(width), float64(height)
	if !t.inside(t.x, t.y) {
		t.Leave()
	}
}

// KeyDown records a key press. Letters are folded to lower case.
func (t *Tracker) KeyDown(k Key) {
	t.keys[foldKey(k)] = true
}

// KeyUp records a key release.
func (t *Tracker) KeyUp(k Key) {
	delete(t.keys, foldKey(k))
}

// MouseMove records the pointer position. Positions outside the canvas are
// stored as infinite coordinates.
func (t *Tracker) MouseMove(x, y float64) {
	if !t.inside(x, y) {
		t.Leave()
		return
	}
	t.x, t.y = x, y
}

// MouseDown records a button press at the current pointer position.
func (t *Tracker) MouseDown(b MouseButton) {
	if b < numMouseButtons {
		t.clicked[b] = true
	}
}

// Leave marks the pointer as outside the canvas.
func (t *Tracker) Leave() {
	t.x, t.y = math.Inf(1), math.Inf(1)
}

// KeyPressed implements Input.
func (t *Tracker) KeyPressed(k Key) bool {
	return t.keys[foldKey(k)]
}

// MouseClicked implements Input.
func (t *Tracker) MouseClicked(b MouseButton) bool {
	return b < numMouseButtons && t.clicked[b]
}

// MousePosition implements Input.
func (t *Tracker) MousePosition() (x, y float64) {
	return t.x, t.y
}

// EndFrame clears clicks recorded during the frame.
func (t *Tracker) EndFrame() {
	t.clicked = [numMouseButtons]bool{}
}

func (t *Tracker) inside(x, y float64) bool {
	return x >= 0 && y >= 0 && x < t.width && y < t.height
}

func foldKey(k Key) Key {
	return Key(unicode.ToLower(rune(k)))
}
