// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clickdraw

import (
	"errors"
	"fmt"
)

// ActionType identifies what a key binding does.
type ActionType uint8

const (
	ActionSelectKind  ActionType = iota // Change the shape placed by clicks
	ActionSelectColor                   // Change the color of new shapes
	ActionSelectStyle                   // Switch between filled and outline
	ActionClear                         // Remove every shape from the scene
)

// NamedColor is a palette entry.
type NamedColor struct {
	Name  string
	Color Color
}

// Action is the effect of a key binding. Only the field matching Type is
// used.
type Action struct {
	Type  ActionType
	Kind  Kind
	Style Style
	Color NamedColor
}

// String describes the action for logs.
func (a Action) String() string {
	switch a.Type {
	case ActionSelectKind:
		return "kind=" + a.Kind.String()
	case ActionSelectColor:
		return "color=" + a.Color.Name
	case ActionSelectStyle:
		return "style=" + a.Style.String()
	case ActionClear:
		return "clear"
	default:
		return fmt.Sprintf("Action(%d)", a.Type)
	}
}

// Binding maps a key to an action.
type Binding struct {
	Key    Key
	Action Action
}

// State is the interactive drawing state: what the next click places, in
// which color and style. It interprets input once per frame.
type State struct {
	kind     Kind
	style    Style
	color    NamedColor
	bindings []Binding
}

// NewState creates a state that places filled points in the given color.
// Bindings are checked in order and the first pressed key wins.
func NewState(initial NamedColor, bindings []Binding) *State {
	return &State{
		kind:     KindPoint,
		style:    StyleFilled,
		color:    initial,
		bindings: bindings,
	}
}

// Kind returns the kind placed by the next click.
func (s *State) Kind() Kind { return s.kind }

// Style returns the style used for new triangles and squares.
func (s *State) Style() Style { return s.style }

// Color returns the color used for new shapes.
func (s *State) Color() NamedColor { return s.color }

// Bindings returns the key bindings in priority order.
func (s *State) Bindings() []Binding { return s.bindings }

// Update applies at most one key binding and, on a left click inside the
// canvas, adds a shape to the scene. A click outside the canvas is
// discarded.
func (s *State) Update(in Input, scene *Scene) {
	for _, b := range s.bindings {
		if in.KeyPressed(b.Key) {
			s.apply(b.Action, scene)
			break
		}
	}

	if !in.MouseClicked(MouseLeft) {
		return
	}
	x, y := in.MousePosition()
	sh, err := NewShape(s.kind, Pt(x, y), s.color.Color, s.style)
	if err != nil {
		if errors.Is(err, ErrOutOfBounds) {
			Logger().Debug("clickdraw: click out of bounds")
			return
		}
		Logger().Warn("clickdraw: shape not created", "err", err)
		return
	}
	scene.Add(sh)
	Logger().Debug("clickdraw: shape added",
		"kind", sh.Kind(), "style", sh.Style(), "color", s.color.Name, "x", x, "y", y)
}

func (s *State) apply(a Action, scene *Scene) {
	switch a.Type {
	case ActionSelectKind:
		if s.kind == a.Kind {
			return
		}
		s.kind = a.Kind
	case ActionSelectColor:
		if s.color == a.Color {
			return
		}
		s.color = a.Color
	case ActionSelectStyle:
		if s.style == a.Style {
			return
		}
		s.style = a.Style
	case ActionClear:
		if scene.Len() == 0 {
			return
		}
		scene.Clear()
		Logger().Info("clickdraw: scene cleared")
		return
	default:
		return
	}
	Logger().Info("clickdraw: selection changed", "action", a.String())
}
