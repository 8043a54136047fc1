// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shinyhost

import (
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/gogpu/clickdraw"
)

// translateKey maps a key event to a clickdraw key. Letter keys are
// resolved by code so releases match presses regardless of modifiers.
func translateKey(e key.Event) (clickdraw.Key, bool) {
	if e.Code >= key.CodeA && e.Code <= key.CodeZ {
		return clickdraw.Key('a' + rune(e.Code-key.CodeA)), true
	}
	if e.Rune > 0 {
		return clickdraw.Key(e.Rune), true
	}
	return 0, false
}

func handleKey(t *clickdraw.Tracker, e key.Event) {
	k, ok := translateKey(e)
	if !ok {
		return
	}
	switch e.Direction {
	case key.DirRelease:
		t.KeyUp(k)
	default:
		// DirPress and DirNone (auto-repeat) both mean held.
		t.KeyDown(k)
	}
}

func translateButton(b mouse.Button) (clickdraw.MouseButton, bool) {
	switch b {
	case mouse.ButtonLeft:
		return clickdraw.MouseLeft, true
	case mouse.ButtonMiddle:
		return clickdraw.MouseMiddle, true
	case mouse.ButtonRight:
		return clickdraw.MouseRight, true
	default:
		return 0, false
	}
}

func handleMouse(t *clickdraw.Tracker, e mouse.Event) {
	t.MouseMove(float64(e.X), float64(e.Y))
	if e.Direction != mouse.DirPress {
		return
	}
	if b, ok := translateButton(e.Button); ok {
		t.MouseDown(b)
	}
}
