// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shinyhost

import (
	"context"
	"time"

	"golang.org/x/mobile/event/paint"
)

// sender is the part of screen.Window the clock needs.
type sender interface {
	Send(event interface{})
}

// runClock posts a paint event every 1/fps seconds until ctx is done.
// Frames are never run concurrently: the event loop processes the paint
// events one at a time.
func runClock(ctx context.Context, s sender, fps int) {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Send(paint.Event{})
		}
	}
}
