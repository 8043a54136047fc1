// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shinyhost runs a clickdraw App in a desktop window.
//
// The host owns the window event loop. Key, mouse and size events are
// translated into a clickdraw.Tracker; paint events run one App.Step and
// publish the rendered canvas with a status line showing the active
// shape, color and style. A frame clock goroutine posts paint events at
// the configured frame rate:
//
//	window events -> Tracker -> App.Step -> raster.Device -> window buffer
//
// # Usage
//
//	cfg := clickdraw.DefaultConfig()
//	if err := shinyhost.Run(cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Escape or closing the window ends Run.
//
// # Thread Safety
//
// Everything except the frame clock runs on the event loop goroutine. The
// clock only sends events into the window's queue.
package shinyhost
