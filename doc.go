// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package clickdraw implements a click-to-place shape editor.
//
// # Overview
//
// Each click on the canvas adds a point, triangle, square, horizontal line
// or vertical line to a Scene. Keyboard shortcuts select the shape, the
// color and the fill/outline style, and clear the scene. Every frame the
// scene is drawn to a Device with one draw call per shape.
//
// # Quick Start
//
//	dev := raster.New(800, 600)
//	tracker := clickdraw.NewTracker(800, 600)
//	app, err := clickdraw.NewApp(dev, tracker)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tracker.MouseMove(400, 300)
//	tracker.MouseDown(clickdraw.MouseLeft)
//	_ = app.Step()
//	_ = dev.SavePNG("out.png")
//
// # Placement
//
// Shapes are described by offsets from the click position, measured in
// units of canvas height. On the first build the click position is turned
// into a ratio of the canvas size; later builds place the shape at that
// ratio of the current size. A resize therefore keeps every shape at the
// same relative position while its size follows the canvas height.
//
// # Coordinate System
//
// Device coordinates are pixels:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Hosts
//
// The window host lives in integration/shinyhost, device implementations in
// backend/raster and recording.
package clickdraw
