// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package recording provides a clickdraw device that records draw
// commands.
//
// The recorder captures every device call of a frame as a typed Command.
// Frames start at each Clear. Recorded frames can be inspected, which is
// how tests check render emission, or played back to another device.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//	app, _ := clickdraw.NewApp(rec, tracker)
//	_ = app.Step()
//
//	for _, cmd := range rec.Draws() {
//	    fmt.Println(cmd.Primitive, cmd.Count)
//	}
//
// # Forwarding and Playback
//
// WithTarget forwards every call to another device while recording, and
// Playback replays the most recent frame onto any device:
//
//	dst := raster.New(800, 600)
//	_ = rec.Playback(dst)
//	_ = dst.SavePNG("frame.png")
//
// The recorder registers itself with the backend registry as "record".
package recording
