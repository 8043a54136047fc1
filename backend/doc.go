// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package backend is a registry of clickdraw device implementations.
//
// # Backend Registration
//
// Backends register themselves from init() and are selected by name at
// runtime:
//
//	import _ "github.com/gogpu/clickdraw/backend/raster"
//	import _ "github.com/gogpu/clickdraw/recording"
//
//	dev, err := backend.Open("raster", 800, 600)
//
// Available lists the registered names, e.g. for a command-line flag.
package backend
