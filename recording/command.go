// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"fmt"

	"github.com/gogpu/clickdraw"
)

// CommandType identifies the type of a command.
// Each command type corresponds to a clickdraw.Device method.
type CommandType uint8

const (
	CmdClear       CommandType = iota // Start a frame
	CmdUpload                         // Create a vertex buffer
	CmdBind                           // Bind a vertex buffer
	CmdSetUniforms                    // Replace shader parameters
	CmdDraw                           // Issue a draw call
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClear:       "Clear",
	CmdUpload:      "Upload",
	CmdBind:        "Bind",
	CmdSetUniforms: "SetUniforms",
	CmdDraw:        "Draw",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return fmt.Sprintf("CommandType(%d)", c)
}

// BufferID identifies a buffer uploaded to a Recorder.
type BufferID int

// Command is one recorded device call. Only the fields relevant to Type
// are set.
type Command struct {
	Type CommandType

	// CmdClear
	Color clickdraw.Color

	// CmdUpload, CmdBind
	Buffer BufferID

	// CmdUpload: uploaded coordinates. CmdDraw: the coordinates actually
	// drawn, so a draw can be replayed without its upload.
	Vertices []float32

	// CmdSetUniforms, and the uniforms in effect for CmdDraw
	Uniforms clickdraw.Uniforms

	// CmdDraw
	Primitive clickdraw.Primitive
	First     int
	Count     int
}

// String returns a compact description of the command.
func (c Command) String() string {
	switch c.Type {
	case CmdClear:
		return fmt.Sprintf("Clear(%.3f, %.3f, %.3f)", c.Color.R, c.Color.G, c.Color.B)
	case CmdUpload:
		return fmt.Sprintf("Upload(#%d, %d vertices)", c.Buffer, len(c.Vertices)/2)
	case CmdBind:
		return fmt.Sprintf("Bind(#%d)", c.Buffer)
	case CmdSetUniforms:
		u := c.Uniforms
		return fmt.Sprintf("SetUniforms(color=%v, pointSize=%v, resolution=%v)", u.Color, u.PointSize, u.Resolution)
	case CmdDraw:
		return fmt.Sprintf("Draw(%s, %d, %d)", c.Primitive, c.First, c.Count)
	default:
		return c.Type.String()
	}
}
