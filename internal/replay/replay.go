// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package replay drives a clickdraw App from a YAML script of input
// events, for headless rendering and tests.
//
// A script is a list of steps, each holding exactly one action:
//
//	steps:
//	  - key: t             # hold t for one frame
//	  - click: [100, 100]  # left click at a canvas position, one frame
//	  - move: [20, 30]     # move the pointer, no frame
//	  - leave: true        # pointer leaves the canvas, no frame
//	  - resize: [1000, 500]
//	  - frames: 3          # run idle frames
package replay

import (
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/clickdraw"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is returned for scripts that fail validation.
var ErrInvalidScript = errors.New("replay: invalid script")

// Step is a single scripted action.
type Step struct {
	Key    string    `yaml:"key,omitempty"`
	Click  []float64 `yaml:"click,omitempty"`
	Move   []float64 `yaml:"move,omitempty"`
	Leave  bool      `yaml:"leave,omitempty"`
	Resize []int     `yaml:"resize,omitempty"`
	Frames int       `yaml:"frames,omitempty"`
}

// Script is an ordered list of steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Result summarizes a replay.
type Result struct {
	Frames int // frames stepped
	Shapes int // shapes in the scene at the end
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every step holds exactly one well-formed action.
func (s *Script) Validate() error {
	for i, st := range s.Steps {
		n := 0
		if st.Key != "" {
			n++
			if len([]rune(st.Key)) != 1 {
				return fmt.Errorf("%w: step %d: key %q: want a single character", ErrInvalidScript, i, st.Key)
			}
		}
		if st.Click != nil {
			n++
			if len(st.Click) != 2 {
				return fmt.Errorf("%w: step %d: click wants [x, y]", ErrInvalidScript, i)
			}
		}
		if st.Move != nil {
			n++
			if len(st.Move) != 2 {
				return fmt.Errorf("%w: step %d: move wants [x, y]", ErrInvalidScript, i)
			}
		}
		if st.Leave {
			n++
		}
		if st.Resize != nil {
			n++
			if len(st.Resize) != 2 || st.Resize[0] <= 0 || st.Resize[1] <= 0 {
				return fmt.Errorf("%w: step %d: resize wants [width, height] > 0", ErrInvalidScript, i)
			}
		}
		if st.Frames != 0 {
			n++
			if st.Frames < 0 {
				return fmt.Errorf("%w: step %d: negative frames", ErrInvalidScript, i)
			}
		}
		if n != 1 {
			return fmt.Errorf("%w: step %d: want exactly one action, got %d", ErrInvalidScript, i, n)
		}
	}
	return nil
}

// Run applies the script to app, feeding input through t. t must be the
// Input the app was created with.
func Run(app *clickdraw.App, t *clickdraw.Tracker, s *Script) (Result, error) {
	var res Result
	step := func() error {
		res.Frames++
		return app.Step()
	}

	for i, st := range s.Steps {
		var err error
		switch {
		case st.Key != "":
			k := clickdraw.Key([]rune(st.Key)[0])
			t.KeyDown(k)
			err = step()
			t.KeyUp(k)
		case st.Click != nil:
			t.MouseMove(st.Click[0], st.Click[1])
			t.MouseDown(clickdraw.MouseLeft)
			err = step()
		case st.Move != nil:
			t.MouseMove(st.Move[0], st.Move[1])
		case st.Leave:
			t.Leave()
		case st.Resize != nil:
			if err = app.Resize(st.Resize[0], st.Resize[1]); err == nil {
				err = step()
			}
		case st.Frames > 0:
			for n := 0; n < st.Frames && err == nil; n++ {
				err = step()
			}
		}
		if err != nil {
			res.Shapes = app.Scene().Len()
			return res, fmt.Errorf("replay: step %d: %w", i, err)
		}
	}

	res.Shapes = app.Scene().Len()
	clickdraw.Logger().Info("replay: finished", "steps", len(s.Steps), "frames", res.Frames, "shapes", res.Shapes)
	return res, nil
}
