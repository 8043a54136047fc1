// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clickdraw

// Option configures an App during creation.
//
// Example:
//
//	app, err := clickdraw.NewApp(dev, tracker, clickdraw.WithConfig(cfg))
type Option func(*appOptions)

// appOptions holds optional configuration for App creation.
type appOptions struct {
	config Config
	scene  *Scene
}

// defaultOptions returns the default app options.
func defaultOptions() appOptions {
	return appOptions{
		config: DefaultConfig(),
		scene:  nil, // Created if nil
	}
}

// WithConfig sets the configuration. It is validated by NewApp.
func WithConfig(cfg Config) Option {
	return func(o *appOptions) {
		o.config = cfg
	}
}

// WithScene makes the app draw into an existing scene.
func WithScene(s *Scene) Option {
	return func(o *appOptions) {
		o.scene = s
	}
}
