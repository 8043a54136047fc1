// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shinyhost

import (
	"context"
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/gogpu/clickdraw"
	"github.com/gogpu/clickdraw/backend/raster"
)

// Run opens a window and runs the drawing app until the window is closed
// or Escape is pressed. Options are passed to clickdraw.NewApp after the
// configuration.
func Run(cfg clickdraw.Config, opts ...clickdraw.Option) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var runErr error
	driver.Main(func(s screen.Screen) {
		runErr = run(s, cfg, opts)
	})
	return runErr
}

func run(s screen.Screen, cfg clickdraw.Config, opts []clickdraw.Option) error {
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  cfg.Width,
		Height: cfg.Height,
		Title:  cfg.Title,
	})
	if err != nil {
		return fmt.Errorf("shinyhost: %w: %w", clickdraw.ErrNoDevice, err)
	}
	defer w.Release()

	dev := raster.New(cfg.Width, cfg.Height)
	defer func() { _ = dev.Close() }()

	tracker := clickdraw.NewTracker(cfg.Width, cfg.Height)
	app, err := clickdraw.NewApp(dev, tracker, append([]clickdraw.Option{clickdraw.WithConfig(cfg)}, opts...)...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runClock(ctx, w, cfg.FrameRate)

	log := clickdraw.Logger()
	log.Info("shinyhost: window opened", "width", cfg.Width, "height", cfg.Height, "fps", cfg.FrameRate)

	// A size event follows window creation and triggers the first resize.
	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}

		case key.Event:
			if e.Code == key.CodeEscape {
				return nil
			}
			handleKey(tracker, e)

		case mouse.Event:
			handleMouse(tracker, e)

		case size.Event:
			if e.WidthPx <= 0 || e.HeightPx <= 0 {
				log.Debug("shinyhost: ignoring empty size", "width", e.WidthPx, "height", e.HeightPx)
				continue
			}
			if err := app.Resize(e.WidthPx, e.HeightPx); err != nil {
				return err
			}

		case paint.Event:
			if err := app.Step(); err != nil {
				log.Warn("shinyhost: frame failed", "err", err)
				continue
			}
			status := statusLine(app.State(), app.Scene().Len())
			if err := publish(s, w, dev.Image(), status); err != nil {
				log.Warn("shinyhost: publish failed", "err", err)
			}

		case error:
			log.Warn("shinyhost: window error", "err", e)
		}
	}
}

// publish copies the canvas into a window buffer, draws the status line
// over it and presents it.
func publish(s screen.Screen, w screen.Window, img image.Image, status string) error {
	b, err := s.NewBuffer(img.Bounds().Size())
	if err != nil {
		return err
	}
	defer b.Release()

	dst := b.RGBA()
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	drawStatus(dst, status)

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
	return nil
}
