// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command clickdraw places shapes on a canvas with mouse clicks.
//
// Without -script it opens a window. Keys: p point, t triangle, s square,
// h horizontal line, v vertical line, b/g color, f filled, o outline,
// c clear, Escape quit.
//
// With -script it replays a YAML event script headlessly and optionally
// writes the final frame to a PNG file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/clickdraw"
	"github.com/gogpu/clickdraw/backend"
	"github.com/gogpu/clickdraw/backend/raster"
	"github.com/gogpu/clickdraw/integration/shinyhost"
	"github.com/gogpu/clickdraw/internal/replay"
	"github.com/gogpu/clickdraw/recording"
	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator (falls back to CPU)
)

func main() {
	var (
		configPath  = flag.String("config", "", "YAML configuration file")
		backendName = flag.String("backend", raster.Name, "device backend for -script ("+strings.Join(backend.Available(), ", ")+")")
		scriptPath  = flag.String("script", "", "replay a YAML event script instead of opening a window")
		output      = flag.String("output", "", "PNG file for the last replayed frame")
		trace       = flag.Bool("trace", false, "print the device commands of the last replayed frame")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	clickdraw.SetLogger(logger)
	gg.SetLogger(logger)
	defer closeAccelerator()

	cfg := clickdraw.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = clickdraw.LoadConfig(*configPath); err != nil {
			fatal(logger, "failed to load config", err)
		}
	}

	if *scriptPath == "" {
		if err := shinyhost.Run(cfg); err != nil {
			fatal(logger, "window failed", err)
		}
		return
	}

	if err := runScript(cfg, *backendName, *scriptPath, *output, *trace); err != nil {
		fatal(logger, "replay failed", err)
	}
}

func runScript(cfg clickdraw.Config, backendName, scriptPath, output string, trace bool) error {
	script, err := replay.Load(scriptPath)
	if err != nil {
		return err
	}

	dev, err := backend.Open(backendName, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	rec := recording.NewRecorder(cfg.Width, cfg.Height, recording.WithTarget(dev), recording.WithMaxFrames(1))

	tracker := clickdraw.NewTracker(cfg.Width, cfg.Height)
	app, err := clickdraw.NewApp(rec, tracker, clickdraw.WithConfig(cfg))
	if err != nil {
		return err
	}

	res, err := replay.Run(app, tracker, script)
	if err != nil {
		return err
	}
	fmt.Printf("replayed %d frames, %d shapes\n", res.Frames, res.Shapes)

	if trace {
		for _, c := range rec.LastFrame() {
			fmt.Println(c)
		}
	}

	if output == "" {
		return nil
	}
	return savePNG(rec, dev, output)
}

// savePNG writes the last frame. Devices without pixels are played back
// onto a raster device first.
func savePNG(rec *recording.Recorder, dev clickdraw.Device, path string) error {
	type pngSaver interface {
		SavePNG(path string) error
	}
	saver, ok := dev.(pngSaver)
	if !ok {
		w, h := dev.Size()
		rd := raster.New(w, h)
		defer func() { _ = rd.Close() }()
		if err := rec.Playback(rd); err != nil {
			return err
		}
		saver = rd
	}
	if err := saver.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	clickdraw.Logger().Info("saved frame", "path", path)
	return nil
}

// closeAccelerator releases GPU resources held by the gg accelerator.
func closeAccelerator() {
	if a := gg.Accelerator(); a != nil {
		a.Close()
	}
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	closeAccelerator()
	os.Exit(1)
}
