package main

import (
	"image/color"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fractals/internal/config"
	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/export"
	"github.com/vovakirdan/fractals/internal/platform/tui"
	"github.com/vovakirdan/fractals/internal/playback"
	"github.com/vovakirdan/fractals/internal/registry"
	"github.com/vovakirdan/fractals/internal/scene"
	"github.com/vovakirdan/fractals/internal/storage"
)

// overrides collects the global flags the user actually set.
func overrides(cmd *cobra.Command) config.Overrides {
	ov := config.Overrides{
		Levels:        flagLevels,
		Size:          flagSize,
		LineWidth:     flagLineWidth,
		FPS:           flagFPS,
		Background:    flagBackground,
		LineColor:     flagLineColor,
		Colormap:      flagCmap,
		EdgesPerFrame: flagEdgesPerFrame,
		Duration:      flagDuration,
		InitLength:    flagInitLength,
	}
	if f := cmd.Flag("padding"); f != nil && f.Changed {
		p := flagPadding
		ov.Padding = &p
	}
	return ov
}

// resolve loads the config file and resolves every option for curveID.
func resolve(cmd *cobra.Command, curveID string) (config.Render, error) {
	file, err := config.Load(flagConfig)
	if err != nil {
		return config.Render{}, err
	}
	return config.Resolve(file, overrides(cmd), curveID)
}

func builder(r config.Render) (scene.Builder, error) {
	return scene.NewBuilder(r.CurveID, r.InitLength, r.Colors, logger)
}

func playbackOptions(r config.Render) playback.Options {
	return playback.Options{
		Width:      r.Width,
		Height:     r.Height,
		Padding:    r.Padding,
		LineWidth:  r.LineWidth,
		Background: r.Background,
		CacheScale: r.CacheScale,
		MinZoom:    r.MinZoom,
		MaxZoom:    r.MaxZoom,
	}
}

func exportOptions(r config.Render, caption bool) export.Options {
	return export.Options{
		Width:        r.Width,
		Height:       r.Height,
		Padding:      r.Padding,
		LineWidth:    r.LineWidth,
		Background:   r.Background,
		Pacing:       r.Pacing,
		Caption:      caption,
		CaptionColor: captionColor(r.Background),
		Logger:       logger,
	}
}

// captionColor picks black or white, whichever reads better on bg.
func captionColor(bg color.RGBA) color.RGBA {
	luma := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luma > 140 {
		return core.Black
	}
	return core.White
}

// openStore opens the history database. History is best effort: a failure
// only logs a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "err", err)
		return nil
	}
	return store
}

// launcher resolves menu picks with the same flags and config as 'show'.
func launcher(cmd *cobra.Command) tui.Launcher {
	return func(curveID string, level int) (tui.ViewerOptions, error) {
		file, err := config.Load(flagConfig)
		if err != nil {
			return tui.ViewerOptions{}, err
		}
		ov := overrides(cmd)
		ov.Levels = strconv.Itoa(level)
		r, err := config.Resolve(file, ov, curveID)
		if err != nil {
			return tui.ViewerOptions{}, err
		}
		build, err := builder(r)
		if err != nil {
			return tui.ViewerOptions{}, err
		}
		return tui.ViewerOptions{
			CurveID:   r.CurveID,
			Levels:    r.Levels,
			Build:     build,
			Pacing:    r.Pacing,
			Playback:  playbackOptions(r),
			ColorName: r.ColorName,
		}, nil
	}
}

// menuItems lists every registered curve at its configured level.
func menuItems() []tui.MenuItem {
	file, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("using built-in defaults", "err", err)
		file = config.DefaultConfig()
	}
	var items []tui.MenuItem
	for _, info := range registry.List() {
		level := info.DefaultLevel
		if cc, ok := file.Curves[info.ID]; ok && cc.Level != nil {
			level = *cc.Level
		}
		items = append(items, tui.MenuItem{CurveID: info.ID, Title: info.Title, Level: level})
	}
	return items
}
