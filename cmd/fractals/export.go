package main

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fractals/internal/config"
	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/export"
	"github.com/vovakirdan/fractals/internal/scene"
	"github.com/vovakirdan/fractals/internal/storage"
)

const (
	formatPNG    = "png"
	formatMP4    = "mp4"
	formatFrames = "frames"
)

var (
	flagFormat  string
	flagOutput  string
	flagCaption bool
)

var exportCmd = &cobra.Command{
	Use:   "export <curve>",
	Short: "Render a curve to PNG, MP4 or numbered frames",
	Long: `Render a curve without opening a window.

Formats:
  png     - One image per level ({curve}_level{N}.png)
  mp4     - One video; several levels are stitched in order
            ({curve}_levels_{a_b_c}.mp4). Needs ffmpeg on PATH.
  frames  - The video frames as numbered PNG files in a directory

Each video level reveals its edges over --duration seconds (default 2) or
at --edges-per-frame, then holds the finished image for 2 seconds.

Examples:
  fractals export koch -l 5
  fractals export gosper -l 2,3,4 --format mp4 -d 4
  fractals export levy -l 10 --format frames -o levy_frames --caption`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagFormat, "format", formatPNG, "Output format: png, mp4 or frames")
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file or directory")
	exportCmd.Flags().BoolVar(&flagCaption, "caption", false, "Draw the curve name and level on each image")
}

func runExport(cmd *cobra.Command, args []string) error {
	if !slices.Contains([]string{formatPNG, formatMP4, formatFrames}, flagFormat) {
		return fmt.Errorf("unknown format %q: %w", flagFormat, core.ErrConfig)
	}
	r, err := resolve(cmd, args[0])
	if err != nil {
		return err
	}
	build, err := builder(r)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	opts := exportOptions(r, flagCaption)

	if flagFormat == formatPNG {
		return exportStills(store, r, build, opts)
	}
	return exportVideo(cmd, store, r, build, opts)
}

// exportStills writes one PNG per level. A failing level does not stop the
// others; all failures are returned together.
func exportStills(store *storage.Store, r config.Render, build scene.Builder, opts export.Options) error {
	var errs []error
	for _, level := range r.Levels {
		start := time.Now()
		sc, err := build(level)
		if err != nil {
			logger.Error("skipping level", "level", level, "err", err)
			errs = append(errs, fmt.Errorf("level %d: %w", level, err))
			continue
		}
		path := export.StillPath(r.CurveID, level, flagOutput, len(r.Levels) > 1)
		if err := export.Still(sc, opts, path); err != nil {
			logger.Error("could not save image", "level", level, "err", err)
			errs = append(errs, fmt.Errorf("level %d: %w", level, err))
			continue
		}
		saveRender(store, storage.RenderRecord{
			CurveID: r.CurveID,
			Level:   level,
			Mode:    storage.ModePNG,
			Edges:   sc.N(),
			Width:   r.Width,
			Height:  r.Height,
			Colors:  r.ColorName,
			Output:  path,
			Elapsed: time.Since(start),
		})
	}
	return errors.Join(errs...)
}

func exportVideo(cmd *cobra.Command, store *storage.Store, r config.Render, build scene.Builder, opts export.Options) error {
	var (
		sink export.FrameSink
		path string
		mode string
	)
	switch flagFormat {
	case formatMP4:
		path, mode = export.VideoPath(r.CurveID, r.Levels, flagOutput), storage.ModeVideo
		s, err := export.NewFFmpegSink(cmd.Context(), path, r.Width, r.Height, r.FPS())
		if err != nil {
			return err
		}
		sink = s
	default:
		path, mode = export.FramesDir(r.CurveID, r.Levels, flagOutput), storage.ModeFrames
		s, err := export.NewFrameDirSink(path)
		if err != nil {
			return err
		}
		sink = s
	}

	start := time.Now()
	stats, err := export.WriteVideo(sink, build, r.Levels, opts)
	var lerr *export.LevelError
	if err != nil && (!errors.As(err, &lerr) || stats.Levels == 0) {
		return err
	}
	logger.Info("saved video", "path", path, "levels", stats.Levels, "frames", stats.Frames())

	saveRender(store, storage.RenderRecord{
		CurveID: r.CurveID,
		Level:   slices.Max(r.Levels),
		Mode:    mode,
		Edges:   stats.Edges,
		Width:   r.Width,
		Height:  r.Height,
		Colors:  r.ColorName,
		Output:  path,
		Elapsed: time.Since(start),
	})
	return err
}

func saveRender(store *storage.Store, rec storage.RenderRecord) {
	if store == nil {
		return
	}
	if _, err := store.SaveRender(rec); err != nil {
		logger.Warn("could not save render", "err", err)
	}
}
