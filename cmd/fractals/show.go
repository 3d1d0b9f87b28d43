package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/platform/tui"
	"github.com/vovakirdan/fractals/internal/platform/window"
	"github.com/vovakirdan/fractals/internal/storage"
)

// terminalMaxFPS caps the terminal redraw rate; a full-screen repaint per
// tick is expensive for most terminal emulators.
const terminalMaxFPS = 30

var flagTerminal bool

var showCmd = &cobra.Command{
	Use:   "show <curve>",
	Short: "Animate a curve level by level",
	Long: `Reveal a curve edge by edge, then pan and zoom the finished image.
Several levels (-l 3,4,5) are shown one after the other.

Controls:
  Space        - Finish the current level immediately
  Drag/arrows  - Pan (after the reveal)
  Wheel/+/-    - Zoom at the cursor (after the reveal)
  R            - Reset the view
  S            - Save a snapshot to ~/.fractals/snapshots
  Esc/N/Enter  - Next level
  Q            - Quit

Examples:
  fractals show koch
  fractals show dragon -l 10,12,14 -d 3
  fractals show hilbert --terminal`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagTerminal, "terminal", false, "Render with half-block characters in the terminal")
}

func runShow(cmd *cobra.Command, args []string) error {
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

	if flagTerminal {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunViewer(tui.ViewerOptions{
			CurveID:   r.CurveID,
			Levels:    r.Levels,
			Build:     build,
			Pacing:    r.Pacing,
			Playback:  playbackOptions(r),
			ColorName: r.ColorName,
			Store:     store,
			Mode:      storage.ModeTerminal,
			Logger:    logger,
		}, core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: min(r.FPS(), terminalMaxFPS),
		})
	}

	return window.Run(window.Options{
		CurveID:   r.CurveID,
		Levels:    r.Levels,
		Build:     build,
		Pacing:    r.Pacing,
		Playback:  playbackOptions(r),
		ColorName: r.ColorName,
		Store:     store,
		Logger:    logger,
	})
}
