// fractals generates self-similar plane curves and shows or exports them.
//
// Usage:
//
//	fractals list                    - List available curves
//	fractals show <curve>            - Animate a curve in a window (--terminal for the TUI)
//	fractals export <curve>          - Write PNG, MP4 or numbered frames
//	fractals menu                    - Pick curves and levels interactively
//	fractals serve                   - Start SSH server for remote viewing
//	fractals history [curve]         - Show recent renders
//	fractals config                  - Print the effective configuration
//
// Global flags:
//
//	-l, --level <list>   - Levels to render, e.g. "3" or "3,4,5"
//	--cmap <name>        - Colormap for the edges
//	--line-color <name>  - Single line color, beats --cmap
//	--config <path>      - Config file (default: ~/.fractals/config.yaml)
//	--db <path>          - History database (default: ~/.fractals/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/storage"

	// Import curves to register them
	_ "github.com/vovakirdan/fractals/internal/curves"
)

var (
	// Global flags
	flagLevels        string
	flagSize          int
	flagLineWidth     float64
	flagPadding       float64
	flagCmap          string
	flagBackground    string
	flagLineColor     string
	flagEdgesPerFrame int
	flagDuration      float64
	flagFPS           int
	flagInitLength    float64
	flagConfig        string
	flagDBPath        string
	flagLogLevel      string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "fractals",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("failed", "kind", core.Classify(err), "err", err)
		os.Exit(core.ExitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "fractals",
	Short: "Fractals - grow self-similar curves level by level",
	Long: `Fractals rewrites a seed polyline level by level into Koch, Levy,
Dragon, Sierpinski, Hilbert, Moore and Gosper curves, then animates them
edge by edge or exports them as images and videos.

Available commands:
  list     - Show all available curves
  show     - Animate a curve in a window or the terminal
  export   - Write PNG images, MP4 videos or PNG frame sequences
  menu     - Interactive curve and level picker
  serve    - Start SSH server for remote viewing
  history  - Show recent renders
  config   - Print the effective configuration

Examples:
  fractals list
  fractals show dragon -l 12
  fractals show koch -l 3,4,5 --terminal
  fractals export hilbert -l 6 --format mp4 -d 5
  fractals serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagLevels, "level", "l", "", "Levels to render, comma separated (default: per curve)")
	pf.IntVar(&flagSize, "size", 0, "Surface size in pixels (default 900)")
	pf.Float64Var(&flagLineWidth, "line-width", 0, "Line width in pixels (default 1)")
	pf.Float64Var(&flagPadding, "padding", 0, "Margin around the curve in pixels (default 50)")
	pf.StringVar(&flagCmap, "cmap", "", "Colormap name (see 'fractals list --colors')")
	pf.StringVar(&flagBackground, "bg", "", "Background preset or #RRGGBB (default black)")
	pf.StringVar(&flagLineColor, "line-color", "", "Single line color preset or #RRGGBB, beats --cmap")
	pf.IntVar(&flagEdgesPerFrame, "edges-per-frame", 0, "Edges revealed per frame")
	pf.Float64VarP(&flagDuration, "duration", "d", 0, "Reveal duration in seconds")
	pf.IntVar(&flagFPS, "fps", 0, "Frames per second (default 60)")
	pf.Float64Var(&flagInitLength, "init-length", 0, "Seed segment length (default: per curve)")
	pf.StringVar(&flagConfig, "config", "", "Path to config file")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to render history database")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", core.ErrConfig, err)
	})

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level %q: %w", flagLogLevel, core.ErrConfig)
	}
	logger.SetLevel(level)
	log.SetDefault(logger)
	return nil
}
