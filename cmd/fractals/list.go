package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fractals/internal/palette"
	"github.com/vovakirdan/fractals/internal/registry"
)

var flagListColors bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available curves",
	Long:  `Shows every registered curve with its default level and colormap.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListColors, "colors", false, "Also list colormaps and color presets")
}

func runList(_ *cobra.Command, _ []string) {
	curves := registry.List()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, c := range curves {
		maxIDLen = max(maxIDLen, len(c.ID))
		maxTitleLen = max(maxTitleLen, len(c.Title))
	}

	fmt.Println("Available curves:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %-5s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Level", "Colormap")
	fmt.Printf("  %-*s  %-*s  %-5s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----", "--------")
	for _, c := range curves {
		fmt.Printf("  %-*s  %-*s  %-5d  %s\n", maxIDLen, c.ID, maxTitleLen, c.Title, c.DefaultLevel, c.DefaultColormap)
	}

	if flagListColors {
		fmt.Println()
		fmt.Println("Colormaps:   " + strings.Join(palette.Names(), ", "))
		fmt.Println("Backgrounds: " + strings.Join(palette.PresetNames(palette.BackgroundPresets), ", "))
		fmt.Println("Line colors: " + strings.Join(palette.PresetNames(palette.LinePresets), ", "))
	}

	fmt.Println()
	fmt.Println("Run 'fractals show <id>' to watch a curve grow.")
}
