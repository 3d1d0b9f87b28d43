package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fractals/internal/config"
	"github.com/vovakirdan/fractals/internal/core"
)

var flagConfigInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration that 'show' and 'export' start from, as YAML.

With --init the built-in defaults are written to ~/.fractals/config.yaml
(an existing file is left alone).`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigInit, "init", false, "Write the default config to ~/.fractals/config.yaml")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigInit {
		path := config.UserConfigPath()
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists: %w", path, core.ErrConfig)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create %s: %w: %w", filepath.Dir(path), core.ErrResource, err)
		}
		if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w: %w", path, core.ErrResource, err)
		}
		logger.Info("wrote default config", "path", path)
		return nil
	}

	file, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(file)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
