// Package cmd wires the command line surface. Every subcommand loads the same
// network file and config, builds a scene model, and hands it to one front
// end: the PNG pipeline, the terminal viewer, the window, or the stats table.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"chainviz/config"
	"chainviz/importer"
	"chainviz/scene"
)

var version = "0.3.0"

var (
	inputPath  string
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:          "chainviz",
	Short:        "chainviz — supply chain network visualizer",
	Long:         "Render, explore and summarise geographic supply chain networks\nfrom JSON facility and route data.",
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.SetVersionTemplate("chainviz {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "network JSON file")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		renderCmd(),
		viewCmd(),
		guiCmd(),
		statsCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// buildModel loads config plus network data and assembles a model around them.
func buildModel() (*scene.Model, config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	if inputPath == "" {
		return nil, config.Config{}, fmt.Errorf("no input file; pass -i network.json")
	}
	facilities, routes, err := importer.LoadFile(inputPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	m := scene.NewModel(float64(cfg.Canvas.Width), float64(cfg.Canvas.Height), cfg.Canvas.Padding, cfg.Limits(), cfg.Styles(), nil)
	m.SetData(facilities, routes)
	return m, cfg, nil
}
