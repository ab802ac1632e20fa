package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chainviz/render"
)

func renderCmd() *cobra.Command {
	var (
		outPath     string
		selectNode  string
		selectRoute string
		zoom        float64
		noLabels    bool
		noGrid      bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the network to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, cfg, err := buildModel()
			if err != nil {
				return err
			}
			if selectNode != "" {
				m.SelectNode(selectNode)
			}
			if selectRoute != "" {
				m.SelectRoute(selectRoute)
			}
			if zoom > 0 {
				m.SetZoom(zoom)
			}
			if noLabels {
				m.ToggleLabels()
			}
			if noGrid {
				m.ToggleGrid()
			}

			rcfg := render.DefaultConfig(cfg.Canvas.Width, cfg.Canvas.Height)
			rcfg.GridSpacing = cfg.View.GridSpacing
			pipe, err := render.New(rcfg)
			if err != nil {
				return err
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			if err := pipe.WritePNG(f, m.Snapshot()); err != nil {
				return err
			}
			good.Printf("wrote %s (%d nodes, %d routes)\n", outPath, len(m.Facilities()), len(m.Routes()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "network.png", "output PNG path")
	cmd.Flags().StringVar(&selectNode, "select-node", "", "render with this facility selected")
	cmd.Flags().StringVar(&selectRoute, "select-route", "", "render with this route highlighted")
	cmd.Flags().Float64Var(&zoom, "zoom", 0, "zoom level (0 keeps the default)")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "omit facility labels")
	cmd.Flags().BoolVar(&noGrid, "no-grid", false, "omit the background grid")
	return cmd
}
