package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"chainviz/editor"
	"chainviz/gui"
	"chainviz/logging"
	"chainviz/render"
)

func guiCmd() *cobra.Command {
	var noDrag bool

	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Open the network in a window",
		Long:  "Open an interactive window. Nodes can be dragged to new positions\nunless --no-drag is given; drags persist until the data is reloaded.",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, cfg, err := buildModel()
			if err != nil {
				return err
			}

			rcfg := render.DefaultConfig(cfg.Canvas.Width, cfg.Canvas.Height)
			rcfg.GridSpacing = cfg.View.GridSpacing
			pipe, err := render.New(rcfg)
			if err != nil {
				return err
			}

			log := logging.New(os.Stderr, logging.ParseLevel(logLevel))
			ctrl := editor.New(m, !noDrag)
			app := gui.New(m, ctrl, pipe, cfg.Canvas.Width, cfg.Canvas.Height, log)
			return app.Run("chainviz — " + inputPath)
		},
	}

	cmd.Flags().BoolVar(&noDrag, "no-drag", false, "disable node dragging")
	return cmd
}
