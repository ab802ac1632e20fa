package cmd

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"chainviz/editor"
	"chainviz/logging"
	"chainviz/terminal"
)

func viewCmd() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Explore the network interactively in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, cfg, err := buildModel()
			if err != nil {
				return err
			}

			// The viewer owns the screen, so logs go to a file or nowhere.
			log := logging.Discard()
			if logFile != "" {
				fileLog, closeFn, err := logging.NewFile(logFile, logging.ParseLevel(logLevel))
				if err != nil {
					return err
				}
				defer closeFn()
				log = fileLog
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}

			ctrl := editor.New(m, false)
			v := terminal.NewViewer(screen, m, ctrl,
				float64(cfg.Canvas.Width), float64(cfg.Canvas.Height), cfg.View.GridSpacing, log)
			log.Info("viewer start", "input", inputPath, "nodes", len(m.Facilities()), "routes", len(m.Routes()))
			return v.Run()
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	return cmd
}
