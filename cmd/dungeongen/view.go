package main

import (
	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeongen/internal/presets"
	"github.com/samdwyer/dungeongen/internal/ui"
)

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse generated dungeons in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			palette, err := presets.LoadPalette()
			if err != nil {
				return err
			}
			screen, err := ui.NewScreen()
			if err != nil {
				return err
			}
			return ui.NewViewer(screen, palette, a.cfg.Generation).Run(cmd.Context())
		},
	}
}
