package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeongen/internal/presets"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in generation presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := presets.LoadRegistry()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tROOM TRIES\tWINDING\tPRUNED\tDESCRIPTION")
			for _, p := range registry.All() {
				c := p.Config
				fmt.Fprintf(w, "%s\t%dx%d\t%d\t%d%%\t%v\t%s\n",
					p.Name, c.Width, c.Height, c.NumRoomTries, c.WindingPercent, c.RemoveDeadEnds, p.Description)
			}
			return w.Flush()
		},
	}
}
