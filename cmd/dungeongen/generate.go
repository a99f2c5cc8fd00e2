package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeongen/internal/server"
	"github.com/samdwyer/dungeongen/internal/world"
)

func newGenerateCmd(a *app) *cobra.Command {
	var format string
	var showStats bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dungeon and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.NewString()
			d, err := world.Generate(cmd.Context(), a.cfg.Generation)
			if err != nil {
				return err
			}
			slog.Info("dungeon generated", "run_id", runID, "seed", d.Seed,
				"rooms", d.Stats.Rooms, "junctions", d.Stats.Junctions)

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				fmt.Fprintln(out, d.String())
				if showStats {
					fmt.Fprintf(out, "seed=%d rooms=%d regions=%d junctions=%d extra=%d dead_ends_removed=%d\n",
						d.Seed, d.Stats.Rooms, d.Stats.Regions, d.Stats.Junctions,
						d.Stats.ExtraJunctions, d.Stats.DeadEndsRemoved)
				}
				return nil
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(server.NewDungeonPayload(d))
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print generation statistics after the map")
	return cmd
}
