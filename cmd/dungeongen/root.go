package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeongen/internal/config"
	"github.com/samdwyer/dungeongen/internal/logging"
	"github.com/samdwyer/dungeongen/internal/presets"
	"github.com/samdwyer/dungeongen/internal/telemetry"
	"github.com/samdwyer/dungeongen/internal/world"
)

// app carries state shared by every command once the root pre-run has loaded it.
type app struct {
	configPath string
	preset     string
	logLevel   string
	logFile    string
	telemetry  bool

	gen world.Config
	cfg *config.Config

	logCloser io.Closer
	shutdown  func(context.Context) error
}

// newRootCmd builds the command tree and the state its commands share.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "dungeongen",
		Short: "Generate room-and-maze dungeons",
		Long: `dungeongen carves dungeons made of rectangular rooms joined by maze corridors
and doors. Layouts are reproducible: the same settings and seed always give the same map.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	flags.StringVarP(&a.preset, "preset", "p", "", "named generation preset (see 'presets')")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFile, "log-file", "", "log file path (default stderr)")
	flags.BoolVar(&a.telemetry, "telemetry", false, "export traces over OTLP")

	flags.IntVar(&a.gen.Width, "width", world.DefaultWidth, "map width (odd)")
	flags.IntVar(&a.gen.Height, "height", world.DefaultHeight, "map height (odd)")
	flags.IntVar(&a.gen.NumRoomTries, "room-tries", world.DefaultNumRoomTries, "room placement attempts")
	flags.IntVar(&a.gen.ExtraConnectorChance, "extra-connector-chance", world.DefaultExtraConnectorChance, "carve a redundant connector 1 in N times")
	flags.IntVar(&a.gen.ExtraRoomSize, "extra-room-size", 0, "grow the maximum room size")
	flags.IntVar(&a.gen.WindingPercent, "winding", world.DefaultWindingPercent, "corridor turn chance, 0-100")
	flags.BoolVar(&a.gen.RemoveDeadEnds, "remove-dead-ends", false, "fill in corridor dead ends")
	flags.Int64Var(&a.gen.Seed, "seed", 0, "random seed, 0 picks one")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newViewCmd(a),
		newServeCmd(a),
		newPresetsCmd(),
	)
	return rootCmd, a
}

// execute runs the command tree. Cobra skips post-run hooks when a command
// fails, so logging and telemetry are released here instead.
func execute(rootCmd *cobra.Command, a *app) error {
	defer a.teardown(context.Background())
	return rootCmd.Execute()
}

// setup resolves the configuration (file, then preset, then flags) and
// starts logging and telemetry.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if a.preset != "" {
		registry, err := presets.LoadRegistry()
		if err != nil {
			return err
		}
		gen, err := registry.Get(a.preset)
		if err != nil {
			return err
		}
		cfg.Generation = gen
	}

	a.applyFlags(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}
	a.cfg = cfg

	closer, err := logging.Init(cfg.Logging.Path, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	a.logCloser = closer

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(cmd.Context(), cfg.Telemetry.ServiceName)
		if err != nil {
			// Continue without telemetry - generation still works
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			a.shutdown = shutdown
		}
	}

	slog.Debug("configuration resolved", "generation", fmt.Sprintf("%+v", cfg.Generation))
	return nil
}

// applyFlags copies explicitly set flags over the loaded configuration.
func (a *app) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	gen := &cfg.Generation

	if changed("width") {
		gen.Width = a.gen.Width
	}
	if changed("height") {
		gen.Height = a.gen.Height
	}
	if changed("room-tries") {
		gen.NumRoomTries = a.gen.NumRoomTries
	}
	if changed("extra-connector-chance") {
		gen.ExtraConnectorChance = a.gen.ExtraConnectorChance
	}
	if changed("extra-room-size") {
		gen.ExtraRoomSize = a.gen.ExtraRoomSize
	}
	if changed("winding") {
		gen.WindingPercent = a.gen.WindingPercent
	}
	if changed("remove-dead-ends") {
		gen.RemoveDeadEnds = a.gen.RemoveDeadEnds
	}
	if changed("seed") {
		gen.Seed = a.gen.Seed
	}
	if changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if changed("log-file") {
		cfg.Logging.Path = a.logFile
	}
	if changed("telemetry") {
		cfg.Telemetry.Enabled = a.telemetry
	}
}

// teardown flushes telemetry and closes the log file. It is safe to call twice.
func (a *app) teardown(ctx context.Context) {
	if a.shutdown != nil {
		if err := a.shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
		a.shutdown = nil
	}
	if a.logCloser != nil {
		if err := a.logCloser.Close(); err != nil {
			log.Printf("Error closing log file: %v", err)
		}
		a.logCloser = nil
	}
}
