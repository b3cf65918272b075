// Package main is the entry point for the dungen layout generator.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/dungen/internal/config"
	"github.com/samdwyer/dungen/internal/logfile"
	"github.com/samdwyer/dungen/internal/telemetry"
)

const defaultConfigPath = "config/dungen.yaml"

func main() {
	// Not fatal; variables may be set directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "note: .env not loaded: %v\n", err)
	}

	ctx := context.Background()
	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	a.shutdown(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries state shared by every subcommand.
type app struct {
	cfgPath string
	cfg     config.Config
	cleanup []func(context.Context)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "dungen",
		Short:         "Generate seeded 2D room layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}

	path := defaultConfigPath
	if p := os.Getenv("DUNGEN_CONFIG"); p != "" {
		path = p
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", path, "Path to YAML config")

	root.AddCommand(
		newBSPCmd(a),
		newScatterCmd(a),
		newBatchCmd(a),
	)
	return root
}

func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.Endpoint)
		if err != nil {
			slog.Warn("telemetry setup failed, continuing without tracing", "err", err)
		} else {
			a.cleanup = append(a.cleanup, func(ctx context.Context) {
				if err := shutdown(ctx); err != nil {
					slog.Error("shutting down telemetry", "err", err)
				}
			})
		}
	}

	if cfg.LogFile != "" {
		a.cleanup = append(a.cleanup, func(context.Context) { logfile.CloseAll() })
	}
	return nil
}

func (a *app) shutdown(ctx context.Context) {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i](ctx)
	}
	a.cleanup = nil
}

// record appends a line to the configured log file, if any.
func (a *app) record(format string, args ...any) {
	if a.cfg.LogFile == "" {
		return
	}
	logfile.Write(a.cfg.LogFile, fmt.Sprintf(format, args...), false)
}
