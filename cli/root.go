// Package cli is the baccarat command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lazharichir/baccarat/config"
	"github.com/lazharichir/baccarat/events"
	"github.com/lazharichir/baccarat/export"
	"github.com/lazharichir/baccarat/table"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand builds the baccarat command. envFiles are .env files read
// before the environment; missing ones are skipped.
func NewRootCommand(envFiles ...string) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "baccarat",
		Short:         "Simulate shoes of punto banco and report flat-bet results",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, envFiles...)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	if err := config.BindFlags(cmd.Flags(), v); err != nil {
		panic(err)
	}

	return cmd
}

func newLogger(cfg config.Config, cmd *cobra.Command) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Validate has already checked the level
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	logger.SetLevel(level)
	return logger
}

func run(cmd *cobra.Command, cfg config.Config) error {
	logger := newLogger(cfg, cmd)

	rng, seed := table.NewRand(cfg.Seed)
	opts := []table.Option{table.WithSeed(seed)}

	// Per-shoe results are replayed from the event history
	var store *events.InMemoryEventStore
	if cfg.ShoeResults {
		store = events.NewInMemoryEventStore()
		opts = append(opts, table.WithEventStore(store))
	}

	t, err := table.NewTable(cfg, rng, logger, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := t.Run(ctx)
	if err != nil {
		return fmt.Errorf("session %s: %w", t.ID, err)
	}

	var shoes []table.ShoeReplay
	if store != nil {
		for _, id := range t.ShoeIDs() {
			replay, err := table.ReplayShoe(store, id)
			if err != nil {
				return err
			}
			shoes = append(shoes, replay)
		}
	}

	if err := report(cmd.OutOrStdout(), summary, shoes, t.Tracker()); err != nil {
		return err
	}

	if cfg.Export {
		if err := export.WriteFiles(cfg.OutputDir, summary); err != nil {
			return fmt.Errorf("export results: %w", err)
		}
		logger.WithField("dir", cfg.OutputDir).Info("Results exported")
	}

	return nil
}

// Execute runs the root command and exits with status 1 on error
func Execute() {
	if err := NewRootCommand(".env").ExecuteContext(context.Background()); err != nil {
		logrus.WithError(err).Error("baccarat failed")
		os.Exit(1)
	}
}
