package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "dinewise/docs"
	"dinewise/internal/app"
	"dinewise/internal/config"
	"dinewise/internal/logging"
	"dinewise/internal/queue"
	"dinewise/internal/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// @Title		Dinewise reservations and walk-in queue API
// @Version	1.0
// @BasePath	/
func main() {
	if os.Getenv("ENV_CHEK") == "" {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintln(os.Stderr, "no .env file loaded, using process environment")
		}
	}

	rootCmd := &cobra.Command{
		Use:           "dinewise",
		Short:         "Restaurant reservations and walk-in queue backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(serveCommand(), migrateCommand(), purgeQueueCommand(), seedCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup loads the configuration and installs the process logger.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logging.Setup(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	return cfg, log, nil
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Start the HTTP server, websocket hub and daily queue purge",
		Aliases: []string{"run"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			a, err := app.New(cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			return a.Run(ctx)
		},
	}
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			store, err := storage.Open(cfg.Database, cfg.Redis, log)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Migrate(); err != nil {
				return err
			}
			log.Info("migration finished")
			return nil
		},
	}
}

func purgeQueueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "purge-queue",
		Short: "Remove walk-in queue entries from previous days",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			store, err := storage.Open(cfg.Database, cfg.Redis, log)
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := queue.NewLedger(store.DB, log).PurgeStale(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d stale queue entries\n", removed)
			return nil
		},
	}
}

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample restaurants into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			store, err := storage.Open(cfg.Database, cfg.Redis, log)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Migrate(); err != nil {
				return err
			}
			parts, err := app.Build(cfg, store, time.Local, log)
			if err != nil {
				return err
			}
			added, err := parts.Restaurants.SeedDefaults(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %d sample restaurants\n", added)
			return nil
		},
	}
}
