package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orders/cmd"
	"orders/internal/adapters/out/storage"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "orders",
		Short: "Order management service",
		RunE: func(c *cobra.Command, _ []string) error {
			return serve(c.Context(), envFile)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	rootCmd.AddCommand(serveCmd(&envFile))
	rootCmd.AddCommand(migrateCmd(&envFile))
	rootCmd.AddCommand(seedCmd(&envFile))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func serveCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			return serve(c.Context(), *envFile)
		},
	}
}

func migrateCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			config, logger, err := setup(*envFile)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			db, err := cmd.OpenDatabase(config)
			if err != nil {
				return err
			}
			logger.Info("database schema is up to date", zap.String("driver", config.DBDriver))

			return storage.Close(db)
		},
	}
}

func seedCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample product catalog when it is empty and exit",
		RunE: func(c *cobra.Command, _ []string) error {
			config, logger, err := setup(*envFile)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			db, err := cmd.OpenDatabase(config)
			if err != nil {
				return err
			}
			defer func() { _ = storage.Close(db) }()

			root, err := cmd.NewCompositionRoot(config, db, logger)
			if err != nil {
				return err
			}
			root.SeedCatalog(c.Context())

			return nil
		},
	}
}

func setup(envFile string) (cmd.Config, *zap.Logger, error) {
	config, err := cmd.LoadConfig(envFile)
	if err != nil {
		return cmd.Config{}, nil, err
	}

	logger, err := cmd.NewLogger(config.LogLevel, config.LogEncoding)
	if err != nil {
		return cmd.Config{}, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return config, logger, nil
}

func serve(ctx context.Context, envFile string) error {
	config, logger, err := setup(envFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := cmd.OpenDatabase(config)
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(db); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}()

	root, err := cmd.NewCompositionRoot(config, db, logger)
	if err != nil {
		return err
	}

	if config.SeedProducts {
		root.SeedCatalog(ctx)
	}

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := root.CreateHTTPServer()
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("port", config.HTTPPort))
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}

func init() {
	// Startup errors that stop the process are reported through gommon's logger.
	log.SetHeader("${level} ${time_rfc3339}")
	log.SetOutput(os.Stderr)
}
