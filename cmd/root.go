// Package cmd contains the reader commands: the HTTP server, one-off syncs
// and schema migrations.
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phareim/reader/config"
	"github.com/phareim/reader/di"
	"github.com/phareim/reader/driver/content_store_driver"
	"github.com/phareim/reader/driver/feed_db"
	"github.com/phareim/reader/port/content_store_port"
	"github.com/phareim/reader/utils/logger"
)

var (
	cfgFile string
	cfg     *config.Config
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "reader",
	Short: "RSS and Atom feed reader backend",
	Long: `reader subscribes users to RSS and Atom feeds, keeps them in sync and
discovers feeds behind ordinary web pages.

Example usage:
  reader serve                 # Run the HTTP API and the periodic sync job
  reader sync                  # Sync every active feed once
  reader sync --user <uuid>    # Sync one user's feeds
  reader migrate               # Apply pending schema migrations`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the CLI and the tracer resource.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./reader.yaml)")
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger.InitLogger(cfg.Logging.Level, cfg.Logging.Format)
	return nil
}

func requireDatabase() error {
	if cfg.Database.URL == "" {
		return errors.New("DATABASE_URL is required")
	}
	return nil
}

// application holds the wired components and the resources behind them.
type application struct {
	container *di.ApplicationComponents
	closers   []func()
}

func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// openApplication connects to Postgres and, when configured, Redis, and wires
// every usecase on top of them.
func openApplication(ctx context.Context) (*application, error) {
	if err := requireDatabase(); err != nil {
		return nil, err
	}

	app := &application{}

	pool, err := feed_db.InitDBPool(ctx, cfg.Database.URL, int32(cfg.Database.MaxConnections), cfg.Database.ConnectionTimeout)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	app.closers = append(app.closers, pool.Close)

	var content content_store_port.ContentStorePort
	if cfg.Redis.URL != "" {
		store, err := content_store_driver.NewRedisContentStoreWithURL(cfg.Redis.URL, cfg.Redis.ContentTTL)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		app.closers = append(app.closers, func() {
			if err := store.Close(); err != nil {
				logger.Logger.Warn("Failed to close content store", "error", err)
			}
		})
		content = store
	}

	container, err := di.NewApplicationComponents(cfg, pool, content)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("wiring components: %w", err)
	}
	app.container = container

	return app, nil
}
