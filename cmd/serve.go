package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/phareim/reader/driver/feed_db"
	"github.com/phareim/reader/job"
	"github.com/phareim/reader/rest"
	"github.com/phareim/reader/utils/logger"
	"github.com/phareim/reader/utils/otel"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API. Unless SYNC_JOB_ENABLED is false, every active feed
is also synced once at startup and then every SYNC_INTERVAL.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Bool("migrate", true, "apply pending migrations before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := requireDatabase(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, exporting, err := otel.InitProvider(ctx, cfg.Telemetry, version)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	if exporting {
		logger.InitLoggerWithOTel(cfg.Logging.Level, cfg.Logging.Format, cfg.Telemetry.ServiceName)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Logger.Warn("Failed to shut down tracer provider", "error", err)
		}
	}()

	if runMigrations, _ := cmd.Flags().GetBool("migrate"); runMigrations {
		if err := feed_db.Migrate(cfg.Database.URL); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
	}

	app, err := openApplication(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	scheduler := job.NewScheduler()
	if cfg.Sync.JobEnabled {
		// A run may take most of an interval but must not overlap the next one.
		scheduler.Register(job.FeedSyncJob(app.container.SyncFeedUsecase, cfg.Sync.Interval, cfg.Sync.Interval))
		scheduler.Start(ctx)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	rest.RegisterRoutes(e, app.container)

	serverErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		logger.Logger.Info("Starting server", "addr", addr, "version", version, "sync_job", cfg.Sync.JobEnabled)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			stop()
			scheduler.Wait()
			return fmt.Errorf("starting server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("Server shutdown failed", "error", err)
	}
	scheduler.Wait()
	return nil
}
