package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"beach-reserve/cmd/bootstrap"
	"beach-reserve/internal/handler/middleware"
	"beach-reserve/internal/infra/db"
	"beach-reserve/internal/infra/readstore"
	"beach-reserve/internal/infra/writerepo"
	"beach-reserve/internal/notifier"
	"beach-reserve/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func init() {
	// Release by default so a misconfigured deploy never leaks debug pages.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           beach-reserve
// @version         1.0
// @description     Beach vendor reservation API

// @BasePath  /
// @schemes http https
// @in header
func main() {
	root := &cobra.Command{
		Use:   "beach-reserve",
		Short: "Beach vendor reservation service",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			// Missing .env is fine in production, env vars win either way.
			_ = godotenv.Load()
		},
	}

	root.AddCommand(serveCmd(), notifyCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(_ *cobra.Command, _ []string) error {
			app := fx.New(
				bootstrap.Module,
				fx.Provide(
					func() *gin.Engine {
						return gin.New()
					},
				),
				fx.Invoke(
					startServer,
				),
			)

			if err := app.Start(context.Background()); err != nil {
				return err
			}

			<-app.Done()

			if err := app.Stop(context.Background()); err != nil {
				slog.Error("failed to stop application cleanly", "error", err)
			}
			slog.Info("application stopped")
			return nil
		},
	}
}

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("starting server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping server")
			return nil
		},
	})
}

// notifyCmd runs the push notification worker. It is deployed separately
// from the API so a slow Expo gateway never backs up request handling.
func notifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notify",
		Short: "Run the push notification worker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pool, cleanup, err := db.Connect(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			worker := notifier.NewWorker(
				pool,
				writerepo.NewNotificationRepository(),
				writerepo.NewIdempotencyRepository(),
				readstore.NewUserReadStore(pool),
				notifier.NewExpoClient(cfg.Push.ExpoURL),
				cfg.Push,
				logger,
			)

			logger.Info("starting notification worker",
				"poll_interval", cfg.Push.PollInterval, "batch_size", cfg.Push.BatchSize)
			if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}
