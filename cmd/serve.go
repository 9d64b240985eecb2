package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"spreader-detector/core/config"
	"spreader-detector/core/database"
	"spreader-detector/core/loader"
	"spreader-detector/core/logger"
	"spreader-detector/core/middleware/auth"
	"spreader-detector/core/middleware/rayid"
	"spreader-detector/core/storage"
	"spreader-detector/feature/spreader"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "spreader-detector/docs/swagger"
)

// @title Spreader Detector API
// @version 1.0
// @description API for analysing infection spread through recorded meetings.
// @host localhost:8080
// @BasePath /

// serveCmd starts the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the analysis HTTP server",
	Long:  `Starts the HTTP server exposing the analysis pipeline and, when configured, run recording and report publishing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Server.Validate(); err != nil {
			return err
		}
		if err := cfg.Analysis.Validate(); err != nil {
			return fmt.Errorf("invalid analysis config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() { _ = logg.Sync() }()
		zap.ReplaceGlobals(logg)

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		// Recording is optional; the API still analyses without a database.
		var db *gorm.DB
		if cfg.Database.Enabled {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to run database")
			}
		}

		feature := spreader.NewFeature(store, cfg.Storage.Bucket, logg, db, cfg.Analysis)
		if db != nil {
			if err := spreader.NewRepository(db).Migrate(cmd.Context()); err != nil {
				logg.Warn("Run table migration failed", zap.Error(err))
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		mgr := loader.NewManager()
		mgr.Register(feature)
		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			errCh <- app.Listen(cfg.Server.Address())
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-sig:
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
