package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"formdesk/core/config"
	"formdesk/core/loader"
	"formdesk/core/logger"
	"formdesk/core/middleware/rayid"
	"formdesk/core/server"
	"formdesk/core/storage"
	"formdesk/feature/assets"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// staticCmd represents the static command
var staticCmd = &cobra.Command{
	Use:   "static",
	Short: "Start the static asset server",
	Long:  `Starts the HTTP server that serves files from the public root (or an object storage bucket).`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Select Asset Source
		if !cfg.Server.IsValidOrigin() {
			logg.Fatal("Invalid asset origin", zap.String("origin", cfg.Server.Origin))
		}

		var source assets.Source
		switch cfg.Server.Origin {
		case server.OriginBucket:
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			source = assets.NewBucketSource(client, cfg.Storage.Bucket)
			logg.Info("Serving assets from bucket", zap.String("bucket", cfg.Storage.Bucket))
		default:
			source = assets.NewLocalSource(cfg.Server.PublicRoot)
			logg.Info("Serving assets from public root", zap.String("root", cfg.Server.PublicRoot))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
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

		// 5. Register and Load Features
		mgr := loader.NewManager()
		mgr.Register(assets.NewFeature(source, cfg.Server.IndexFile, logg))
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting static asset server", zap.String("port", cfg.Server.StaticPort))
			if err := app.Listen(":" + cfg.Server.StaticPort); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(staticCmd)
}
