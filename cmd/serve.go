package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"formdesk/core/config"
	"formdesk/core/database"
	"formdesk/core/loader"
	"formdesk/core/logger"
	"formdesk/core/middleware/rayid"
	"formdesk/core/store"
	"formdesk/feature/forms"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "formdesk/docs/swagger"
)

// @title Formdesk API
// @version 1.0
// @description Form persistence service: accepts submissions and lists them.
// @host localhost:3000
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the form persistence service",
	Long:  `Starts the HTTP server that renders the form, accepts submissions and lists them.`,
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

		// 3. Select Store Backend
		if !cfg.Store.IsValidBackend() {
			logg.Fatal("Invalid store backend", zap.String("backend", cfg.Store.Backend))
		}

		var st store.Store
		switch cfg.Store.Backend {
		case store.BackendMySQL:
			db, err := database.Connect(cfg.Database)
			if err != nil {
				logg.Fatal("Failed to connect to database", zap.Error(err))
			}
			gs := store.NewGormStore(db)
			if err := gs.Migrate(); err != nil {
				logg.Fatal("Failed to migrate submissions table", zap.Error(err))
			}
			st = gs
			logg.Info("Using mysql store backend", zap.String("database", cfg.Database.Name))
		default:
			st = store.NewFileStore(cfg.Store.Path, logg)
			logg.Info("Using file store backend", zap.String("path", cfg.Store.Path))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first to trace everything
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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 5. Register and Load Features
		feat, err := forms.NewFeature(st, logg)
		if err != nil {
			logg.Fatal("Failed to create forms feature", zap.Error(err))
		}

		mgr := loader.NewManager()
		mgr.Register(feat)
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting form service", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
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
	RootCmd.AddCommand(serveCmd)
}
