package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"broodradar/core/config"
	"broodradar/core/database"
	"broodradar/core/loader"
	"broodradar/core/logger"
	"broodradar/core/middleware/auth"
	"broodradar/core/middleware/rayid"
	"broodradar/core/storage"

	"broodradar/feature/archive"
	"broodradar/feature/catalog"
	"broodradar/feature/diff"
	"broodradar/feature/ingest"
	"broodradar/feature/retailer"
	"broodradar/feature/snapshot"
	"broodradar/feature/timeline"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "broodradar/docs/swagger"
)

// @title Broodradar API
// @version 1.0
// @description API for tracking supermarket bread ranges over time.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the broodradar server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
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

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		// 4. Bootstrap an empty database, then probe the schema. Older
		// deployments predate the retailer column and the catalog
		// tables; features adapt to what exists.
		if err := ensureSchema(db, logg); err != nil {
			logg.Fatal("Failed to create schema", zap.Error(err))
		}
		caps := database.Detect(db)
		logg.Info("Schema capabilities detected",
			zap.Bool("retailer_column", caps.RetailerColumn),
			zap.Bool("catalog", caps.Catalog))

		// 5. Initialize Object Storage (Optional)
		var store storage.Client
		if cfg.Storage.Enabled {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 7. Build Features
		mgr := loader.NewManager()

		snapshotFeature := snapshot.NewFeature(db, caps, logg)
		snapshots := snapshotFeature.Store()
		catalogFeature := catalog.NewFeature(db, caps, snapshots, logg)
		diffFeature := diff.NewFeature(snapshots, logg)
		timelineFeature := timeline.NewFeature(db, snapshots, diffFeature.Engine(), logg)
		archiveFeature := archive.NewFeature(store, cfg.Storage, logg)

		var reconciler *catalog.Reconciler
		if caps.Catalog {
			reconciler = catalogFeature.Reconciler()
		}

		mgr.Register(snapshotFeature)
		mgr.Register(catalogFeature)
		mgr.Register(diffFeature)
		mgr.Register(timelineFeature)
		mgr.Register(retailer.NewFeature(snapshots, logg))
		mgr.Register(archiveFeature)
		mgr.Register(ingest.NewFeature(cfg.Ingest, snapshots, reconciler,
			timelineFeature.Generator(), archiveFeature.Archiver(), logg))

		// Middleware Registration
		// RayID must be first to trace everything.
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

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
