package cmd

import (
	"context"
	"fmt"
	"log"

	"broodradar/core/config"
	"broodradar/core/database"
	"broodradar/core/logger"
	"broodradar/core/storage"
	"broodradar/feature/archive"
	"broodradar/feature/catalog"
	"broodradar/feature/diff"
	"broodradar/feature/ingest"
	"broodradar/feature/snapshot"
	"broodradar/feature/timeline"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	ingestLabel  string
	ingestQuery  string
	ingestEnrich bool
)

// ingestCmd runs one ingestion for a retailer, typically from cron.
var ingestCmd = &cobra.Command{
	Use:   "ingest <retailer>",
	Short: "Fetch a retailer's products and store a snapshot",
	Long: `Fetches the retailer's current product range and ingests it as a new
snapshot: timeline events, catalog reconciliation and raw archival run as
part of the same pipeline.

Examples:
  # Daily AH snapshot
  broodradar ingest ah

  # Jumbo snapshot with ingredient enrichment
  broodradar ingest jumbo --enrich`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]

		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if ingestQuery != "" {
			cfg.Ingest.Query = ingestQuery
		}
		if ingestEnrich {
			cfg.Ingest.Enrich = true
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		service, err := buildIngestService(cfg, logg)
		if err != nil {
			return err
		}

		result, err := service.RunRetailer(context.Background(), slug, ingestLabel)
		if err != nil {
			return err
		}

		logg.Info("Ingestion complete",
			zap.String("retailer", result.Retailer),
			zap.String("snapshot_id", result.SnapshotID),
			zap.Int("products", result.ProductCount))
		for _, step := range result.Degraded {
			logg.Warn("Degraded step", zap.String("step", step))
		}
		return nil
	},
}

// buildIngestService wires the full pipeline outside the HTTP server.
func buildIngestService(cfg *config.Config, logg *zap.Logger) (*ingest.Service, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := ensureSchema(db, logg); err != nil {
		return nil, err
	}

	caps := database.Detect(db)
	snapshots := snapshot.NewStore(db, caps, logg)

	var reconciler *catalog.Reconciler
	if caps.Catalog {
		reconciler = catalog.NewReconciler(db, snapshots, logg)
	}

	generator := timeline.NewGenerator(db, snapshots, diff.NewEngine(snapshots, logg), logg)

	var archiver *archive.Archiver
	if cfg.Storage.Enabled {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		archiver = archive.NewArchiver(store, cfg.Storage.Bucket, logg)
	}

	return ingest.NewService(cfg.Ingest, snapshots, reconciler, generator, archiver, logg), nil
}

func init() {
	ingestCmd.Flags().StringVar(&ingestLabel, "label", "", "label stored on the snapshot")
	ingestCmd.Flags().StringVar(&ingestQuery, "query", "", "override the product search query")
	ingestCmd.Flags().BoolVar(&ingestEnrich, "enrich", false, "enrich products with ingredient data")
	RootCmd.AddCommand(ingestCmd)
}
