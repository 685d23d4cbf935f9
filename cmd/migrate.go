package cmd

import (
	"fmt"
	"log"

	"broodradar/core/config"
	"broodradar/core/database"
	"broodradar/core/logger"
	catmodels "broodradar/feature/catalog/models"
	snapmodels "broodradar/feature/snapshot/models"
	tlmodels "broodradar/feature/timeline/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// migrateSchema creates or upgrades every feature table. On a legacy
// database this adds the retailer column and the catalog tables.
func migrateSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&snapmodels.Snapshot{},
		&snapmodels.SnapshotProduct{},
		&catmodels.CatalogEntry{},
		&catmodels.HistoryEntry{},
		&tlmodels.TimelineEvent{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ensureSchema bootstraps an empty database and leaves any existing schema
// alone. Legacy deployments keep their shape until `migrate` is run
// explicitly; the capability probe adapts features to whatever is there.
func ensureSchema(db *gorm.DB, logg *zap.Logger) error {
	if db.Migrator().HasTable("snapshots") {
		return nil
	}
	logg.Info("Empty database detected, creating schema")
	return migrateSchema(db)
}

// migrateCmd upgrades the schema in place, including legacy databases.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	Long: `Runs the schema migration for all feature tables. On an empty
database this creates everything; on a legacy database it adds the
retailer column and the catalog tables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := migrateSchema(db); err != nil {
			return err
		}

		caps := database.Detect(db)
		logg.Info("Schema migrated",
			zap.Bool("retailer_column", caps.RetailerColumn),
			zap.Bool("catalog", caps.Catalog))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
