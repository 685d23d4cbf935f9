package cmd

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"broodradar/core/config"
	"broodradar/core/database"
	"broodradar/core/logger"
	"broodradar/feature/diff"
	"broodradar/feature/snapshot"

	"github.com/spf13/cobra"
)

// compareCmd diffs two snapshots and prints the result as JSON.
var compareCmd = &cobra.Command{
	Use:   "compare <old-snapshot-id> <new-snapshot-id>",
	Short: "Diff two snapshots",
	Long: `Compares two snapshots product by product and prints the new products,
removed products, price changes and bonus changes as JSON.`,
	Args: cobra.ExactArgs(2),
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
			return err
		}

		caps := database.Detect(db)
		snapshots := snapshot.NewStore(db, caps, logg)
		engine := diff.NewEngine(snapshots, logg)

		result, err := engine.Compare(context.Background(), args[0], args[1])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	RootCmd.AddCommand(compareCmd)
}
