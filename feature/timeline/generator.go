package timeline

import (
	"context"
	"fmt"
	"time"

	"broodradar/feature/diff"
	"broodradar/feature/snapshot"
	snapmodels "broodradar/feature/snapshot/models"
	"broodradar/feature/timeline/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// insertChunkSize bounds a single timeline insert statement.
const insertChunkSize = 500

// Generator derives timeline events for a new snapshot by diffing it
// against the retailer's previous one.
type Generator struct {
	db        *gorm.DB
	snapshots *snapshot.Store
	engine    *diff.Engine
	logger    *zap.Logger
}

// NewGenerator creates a timeline generator.
func NewGenerator(db *gorm.DB, snapshots *snapshot.Store, engine *diff.Engine, logger *zap.Logger) *Generator {
	return &Generator{db: db, snapshots: snapshots, engine: engine, logger: logger}
}

// Generate appends timeline events for the given snapshot. A retailer's
// first snapshot generates nothing: there is no baseline to diff against.
// The caller treats any error as a degraded, non-fatal outcome.
func (g *Generator) Generate(ctx context.Context, retailer, snapshotID string) error {
	snaps, err := g.snapshots.Snapshots(ctx, retailer)
	if err != nil {
		return err
	}
	if len(snaps) < 2 {
		return nil
	}
	if snaps[0].ID != snapshotID {
		g.logger.Warn("Generating timeline for a non-latest snapshot",
			zap.String("retailer", retailer), zap.String("snapshot_id", snapshotID))
	}

	result, err := g.engine.Compare(ctx, snaps[1].ID, snapshotID)
	if err != nil {
		return err
	}

	events := buildEvents(retailer, snapshotID, result)
	if len(events) == 0 {
		return nil
	}

	for start := 0; start < len(events); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(events) {
			end = len(events)
		}
		chunk := events[start:end]
		if err := g.db.WithContext(ctx).Create(&chunk).Error; err != nil {
			return fmt.Errorf("failed to insert timeline events: %w", err)
		}
	}

	g.logger.Info("Timeline events generated",
		zap.String("retailer", retailer),
		zap.String("snapshot_id", snapshotID),
		zap.Int("events", len(events)))
	return nil
}

func buildEvents(retailer, snapshotID string, result *diff.Result) []models.TimelineEvent {
	now := time.Now().UTC()
	var events []models.TimelineEvent

	add := func(eventType, title, imageURL string, details any) {
		events = append(events, models.TimelineEvent{
			ID:              uuid.NewString(),
			Retailer:        retailer,
			EventType:       eventType,
			SnapshotID:      snapshotID,
			ProductTitle:    title,
			ProductImageURL: imageURL,
			Details:         snapmodels.MustJSON(details),
			CreatedAt:       now,
		})
	}

	for _, p := range result.NewProducts {
		add(models.EventNewProduct, p.Title, p.ImageURL, map[string]any{"price": p.Price})
	}
	for _, p := range result.RemovedProducts {
		add(models.EventRemovedProduct, p.Title, p.ImageURL, map[string]any{})
	}
	for _, c := range result.PriceChanges {
		add(models.EventPriceChange, c.Product.Title, c.Product.ImageURL, map[string]any{
			"old_price":  c.OldPrice,
			"new_price":  c.NewPrice,
			"pct_change": c.PctChange,
		})
	}
	for _, c := range result.BonusChanges {
		add(models.EventBonusChange, c.Product.Title, c.Product.ImageURL, map[string]any{
			"was_bonus": c.WasBonus,
			"is_bonus":  c.IsBonus,
		})
	}

	return events
}
