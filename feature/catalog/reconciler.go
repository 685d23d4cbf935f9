package catalog

import (
	"context"
	"fmt"
	"sort"
	"time"

	"broodradar/feature/catalog/models"
	"broodradar/feature/snapshot"
	snapmodels "broodradar/feature/snapshot/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// lookupChunkSize bounds IN-clause membership lists.
	lookupChunkSize = 100
	// historyChunkSize bounds a single history insert statement.
	historyChunkSize = 500
)

// Reconciler folds a freshly persisted snapshot into the catalog and the
// history ledger.
type Reconciler struct {
	db        *gorm.DB
	snapshots *snapshot.Store
	logger    *zap.Logger
}

// NewReconciler creates a reconciler.
func NewReconciler(db *gorm.DB, snapshots *snapshot.Store, logger *zap.Logger) *Reconciler {
	return &Reconciler{db: db, snapshots: snapshots, logger: logger}
}

// Reconcile upserts catalog entries and appends history for one new
// snapshot. Presence (first_seen/removed) is judged against the immediately
// preceding snapshot, while field-level changes are judged against the
// catalog's current row. The two baselines can disagree: a product missing
// for several snapshots that reappears unchanged keeps its catalog entry
// (so it is not first_seen) even though it was reported removed when it
// first dropped out. That asymmetry is intentional and preserved.
//
// The caller treats any error as a degraded, non-fatal outcome: the
// snapshot itself is already durable.
func (r *Reconciler) Reconcile(ctx context.Context, retailer, snapshotID string) error {
	rows, err := r.snapshots.Products(ctx, snapshotID)
	if err != nil {
		return err
	}

	newByID := indexByWebshopID(rows)
	if len(newByID) == 0 {
		return nil
	}

	oldByID, err := r.previousProducts(ctx, retailer, snapshotID)
	if err != nil {
		return err
	}

	existing, err := r.existingEntries(ctx, retailer, unionIDs(oldByID, newByID))
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	var history []models.HistoryEntry

	for _, webshopID := range sortedKeys(newByID) {
		next := newByID[webshopID]
		entry := existing[webshopID]

		kind, changes := Classify(entry, next)

		productID, err := r.upsert(ctx, retailer, entry, next, now)
		if err != nil {
			return err
		}

		if kind == EventUnchanged {
			continue
		}
		history = append(history, models.HistoryEntry{
			ID:              uuid.NewString(),
			ProductID:       productID,
			SnapshotID:      snapshotID,
			EventType:       string(kind),
			Changes:         snapmodels.MustJSON(changes),
			PriceAtSnapshot: next.Price,
			CreatedAt:       now,
		})
	}

	for _, webshopID := range sortedKeys(oldByID) {
		if _, stillPresent := newByID[webshopID]; stillPresent {
			continue
		}
		entry := existing[webshopID]
		if entry == nil {
			continue
		}
		err := r.db.WithContext(ctx).Model(&models.CatalogEntry{}).
			Where("id = ?", entry.ID).
			Updates(map[string]any{
				"is_available": false,
				"updated_at":   now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to mark %s unavailable: %w", webshopID, err)
		}
		history = append(history, models.HistoryEntry{
			ID:         uuid.NewString(),
			ProductID:  entry.ID,
			SnapshotID: snapshotID,
			EventType:  string(EventRemoved),
			Changes:    snapmodels.MustJSON(Changeset{}),
			CreatedAt:  now,
		})
	}

	for start := 0; start < len(history); start += historyChunkSize {
		end := start + historyChunkSize
		if end > len(history) {
			end = len(history)
		}
		chunk := history[start:end]
		if err := r.db.WithContext(ctx).Create(&chunk).Error; err != nil {
			return fmt.Errorf("failed to append history: %w", err)
		}
	}

	return nil
}

// previousProducts indexes the snapshot immediately preceding snapshotID,
// or returns an empty index when this is the retailer's first snapshot.
func (r *Reconciler) previousProducts(ctx context.Context, retailer, snapshotID string) (map[string]snapmodels.SnapshotProduct, error) {
	snaps, err := r.snapshots.Snapshots(ctx, retailer)
	if err != nil {
		return nil, err
	}
	var prevID string
	for i, s := range snaps {
		if s.ID == snapshotID && i+1 < len(snaps) {
			prevID = snaps[i+1].ID
			break
		}
	}
	if prevID == "" {
		return map[string]snapmodels.SnapshotProduct{}, nil
	}
	rows, err := r.snapshots.Products(ctx, prevID)
	if err != nil {
		return nil, err
	}
	return indexByWebshopID(rows), nil
}

// existingEntries fetches the catalog rows for the given webshop ids in
// IN-clause chunks of 100.
func (r *Reconciler) existingEntries(ctx context.Context, retailer string, ids []string) (map[string]*models.CatalogEntry, error) {
	existing := make(map[string]*models.CatalogEntry, len(ids))
	for start := 0; start < len(ids); start += lookupChunkSize {
		end := start + lookupChunkSize
		if end > len(ids) {
			end = len(ids)
		}
		var entries []models.CatalogEntry
		err := r.db.WithContext(ctx).
			Where("retailer = ? AND webshop_id IN ?", retailer, ids[start:end]).
			Find(&entries).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog entries: %w", err)
		}
		for i := range entries {
			existing[entries[i].WebshopID] = &entries[i]
		}
	}
	return existing, nil
}

// upsert writes the entry's new field values, creating it when unknown.
// Returns the catalog entry id.
func (r *Reconciler) upsert(ctx context.Context, retailer string, entry *models.CatalogEntry, next snapmodels.SnapshotProduct, now time.Time) (string, error) {
	values := models.EntryFromProduct(retailer, next)

	if entry != nil {
		err := r.db.WithContext(ctx).Model(&models.CatalogEntry{}).
			Where("id = ?", entry.ID).
			Updates(map[string]any{
				"title":                  values.Title,
				"brand":                  values.Brand,
				"price":                  values.Price,
				"sales_unit_size":        values.SalesUnitSize,
				"unit_price_description": values.UnitPriceDescription,
				"nutriscore":             values.Nutriscore,
				"main_category":          values.MainCategory,
				"sub_category":           values.SubCategory,
				"image_url":              values.ImageURL,
				"is_bonus":               values.IsBonus,
				"is_available":           true,
				"last_seen_at":           now,
				"updated_at":             now,
			}).Error
		if err != nil {
			return "", fmt.Errorf("failed to update catalog entry %s: %w", next.WebshopID, err)
		}
		return entry.ID, nil
	}

	values.ID = uuid.NewString()
	values.FirstSeenAt = now
	values.LastSeenAt = now
	if err := r.db.WithContext(ctx).Create(&values).Error; err != nil {
		return "", fmt.Errorf("failed to insert catalog entry %s: %w", next.WebshopID, err)
	}
	return values.ID, nil
}

// indexByWebshopID keys rows by external id, skipping rows without one.
// Last seen wins when a batch contains duplicates.
func indexByWebshopID(rows []snapmodels.SnapshotProduct) map[string]snapmodels.SnapshotProduct {
	idx := make(map[string]snapmodels.SnapshotProduct, len(rows))
	for _, row := range rows {
		if row.WebshopID == "" {
			continue
		}
		idx[row.WebshopID] = row
	}
	return idx
}

func unionIDs(old, new map[string]snapmodels.SnapshotProduct) []string {
	seen := make(map[string]struct{}, len(old)+len(new))
	ids := make([]string, 0, len(old)+len(new))
	for id := range old {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for id := range new {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func sortedKeys(m map[string]snapmodels.SnapshotProduct) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
