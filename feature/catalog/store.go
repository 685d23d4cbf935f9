package catalog

import (
	"context"
	"fmt"
	"time"

	"broodradar/core/database"
	"broodradar/feature/catalog/models"
	"broodradar/feature/snapshot"
	snapmodels "broodradar/feature/snapshot/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ensureChunkSize bounds a lazy catalog backfill insert statement.
const ensureChunkSize = 100

// Store reads and lazily maintains the catalog and the history ledger.
type Store struct {
	db        *gorm.DB
	caps      database.CapabilitySet
	snapshots *snapshot.Store
	logger    *zap.Logger
}

// NewStore creates a catalog store.
func NewStore(db *gorm.DB, caps database.CapabilitySet, snapshots *snapshot.Store, logger *zap.Logger) *Store {
	return &Store{db: db, caps: caps, snapshots: snapshots, logger: logger}
}

// Products returns the catalog for a retailer ordered by title. An empty
// result, not an error, when the schema has no catalog.
func (s *Store) Products(ctx context.Context, retailer string) ([]models.CatalogEntry, error) {
	if !s.caps.Catalog {
		return []models.CatalogEntry{}, nil
	}
	var entries []models.CatalogEntry
	err := s.db.WithContext(ctx).
		Where("retailer = ?", retailer).
		Order("title").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	return entries, nil
}

// Product returns one catalog entry by id, or nil when not found.
func (s *Store) Product(ctx context.Context, id string) (*models.CatalogEntry, error) {
	if !s.caps.Catalog {
		return nil, nil
	}
	var entry models.CatalogEntry
	err := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&entry).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog entry %s: %w", id, err)
	}
	if entry.ID == "" {
		return nil, nil
	}
	return &entry, nil
}

// ProductByWebshopID looks a catalog entry up by its external id.
func (s *Store) ProductByWebshopID(ctx context.Context, retailer, webshopID string) (*models.CatalogEntry, error) {
	if !s.caps.Catalog {
		return nil, nil
	}
	var entry models.CatalogEntry
	err := s.db.WithContext(ctx).
		Where("retailer = ? AND webshop_id = ?", retailer, webshopID).
		Limit(1).Find(&entry).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog entry for %s/%s: %w", retailer, webshopID, err)
	}
	if entry.ID == "" {
		return nil, nil
	}
	return &entry, nil
}

// History returns a product's ledger entries, newest first.
func (s *Store) History(ctx context.Context, productID string, limit int) ([]models.HistoryEntry, error) {
	if !s.caps.Catalog {
		return []models.HistoryEntry{}, nil
	}
	if limit <= 0 {
		limit = 50
	}
	var entries []models.HistoryEntry
	err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load history for %s: %w", productID, err)
	}
	return entries, nil
}

// CatalogIDs maps webshop ids to catalog ids for one retailer.
func (s *Store) CatalogIDs(ctx context.Context, retailer string, webshopIDs []string) (map[string]string, error) {
	ids := make(map[string]string)
	if !s.caps.Catalog || len(webshopIDs) == 0 {
		return ids, nil
	}
	for start := 0; start < len(webshopIDs); start += ensureChunkSize {
		end := start + ensureChunkSize
		if end > len(webshopIDs) {
			end = len(webshopIDs)
		}
		var entries []models.CatalogEntry
		err := s.db.WithContext(ctx).
			Select("id", "webshop_id").
			Where("retailer = ? AND webshop_id IN ?", retailer, webshopIDs[start:end]).
			Find(&entries).Error
		if err != nil {
			return nil, fmt.Errorf("failed to map catalog ids: %w", err)
		}
		for _, e := range entries {
			ids[e.WebshopID] = e.ID
		}
	}
	return ids, nil
}

// EnsureEntry returns the catalog entry for (retailer, webshopID), creating
// it from the latest snapshot when missing. Nil when the product is not in
// the latest snapshot either. No history is written for a lazy backfill:
// only snapshot-driven changes belong in the ledger.
func (s *Store) EnsureEntry(ctx context.Context, retailer, webshopID string) (*models.CatalogEntry, error) {
	if !s.caps.Catalog {
		return nil, nil
	}
	existing, err := s.ProductByWebshopID(ctx, retailer, webshopID)
	if err != nil || existing != nil {
		return existing, err
	}

	rows, err := s.snapshots.LatestProducts(ctx, retailer)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.WebshopID != webshopID {
			continue
		}
		entry := models.EntryFromProduct(retailer, row)
		entry.ID = uuid.NewString()
		now := time.Now().UTC()
		entry.FirstSeenAt = now
		entry.LastSeenAt = now
		if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
			return nil, fmt.Errorf("failed to backfill catalog entry %s: %w", webshopID, err)
		}
		return &entry, nil
	}
	return nil, nil
}

// EnsureEntries backfills catalog entries for every given webshop id that is
// missing, sourcing field values from the latest snapshot. Returns the full
// webshop id to catalog id mapping (existing plus created).
func (s *Store) EnsureEntries(ctx context.Context, retailer string, webshopIDs []string) (map[string]string, error) {
	if !s.caps.Catalog || len(webshopIDs) == 0 {
		return map[string]string{}, nil
	}
	ids, err := s.CatalogIDs(ctx, retailer, webshopIDs)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, wid := range webshopIDs {
		if wid == "" {
			continue
		}
		if _, ok := ids[wid]; !ok {
			missing = append(missing, wid)
		}
	}
	if len(missing) == 0 {
		return ids, nil
	}

	rows, err := s.snapshots.LatestProducts(ctx, retailer)
	if err != nil {
		return nil, err
	}
	byWebshop := make(map[string]snapmodels.SnapshotProduct, len(rows))
	for _, row := range rows {
		if row.WebshopID != "" {
			byWebshop[row.WebshopID] = row
		}
	}

	now := time.Now().UTC()
	var toInsert []models.CatalogEntry
	for _, wid := range missing {
		row, ok := byWebshop[wid]
		if !ok {
			continue
		}
		entry := models.EntryFromProduct(retailer, row)
		entry.ID = uuid.NewString()
		entry.FirstSeenAt = now
		entry.LastSeenAt = now
		toInsert = append(toInsert, entry)
	}

	for start := 0; start < len(toInsert); start += ensureChunkSize {
		end := start + ensureChunkSize
		if end > len(toInsert) {
			end = len(toInsert)
		}
		chunk := toInsert[start:end]
		if err := s.db.WithContext(ctx).Create(&chunk).Error; err != nil {
			return nil, fmt.Errorf("failed to backfill catalog entries: %w", err)
		}
		for _, e := range chunk {
			ids[e.WebshopID] = e.ID
		}
	}

	return ids, nil
}
