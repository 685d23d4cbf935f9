package snapshot

import (
	"context"
	"fmt"
	"time"

	"broodradar/core/database"
	"broodradar/feature/snapshot/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// insertChunkSize bounds a single product insert statement. The backend
// rejects oversized payloads; chunks are issued sequentially.
const insertChunkSize = 500

// Store persists and reads snapshots and their product rows.
type Store struct {
	db     *gorm.DB
	caps   database.CapabilitySet
	logger *zap.Logger
}

// NewStore creates a snapshot store.
func NewStore(db *gorm.DB, caps database.CapabilitySet, logger *zap.Logger) *Store {
	return &Store{db: db, caps: caps, logger: logger}
}

// Create persists one snapshot row plus one product row per input record and
// returns the new snapshot id. Inserts are chunked; there is no transaction
// spanning the whole operation, so a failure on a later chunk leaves earlier
// chunks committed and is surfaced as an error.
func (s *Store) Create(ctx context.Context, retailer string, products []models.RawProduct, label string) (string, error) {
	snap := models.Snapshot{
		ID:           uuid.NewString(),
		Retailer:     retailer,
		CreatedAt:    time.Now().UTC(),
		ProductCount: len(products),
		Label:        label,
	}

	tx := s.db.WithContext(ctx)
	if !s.caps.RetailerColumn {
		tx = tx.Omit("retailer")
	}
	if err := tx.Create(&snap).Error; err != nil {
		return "", fmt.Errorf("failed to insert snapshot: %w", err)
	}

	rows := make([]models.SnapshotProduct, 0, len(products))
	for _, p := range products {
		rows = append(rows, mapProduct(snap.ID, retailer, p))
	}

	for start := 0; start < len(rows); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[start:end]

		tx := s.db.WithContext(ctx)
		if !s.caps.RetailerColumn {
			tx = tx.Omit("retailer")
		}
		if err := tx.Create(&chunk).Error; err != nil {
			return snap.ID, fmt.Errorf("failed to insert product chunk %d-%d: %w", start, end, err)
		}
	}

	return snap.ID, nil
}

// Snapshot returns one snapshot by id, or nil when it does not exist.
func (s *Store) Snapshot(ctx context.Context, id string) (*models.Snapshot, error) {
	var snap models.Snapshot
	err := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&snap).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", id, err)
	}
	if snap.ID == "" {
		return nil, nil
	}
	return &snap, nil
}

// Snapshots returns all snapshots, newest first, optionally filtered by
// retailer. On a pre-migration schema every snapshot belongs to the default
// retailer; asking for any other retailer yields an empty result.
func (s *Store) Snapshots(ctx context.Context, retailer string) ([]models.Snapshot, error) {
	q := s.db.WithContext(ctx).Model(&models.Snapshot{}).Order("created_at DESC")

	if retailer != "" {
		if s.caps.RetailerColumn {
			q = q.Where("retailer = ?", retailer)
		} else if retailer != models.DefaultRetailer {
			return []models.Snapshot{}, nil
		}
	}

	var snaps []models.Snapshot
	if err := q.Find(&snaps).Error; err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snaps, nil
}

// Products returns the product rows of one snapshot, in no particular order.
func (s *Store) Products(ctx context.Context, snapshotID string) ([]models.SnapshotProduct, error) {
	var rows []models.SnapshotProduct
	err := s.db.WithContext(ctx).Where("snapshot_id = ?", snapshotID).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load products of snapshot %s: %w", snapshotID, err)
	}
	return rows, nil
}

// LatestProducts returns the products of the most recent snapshot for a
// retailer, or an empty slice when no snapshot exists.
func (s *Store) LatestProducts(ctx context.Context, retailer string) ([]models.SnapshotProduct, error) {
	snaps, err := s.Snapshots(ctx, retailer)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return []models.SnapshotProduct{}, nil
	}
	return s.Products(ctx, snaps[0].ID)
}

func mapProduct(snapshotID, retailer string, p models.RawProduct) models.SnapshotProduct {
	row := models.SnapshotProduct{
		ID:                      uuid.NewString(),
		SnapshotID:              snapshotID,
		Retailer:                retailer,
		WebshopID:               p.WebshopID,
		HqID:                    p.HqID.String(),
		Title:                   p.Title,
		Brand:                   p.Brand,
		SalesUnitSize:           p.SalesUnitSize,
		Price:                   p.PriceBeforeBonus,
		UnitPriceDescription:    p.UnitPriceDescription,
		MainCategory:            p.MainCategory,
		SubCategory:             p.SubCategory,
		Nutriscore:              p.Nutriscore,
		IsBonus:                 p.IsBonus,
		IsStapelBonus:           p.IsStapelBonus,
		DescriptionHighlights:   p.DescriptionHighlights,
		ImageURL:                p.ImageURL(),
		AvailableOnline:         p.AvailableOnline,
		OrderAvailabilityStatus: p.OrderAvailabilityStatus,
		Ingredients:             p.Ingredients,
	}
	if len(p.DiscountLabels) > 0 {
		row.DiscountLabels = models.JSON(p.DiscountLabels)
	}
	if len(p.PropertyIcons) > 0 {
		row.PropertyIcons = models.MustJSON(p.PropertyIcons)
	}
	if len(p.Raw) > 0 {
		row.RawJSON = models.JSON(p.Raw)
	}
	return row
}
