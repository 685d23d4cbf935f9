package catalog

import (
	"context"
	"encoding/json"

	"broodradar/feature/catalog/models"
	snapmodels "broodradar/feature/snapshot/models"
)

// versionHistoryLimit caps the ledger scan used for version navigation.
const versionHistoryLimit = 200

// ProductVersion is a product as it appeared in one snapshot, with ledger
// context and pointers to the adjacent versions.
type ProductVersion struct {
	Product      models.CatalogEntry `json:"product"`
	Snapshot     snapmodels.Snapshot `json:"snapshot"`
	HistoryEntry VersionHistory      `json:"history_entry"`
	Adjacent     AdjacentSnapshots   `json:"adjacent"`
	VersionIndex int                 `json:"version_index"`
	VersionCount int                 `json:"version_count"`
}

// VersionHistory is the ledger view of one version. Versions without a
// ledger row report an unchanged event with empty changes.
type VersionHistory struct {
	EventType EventType `json:"event_type"`
	Changes   Changeset `json:"changes"`
	Price     *float64  `json:"price_at_snapshot"`
}

// AdjacentSnapshots carries the neighbouring snapshot ids for navigation.
// Newest first: the newer neighbour is the more recent version.
type AdjacentSnapshots struct {
	NewerSnapshotID *string `json:"newer_snapshot_id"`
	OlderSnapshotID *string `json:"older_snapshot_id"`
}

// ProductAtSnapshot reconstructs a catalog product as it appeared in the
// given snapshot. Nil when the product did not occur in that snapshot.
func (s *Store) ProductAtSnapshot(ctx context.Context, productID, snapshotID string) (*ProductVersion, error) {
	entry, err := s.Product(ctx, productID)
	if err != nil || entry == nil {
		return nil, err
	}
	if entry.WebshopID == "" {
		return nil, nil
	}

	var rows []snapmodels.SnapshotProduct
	err = s.db.WithContext(ctx).
		Where("snapshot_id = ? AND webshop_id = ?", snapshotID, entry.WebshopID).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	row := rows[0]

	snap, err := s.snapshots.Snapshot(ctx, snapshotID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		snap = &snapmodels.Snapshot{ID: snapshotID, Retailer: entry.Retailer}
	}

	history, err := s.History(ctx, productID, versionHistoryLimit)
	if err != nil {
		return nil, err
	}

	version := VersionHistory{EventType: EventUnchanged, Changes: Changeset{}, Price: row.Price}
	currentIdx := -1
	for i, h := range history {
		if h.SnapshotID != snapshotID {
			continue
		}
		currentIdx = i
		version = VersionHistory{
			EventType: EventType(h.EventType),
			Changes:   decodeChangeset(h.Changes),
			Price:     h.PriceAtSnapshot,
		}
		break
	}

	adjacent := AdjacentSnapshots{}
	if currentIdx > 0 {
		adjacent.NewerSnapshotID = &history[currentIdx-1].SnapshotID
	}
	if currentIdx >= 0 && currentIdx+1 < len(history) {
		adjacent.OlderSnapshotID = &history[currentIdx+1].SnapshotID
	}

	// The frontend view combines the snapshot's field values with the
	// catalog's lifecycle timestamps.
	product := models.CatalogEntry{
		ID:                   entry.ID,
		Retailer:             entry.Retailer,
		WebshopID:            entry.WebshopID,
		Title:                row.Title,
		Brand:                row.Brand,
		Price:                row.Price,
		SalesUnitSize:        row.SalesUnitSize,
		UnitPriceDescription: row.UnitPriceDescription,
		Nutriscore:           row.Nutriscore,
		MainCategory:         row.MainCategory,
		SubCategory:          row.SubCategory,
		ImageURL:             row.ImageURL,
		IsBonus:              row.IsBonus,
		IsAvailable:          true,
		FirstSeenAt:          entry.FirstSeenAt,
		LastSeenAt:           entry.LastSeenAt,
		CreatedAt:            entry.CreatedAt,
		UpdatedAt:            entry.UpdatedAt,
	}

	versionIndex := 0
	if currentIdx >= 0 {
		versionIndex = currentIdx + 1
	}

	return &ProductVersion{
		Product:      product,
		Snapshot:     *snap,
		HistoryEntry: version,
		Adjacent:     adjacent,
		VersionIndex: versionIndex,
		VersionCount: len(history),
	}, nil
}

func decodeChangeset(raw snapmodels.JSON) Changeset {
	cs := Changeset{}
	if len(raw) == 0 {
		return cs
	}
	_ = json.Unmarshal(raw, &cs)
	return cs
}
