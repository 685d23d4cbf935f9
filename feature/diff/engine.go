package diff

import (
	"context"
	"math"
	"sort"

	"broodradar/feature/snapshot"
	"broodradar/feature/snapshot/models"

	"go.uber.org/zap"
)

// Result holds every difference between two snapshots. Product lists are
// ordered by webshop id so repeated comparisons yield identical output.
type Result struct {
	NewProducts     []models.SnapshotProduct `json:"new_products"`
	RemovedProducts []models.SnapshotProduct `json:"removed_products"`
	PriceChanges    []PriceChange            `json:"price_changes"`
	BonusChanges    []BonusChange            `json:"bonus_changes"`
}

// PriceChange is one product whose price differs between the snapshots.
// A missing price is treated as zero on either side, and no percentage is
// computed against a zero old price.
type PriceChange struct {
	Product   models.SnapshotProduct `json:"product"`
	OldPrice  float64                `json:"old_price"`
	NewPrice  float64                `json:"new_price"`
	PctChange float64                `json:"pct_change"`
}

// BonusChange is one product whose bonus flag flipped between the snapshots.
type BonusChange struct {
	Product  models.SnapshotProduct `json:"product"`
	WasBonus bool                   `json:"was_bonus"`
	IsBonus  bool                   `json:"is_bonus"`
}

// Engine compares snapshot pairs.
type Engine struct {
	snapshots *snapshot.Store
	logger    *zap.Logger
}

// NewEngine creates a diff engine.
func NewEngine(snapshots *snapshot.Store, logger *zap.Logger) *Engine {
	return &Engine{snapshots: snapshots, logger: logger}
}

// Compare diffs two snapshots by webshop id. The snapshots are usually
// adjacent in time but any pair works; swapping the arguments mirrors the
// result.
func (e *Engine) Compare(ctx context.Context, oldID, newID string) (*Result, error) {
	oldRows, err := e.snapshots.Products(ctx, oldID)
	if err != nil {
		return nil, err
	}
	newRows, err := e.snapshots.Products(ctx, newID)
	if err != nil {
		return nil, err
	}
	return Compute(oldRows, newRows), nil
}

// Compute diffs two product sets without touching storage.
func Compute(oldRows, newRows []models.SnapshotProduct) *Result {
	old := indexRows(oldRows)
	new := indexRows(newRows)

	result := &Result{
		NewProducts:     []models.SnapshotProduct{},
		RemovedProducts: []models.SnapshotProduct{},
		PriceChanges:    []PriceChange{},
		BonusChanges:    []BonusChange{},
	}

	for _, wid := range sortedKeys(new) {
		if _, ok := old[wid]; !ok {
			result.NewProducts = append(result.NewProducts, new[wid])
		}
	}
	for _, wid := range sortedKeys(old) {
		if _, ok := new[wid]; !ok {
			result.RemovedProducts = append(result.RemovedProducts, old[wid])
		}
	}

	for _, wid := range sortedKeys(old) {
		after, ok := new[wid]
		if !ok {
			continue
		}
		before := old[wid]

		oldPrice := priceOrZero(before.Price)
		newPrice := priceOrZero(after.Price)
		if oldPrice != newPrice {
			pct := 0.0
			if oldPrice != 0 {
				pct = math.Round((newPrice-oldPrice)/oldPrice*1000) / 10
			}
			result.PriceChanges = append(result.PriceChanges, PriceChange{
				Product:   after,
				OldPrice:  oldPrice,
				NewPrice:  newPrice,
				PctChange: pct,
			})
		}

		if before.IsBonus != after.IsBonus {
			result.BonusChanges = append(result.BonusChanges, BonusChange{
				Product:  after,
				WasBonus: before.IsBonus,
				IsBonus:  after.IsBonus,
			})
		}
	}

	return result
}

func indexRows(rows []models.SnapshotProduct) map[string]models.SnapshotProduct {
	idx := make(map[string]models.SnapshotProduct, len(rows))
	for _, row := range rows {
		if row.WebshopID == "" {
			continue
		}
		idx[row.WebshopID] = row
	}
	return idx
}

func sortedKeys(m map[string]models.SnapshotProduct) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func priceOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
