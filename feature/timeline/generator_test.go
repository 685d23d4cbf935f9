package timeline_test

import (
	"context"
	"testing"

	"broodradar/core/database"
	"broodradar/feature/diff"
	"broodradar/feature/snapshot"
	snapmodels "broodradar/feature/snapshot/models"
	"broodradar/feature/timeline"
	"broodradar/feature/timeline/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	err = db.AutoMigrate(&snapmodels.Snapshot{}, &snapmodels.SnapshotProduct{}, &models.TimelineEvent{})
	assert.NoError(t, err)
	return db
}

func newGenerator(db *gorm.DB) (*snapshot.Store, *timeline.Generator, *timeline.Store) {
	caps := database.CapabilitySet{RetailerColumn: true, Catalog: true}
	snapshots := snapshot.NewStore(db, caps, zap.NewNop())
	engine := diff.NewEngine(snapshots, zap.NewNop())
	gen := timeline.NewGenerator(db, snapshots, engine, zap.NewNop())
	return snapshots, gen, timeline.NewStore(db, zap.NewNop())
}

func price(v float64) *float64 { return &v }

func createSnapshot(t *testing.T, db *gorm.DB, store *snapshot.Store, retailer string, products []snapmodels.RawProduct) string {
	t.Helper()
	err := db.Model(&snapmodels.Snapshot{}).
		Where("retailer = ?", retailer).
		Update("created_at", gorm.Expr("datetime(created_at, '-1 hour')")).Error
	assert.NoError(t, err)
	id, err := store.Create(context.Background(), retailer, products, "")
	assert.NoError(t, err)
	return id
}

func TestGenerate_FirstSnapshotProducesNothing(t *testing.T) {
	db := newTestDB(t)
	snapshots, gen, store := newGenerator(db)
	ctx := context.Background()

	snapID := createSnapshot(t, db, snapshots, "ah", []snapmodels.RawProduct{
		{WebshopID: "wi1", Title: "Bruin brood", PriceBeforeBonus: price(1.50)},
	})
	assert.NoError(t, gen.Generate(ctx, "ah", snapID))

	events, err := store.Events(ctx, 50, "", "")
	assert.NoError(t, err)
	assert.Empty(t, events)
}

func TestGenerate_EventKindsAndDetails(t *testing.T) {
	db := newTestDB(t)
	snapshots, gen, store := newGenerator(db)
	ctx := context.Background()

	createSnapshot(t, db, snapshots, "ah", []snapmodels.RawProduct{
		{WebshopID: "wi1", Title: "Bruin brood", PriceBeforeBonus: price(1.50)},
		{WebshopID: "wi2", Title: "Stokbrood", PriceBeforeBonus: price(1.19)},
	})
	second := createSnapshot(t, db, snapshots, "ah", []snapmodels.RawProduct{
		{WebshopID: "wi1", Title: "Bruin brood", PriceBeforeBonus: price(1.20), IsBonus: true},
		{WebshopID: "wi3", Title: "Croissant", PriceBeforeBonus: price(0.89)},
	})
	assert.NoError(t, gen.Generate(ctx, "ah", second))

	events, err := store.Events(ctx, 50, "ah", "")
	assert.NoError(t, err)
	assert.Len(t, events, 4)

	byType := make(map[string]models.TimelineEvent, len(events))
	for _, e := range events {
		byType[e.EventType] = e
	}

	assert.Equal(t, "Croissant", byType[models.EventNewProduct].ProductTitle)
	assert.Contains(t, string(byType[models.EventNewProduct].Details), "0.89")
	assert.Equal(t, "Stokbrood", byType[models.EventRemovedProduct].ProductTitle)
	assert.Equal(t, "{}", string(byType[models.EventRemovedProduct].Details))
	assert.Contains(t, string(byType[models.EventPriceChange].Details), `"pct_change":-20`)
	assert.Contains(t, string(byType[models.EventBonusChange].Details), `"is_bonus":true`)
}

func TestStore_EventFilters(t *testing.T) {
	db := newTestDB(t)
	snapshots, gen, store := newGenerator(db)
	ctx := context.Background()

	createSnapshot(t, db, snapshots, "ah", []snapmodels.RawProduct{
		{WebshopID: "wi1", Title: "Bruin brood", PriceBeforeBonus: price(1.50)},
	})
	second := createSnapshot(t, db, snapshots, "ah", []snapmodels.RawProduct{
		{WebshopID: "wi1", Title: "Bruin brood", PriceBeforeBonus: price(1.20)},
		{WebshopID: "wi2", Title: "Croissant", PriceBeforeBonus: price(0.89)},
	})
	assert.NoError(t, gen.Generate(ctx, "ah", second))

	priceOnly, err := store.Events(ctx, 50, "ah", models.EventPriceChange)
	assert.NoError(t, err)
	assert.Len(t, priceOnly, 1)

	otherRetailer, err := store.Events(ctx, 50, "jumbo", "")
	assert.NoError(t, err)
	assert.Empty(t, otherRetailer)

	limited, err := store.Events(ctx, 1, "", "")
	assert.NoError(t, err)
	assert.Len(t, limited, 1)
}
