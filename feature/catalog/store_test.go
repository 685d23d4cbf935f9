package catalog_test

import (
	"context"
	"testing"

	"broodradar/core/database"
	"broodradar/feature/catalog"
	"broodradar/feature/catalog/models"
	"broodradar/feature/snapshot"
	snapmodels "broodradar/feature/snapshot/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestStore_ProductsOrderedByTitle(t *testing.T) {
	db := newTestDB(t)
	snapshots := snapshot.NewStore(db, fullCaps(), zap.NewNop())
	rec := catalog.NewReconciler(db, snapshots, zap.NewNop())
	store := catalog.NewStore(db, fullCaps(), snapshots, zap.NewNop())
	ctx := context.Background()

	snapID := createSnapshot(t, db, snapshots, "ah", []snapmodels.RawProduct{
		rawProduct("wi1", "Croissant", price(0.89), false),
		rawProduct("wi2", "Bruin brood", price(1.50), false),
	})
	assert.NoError(t, rec.Reconcile(ctx, "ah", snapID))

	entries, err := store.Products(ctx, "ah")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "Bruin brood", entries[0].Title)
	assert.Equal(t, "Croissant", entries[1].Title)

	other, err := store.Products(ctx, "jumbo")
	assert.NoError(t, err)
	assert.Empty(t, other)
}

func TestStore_ProductLookups(t *testing.T) {
	db := newTestDB(t)
	snapshots := snapshot.NewStore(db, fullCaps(), zap.NewNop())
	rec := catalog.NewReconciler(db, snapshots, zap.NewNop())
	store := catalog.NewStore(db, fullCaps(), snapshots, zap.NewNop())
	ctx := context.Background()

	snapID := createSnapshot(t, db, snapshots, "ah", []snapmodels.RawProduct{
		rawProduct("wi1", "Bruin brood", price(1.50), false),
	})
	assert.NoError(t, rec.Reconcile(ctx, "ah", snapID))

	byWebshop, err := store.ProductByWebshopID(ctx, "ah", "wi1")
	assert.NoError(t, err)
	assert.NotNil(t, byWebshop)

	byID, err := store.Product(ctx, byWebshop.ID)
	assert.NoError(t, err)
	assert.Equal(t, byWebshop.ID, byID.ID)

	missing, err := store.Product(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = store.ProductByWebshopID(ctx, "ah", "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_HistoryNewestFirst(t *testing.T) {
	db := newTestDB(t)
	snapshots := snapshot.NewStore(db, fullCaps(), zap.NewNop())
	rec := catalog.NewReconciler(db, snapshots, zap.NewNop())
	store := catalog.NewStore(db, fullCaps(), snapshots, zap.NewNop())
	ctx := context.Background()

	first := createSnapshot(t, db, snapshots, "ah", []snapmodels.RawProduct{
		rawProduct("wi1", "Bruin brood", price(1.50), false),
	})
	assert.NoError(t, rec.Reconcile(ctx, "ah", first))
	second := createSnapshot(t, db, snapshots, "ah", []snapmodels.RawProduct{
		rawProduct("wi1", "Bruin brood", price(1.20), false),
	})
	assert.NoError(t, rec.Reconcile(ctx, "ah", second))

	entry, err := store.ProductByWebshopID(ctx, "ah", "wi1")
	assert.NoError(t, err)

	// History rows from the same reconcile share a timestamp, so order the
	// assertion by event type rather than position.
	history, err := store.History(ctx, entry.ID, 10)
	assert.NoError(t, err)
	assert.Len(t, history, 2)
	kinds := []string{history[0].EventType, history[1].EventType}
	assert.Contains(t, kinds, string(catalog.EventFirstSeen))
	assert.Contains(t, kinds, string(catalog.EventPriceChange))

	limited, err := store.History(ctx, entry.ID, 1)
	assert.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestStore_EnsureEntryBackfillsWithoutHistory(t *testing.T) {
	db := newTestDB(t)
	snapshots := snapshot.NewStore(db, fullCaps(), zap.NewNop())
	store := catalog.NewStore(db, fullCaps(), snapshots, zap.NewNop())
	ctx := context.Background()

	createSnapshot(t, db, snapshots, "ah", []snapmodels.RawProduct{
		rawProduct("wi1", "Bruin brood", price(1.50), false),
	})

	entry, err := store.EnsureEntry(ctx, "ah", "wi1")
	assert.NoError(t, err)
	assert.NotNil(t, entry)
	assert.Equal(t, "Bruin brood", entry.Title)
	assert.True(t, entry.IsAvailable)

	var historyCount int64
	assert.NoError(t, db.Model(&models.HistoryEntry{}).Count(&historyCount).Error)
	assert.Zero(t, historyCount)

	// Second call returns the existing row.
	again, err := store.EnsureEntry(ctx, "ah", "wi1")
	assert.NoError(t, err)
	assert.Equal(t, entry.ID, again.ID)

	missing, err := store.EnsureEntry(ctx, "ah", "wi9")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_EnsureEntriesMapsAllIDs(t *testing.T) {
	db := newTestDB(t)
	snapshots := snapshot.NewStore(db, fullCaps(), zap.NewNop())
	rec := catalog.NewReconciler(db, snapshots, zap.NewNop())
	store := catalog.NewStore(db, fullCaps(), snapshots, zap.NewNop())
	ctx := context.Background()

	first := createSnapshot(t, db, snapshots, "ah", []snapmodels.RawProduct{
		rawProduct("wi1", "Bruin brood", price(1.50), false),
	})
	assert.NoError(t, rec.Reconcile(ctx, "ah", first))

	// wi2 exists only in the (unreconciled) latest snapshot.
	createSnapshot(t, db, snapshots, "ah", []snapmodels.RawProduct{
		rawProduct("wi1", "Bruin brood", price(1.50), false),
		rawProduct("wi2", "Croissant", price(0.89), false),
	})

	ids, err := store.EnsureEntries(ctx, "ah", []string{"wi1", "wi2", "wi9"})
	assert.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.NotEmpty(t, ids["wi1"])
	assert.NotEmpty(t, ids["wi2"])
}

func TestStore_NoCatalogSchema(t *testing.T) {
	db := newTestDB(t)
	caps := database.CapabilitySet{RetailerColumn: true}
	snapshots := snapshot.NewStore(db, caps, zap.NewNop())
	store := catalog.NewStore(db, caps, snapshots, zap.NewNop())
	ctx := context.Background()

	entries, err := store.Products(ctx, "ah")
	assert.NoError(t, err)
	assert.Empty(t, entries)

	entry, err := store.EnsureEntry(ctx, "ah", "wi1")
	assert.NoError(t, err)
	assert.Nil(t, entry)
}

func TestStore_ProductAtSnapshot(t *testing.T) {
	db := newTestDB(t)
	snapshots := snapshot.NewStore(db, fullCaps(), zap.NewNop())
	rec := catalog.NewReconciler(db, snapshots, zap.NewNop())
	store := catalog.NewStore(db, fullCaps(), snapshots, zap.NewNop())
	ctx := context.Background()

	first := createSnapshot(t, db, snapshots, "ah", []snapmodels.RawProduct{
		rawProduct("wi1", "Bruin brood", price(1.50), false),
	})
	assert.NoError(t, rec.Reconcile(ctx, "ah", first))
	second := createSnapshot(t, db, snapshots, "ah", []snapmodels.RawProduct{
		rawProduct("wi1", "Bruin brood", price(1.20), false),
	})
	assert.NoError(t, rec.Reconcile(ctx, "ah", second))

	entry, err := store.ProductByWebshopID(ctx, "ah", "wi1")
	assert.NoError(t, err)

	version, err := store.ProductAtSnapshot(ctx, entry.ID, first)
	assert.NoError(t, err)
	assert.NotNil(t, version)
	assert.Equal(t, 1.50, *version.Product.Price)
	assert.Equal(t, catalog.EventFirstSeen, version.HistoryEntry.EventType)
	assert.Equal(t, 2, version.VersionCount)
	assert.Equal(t, 2, version.VersionIndex)
	assert.NotNil(t, version.Adjacent.NewerSnapshotID)
	assert.Equal(t, second, *version.Adjacent.NewerSnapshotID)
	assert.Nil(t, version.Adjacent.OlderSnapshotID)

	latest, err := store.ProductAtSnapshot(ctx, entry.ID, second)
	assert.NoError(t, err)
	assert.Equal(t, catalog.EventPriceChange, latest.HistoryEntry.EventType)
	assert.Equal(t, 1, latest.VersionIndex)
	assert.Equal(t, first, *latest.Adjacent.OlderSnapshotID)
	assert.Nil(t, latest.Adjacent.NewerSnapshotID)

	gone, err := store.ProductAtSnapshot(ctx, entry.ID, "no-such-snapshot")
	assert.NoError(t, err)
	assert.Nil(t, gone)
}
