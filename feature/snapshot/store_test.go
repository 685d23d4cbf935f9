package snapshot_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"broodradar/core/database"
	"broodradar/feature/snapshot"
	"broodradar/feature/snapshot/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	err = db.AutoMigrate(&models.Snapshot{}, &models.SnapshotProduct{})
	assert.NoError(t, err)
	return db
}

func fullCaps() database.CapabilitySet {
	return database.CapabilitySet{RetailerColumn: true, Catalog: true}
}

func price(v float64) *float64 { return &v }

func TestStore_CreateAndReadBack(t *testing.T) {
	db := newTestDB(t)
	store := snapshot.NewStore(db, fullCaps(), zap.NewNop())
	ctx := context.Background()

	raw := json.RawMessage(`{"webshopId":"wi1","title":"Bruin brood"}`)
	products := []models.RawProduct{
		{
			WebshopID:        "wi1",
			Title:            "Bruin brood",
			Brand:            "AH",
			PriceBeforeBonus: price(1.49),
			IsBonus:          false,
			Images: []models.RawImage{
				{URL: "https://img/800.jpg", Width: 800},
				{URL: "https://img/200.jpg", Width: 200},
			},
			Raw: raw,
		},
		{
			WebshopID:        "wi2",
			Title:            "Croissant",
			PriceBeforeBonus: price(0.89),
			IsBonus:          true,
			Images:           []models.RawImage{{URL: "https://img/first.jpg", Width: 400}},
		},
		{
			WebshopID: "wi3",
			Title:     "Stokbrood",
		},
	}

	id, err := store.Create(ctx, "ah", products, "ochtendrun")
	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	snaps, err := store.Snapshots(ctx, "ah")
	assert.NoError(t, err)
	assert.Len(t, snaps, 1)
	assert.Equal(t, 3, snaps[0].ProductCount)
	assert.Equal(t, "ochtendrun", snaps[0].Label)

	rows, err := store.Products(ctx, id)
	assert.NoError(t, err)
	// count equals input length, always
	assert.Len(t, rows, len(products))

	byID := make(map[string]models.SnapshotProduct)
	for _, r := range rows {
		byID[r.WebshopID] = r
	}

	// image policy: width 200 preferred, else first image, else empty
	assert.Equal(t, "https://img/200.jpg", byID["wi1"].ImageURL)
	assert.Equal(t, "https://img/first.jpg", byID["wi2"].ImageURL)
	assert.Equal(t, "", byID["wi3"].ImageURL)

	assert.Equal(t, 1.49, *byID["wi1"].Price)
	assert.Nil(t, byID["wi3"].Price)
	assert.JSONEq(t, string(raw), string(byID["wi1"].RawJSON))
}

func TestStore_CreateLargeBatchIsChunked(t *testing.T) {
	db := newTestDB(t)
	store := snapshot.NewStore(db, fullCaps(), zap.NewNop())
	ctx := context.Background()

	products := make([]models.RawProduct, 1203)
	for i := range products {
		products[i] = models.RawProduct{
			WebshopID: fmt.Sprintf("wi%d", i),
			Title:     fmt.Sprintf("Product %d", i),
		}
	}

	id, err := store.Create(ctx, "jumbo", products, "")
	assert.NoError(t, err)

	rows, err := store.Products(ctx, id)
	assert.NoError(t, err)
	assert.Len(t, rows, 1203)
}

func TestStore_CreateLaterChunkFailureSurfacesError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	// Snapshot row and first chunk commit; the second chunk fails.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `snapshots`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `products`").WillReturnResult(sqlmock.NewResult(1, 500))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `products`").WillReturnError(fmt.Errorf("max_allowed_packet exceeded"))
	mock.ExpectRollback()

	store := snapshot.NewStore(db, fullCaps(), zap.NewNop())

	products := make([]models.RawProduct, 600)
	for i := range products {
		products[i] = models.RawProduct{
			WebshopID: fmt.Sprintf("wi%d", i),
			Title:     fmt.Sprintf("Product %d", i),
		}
	}

	id, err := store.Create(context.Background(), "ah", products, "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chunk 500-600")
	// The snapshot id is still returned; snapshot row and first chunk
	// were committed before the failure.
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SnapshotsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	store := snapshot.NewStore(db, fullCaps(), zap.NewNop())
	ctx := context.Background()

	first, err := store.Create(ctx, "ah", nil, "first")
	assert.NoError(t, err)
	// Distinct timestamps: bump the first snapshot into the past.
	err = db.Model(&models.Snapshot{}).Where("id = ?", first).
		Update("created_at", gorm.Expr("datetime('now', '-1 hour')")).Error
	assert.NoError(t, err)

	second, err := store.Create(ctx, "ah", nil, "second")
	assert.NoError(t, err)

	snaps, err := store.Snapshots(ctx, "ah")
	assert.NoError(t, err)
	assert.Len(t, snaps, 2)
	assert.Equal(t, second, snaps[0].ID)
	assert.Equal(t, first, snaps[1].ID)
}

func TestStore_SnapshotsRetailerFilter(t *testing.T) {
	db := newTestDB(t)
	store := snapshot.NewStore(db, fullCaps(), zap.NewNop())
	ctx := context.Background()

	_, err := store.Create(ctx, "ah", nil, "")
	assert.NoError(t, err)
	_, err = store.Create(ctx, "jumbo", nil, "")
	assert.NoError(t, err)

	snaps, err := store.Snapshots(ctx, "jumbo")
	assert.NoError(t, err)
	assert.Len(t, snaps, 1)
	assert.Equal(t, "jumbo", snaps[0].Retailer)

	all, err := store.Snapshots(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStore_LegacySchemaSingleRetailer(t *testing.T) {
	db := newTestDB(t)
	// Pre-migration behavior: the retailer column is unknown to the store.
	store := snapshot.NewStore(db, database.CapabilitySet{}, zap.NewNop())
	ctx := context.Background()

	_, err := store.Create(ctx, "ah", []models.RawProduct{{WebshopID: "wi1"}}, "")
	assert.NoError(t, err)

	// Everything belongs to the default retailer.
	snaps, err := store.Snapshots(ctx, "ah")
	assert.NoError(t, err)
	assert.Len(t, snaps, 1)
	assert.Empty(t, snaps[0].Retailer)

	// Any other retailer has no data by definition.
	other, err := store.Snapshots(ctx, "jumbo")
	assert.NoError(t, err)
	assert.Empty(t, other)
}

func TestStore_LatestProducts(t *testing.T) {
	db := newTestDB(t)
	store := snapshot.NewStore(db, fullCaps(), zap.NewNop())
	ctx := context.Background()

	empty, err := store.LatestProducts(ctx, "ah")
	assert.NoError(t, err)
	assert.Empty(t, empty)

	first, err := store.Create(ctx, "ah", []models.RawProduct{{WebshopID: "old"}}, "")
	assert.NoError(t, err)
	err = db.Model(&models.Snapshot{}).Where("id = ?", first).
		Update("created_at", gorm.Expr("datetime('now', '-1 hour')")).Error
	assert.NoError(t, err)

	_, err = store.Create(ctx, "ah", []models.RawProduct{{WebshopID: "new"}}, "")
	assert.NoError(t, err)

	rows, err := store.LatestProducts(ctx, "ah")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "new", rows[0].WebshopID)
}
