package retailer_test

import (
	"context"
	"testing"

	"broodradar/core/database"
	"broodradar/feature/retailer"
	"broodradar/feature/snapshot"
	snapmodels "broodradar/feature/snapshot/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLookup(t *testing.T) {
	ah := retailer.Lookup("ah")
	assert.NotNil(t, ah)
	assert.Equal(t, "Albert Heijn", ah.Name)

	assert.Nil(t, retailer.Lookup("aldi"))
}

func TestNewFetcher(t *testing.T) {
	for _, info := range retailer.Registry {
		if !info.Active {
			continue
		}
		f, err := retailer.NewFetcher(info.Slug)
		assert.NoError(t, err)
		assert.NotNil(t, f)
	}

	_, err := retailer.NewFetcher("aldi")
	assert.Error(t, err)
}

func TestService_Stats(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&snapmodels.Snapshot{}, &snapmodels.SnapshotProduct{}))

	caps := database.CapabilitySet{RetailerColumn: true, Catalog: true}
	snapshots := snapshot.NewStore(db, caps, zap.NewNop())
	_, err = snapshots.Create(context.Background(), "ah", []snapmodels.RawProduct{
		{WebshopID: "wi1", Title: "Bruin brood"},
	}, "")
	assert.NoError(t, err)

	service := retailer.NewService(snapshots, zap.NewNop())
	stats, err := service.Stats(context.Background())
	assert.NoError(t, err)
	assert.Len(t, stats, 3)

	assert.Equal(t, "ah", stats[0].Info.Slug)
	assert.Equal(t, 1, stats[0].SnapshotCount)
	assert.NotNil(t, stats[0].LastSnapshot)

	assert.Equal(t, "jumbo", stats[1].Info.Slug)
	assert.Zero(t, stats[1].SnapshotCount)
	assert.Nil(t, stats[1].LastSnapshot)

	assert.Equal(t, "plus", stats[2].Info.Slug)
	assert.False(t, stats[2].Info.Active)
}
