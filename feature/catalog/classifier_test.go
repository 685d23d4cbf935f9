package catalog_test

import (
	"testing"

	"broodradar/feature/catalog"
	"broodradar/feature/catalog/models"
	snapmodels "broodradar/feature/snapshot/models"

	"github.com/stretchr/testify/assert"
)

func price(v float64) *float64 { return &v }

func TestClassify_FirstSeen(t *testing.T) {
	kind, changes := catalog.Classify(nil, snapmodels.SnapshotProduct{WebshopID: "wi1", Title: "Bruin brood"})
	assert.Equal(t, catalog.EventFirstSeen, kind)
	assert.Empty(t, changes)
}

func TestClassify_Unchanged(t *testing.T) {
	entry := &models.CatalogEntry{Title: "Bruin brood", Price: price(1.49)}
	next := snapmodels.SnapshotProduct{Title: "Bruin brood", Price: price(1.49)}

	kind, changes := catalog.Classify(entry, next)
	assert.Equal(t, catalog.EventUnchanged, kind)
	assert.Empty(t, changes)
}

func TestClassify_PriceChange(t *testing.T) {
	entry := &models.CatalogEntry{Title: "Bruin brood", Price: price(1.50)}
	next := snapmodels.SnapshotProduct{Title: "Bruin brood", Price: price(1.20)}

	kind, changes := catalog.Classify(entry, next)
	assert.Equal(t, catalog.EventPriceChange, kind)
	change := changes["price"]
	assert.Equal(t, 1.50, change.Old)
	assert.Equal(t, 1.20, change.New)
	assert.NotNil(t, change.PctChange)
	assert.Equal(t, -20.0, *change.PctChange)
}

func TestClassify_PriceChangePctRounded(t *testing.T) {
	entry := &models.CatalogEntry{Price: price(2.99)}
	next := snapmodels.SnapshotProduct{Price: price(3.49)}

	_, changes := catalog.Classify(entry, next)
	assert.NotNil(t, changes["price"].PctChange)
	assert.Equal(t, 16.7, *changes["price"].PctChange)
}

func TestClassify_PriceChangeNoPctWhenOldMissing(t *testing.T) {
	entry := &models.CatalogEntry{}
	next := snapmodels.SnapshotProduct{Price: price(1.20)}

	kind, changes := catalog.Classify(entry, next)
	assert.Equal(t, catalog.EventPriceChange, kind)
	assert.Nil(t, changes["price"].PctChange)
}

func TestClassify_TitleChangeIgnoresWhitespace(t *testing.T) {
	entry := &models.CatalogEntry{Title: "Bruin brood "}
	next := snapmodels.SnapshotProduct{Title: "Bruin brood"}

	kind, _ := catalog.Classify(entry, next)
	assert.Equal(t, catalog.EventUnchanged, kind)

	next.Title = "Bruin brood heel"
	kind, changes := catalog.Classify(entry, next)
	assert.Equal(t, catalog.EventTitleChange, kind)
	assert.Equal(t, "Bruin brood", changes["title"].Old)
	assert.Equal(t, "Bruin brood heel", changes["title"].New)
}

func TestClassify_BonusChange(t *testing.T) {
	entry := &models.CatalogEntry{IsBonus: false}
	next := snapmodels.SnapshotProduct{IsBonus: true}

	kind, changes := catalog.Classify(entry, next)
	assert.Equal(t, catalog.EventBonusChange, kind)
	assert.Equal(t, false, changes["bonus"].Old)
	assert.Equal(t, true, changes["bonus"].New)
}

func TestClassify_MultiChange(t *testing.T) {
	entry := &models.CatalogEntry{Title: "Bruin brood", Price: price(1.50), IsBonus: false}
	next := snapmodels.SnapshotProduct{Title: "Bruin brood", Price: price(1.20), IsBonus: true}

	kind, changes := catalog.Classify(entry, next)
	assert.Equal(t, catalog.EventMultiChange, kind)
	assert.Len(t, changes, 2)
	assert.Equal(t, -20.0, *changes["price"].PctChange)
	assert.Equal(t, true, changes["bonus"].New)
}
