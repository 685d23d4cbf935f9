package catalog

import (
	"broodradar/core/database"
	"broodradar/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	caps       database.CapabilitySet
	store      *Store
	reconciler *Reconciler
	handler    *Handler
}

// NewFeature creates the catalog feature.
func NewFeature(db *gorm.DB, caps database.CapabilitySet, snapshots *snapshot.Store, logger *zap.Logger) *Feature {
	store := NewStore(db, caps, snapshots, logger)
	rec := NewReconciler(db, snapshots, logger)
	h := NewHandler(store, logger)
	return &Feature{caps: caps, store: store, reconciler: rec, handler: h}
}

// Store exposes the catalog store for other features.
func (f *Feature) Store() *Store {
	return f.store
}

// Reconciler exposes the reconciler for the ingest pipeline.
func (f *Feature) Reconciler() *Reconciler {
	return f.reconciler
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled reports whether the schema has a catalog at all.
func (f *Feature) IsEnabled() bool {
	return f.caps.Catalog
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
