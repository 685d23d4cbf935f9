package snapshot

import (
	"broodradar/core/database"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	store   *Store
	handler *Handler
}

// NewFeature creates the snapshot feature.
func NewFeature(db *gorm.DB, caps database.CapabilitySet, logger *zap.Logger) *Feature {
	store := NewStore(db, caps, logger)
	h := NewHandler(store, logger)
	return &Feature{store: store, handler: h}
}

// Store exposes the snapshot store for other features.
func (f *Feature) Store() *Store {
	return f.store
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "snapshot"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
