package timeline

import (
	"broodradar/feature/diff"
	"broodradar/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	store     *Store
	generator *Generator
	handler   *Handler
}

// NewFeature creates the timeline feature.
func NewFeature(db *gorm.DB, snapshots *snapshot.Store, engine *diff.Engine, logger *zap.Logger) *Feature {
	store := NewStore(db, logger)
	gen := NewGenerator(db, snapshots, engine, logger)
	return &Feature{store: store, generator: gen, handler: NewHandler(store, logger)}
}

// Generator exposes the generator for the ingest pipeline.
func (f *Feature) Generator() *Generator {
	return f.generator
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "timeline"
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
