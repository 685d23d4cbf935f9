package diff

import (
	"broodradar/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	engine  *Engine
	handler *Handler
}

// NewFeature creates the diff feature.
func NewFeature(snapshots *snapshot.Store, logger *zap.Logger) *Feature {
	engine := NewEngine(snapshots, logger)
	return &Feature{engine: engine, handler: NewHandler(engine, logger)}
}

// Engine exposes the diff engine for other features.
func (f *Feature) Engine() *Engine {
	return f.engine
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "diff"
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
