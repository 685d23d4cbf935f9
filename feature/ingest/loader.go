package ingest

import (
	"broodradar/core/config"
	"broodradar/feature/archive"
	"broodradar/feature/catalog"
	"broodradar/feature/snapshot"
	"broodradar/feature/timeline"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the ingest feature. reconciler and archiver may be
// nil; the pipeline skips those steps.
func NewFeature(cfg config.IngestConfig, snapshots *snapshot.Store, reconciler *catalog.Reconciler, generator *timeline.Generator, archiver *archive.Archiver, logger *zap.Logger) *Feature {
	service := NewService(cfg, snapshots, reconciler, generator, archiver, logger)
	return &Feature{service: service, handler: NewHandler(service, logger)}
}

// Service exposes the ingest pipeline for the CLI.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "ingest"
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
