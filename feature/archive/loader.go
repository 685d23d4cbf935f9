package archive

import (
	"broodradar/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	enabled  bool
	archiver *Archiver
	handler  *Handler
}

// NewFeature creates the archive feature. client may be nil when object
// storage is disabled.
func NewFeature(client storage.Client, cfg storage.Config, logger *zap.Logger) *Feature {
	f := &Feature{enabled: cfg.Enabled && client != nil}
	if !f.enabled {
		return f
	}
	f.archiver = NewArchiver(client, cfg.Bucket, logger)
	f.handler = NewHandler(f.archiver, logger)
	return f
}

// Archiver exposes the archiver for the ingest pipeline. Nil when disabled.
func (f *Feature) Archiver() *Archiver {
	return f.archiver
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "archive"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
