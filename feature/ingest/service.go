package ingest

import (
	"context"
	"fmt"

	"broodradar/core/config"
	"broodradar/feature/archive"
	"broodradar/feature/catalog"
	"broodradar/feature/retailer"
	"broodradar/feature/snapshot"
	snapmodels "broodradar/feature/snapshot/models"
	"broodradar/feature/timeline"

	"go.uber.org/zap"
)

// Result reports one ingestion run. Degraded lists the follow-up steps
// that failed after the snapshot itself was stored; the snapshot is valid
// regardless.
type Result struct {
	SnapshotID   string   `json:"snapshot_id"`
	Retailer     string   `json:"retailer"`
	ProductCount int      `json:"product_count"`
	Degraded     []string `json:"degraded,omitempty"`
}

// Service runs the ingestion pipeline: fetch, snapshot, timeline, catalog
// reconciliation and raw archival.
type Service struct {
	cfg        config.IngestConfig
	snapshots  *snapshot.Store
	reconciler *catalog.Reconciler
	generator  *timeline.Generator
	archiver   *archive.Archiver
	logger     *zap.Logger
}

// NewService creates an ingest service. reconciler and archiver may be nil
// when the schema has no catalog or object storage is disabled.
func NewService(cfg config.IngestConfig, snapshots *snapshot.Store, reconciler *catalog.Reconciler, generator *timeline.Generator, archiver *archive.Archiver, logger *zap.Logger) *Service {
	return &Service{
		cfg:        cfg,
		snapshots:  snapshots,
		reconciler: reconciler,
		generator:  generator,
		archiver:   archiver,
		logger:     logger,
	}
}

// RunRetailer fetches a retailer's products and ingests them as a new
// snapshot.
func (s *Service) RunRetailer(ctx context.Context, slug, label string) (*Result, error) {
	info := retailer.Lookup(slug)
	if info == nil {
		return nil, fmt.Errorf("unknown retailer: %s", slug)
	}
	if !info.Active {
		return nil, fmt.Errorf("retailer %s is not active", slug)
	}

	fetcher, err := retailer.NewFetcher(slug)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Fetching products", zap.String("retailer", slug), zap.String("query", s.cfg.Query))
	products, err := fetcher.FetchProducts(ctx, s.cfg.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s products: %w", slug, err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("retailer %s returned no products", slug)
	}

	if s.cfg.Enrich {
		if enricher, ok := fetcher.(retailer.IngredientFetcher); ok {
			products = s.enrich(ctx, enricher, products)
		}
	}

	return s.Ingest(ctx, slug, products, label)
}

// Ingest stores one snapshot and runs the follow-up steps. The timeline,
// catalog and archive steps are best effort: their failures degrade the
// result instead of failing it, because the snapshot is already durable.
func (s *Service) Ingest(ctx context.Context, slug string, products []snapmodels.RawProduct, label string) (*Result, error) {
	snapshotID, err := s.snapshots.Create(ctx, slug, products, label)
	if err != nil {
		return nil, err
	}

	result := &Result{SnapshotID: snapshotID, Retailer: slug, ProductCount: len(products)}
	degrade := func(step string, err error) {
		s.logger.Warn("Ingest step degraded",
			zap.String("retailer", slug),
			zap.String("snapshot_id", snapshotID),
			zap.String("step", step),
			zap.Error(err))
		result.Degraded = append(result.Degraded, fmt.Sprintf("%s: %v", step, err))
	}

	if err := s.generator.Generate(ctx, slug, snapshotID); err != nil {
		degrade("timeline", err)
	}

	if s.reconciler != nil {
		if err := s.reconciler.Reconcile(ctx, slug, snapshotID); err != nil {
			degrade("catalog", err)
		}
	}

	if s.archiver != nil {
		if err := s.archiver.Export(ctx, slug, snapshotID, products); err != nil {
			degrade("archive", err)
		}
	}

	s.logger.Info("Snapshot ingested",
		zap.String("retailer", slug),
		zap.String("snapshot_id", snapshotID),
		zap.Int("products", len(products)),
		zap.Int("degraded", len(result.Degraded)))
	return result, nil
}

// enrich fills ingredient texts in place. Enrichment failures are logged
// and skipped: ingredients are a bonus, not a requirement.
func (s *Service) enrich(ctx context.Context, enricher retailer.IngredientFetcher, products []snapmodels.RawProduct) []snapmodels.RawProduct {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		if p.WebshopID != "" {
			ids = append(ids, p.WebshopID)
		}
	}

	ingredients, err := enricher.FetchIngredients(ctx, ids, s.cfg.EnrichWorkers)
	if err != nil {
		s.logger.Warn("Ingredient enrichment failed", zap.Error(err))
		return products
	}

	for i := range products {
		if text, ok := ingredients[products[i].WebshopID]; ok {
			products[i].Ingredients = text
		}
	}
	return products
}
