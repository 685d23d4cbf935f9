package retailer

import (
	"context"

	"broodradar/feature/snapshot"
	snapmodels "broodradar/feature/snapshot/models"

	"go.uber.org/zap"
)

// Stats summarizes one retailer's ingestion state for the dashboard.
type Stats struct {
	Info          Info                 `json:"info"`
	LastSnapshot  *snapmodels.Snapshot `json:"last_snapshot"`
	SnapshotCount int                  `json:"snapshot_count"`
}

// Service reports per-retailer snapshot statistics.
type Service struct {
	snapshots *snapshot.Store
	logger    *zap.Logger
}

// NewService creates a retailer service.
func NewService(snapshots *snapshot.Store, logger *zap.Logger) *Service {
	return &Service{snapshots: snapshots, logger: logger}
}

// Stats returns the registry with each retailer's latest snapshot and
// total snapshot count, in registry order.
func (s *Service) Stats(ctx context.Context) ([]Stats, error) {
	stats := make([]Stats, 0, len(Registry))
	for _, info := range Registry {
		snaps, err := s.snapshots.Snapshots(ctx, info.Slug)
		if err != nil {
			return nil, err
		}
		entry := Stats{Info: info, SnapshotCount: len(snaps)}
		if len(snaps) > 0 {
			entry.LastSnapshot = &snaps[0]
		}
		stats = append(stats, entry)
	}
	return stats, nil
}
