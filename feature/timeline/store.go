package timeline

import (
	"context"
	"fmt"

	"broodradar/feature/timeline/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store reads the timeline feed.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStore creates a timeline store.
func NewStore(db *gorm.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Events returns timeline events, newest first. retailer and eventType
// filter when non-empty.
func (s *Store) Events(ctx context.Context, limit int, retailer, eventType string) ([]models.TimelineEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	q := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if retailer != "" {
		q = q.Where("retailer = ?", retailer)
	}
	if eventType != "" {
		q = q.Where("event_type = ?", eventType)
	}

	var events []models.TimelineEvent
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list timeline events: %w", err)
	}
	return events, nil
}
