package models

import (
	"time"

	snapmodels "broodradar/feature/snapshot/models"
)

// Event kinds on the timeline feed.
const (
	EventNewProduct     = "new_product"
	EventRemovedProduct = "removed_product"
	EventPriceChange    = "price_change"
	EventBonusChange    = "bonus_change"
)

// TimelineEvent is one entry on the cross-snapshot activity feed. Details
// carries a kind-specific payload: a price for new products, old/new price
// and percentage for price changes, the bonus flags for bonus changes, and
// nothing for removals.
type TimelineEvent struct {
	ID              string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	Retailer        string          `gorm:"type:varchar(32);index" json:"retailer"`
	EventType       string          `gorm:"type:varchar(32);index" json:"event_type"`
	SnapshotID      string          `gorm:"type:varchar(36);index" json:"snapshot_id"`
	ProductTitle    string          `json:"product_title"`
	ProductImageURL string          `json:"product_image_url"`
	Details         snapmodels.JSON `json:"details"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TableName overrides the gorm default.
func (TimelineEvent) TableName() string { return "timeline_events" }
