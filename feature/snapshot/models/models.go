package models

import "time"

// Snapshot is one immutable capture of a retailer's full product listing.
// It is created exactly once per ingestion and never updated or deleted.
type Snapshot struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Retailer     string    `gorm:"type:varchar(32);index" json:"retailer"`
	CreatedAt    time.Time `json:"created_at"`
	ProductCount int       `json:"product_count"`
	Label        string    `gorm:"type:varchar(255)" json:"label"`
}

// TableName overrides the gorm default.
func (Snapshot) TableName() string { return "snapshots" }

// SnapshotProduct is one product exactly as it appeared in one snapshot.
// Rows are fully replicated per snapshot even when nothing changed; they are
// the ground truth the diff engine compares.
type SnapshotProduct struct {
	ID                      string   `gorm:"type:varchar(36);primaryKey" json:"id"`
	SnapshotID              string   `gorm:"type:varchar(36);index" json:"snapshot_id"`
	Retailer                string   `gorm:"type:varchar(32)" json:"retailer"`
	WebshopID               string   `gorm:"type:varchar(64);index" json:"webshop_id"`
	HqID                    string   `gorm:"type:varchar(64)" json:"hq_id"`
	Title                   string   `json:"title"`
	Brand                   string   `json:"brand"`
	SalesUnitSize           string   `json:"sales_unit_size"`
	Price                   *float64 `json:"price"`
	UnitPriceDescription    string   `json:"unit_price_description"`
	MainCategory            string   `json:"main_category"`
	SubCategory             string   `json:"sub_category"`
	Nutriscore              string   `gorm:"type:varchar(8)" json:"nutriscore"`
	IsBonus                 bool     `json:"is_bonus"`
	IsStapelBonus           bool     `json:"is_stapel_bonus"`
	DiscountLabels          JSON     `json:"discount_labels"`
	DescriptionHighlights   string   `json:"description_highlights"`
	PropertyIcons           JSON     `json:"property_icons"`
	ImageURL                string   `json:"image_url"`
	AvailableOnline         bool     `json:"available_online"`
	OrderAvailabilityStatus string   `gorm:"type:varchar(32)" json:"order_availability_status"`
	Ingredients             string   `json:"ingredients,omitempty"`
	RawJSON                 JSON     `gorm:"column:raw_json" json:"raw_json,omitempty"`
}

// TableName overrides the gorm default.
func (SnapshotProduct) TableName() string { return "products" }
