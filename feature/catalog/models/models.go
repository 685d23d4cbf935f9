package models

import (
	"time"

	snapmodels "broodradar/feature/snapshot/models"
)

// CatalogEntry is the single long-lived identity of a product: one row per
// (retailer, webshop id) holding the current known state. It is updated in
// place on every snapshot that contains the product and marked unavailable,
// never deleted, when a snapshot omits it.
type CatalogEntry struct {
	ID                   string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Retailer             string    `gorm:"type:varchar(32);uniqueIndex:idx_catalog_retailer_webshop" json:"retailer"`
	WebshopID            string    `gorm:"type:varchar(64);uniqueIndex:idx_catalog_retailer_webshop" json:"webshop_id"`
	Title                string    `json:"title"`
	Brand                string    `json:"brand"`
	Price                *float64  `json:"price"`
	SalesUnitSize        string    `json:"sales_unit_size"`
	UnitPriceDescription string    `json:"unit_price_description"`
	Nutriscore           string    `gorm:"type:varchar(8)" json:"nutriscore"`
	MainCategory         string    `json:"main_category"`
	SubCategory          string    `json:"sub_category"`
	ImageURL             string    `json:"image_url"`
	IsBonus              bool      `json:"is_bonus"`
	IsAvailable          bool      `json:"is_available"`
	FirstSeenAt          time.Time `json:"first_seen_at"`
	LastSeenAt           time.Time `json:"last_seen_at"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// TableName overrides the gorm default.
func (CatalogEntry) TableName() string { return "product_catalog" }

// HistoryEntry is one append-only ledger record: what happened to one
// catalog entry at one snapshot.
type HistoryEntry struct {
	ID              string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	ProductID       string          `gorm:"type:varchar(36);index" json:"product_id"`
	SnapshotID      string          `gorm:"type:varchar(36);index" json:"snapshot_id"`
	EventType       string          `gorm:"type:varchar(32)" json:"event_type"`
	Changes         snapmodels.JSON `json:"changes"`
	PriceAtSnapshot *float64        `json:"price_at_snapshot"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TableName overrides the gorm default.
func (HistoryEntry) TableName() string { return "product_history" }

// EntryFromProduct projects a snapshot product row onto catalog field
// values. Identity and timestamps are left to the caller.
func EntryFromProduct(retailer string, p snapmodels.SnapshotProduct) CatalogEntry {
	return CatalogEntry{
		Retailer:             retailer,
		WebshopID:            p.WebshopID,
		Title:                p.Title,
		Brand:                p.Brand,
		Price:                p.Price,
		SalesUnitSize:        p.SalesUnitSize,
		UnitPriceDescription: p.UnitPriceDescription,
		Nutriscore:           p.Nutriscore,
		MainCategory:         p.MainCategory,
		SubCategory:          p.SubCategory,
		ImageURL:             p.ImageURL,
		IsBonus:              p.IsBonus,
		IsAvailable:          true,
	}
}
