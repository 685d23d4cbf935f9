package database

import "gorm.io/gorm"

// Feature names for the optional schema capabilities.
const (
	FeatureRetailerColumn = "retailer_column"
	FeatureCatalog        = "catalog"
)

// CapabilitySet records which optional schema features the connected store
// provides. It is resolved once per process via Detect and passed to every
// component that needs to degrade gracefully on older schemas.
type CapabilitySet struct {
	// RetailerColumn is true when snapshots carry a retailer discriminator.
	// Without it all data is treated as belonging to the default retailer.
	RetailerColumn bool `json:"retailer_column"`
	// Catalog is true when the product_catalog table (and with it the
	// history ledger) exists.
	Catalog bool `json:"catalog"`
}

// Supports reports whether the named feature is available.
func (c CapabilitySet) Supports(feature string) bool {
	switch feature {
	case FeatureRetailerColumn:
		return c.RetailerColumn
	case FeatureCatalog:
		return c.Catalog
	default:
		return false
	}
}

// Detect inspects the connected schema and resolves the capability set.
// A nil db (optional connection failed) yields an empty set. Inspection
// failures downgrade the feature rather than erroring: an absent column or
// table is an expected schema version, not a fault.
func Detect(db *gorm.DB) CapabilitySet {
	if db == nil {
		return CapabilitySet{}
	}

	var caps CapabilitySet
	migrator := db.Migrator()

	if migrator.HasTable("snapshots") {
		if ok, err := HasColumn(db, "snapshots", "retailer"); err == nil {
			caps.RetailerColumn = ok
		}
	}
	caps.Catalog = migrator.HasTable("product_catalog")

	return caps
}
