// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL (production) or sqlite (local and test)
// connections based on the application's configuration.
//
// # Schema Capabilities
//
// Broodradar can run against older schema versions: the retailer column on
// snapshots and the product_catalog table were both added by later
// migrations. Detect inspects the connected schema exactly once at startup
// and returns an explicit CapabilitySet that is injected into every
// component, so features degrade gracefully instead of probing (and failing)
// at query time.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	caps := database.Detect(db)
package database
