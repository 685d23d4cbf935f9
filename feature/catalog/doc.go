// Package catalog maintains the long-lived product catalog and its
// append-only history ledger. Each snapshot is folded into the catalog by
// the Reconciler, which classifies what changed per product and records
// everything except unchanged observations.
package catalog
