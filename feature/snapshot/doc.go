// Package snapshot persists immutable captures of a retailer's product
// listing and serves them back.
//
// A snapshot is the unit of "a point in time": one row in snapshots plus one
// fully replicated row per product in products. Rows are never updated or
// deleted; re-ingesting the same batch simply creates a new snapshot.
//
// Inserts are chunked (500 rows) to respect backend payload limits. No
// transaction spans the whole ingestion: a failure on a later chunk leaves
// earlier chunks committed and is reported to the caller.
package snapshot
