// Package ingest orchestrates one snapshot run end to end: fetch the
// retailer's products, persist the snapshot, then derive the timeline,
// reconcile the catalog and archive the raw payload. Only the snapshot
// write is fatal; everything after it degrades the result.
package ingest
