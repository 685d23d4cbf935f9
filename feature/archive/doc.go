// Package archive keeps the raw fetcher payload of every snapshot in
// object storage. The relational rows are the queryable projection; the
// archive is the source material for reprocessing.
package archive
