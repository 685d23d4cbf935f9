// Package timeline turns snapshot diffs into a persistent activity feed.
// Events are generated once per ingested snapshot and read back newest
// first, filtered by retailer or kind.
package timeline
