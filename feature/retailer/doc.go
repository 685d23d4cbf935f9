// Package retailer knows which webshops can be ingested and how to fetch
// their product ranges. Each retailer subpackage adapts one public mobile
// API onto the normalized product record.
package retailer
