// Package diff compares two snapshots product by product. The comparison is
// pure and order-independent of storage: output lists are sorted by webshop
// id so the same pair always diffs identically.
package diff
