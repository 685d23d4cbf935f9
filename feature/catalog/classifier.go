package catalog

import (
	"math"
	"strings"

	"broodradar/feature/catalog/models"
	snapmodels "broodradar/feature/snapshot/models"
)

// EventType is the discrete classification of what changed for one product
// between the catalog's last known state and a new snapshot row.
type EventType string

const (
	EventFirstSeen   EventType = "first_seen"
	EventUnchanged   EventType = "unchanged"
	EventPriceChange EventType = "price_change"
	EventTitleChange EventType = "title_change"
	EventBonusChange EventType = "bonus_change"
	EventMultiChange EventType = "multi_change"
	EventRemoved     EventType = "removed"
)

// FieldChange records one field's old and new value. PctChange is only set
// for price changes where both sides are non-nil and non-zero.
type FieldChange struct {
	Old       any      `json:"old"`
	New       any      `json:"new"`
	PctChange *float64 `json:"pct_change,omitempty"`
}

// Changeset maps field names to their changes.
type Changeset map[string]FieldChange

// Classify compares a catalog entry's prior state against the product's row
// in a new snapshot and returns the event kind plus the structured
// changeset. existing may be nil (product unknown to the catalog). The
// function is total: malformed or missing values are treated as absent,
// never as errors.
func Classify(existing *models.CatalogEntry, next snapmodels.SnapshotProduct) (EventType, Changeset) {
	changes := Changeset{}
	if existing == nil {
		return EventFirstSeen, changes
	}

	if !priceEqual(existing.Price, next.Price) {
		change := FieldChange{Old: priceValue(existing.Price), New: priceValue(next.Price)}
		if existing.Price != nil && next.Price != nil && *existing.Price != 0 && *next.Price != 0 {
			pct := roundPct((*next.Price - *existing.Price) / *existing.Price * 100)
			change.PctChange = &pct
		}
		changes["price"] = change
	}

	oldTitle := strings.TrimSpace(existing.Title)
	newTitle := strings.TrimSpace(next.Title)
	if oldTitle != newTitle {
		changes["title"] = FieldChange{Old: titleValue(oldTitle), New: titleValue(newTitle)}
	}

	if existing.IsBonus != next.IsBonus {
		changes["bonus"] = FieldChange{Old: existing.IsBonus, New: next.IsBonus}
	}

	switch {
	case len(changes) == 0:
		return EventUnchanged, Changeset{}
	case len(changes) > 1:
		return EventMultiChange, changes
	}

	if _, ok := changes["price"]; ok {
		return EventPriceChange, changes
	}
	if _, ok := changes["title"]; ok {
		return EventTitleChange, changes
	}
	return EventBonusChange, changes
}

func priceEqual(old, new *float64) bool {
	if old == nil || new == nil {
		return old == nil && new == nil
	}
	return *old == *new
}

func priceValue(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func titleValue(t string) any {
	if t == "" {
		return nil
	}
	return t
}

func roundPct(v float64) float64 {
	return math.Round(v*10) / 10
}
