package models

import "encoding/json"

// DefaultRetailer is the retailer all pre-migration data belongs to.
const DefaultRetailer = "ah"

// RawImage is one image variant of a raw product record.
type RawImage struct {
	URL   string `json:"url"`
	Width int    `json:"width"`
}

// RawProduct is the normalized record a retailer fetcher hands to the
// snapshot store. Field names follow the AH mobile API convention; other
// fetchers map their source format onto it.
type RawProduct struct {
	WebshopID               string          `json:"webshopId"`
	HqID                    FlexString      `json:"hqId"`
	Title                   string          `json:"title"`
	Brand                   string          `json:"brand"`
	SalesUnitSize           string          `json:"salesUnitSize"`
	PriceBeforeBonus        *float64        `json:"priceBeforeBonus"`
	UnitPriceDescription    string          `json:"unitPriceDescription"`
	MainCategory            string          `json:"mainCategory"`
	SubCategory             string          `json:"subCategory"`
	Nutriscore              string          `json:"nutriscore"`
	IsBonus                 bool            `json:"isBonus"`
	IsStapelBonus           bool            `json:"isStapelBonus"`
	DiscountLabels          json.RawMessage `json:"discountLabels,omitempty"`
	DescriptionHighlights   string          `json:"descriptionHighlights"`
	PropertyIcons           []string        `json:"propertyIcons,omitempty"`
	Images                  []RawImage      `json:"images,omitempty"`
	AvailableOnline         bool            `json:"availableOnline"`
	OrderAvailabilityStatus string          `json:"orderAvailabilityStatus"`
	// Ingredients is filled by optional enrichment before ingestion.
	Ingredients string `json:"ingredients,omitempty"`
	// Raw is the original source payload, persisted verbatim.
	Raw json.RawMessage `json:"-"`
}

// ImageURL applies the snapshot image selection policy: prefer the variant
// declared at width 200, else the first available image, else empty.
func (p RawProduct) ImageURL() string {
	for _, img := range p.Images {
		if img.Width == 200 {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}
