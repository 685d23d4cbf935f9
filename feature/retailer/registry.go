package retailer

import (
	"context"
	"fmt"

	"broodradar/feature/retailer/ah"
	"broodradar/feature/retailer/jumbo"
	snapmodels "broodradar/feature/snapshot/models"
)

// Info describes one supported retailer for the frontend.
type Info struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Active      bool   `json:"active"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Registry lists the supported retailers in presentation order.
var Registry = []Info{
	{
		Slug:        "ah",
		Name:        "Albert Heijn",
		Color:       "#00A0E2",
		Active:      true,
		Description: "Grootste supermarktketen van Nederland",
		Icon:        "/logos/ah.svg",
	},
	{
		Slug:        "jumbo",
		Name:        "Jumbo",
		Color:       "#FFCC00",
		Active:      true,
		Description: "De tweede supermarkt van Nederland",
		Icon:        "/logos/jumbo.svg",
	},
	// Plus has a fetcher behind an anti-bot wall; listed but not ingestable
	// until that is solved.
	{
		Slug:        "plus",
		Name:        "PLUS",
		Color:       "#6EB345",
		Active:      false,
		Description: "Coöperatieve supermarktketen",
		Icon:        "/logos/plus.svg",
	},
}

// Lookup returns the registry entry for a slug, or nil when unknown.
func Lookup(slug string) *Info {
	for i := range Registry {
		if Registry[i].Slug == slug {
			return &Registry[i]
		}
	}
	return nil
}

// Fetcher pulls a retailer's full product range from its public API.
type Fetcher interface {
	FetchProducts(ctx context.Context, query string) ([]snapmodels.RawProduct, error)
}

// IngredientFetcher enriches products with ingredient texts. Only some
// retailers expose a per-product detail endpoint for this. workers bounds
// the number of concurrent detail requests.
type IngredientFetcher interface {
	FetchIngredients(ctx context.Context, productIDs []string, workers int) (map[string]string, error)
}

// NewFetcher returns the fetcher for a slug.
func NewFetcher(slug string) (Fetcher, error) {
	switch slug {
	case "ah":
		return ah.NewFetcher(), nil
	case "jumbo":
		return jumbo.NewFetcher(), nil
	}
	return nil, fmt.Errorf("unknown retailer: %s", slug)
}
