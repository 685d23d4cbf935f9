// Package jumbo fetches products from the Jumbo mobile API and maps them
// onto the normalized product record.
package jumbo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	snapmodels "broodradar/feature/snapshot/models"

	"golang.org/x/sync/errgroup"
)

const (
	apiBase           = "https://mobileapi.jumbo.com"
	searchPath        = "/v17/search"
	productDetailPath = "/v17/products"

	userAgent = "Jumbo/9.5.1 (Android 12)"

	// The search endpoint returns a 500 for limits much above 30.
	pageSize = 30

	defaultEnrichWorkers = 10
)

// Fetcher pulls products via the Jumbo mobile API.
type Fetcher struct {
	client  *http.Client
	baseURL string
}

// NewFetcher creates a Jumbo fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: 30 * time.Second}, baseURL: apiBase}
}

type searchResponse struct {
	Products struct {
		Data  []json.RawMessage `json:"data"`
		Total int               `json:"total"`
	} `json:"products"`
}

// FetchProducts pages through the search endpoint until exhausted.
func (f *Fetcher) FetchProducts(ctx context.Context, query string) ([]snapmodels.RawProduct, error) {
	var all []snapmodels.RawProduct

	for offset := 0; ; offset += pageSize {
		params := url.Values{}
		params.Set("q", query)
		params.Set("offset", strconv.Itoa(offset))
		params.Set("limit", strconv.Itoa(pageSize))

		var resp searchResponse
		err := f.get(ctx, f.baseURL+searchPath+"?"+params.Encode(), &resp)
		if err != nil {
			return nil, fmt.Errorf("jumbo search offset %d failed: %w", offset, err)
		}

		for _, raw := range resp.Products.Data {
			p, err := mapProduct(raw)
			if err != nil {
				return nil, err
			}
			all = append(all, p)
		}

		if offset+pageSize >= resp.Products.Total {
			break
		}
	}

	return all, nil
}

// sourceProduct is the slice of the Jumbo search payload the mapping needs.
type sourceProduct struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Prices struct {
		Price struct {
			Amount int `json:"amount"`
		} `json:"price"`
		PromotionalPrice *struct {
			Amount int `json:"amount"`
		} `json:"promotionalPrice"`
		UnitPrice struct {
			Unit  string `json:"unit"`
			Price struct {
				Amount int `json:"amount"`
			} `json:"price"`
		} `json:"unitPrice"`
	} `json:"prices"`
	ImageInfo struct {
		PrimaryView []struct {
			URL string `json:"url"`
		} `json:"primaryView"`
	} `json:"imageInfo"`
	Available    *bool `json:"available"`
	Availability struct {
		Availability string `json:"availability"`
	} `json:"availability"`
}

// mapProduct converts a Jumbo search hit to the normalized record. Jumbo
// prices are in cents; the promotional price, when present, is the active
// one and flags the product as bonus.
func mapProduct(raw json.RawMessage) (snapmodels.RawProduct, error) {
	var src sourceProduct
	if err := json.Unmarshal(raw, &src); err != nil {
		return snapmodels.RawProduct{}, fmt.Errorf("failed to decode jumbo product: %w", err)
	}

	p := snapmodels.RawProduct{
		WebshopID: src.ID,
		HqID:      snapmodels.FlexString(src.ID),
		Title:     src.Title,
		IsBonus:   src.Prices.PromotionalPrice != nil,
		Raw:       raw,
	}

	if cents := src.Prices.Price.Amount; cents > 0 {
		p.PriceBeforeBonus = euros(cents)
	}

	if up := src.Prices.UnitPrice.Price.Amount; up > 0 {
		p.UnitPriceDescription = fmt.Sprintf("€%.2f/%s", float64(up)/100, src.Prices.UnitPrice.Unit)
	}

	if views := src.ImageInfo.PrimaryView; len(views) > 0 {
		p.Images = []snapmodels.RawImage{{URL: views[0].URL, Width: 200}}
	}

	// Jumbo has no separate brand field; titles lead with the brand.
	if idx := strings.Index(src.Title, " - "); idx > 0 {
		p.Brand = strings.TrimSpace(src.Title[:idx])
	}

	p.AvailableOnline = src.Available == nil || *src.Available
	p.OrderAvailabilityStatus = src.Availability.Availability

	return p, nil
}

func euros(cents int) *float64 {
	v := float64(cents) / 100
	return &v
}

type detailResponse struct {
	Product struct {
		Data struct {
			IngredientInfo []struct {
				Ingredients []struct {
					Name string `json:"name"`
				} `json:"ingredients"`
			} `json:"ingredientInfo"`
		} `json:"data"`
	} `json:"product"`
}

// FetchIngredients loads ingredient texts for the given product ids with
// at most workers concurrent detail requests. Products without ingredient
// data are omitted from the result; individual request failures are
// skipped rather than failing the batch.
func (f *Fetcher) FetchIngredients(ctx context.Context, productIDs []string, workers int) (map[string]string, error) {
	result := make(map[string]string, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}
	if workers <= 0 {
		workers = defaultEnrichWorkers
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, id := range productIDs {
		if id == "" {
			continue
		}
		g.Go(func() error {
			var resp detailResponse
			err := f.get(ctx, f.baseURL+productDetailPath+"/"+url.PathEscape(id), &resp)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return nil
			}

			info := resp.Product.Data.IngredientInfo
			if len(info) == 0 {
				return nil
			}
			var names []string
			for _, ing := range info[0].Ingredients {
				if name := strings.TrimSpace(ing.Name); name != "" {
					names = append(names, name)
				}
			}
			if len(names) == 0 {
				return nil
			}

			mu.Lock()
			result[id] = strings.Join(names, ", ")
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
