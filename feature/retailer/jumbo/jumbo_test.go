package jumbo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestFetcher(baseURL string) *Fetcher {
	f := NewFetcher()
	f.baseURL = baseURL
	return f
}

func TestMapProduct_PromotionalPrice(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "67649PAK",
		"title": "Jumbo - Tijgerbrood Wit Heel",
		"prices": {
			"price": {"amount": 219},
			"promotionalPrice": {"amount": 179},
			"unitPrice": {"unit": "kg", "price": {"amount": 273}}
		},
		"imageInfo": {"primaryView": [{"url": "https://img/1.png"}]},
		"available": true,
		"availability": {"availability": "AVAILABLE"}
	}`)

	p, err := mapProduct(raw)
	assert.NoError(t, err)
	assert.Equal(t, "67649PAK", p.WebshopID)
	assert.Equal(t, "Jumbo", p.Brand)
	assert.True(t, p.IsBonus)
	// Prices arrive in cents.
	assert.Equal(t, 2.19, *p.PriceBeforeBonus)
	assert.Equal(t, "€2.73/kg", p.UnitPriceDescription)
	assert.Equal(t, "https://img/1.png", p.Images[0].URL)
	assert.Equal(t, 200, p.Images[0].Width)
	assert.Equal(t, "AVAILABLE", p.OrderAvailabilityStatus)
	assert.JSONEq(t, string(raw), string(p.Raw))
}

func TestMapProduct_Minimal(t *testing.T) {
	p, err := mapProduct(json.RawMessage(`{"id": "1", "title": "Bruin brood"}`))
	assert.NoError(t, err)
	assert.Equal(t, "Bruin brood", p.Title)
	assert.Empty(t, p.Brand)
	assert.Nil(t, p.PriceBeforeBonus)
	assert.False(t, p.IsBonus)
	assert.True(t, p.AvailableOnline)
	assert.Empty(t, p.Images)
}

func TestFetchProducts_Paginates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, searchPath, r.URL.Path)
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		items := make([]string, 0, pageSize)
		for i := 0; i < pageSize && offset+i < 45; i++ {
			items = append(items, fmt.Sprintf(`{"id": "p%d", "title": "Brood %d"}`, offset+i, offset+i))
		}
		fmt.Fprintf(w, `{"products": {"data": [%s], "total": 45}}`, strings.Join(items, ","))
	}))
	defer srv.Close()

	products, err := newTestFetcher(srv.URL).FetchProducts(context.Background(), "brood")
	assert.NoError(t, err)
	assert.Len(t, products, 45)
	assert.Equal(t, "p0", products[0].WebshopID)
	assert.Equal(t, "p44", products[44].WebshopID)
}

func TestFetchIngredients_SkipsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, productDetailPath+"/")
		switch id {
		case "p1":
			fmt.Fprint(w, `{"product": {"data": {"ingredientInfo": [{"ingredients": [{"name": "tarwebloem"}, {"name": " water "}]}]}}}`)
		case "p2":
			fmt.Fprint(w, `{"product": {"data": {}}}`)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	result, err := newTestFetcher(srv.URL).FetchIngredients(context.Background(), []string{"p1", "p2", "p3", ""}, 4)
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"p1": "tarwebloem, water"}, result)
}
