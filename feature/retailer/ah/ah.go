// Package ah fetches products from the Albert Heijn mobile API.
package ah

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	snapmodels "broodradar/feature/snapshot/models"
)

const (
	apiBase    = "https://api.ah.nl"
	authPath   = "/mobile-auth/v1/auth/token/anonymous"
	searchPath = "/mobile-services/product/search/v2"

	userAgent    = "Appie/8.22.3"
	xApplication = "AHWEBSHOP"

	pageSize = 200
	// tokenSlack refreshes the token this long before it expires.
	tokenSlack = 60 * time.Second
)

// Fetcher pulls products via the AH mobile API using an anonymous token.
type Fetcher struct {
	client  *http.Client
	baseURL string

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewFetcher creates an AH fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: 30 * time.Second}, baseURL: apiBase}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type searchResponse struct {
	Products []json.RawMessage `json:"products"`
	Page     struct {
		TotalPages int `json:"totalPages"`
	} `json:"page"`
}

// FetchProducts pages through the search endpoint until exhausted.
func (f *Fetcher) FetchProducts(ctx context.Context, query string) ([]snapmodels.RawProduct, error) {
	var all []snapmodels.RawProduct

	for page := 0; ; page++ {
		token, err := f.getToken(ctx)
		if err != nil {
			return nil, err
		}

		params := url.Values{}
		params.Set("query", query)
		params.Set("size", strconv.Itoa(pageSize))
		params.Set("page", strconv.Itoa(page))
		params.Set("sortOn", "RELEVANCE")

		var resp searchResponse
		err = f.get(ctx, f.baseURL+searchPath+"?"+params.Encode(), token, &resp)
		if err != nil {
			return nil, fmt.Errorf("ah search page %d failed: %w", page, err)
		}

		for _, raw := range resp.Products {
			var p snapmodels.RawProduct
			if err := json.Unmarshal(raw, &p); err != nil {
				return nil, fmt.Errorf("failed to decode ah product: %w", err)
			}
			p.Raw = raw
			all = append(all, p)
		}

		if page >= resp.Page.TotalPages-1 {
			break
		}
	}

	return all, nil
}

// getToken returns a cached anonymous token, refreshing it shortly before
// expiry.
func (f *Fetcher) getToken(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.token != "" && time.Now().Before(f.expiresAt.Add(-tokenSlack)) {
		return f.token, nil
	}

	body, err := json.Marshal(map[string]string{"clientId": "appie"})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+authPath, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	setHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ah token request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ah token request returned %d", resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("failed to decode ah token: %w", err)
	}

	f.token = tok.AccessToken
	f.expiresAt = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return f.token, nil
}

func (f *Fetcher) get(ctx context.Context, rawURL, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	setHeaders(req)
	req.Header.Set("Authorization", "Bearer "+token)

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

func setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-application", xApplication)
}
