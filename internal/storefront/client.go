// Package storefront holds the HTTP clients for the thin per-platform REST
// wrappers. Each client satisfies bulk.PriceUpdater and translates its
// platform's price payloads back into canonical Money through the catalog
// adapters; nothing platform-shaped crosses into the core.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/avelara/storefront-pricing/internal/bulk"
	"github.com/avelara/storefront-pricing/internal/catalog"
	"github.com/avelara/storefront-pricing/internal/model"
)

type Client struct {
	baseURL  string
	platform catalog.Platform
	client   *http.Client
}

func NewClient(baseURL string, platform catalog.Platform, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:  baseURL,
		platform: platform,
		client:   &http.Client{Timeout: timeout},
	}
}

type updateRequest struct {
	BasePlanID string      `json:"base_plan_id,omitempty"`
	Price      model.Money `json:"price"`
}

type updateResponse struct {
	Previous json.RawMessage `json:"previous,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// Update pushes one territory's price for one item through the platform
// wrapper. An unsupported territory maps to bulk.ErrTerritoryUnsupported so
// the orchestrator can report it as skipped rather than failed.
func (c *Client) Update(ctx context.Context, itemID, basePlanID, territory string, price model.Money) (*model.PriceChange, error) {
	body, err := json.Marshal(updateRequest{BasePlanID: basePlanID, Price: price})
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/items/%s/prices/%s",
		c.baseURL, url.PathEscape(itemID), url.PathEscape(territory))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload updateResponse
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	switch {
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", bulk.ErrTerritoryUnsupported, territory)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		if payload.Error != "" {
			return nil, fmt.Errorf("update %s/%s: %s", itemID, territory, payload.Error)
		}
		return nil, fmt.Errorf("update %s/%s: status %d", itemID, territory, resp.StatusCode)
	}

	change := &model.PriceChange{RegionCode: territory, NewPrice: price}
	if old := c.previousPrice(territory, payload.Previous); old != nil {
		change.OldPrice = old
	}
	return change, nil
}

// previousPrice decodes the platform's own price shape out of the response,
// best-effort: a malformed previous price only loses the old-price detail.
func (c *Client) previousPrice(territory string, raw json.RawMessage) *model.Money {
	if len(raw) == 0 {
		return nil
	}

	if c.platform == catalog.PlatformAppStore {
		var p catalog.AppStorePrice
		if json.Unmarshal(raw, &p) != nil {
			return nil
		}
		if p.Territory == "" {
			p.Territory = territory
		}
		money, err := catalog.AppStorePriceToMoney(p)
		if err != nil {
			return nil
		}
		return &money
	}

	var p catalog.PlayPrice
	if json.Unmarshal(raw, &p) != nil {
		return nil
	}
	if p.RegionCode == "" {
		p.RegionCode = territory
	}
	money, err := catalog.PlayPriceToMoney(p)
	if err != nil {
		return nil
	}
	return &money
}
