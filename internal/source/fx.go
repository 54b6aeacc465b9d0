package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/avelara/storefront-pricing/internal/cache"
	"github.com/avelara/storefront-pricing/internal/model"
)

const fxCacheKey = "exchange_rates"

type FXConfig struct {
	BaseURL string
	AppID   string
	Timeout time.Duration
}

// FXSource fetches USD-based exchange rates from an openexchangerates-style
// provider, behind the two-tier reference-data cache. A live failure falls
// back to the last cached snapshot regardless of its staleness: a stale
// rate beats no rate.
type FXSource struct {
	cfg         FXConfig
	client      *http.Client
	cache       *cache.Cache[model.ExchangeRatesData]
	fetchedOnce atomic.Bool
}

func NewFXSource(cfg FXConfig, c *cache.Cache[model.ExchangeRatesData]) *FXSource {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &FXSource{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		cache:  c,
	}
}

// Fetch returns the current rate snapshot. apiKey overrides the configured
// default for this one call; with neither present it fails with ErrNoAPIKey.
// forceRefresh bypasses the cache read but not the cache write.
func (s *FXSource) Fetch(ctx context.Context, forceRefresh bool, apiKey string) (*model.ExchangeRatesData, error) {
	key := apiKey
	if key == "" {
		key = s.cfg.AppID
	}
	if key == "" {
		return nil, ErrNoAPIKey
	}

	if !forceRefresh {
		if entry, ok := s.cache.Get(fxCacheKey); ok && !s.cache.IsStale(entry) {
			rates := entry.Value
			return &rates, nil
		}
	}

	live, err := s.fetchLive(ctx, key)
	if err != nil {
		if entry, ok := s.cache.Get(fxCacheKey); ok {
			log.Warn().Err(err).
				Time("fetched_at", entry.FetchedAt).
				Msg("exchange rate fetch failed, serving cached snapshot")
			rates := entry.Value
			return &rates, nil
		}
		return nil, fmt.Errorf("fetch exchange rates: %w: %v", ErrSourceUnavailable, err)
	}

	s.cache.Put(fxCacheKey, *live)
	s.fetchedOnce.Store(true)
	return live, nil
}

// Available reports whether the source has a default key and has completed
// at least one successful live fetch this process lifetime.
func (s *FXSource) Available() bool {
	return s.cfg.AppID != "" && s.fetchedOnce.Load()
}

type fxResponse struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	Timestamp int64              `json:"timestamp"`
}

func (s *FXSource) fetchLive(ctx context.Context, apiKey string) (*model.ExchangeRatesData, error) {
	u := fmt.Sprintf("%s/latest.json?app_id=%s", s.cfg.BaseURL, url.QueryEscape(apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fx provider returned status %d", resp.StatusCode)
	}

	var body fxResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode fx response: %w", err)
	}
	if body.Base == "" || len(body.Rates) == 0 {
		return nil, fmt.Errorf("fx response missing base or rates")
	}

	return &model.ExchangeRatesData{
		Base:      body.Base,
		Rates:     body.Rates,
		Timestamp: body.Timestamp,
		FetchedAt: time.Now().UTC(),
	}, nil
}
