package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/avelara/storefront-pricing/internal/cache"
	"github.com/avelara/storefront-pricing/internal/catalog"
	"github.com/avelara/storefront-pricing/internal/model"
)

const (
	pppCacheKey = "ppp_multipliers"

	// Price level ratio of PPP conversion factor to market exchange rate:
	// directly usable as a price multiplier relative to the US.
	pppIndicator = "PA.NUS.PPPC.RF"

	pppLookbackYears = 5
)

type PPPConfig struct {
	BaseURL string
	Timeout time.Duration
}

// PPPSource derives per-territory price multipliers from the World Bank
// price-level dataset. Territories missing from the live response are
// backfilled from the bundled static table so the returned map always
// covers every supported territory; if the live call fails entirely the
// whole table is static and the metadata is flagged Fallback.
type PPPSource struct {
	cfg    PPPConfig
	client *http.Client
	cache  *cache.Cache[model.PPPData]
}

func NewPPPSource(cfg PPPConfig, c *cache.Cache[model.PPPData]) *PPPSource {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &PPPSource{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		cache:  c,
	}
}

func (s *PPPSource) Fetch(ctx context.Context, forceRefresh bool) (*model.PPPData, *model.PPPMeta, error) {
	if !forceRefresh {
		if entry, ok := s.cache.Get(pppCacheKey); ok && !s.cache.IsStale(entry) {
			data := entry.Value
			return &data, metaFor(&data, entry.FetchedAt), nil
		}
	}

	live, baseYear, err := s.fetchLive(ctx)
	if err != nil {
		if entry, ok := s.cache.Get(pppCacheKey); ok {
			log.Warn().Err(err).Msg("purchasing power fetch failed, serving cached table")
			data := entry.Value
			return &data, metaFor(&data, entry.FetchedAt), nil
		}
		log.Warn().Err(err).Msg("purchasing power fetch failed, using static table")
		data := staticOnly()
		return data, metaFor(data, time.Now().UTC()), nil
	}

	data := &model.PPPData{
		Multipliers: make(map[string]float64, len(live)),
		BaseYear:    baseYear,
	}
	for _, code := range catalog.SupportedCodes() {
		if m, ok := live[code]; ok {
			data.Multipliers[code] = m
			data.LiveCount++
		} else if m, ok := StaticMultiplier(code); ok {
			data.Multipliers[code] = m
		} else {
			data.Multipliers[code] = 1.0
		}
	}

	s.cache.Put(pppCacheKey, *data)

	return data, metaFor(data, time.Now().UTC()), nil
}

func staticOnly() *model.PPPData {
	data := &model.PPPData{
		Multipliers: make(map[string]float64),
		Fallback:    true,
	}
	for _, code := range catalog.SupportedCodes() {
		if m, ok := StaticMultiplier(code); ok {
			data.Multipliers[code] = m
		} else {
			data.Multipliers[code] = 1.0
		}
	}
	return data
}

func metaFor(data *model.PPPData, fetchedAt time.Time) *model.PPPMeta {
	return &model.PPPMeta{
		BaseYear:  data.BaseYear,
		FetchedAt: fetchedAt,
		LiveCount: data.LiveCount,
		Total:     len(data.Multipliers),
		Fallback:  data.Fallback,
	}
}

// worldBankRow is one observation in the World Bank response. The response
// envelope is a two-element array: paging metadata, then rows.
type worldBankRow struct {
	Country struct {
		ID string `json:"id"`
	} `json:"country"`
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

func (s *PPPSource) fetchLive(ctx context.Context) (map[string]float64, int, error) {
	nowYear := time.Now().Year()
	u := fmt.Sprintf("%s/country/all/indicator/%s?format=json&per_page=2000&date=%d:%d",
		s.cfg.BaseURL, pppIndicator, nowYear-pppLookbackYears, nowYear)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("world bank returned status %d", resp.StatusCode)
	}

	var envelope []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, 0, fmt.Errorf("decode world bank envelope: %w", err)
	}
	if len(envelope) < 2 {
		return nil, 0, fmt.Errorf("world bank envelope has no data element")
	}

	var rows []worldBankRow
	if err := json.Unmarshal(envelope[1], &rows); err != nil {
		return nil, 0, fmt.Errorf("decode world bank rows: %w", err)
	}

	// Keep the most recent non-null observation per country.
	multipliers := make(map[string]float64)
	years := make(map[string]int)
	baseYear := 0
	for _, row := range rows {
		if row.Value == nil || row.Country.ID == "" {
			continue
		}
		year, err := strconv.Atoi(row.Date)
		if err != nil {
			continue
		}
		if year <= years[row.Country.ID] {
			continue
		}
		years[row.Country.ID] = year
		multipliers[row.Country.ID] = *row.Value
		if year > baseYear {
			baseYear = year
		}
	}
	if len(multipliers) == 0 {
		return nil, 0, fmt.Errorf("world bank response had no usable observations")
	}

	return multipliers, baseYear, nil
}
