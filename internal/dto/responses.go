package dto

import (
	"time"

	"github.com/avelara/storefront-pricing/internal/model"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type RatesResponse struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	Timestamp int64              `json:"timestamp"`
	FetchedAt time.Time          `json:"fetched_at"`
	Stale     bool               `json:"stale"`
}

type PPPResponse struct {
	Multipliers map[string]float64 `json:"multipliers"`
	BaseYear    int                `json:"base_year,omitempty"`
	Fallback    bool               `json:"fallback"`
	FetchedAt   time.Time          `json:"fetched_at"`
	LiveCount   int                `json:"live_count"`
	Total       int                `json:"total"`
}

type TerritoriesResponse struct {
	Platform    string            `json:"platform"`
	Territories []model.Territory `json:"territories"`
}

type PreviewResponse struct {
	BasePriceUSD float64                 `json:"base_price_usd"`
	Strategy     string                  `json:"strategy"`
	Rounding     string                  `json:"rounding"`
	Prices       []model.CalculatedPrice `json:"prices"`
	Warnings     []string                `json:"warnings,omitempty"`
}
