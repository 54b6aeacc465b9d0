package dto

import "github.com/avelara/storefront-pricing/internal/model"

// PreviewRequest asks for one base USD price spread across territories.
// A zero or negative base price is valid and previews nothing.
type PreviewRequest struct {
	BasePriceUSD      float64            `json:"base_price_usd"`
	Territories       []string           `json:"territories" binding:"required,min=1"`
	Strategy          string             `json:"strategy" binding:"required"`
	Rounding          string             `json:"rounding" binding:"required"`
	Platform          string             `json:"platform"`
	CustomMultipliers map[string]float64 `json:"custom_multipliers"`
	KnownCurrencies   map[string]string  `json:"known_currencies"`
}

type ApplyItem struct {
	ItemID          string                 `json:"item_id" binding:"required"`
	BasePlanID      string                 `json:"base_plan_id"`
	TerritoryPrices map[string]model.Money `json:"territory_prices" binding:"required"`
}

type ApplyRequest struct {
	Platform    string      `json:"platform"`
	Items       []ApplyItem `json:"items" binding:"required,min=1,dive"`
	Granularity string      `json:"granularity" binding:"omitempty,oneof=item territory"`
	Concurrency int         `json:"concurrency" binding:"omitempty,min=1,max=8"`
}
