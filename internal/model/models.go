package model

import (
	"errors"
	"fmt"
	"time"
)

// Territory is the canonical sales-market shape shared by both storefront
// catalogs. Code is platform-specific and not always a plain ISO country code.
type Territory struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// ExchangeRatesData holds one whole USD-based rate snapshot. Snapshots are
// replaced wholesale on refresh, never merged.
type ExchangeRatesData struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	Timestamp int64              `json:"timestamp"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// Rate returns the USD rate for a currency. The base currency itself is
// implicitly 1.0 whether or not the provider stored it.
func (e *ExchangeRatesData) Rate(currency string) (float64, bool) {
	if currency == e.Base {
		return 1.0, true
	}
	r, ok := e.Rates[currency]
	return r, ok
}

// PPPData maps territory codes to price multipliers. A multiplier below 1
// means "charge less than direct USD conversion". LiveCount travels with the
// table so a cache hit still knows how much of it came from the live dataset.
type PPPData struct {
	Multipliers map[string]float64 `json:"multipliers"`
	BaseYear    int                `json:"base_year,omitempty"`
	LiveCount   int                `json:"live_count"`
	Fallback    bool               `json:"fallback"`
}

// PPPMeta describes how a PPPData table was assembled.
type PPPMeta struct {
	BaseYear  int       `json:"base_year,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
	LiveCount int       `json:"live_count"`
	Total     int       `json:"total"`
	Fallback  bool      `json:"fallback"`
}

var (
	ErrUnknownStrategy     = errors.New("unknown pricing strategy")
	ErrUnknownRoundingMode = errors.New("unknown rounding mode")
)

type PricingStrategy string

const (
	StrategyDirect PricingStrategy = "direct"
	StrategyPPP    PricingStrategy = "ppp"
	StrategyBigMac PricingStrategy = "bigmac"
	StrategyCustom PricingStrategy = "custom"
)

func ParseStrategy(s string) (PricingStrategy, error) {
	switch PricingStrategy(s) {
	case StrategyDirect, StrategyPPP, StrategyBigMac, StrategyCustom:
		return PricingStrategy(s), nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownStrategy, s)
}

type RoundingMode string

const (
	RoundCharm RoundingMode = "charm"
	RoundWhole RoundingMode = "whole"
	RoundNone  RoundingMode = "none"
)

func ParseRoundingMode(s string) (RoundingMode, error) {
	switch RoundingMode(s) {
	case RoundCharm, RoundWhole, RoundNone:
		return RoundingMode(s), nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownRoundingMode, s)
}

// MultiplierSource records where a territory's multiplier came from.
type MultiplierSource string

const (
	SourceWorldBank MultiplierSource = "world-bank"
	SourceBigMac    MultiplierSource = "big-mac"
	SourceStatic    MultiplierSource = "static"
	SourceCustom    MultiplierSource = "custom"
	SourceDirect    MultiplierSource = "direct"
)

// CalculatedPrice is one derived regional price. It is never persisted.
type CalculatedPrice struct {
	RegionCode       string           `json:"region_code"`
	CurrencyCode     string           `json:"currency_code"`
	Multiplier       float64          `json:"multiplier"`
	MultiplierSource MultiplierSource `json:"multiplier_source"`
	ExchangeRate     float64          `json:"exchange_rate"`
	AdjustedUSDPrice float64          `json:"adjusted_usd_price"`
	RawPrice         float64          `json:"raw_price"`
	Price            Money            `json:"price"`
}

// PriceChange records one applied territory update.
type PriceChange struct {
	RegionCode string `json:"region_code"`
	OldPrice   *Money `json:"old_price,omitempty"`
	NewPrice   Money  `json:"new_price"`
}

// BulkApplyResult is the outcome for one item in a bulk apply.
type BulkApplyResult struct {
	ItemID     string        `json:"item_id"`
	BasePlanID string        `json:"base_plan_id,omitempty"`
	Success    bool          `json:"success"`
	Error      string        `json:"error,omitempty"`
	Changes    []PriceChange `json:"changes,omitempty"`
}

// BulkApplyAggregate is the terminal payload of a bulk apply operation.
// Successful+Failed always equals the number of attempted updates; skipped
// territories are tracked separately and never count as failures.
type BulkApplyAggregate struct {
	OperationID string            `json:"operation_id"`
	Successful  int               `json:"successful"`
	Failed      int               `json:"failed"`
	Skipped     []string          `json:"skipped,omitempty"`
	Results     []BulkApplyResult `json:"results"`
}
