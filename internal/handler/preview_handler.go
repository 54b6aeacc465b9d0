package handler

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avelara/storefront-pricing/internal/catalog"
	"github.com/avelara/storefront-pricing/internal/dto"
	"github.com/avelara/storefront-pricing/internal/model"
	"github.com/avelara/storefront-pricing/internal/pricing"
	"github.com/avelara/storefront-pricing/internal/source"
)

type PreviewHandler struct {
	fx    *source.FXSource
	ppp   *source.PPPSource
	fxTTL time.Duration
}

func NewPreviewHandler(fx *source.FXSource, ppp *source.PPPSource, fxTTL time.Duration) *PreviewHandler {
	return &PreviewHandler{fx: fx, ppp: ppp, fxTTL: fxTTL}
}

// Preview prefetches the reference data and runs the calculator. The
// calculator itself is pure; every network touch happens here, before it.
func (h *PreviewHandler) Preview(c *gin.Context) {
	var req dto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed: " + err.Error()})
		return
	}

	strategy, err := model.ParseStrategy(req.Strategy)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	rounding, err := model.ParseRoundingMode(req.Rounding)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	platform := catalog.PlatformPlay
	if req.Platform != "" {
		if platform, err = catalog.ParsePlatform(req.Platform); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	var warnings []string

	rates, err := h.fx.Fetch(c.Request.Context(), false, c.GetHeader("X-API-Key"))
	if err != nil {
		c.Error(err)
		return
	}
	if time.Since(rates.FetchedAt) >= h.fxTTL {
		warnings = append(warnings, "exchange rates are stale; showing last known values")
	}

	var pppData *model.PPPData
	if strategy == model.StrategyPPP {
		data, meta, err := h.ppp.Fetch(c.Request.Context(), false)
		if err != nil {
			c.Error(err)
			return
		}
		pppData = data
		if meta.Fallback {
			warnings = append(warnings, "purchasing power data unavailable; using static estimates")
		}
	}

	prices := pricing.Calculate(pricing.CalcInput{
		BasePriceUSD:      req.BasePriceUSD,
		Territories:       req.Territories,
		Strategy:          strategy,
		Rounding:          rounding,
		CustomMultipliers: req.CustomMultipliers,
		PPP:               pppData,
		KnownCurrencies:   req.KnownCurrencies,
		Platform:          platform,
		Rates:             rates,
	})

	// Display order only; calculation order carries no meaning.
	sort.Slice(prices, func(i, j int) bool { return prices[i].RegionCode < prices[j].RegionCode })

	c.JSON(http.StatusOK, dto.PreviewResponse{
		BasePriceUSD: req.BasePriceUSD,
		Strategy:     string(strategy),
		Rounding:     string(rounding),
		Prices:       prices,
		Warnings:     warnings,
	})
}
