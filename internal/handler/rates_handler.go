package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avelara/storefront-pricing/internal/dto"
	"github.com/avelara/storefront-pricing/internal/source"
)

type RatesHandler struct {
	fx  *source.FXSource
	ttl time.Duration
}

func NewRatesHandler(fx *source.FXSource, ttl time.Duration) *RatesHandler {
	return &RatesHandler{fx: fx, ttl: ttl}
}

// GetRates serves the current rate snapshot. `refresh=true` bypasses the
// cache for this one request; an X-API-Key header overrides the configured
// credential.
func (h *RatesHandler) GetRates(c *gin.Context) {
	refresh := c.Query("refresh") == "true"
	apiKey := c.GetHeader("X-API-Key")

	rates, err := h.fx.Fetch(c.Request.Context(), refresh, apiKey)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.RatesResponse{
		Base:      rates.Base,
		Rates:     rates.Rates,
		Timestamp: rates.Timestamp,
		FetchedAt: rates.FetchedAt,
		Stale:     time.Since(rates.FetchedAt) >= h.ttl,
	})
}
