package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/avelara/storefront-pricing/internal/bulk"
	"github.com/avelara/storefront-pricing/internal/catalog"
	"github.com/avelara/storefront-pricing/internal/dto"
	"github.com/avelara/storefront-pricing/internal/stream"
)

type ApplyHandler struct {
	updaters           map[catalog.Platform]bulk.PriceUpdater
	defaultConcurrency int
}

func NewApplyHandler(updaters map[catalog.Platform]bulk.PriceUpdater, defaultConcurrency int) *ApplyHandler {
	return &ApplyHandler{updaters: updaters, defaultConcurrency: defaultConcurrency}
}

// Apply pushes the supplied regional prices platform-side, streaming NDJSON
// progress. Validation failures respond as plain JSON before the stream
// opens; once streaming starts, all outcomes travel as events.
func (h *ApplyHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed: " + err.Error()})
		return
	}

	platform := catalog.PlatformPlay
	if req.Platform != "" {
		parsed, err := catalog.ParsePlatform(req.Platform)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		platform = parsed
	}

	updater, ok := h.updaters[platform]
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "no updater configured for platform " + string(platform)})
		return
	}

	items := make([]bulk.Item, len(req.Items))
	for i, item := range req.Items {
		items[i] = bulk.Item{
			ItemID:          item.ItemID,
			BasePlanID:      item.BasePlanID,
			TerritoryPrices: item.TerritoryPrices,
		}
	}

	concurrency := req.Concurrency
	if concurrency == 0 {
		concurrency = h.defaultConcurrency
	}

	c.Header("Content-Type", stream.ContentType)
	c.Status(http.StatusOK)
	writer := stream.NewWriter(c.Writer)

	orchestrator := bulk.NewOrchestrator(updater)
	_, err := orchestrator.Apply(c.Request.Context(), bulk.Request{
		Items:       items,
		Granularity: bulk.Granularity(req.Granularity),
		Concurrency: concurrency,
	}, writer)

	if err != nil {
		// An aborted request gets no further events; anything else ends the
		// stream with its terminal error event.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Info().Err(err).Msg("bulk apply aborted by caller")
			return
		}
		if failErr := writer.Fail(err); failErr != nil && !errors.Is(failErr, stream.ErrTerminalSent) {
			log.Warn().Err(failErr).Msg("could not emit terminal error event")
		}
	}
}
