package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avelara/storefront-pricing/internal/dto"
	"github.com/avelara/storefront-pricing/internal/source"
)

type PPPHandler struct {
	ppp *source.PPPSource
}

func NewPPPHandler(ppp *source.PPPSource) *PPPHandler {
	return &PPPHandler{ppp: ppp}
}

func (h *PPPHandler) GetPPP(c *gin.Context) {
	refresh := c.Query("refresh") == "true"

	data, meta, err := h.ppp.Fetch(c.Request.Context(), refresh)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.PPPResponse{
		Multipliers: data.Multipliers,
		BaseYear:    meta.BaseYear,
		Fallback:    meta.Fallback,
		FetchedAt:   meta.FetchedAt,
		LiveCount:   meta.LiveCount,
		Total:       meta.Total,
	})
}
