package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avelara/storefront-pricing/internal/catalog"
	"github.com/avelara/storefront-pricing/internal/dto"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) GetTerritories(c *gin.Context) {
	platform := catalog.PlatformPlay
	if p := c.Query("platform"); p != "" {
		parsed, err := catalog.ParsePlatform(p)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		platform = parsed
	}

	c.JSON(http.StatusOK, dto.TerritoriesResponse{
		Platform:    string(platform),
		Territories: catalog.Territories(platform),
	})
}
