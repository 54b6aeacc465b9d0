package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/avelara/storefront-pricing/internal/source"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MapDomainError translates the service's error taxonomy to HTTP. The
// missing-credential case gets its own status and an actionable message so
// UIs can render a setup prompt instead of a generic failure.
func MapDomainError(err error) (int, ErrorResponse) {
	if errors.Is(err, source.ErrNoAPIKey) {
		return http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "no exchange rate API key configured",
			Details: "provide an X-API-Key header or set OXR_APP_ID",
		}
	}

	if errors.Is(err, source.ErrSourceUnavailable) {
		return http.StatusServiceUnavailable, ErrorResponse{
			Error:   "reference data source unavailable",
			Details: err.Error(),
		}
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			status, resp := MapDomainError(err)
			c.JSON(status, resp)
		}
	}
}
