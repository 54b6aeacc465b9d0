package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelara/storefront-pricing/internal/cache"
	"github.com/avelara/storefront-pricing/internal/dto"
	"github.com/avelara/storefront-pricing/internal/model"
	"github.com/avelara/storefront-pricing/internal/source"
)

func setupPreviewRouter(t *testing.T, appID string) (*gin.Engine, *httptest.Server) {
	t.Helper()
	fxSrv := newFXFixtureServer(t)

	fx := newTestFXSource(t, fxSrv.URL, appID)
	pppCache := cache.New[model.PPPData](t.TempDir(), 7*24*time.Hour)
	ppp := source.NewPPPSource(source.PPPConfig{BaseURL: fxSrv.URL}, pppCache)

	router := newTestRouter()
	router.POST("/api/v1/prices/preview", NewPreviewHandler(fx, ppp, 6*time.Hour).Preview)
	return router, fxSrv
}

func postPreview(t *testing.T, router *gin.Engine, body dto.PreviewRequest) *httptest.ResponseRecorder {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/prices/preview", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestPreviewHandler(t *testing.T) {
	router, _ := setupPreviewRouter(t, "test-key")

	t.Run("happy: direct strategy with charm rounding", func(t *testing.T) {
		w := postPreview(t, router, dto.PreviewRequest{
			BasePriceUSD: 9.99,
			Territories:  []string{"US", "DE", "JP"},
			Strategy:     "direct",
			Rounding:     "charm",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.PreviewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Prices, 3)

		assert.True(t, sort.SliceIsSorted(resp.Prices, func(i, j int) bool {
			return resp.Prices[i].RegionCode < resp.Prices[j].RegionCode
		}), "prices are sorted for display")

		for _, p := range resp.Prices {
			assert.Equal(t, 1.0, p.Multiplier, p.RegionCode)
			assert.Equal(t, model.SourceDirect, p.MultiplierSource, p.RegionCode)
		}

		// US: charm(9.99 * 1.0) = 9.99
		assert.InDelta(t, 9.99, resp.Prices[2].RawPrice, 1e-9)
		// JP: charm(9.99 * 150 = 1498.5) -> ends in 9
		assert.InDelta(t, 1499.0, resp.Prices[1].RawPrice, 1e-9)
	})

	t.Run("happy: custom strategy excludes unlisted territories", func(t *testing.T) {
		w := postPreview(t, router, dto.PreviewRequest{
			BasePriceUSD:      10,
			Territories:       []string{"FR", "JP"},
			Strategy:          "custom",
			Rounding:          "none",
			CustomMultipliers: map[string]float64{"FR": 0.8},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.PreviewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Prices, 1)
		assert.Equal(t, "FR", resp.Prices[0].RegionCode)
		assert.InDelta(t, 8.0, resp.Prices[0].AdjustedUSDPrice, 1e-9)
	})

	t.Run("zero base price previews nothing", func(t *testing.T) {
		w := postPreview(t, router, dto.PreviewRequest{
			Territories: []string{"US"},
			Strategy:    "direct",
			Rounding:    "none",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.PreviewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Prices)
	})

	t.Run("unknown strategy is a 400", func(t *testing.T) {
		w := postPreview(t, router, dto.PreviewRequest{
			BasePriceUSD: 10,
			Territories:  []string{"US"},
			Strategy:     "psychic",
			Rounding:     "none",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing territories is a 400", func(t *testing.T) {
		w := postPreview(t, router, dto.PreviewRequest{
			BasePriceUSD: 10,
			Strategy:     "direct",
			Rounding:     "none",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPreviewHandler_NoAPIKey(t *testing.T) {
	router, _ := setupPreviewRouter(t, "")

	w := postPreview(t, router, dto.PreviewRequest{
		BasePriceUSD: 10,
		Territories:  []string{"US"},
		Strategy:     "direct",
		Rounding:     "none",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "API key")
}
