package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelara/storefront-pricing/internal/bulk"
	"github.com/avelara/storefront-pricing/internal/catalog"
	"github.com/avelara/storefront-pricing/internal/dto"
	"github.com/avelara/storefront-pricing/internal/model"
	"github.com/avelara/storefront-pricing/internal/stream"
)

type scriptedUpdater struct {
	mu     sync.Mutex
	calls  int
	failOn map[string]error
}

func (u *scriptedUpdater) Update(ctx context.Context, itemID, basePlanID, territory string, price model.Money) (*model.PriceChange, error) {
	u.mu.Lock()
	u.calls++
	u.mu.Unlock()
	if err, ok := u.failOn[itemID+"/"+territory]; ok {
		return nil, err
	}
	return &model.PriceChange{RegionCode: territory, NewPrice: price}, nil
}

func setupApplyRouter(t *testing.T, updater bulk.PriceUpdater) *gin.Engine {
	t.Helper()
	router := newTestRouter()
	h := NewApplyHandler(map[catalog.Platform]bulk.PriceUpdater{
		catalog.PlatformPlay: updater,
	}, 1)
	router.POST("/api/v1/prices/apply", h.Apply)
	return router
}

func applyBody(t *testing.T, req dto.ApplyRequest) *bytes.Buffer {
	t.Helper()
	jsonBody, err := json.Marshal(req)
	require.NoError(t, err)
	return bytes.NewBuffer(jsonBody)
}

func territoryPrices(codes ...string) map[string]model.Money {
	prices := make(map[string]model.Money, len(codes))
	for _, code := range codes {
		prices[code] = model.Money{CurrencyCode: "USD", Units: "9", Nanos: 990_000_000}
	}
	return prices
}

func TestApplyHandler_StreamsProgressAndAggregate(t *testing.T) {
	updater := &scriptedUpdater{failOn: map[string]error{
		"sub-1/DE": errors.New("rejected upstream"),
	}}
	router := setupApplyRouter(t, updater)

	req := dto.ApplyRequest{
		Items: []dto.ApplyItem{
			{ItemID: "sub-1", TerritoryPrices: territoryPrices("US", "DE", "JP")},
			{ItemID: "sub-2", BasePlanID: "monthly", TerritoryPrices: territoryPrices("US", "GB")},
		},
	}

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest("POST", "/api/v1/prices/apply", applyBody(t, req))
	httpReq.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, stream.ContentType, w.Header().Get("Content-Type"))

	var progressCount int
	data, err := stream.Consume(context.Background(), w.Body, func(completed, total int, phase string) {
		progressCount++
		assert.Equal(t, 5, total)
	})
	require.NoError(t, err)
	assert.Equal(t, 5, progressCount, "one progress event per territory")

	var agg model.BulkApplyAggregate
	require.NoError(t, json.Unmarshal(data, &agg))
	assert.Equal(t, 4, agg.Successful)
	assert.Equal(t, 1, agg.Failed)
	assert.NotEmpty(t, agg.OperationID)
	require.Len(t, agg.Results, 2)
	assert.False(t, agg.Results[0].Success)
	assert.Contains(t, agg.Results[0].Error, "DE: rejected upstream")
	assert.True(t, agg.Results[1].Success)
	assert.Equal(t, "monthly", agg.Results[1].BasePlanID)
	assert.Equal(t, 5, updater.calls)
}

func TestApplyHandler_SkippedTerritories(t *testing.T) {
	updater := &scriptedUpdater{failOn: map[string]error{
		"sub-1/JP": bulk.ErrTerritoryUnsupported,
	}}
	router := setupApplyRouter(t, updater)

	req := dto.ApplyRequest{
		Items: []dto.ApplyItem{{ItemID: "sub-1", TerritoryPrices: territoryPrices("US", "JP")}},
	}

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest("POST", "/api/v1/prices/apply", applyBody(t, req))
	httpReq.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, httpReq)

	data, err := stream.Consume(context.Background(), w.Body, nil)
	require.NoError(t, err)

	var agg model.BulkApplyAggregate
	require.NoError(t, json.Unmarshal(data, &agg))
	assert.Equal(t, 1, agg.Successful)
	assert.Zero(t, agg.Failed)
	assert.Equal(t, []string{"JP"}, agg.Skipped)
}

func TestApplyHandler_ItemGranularity(t *testing.T) {
	router := setupApplyRouter(t, &scriptedUpdater{})

	req := dto.ApplyRequest{
		Granularity: "item",
		Items: []dto.ApplyItem{
			{ItemID: "sub-1", TerritoryPrices: territoryPrices("US", "DE")},
			{ItemID: "sub-2", TerritoryPrices: territoryPrices("US")},
		},
	}

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest("POST", "/api/v1/prices/apply", applyBody(t, req))
	httpReq.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, httpReq)

	var totals []int
	_, err := stream.Consume(context.Background(), w.Body, func(completed, total int, phase string) {
		totals = append(totals, total)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, totals, "progress counts items, not territories")
}

func TestApplyHandler_Validation(t *testing.T) {
	router := setupApplyRouter(t, &scriptedUpdater{})

	t.Run("empty items is a plain 400, no stream", func(t *testing.T) {
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/api/v1/prices/apply", bytes.NewBufferString(`{"items":[]}`))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotEqual(t, stream.ContentType, w.Header().Get("Content-Type"))
	})

	t.Run("unknown platform is a plain 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := applyBody(t, dto.ApplyRequest{
			Platform: "steam",
			Items:    []dto.ApplyItem{{ItemID: "sub-1", TerritoryPrices: territoryPrices("US")}},
		})
		httpReq, _ := http.NewRequest("POST", "/api/v1/prices/apply", body)
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
