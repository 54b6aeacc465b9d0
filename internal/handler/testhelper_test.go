package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avelara/storefront-pricing/internal/cache"
	"github.com/avelara/storefront-pricing/internal/middleware"
	"github.com/avelara/storefront-pricing/internal/model"
	"github.com/avelara/storefront-pricing/internal/source"
)

const fxFixture = `{"base":"USD","timestamp":1700000000,"rates":{"EUR":0.9,"GBP":0.8,"JPY":150.0,"BRL":5.0}}`

// newFXFixtureServer serves a fixed rate snapshot the way the FX provider
// would.
func newFXFixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(fxFixture))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestFXSource(t *testing.T, baseURL, appID string) *source.FXSource {
	t.Helper()
	c := cache.New[model.ExchangeRatesData](t.TempDir(), 6*time.Hour)
	return source.NewFXSource(source.FXConfig{BaseURL: baseURL, AppID: appID}, c)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	return router
}
