package catalog

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/avelara/storefront-pricing/internal/model"
)

// PlayPrice is the Play API's price shape: whole units as a string plus
// nanos, per region.
type PlayPrice struct {
	RegionCode string `json:"regionCode"`
	Price      struct {
		CurrencyCode string `json:"currencyCode"`
		Units        string `json:"units"`
		Nanos        int64  `json:"nanos"`
	} `json:"price"`
}

// PlayPriceToMoney translates one Play regional price into canonical Money.
func PlayPriceToMoney(p PlayPrice) (model.Money, error) {
	if p.Price.CurrencyCode == "" {
		return model.Money{}, fmt.Errorf("play price for %s has no currency code", p.RegionCode)
	}
	units := p.Price.Units
	if units == "" {
		units = "0"
	}
	if _, err := strconv.ParseInt(units, 10, 64); err != nil {
		return model.Money{}, fmt.Errorf("play price for %s has bad units %q: %w", p.RegionCode, units, err)
	}
	return model.Money{
		CurrencyCode: p.Price.CurrencyCode,
		Units:        units,
		Nanos:        p.Price.Nanos,
	}, nil
}

// AppStorePrice is the App Store API's price shape: a decimal string plus a
// separate currency attribute, per territory.
type AppStorePrice struct {
	Territory     string `json:"territory"`
	CustomerPrice string `json:"customerPrice"`
	Currency      string `json:"currency"`
}

// AppStorePriceToMoney translates one App Store territory price into
// canonical Money.
func AppStorePriceToMoney(p AppStorePrice) (model.Money, error) {
	if p.Currency == "" {
		return model.Money{}, fmt.Errorf("app store price for %s has no currency", p.Territory)
	}
	amount, err := decimal.NewFromString(p.CustomerPrice)
	if err != nil {
		return model.Money{}, fmt.Errorf("app store price for %s has bad amount %q: %w", p.Territory, p.CustomerPrice, err)
	}
	return model.NewMoney(amount, p.Currency), nil
}
