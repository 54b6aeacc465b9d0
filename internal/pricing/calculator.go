package pricing

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/avelara/storefront-pricing/internal/catalog"
	"github.com/avelara/storefront-pricing/internal/model"
)

// CalcInput carries everything Calculate needs. All reference data is
// prefetched by the caller; Calculate itself never touches the network.
type CalcInput struct {
	BasePriceUSD float64
	Territories  []string
	Strategy     model.PricingStrategy
	Rounding     model.RoundingMode

	// CustomMultipliers is consulted only for the custom strategy.
	CustomMultipliers map[string]float64
	PPP               *model.PPPData

	// KnownCurrencies maps territory code to the currency the storefront
	// itself declared for that market. It wins over the catalog default,
	// since storefronts can expect a currency other than the geographic one.
	KnownCurrencies map[string]string
	Platform        catalog.Platform

	Rates *model.ExchangeRatesData
}

// Calculate produces one CalculatedPrice per requested territory. Output
// order is not significant. Territories are dropped rather than failed
// when no currency, custom multiplier, or exchange rate is available for
// them. A non-positive base price means "nothing to preview yet" and
// yields an empty result.
func Calculate(in CalcInput) []model.CalculatedPrice {
	if in.BasePriceUSD <= 0 {
		return nil
	}

	out := make([]model.CalculatedPrice, 0, len(in.Territories))
	for _, territory := range in.Territories {
		currency, ok := resolveCurrency(in, territory)
		if !ok {
			log.Debug().Str("territory", territory).Msg("no currency known, skipping")
			continue
		}

		multiplier, multiplierSource, err := ResolveMultiplier(territory, in.Strategy, in.PPP, in.CustomMultipliers)
		if err != nil {
			if !errors.Is(err, ErrNoCustomMultiplier) {
				log.Warn().Str("territory", territory).Err(err).Msg("multiplier resolution failed")
			}
			continue
		}

		rate, ok := resolveRate(in.Rates, currency)
		if !ok {
			log.Debug().Str("territory", territory).Str("currency", currency).Msg("no exchange rate, skipping")
			continue
		}

		adjusted := in.BasePriceUSD * multiplier
		raw := Round(adjusted*rate, in.Rounding, MinorUnitDigits(currency))

		out = append(out, model.CalculatedPrice{
			RegionCode:       territory,
			CurrencyCode:     currency,
			Multiplier:       multiplier,
			MultiplierSource: multiplierSource,
			ExchangeRate:     rate,
			AdjustedUSDPrice: adjusted,
			RawPrice:         raw,
			Price:            model.NewMoneyFromFloat(raw, currency),
		})
	}
	return out
}

func resolveCurrency(in CalcInput, territory string) (string, bool) {
	if c, ok := in.KnownCurrencies[territory]; ok && c != "" {
		return c, true
	}
	return catalog.CurrencyFor(in.Platform, territory)
}

func resolveRate(rates *model.ExchangeRatesData, currency string) (float64, bool) {
	if currency == "USD" {
		return 1.0, true
	}
	if rates == nil {
		return 0, false
	}
	return rates.Rate(currency)
}
