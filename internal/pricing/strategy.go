// Package pricing turns one base USD price into regional prices: multiplier
// resolution per strategy, currency conversion, and rounding. Everything in
// this package is pure; all reference data is fetched upstream and passed in.
package pricing

import (
	"errors"
	"fmt"

	"github.com/avelara/storefront-pricing/internal/model"
	"github.com/avelara/storefront-pricing/internal/source"
)

// ErrNoCustomMultiplier marks a territory absent from a caller-supplied
// multiplier table. The caller opted into manual control, so the territory
// is excluded rather than silently defaulted.
var ErrNoCustomMultiplier = errors.New("no custom multiplier for territory")

// ResolveMultiplier returns the price multiplier for a territory under the
// given strategy, and where it came from. Resolution order per strategy:
//
//	direct  -> 1.0 always
//	ppp     -> live PPP table, else static table
//	bigmac  -> Big Mac index, else static table
//	custom  -> caller's table, missing entry is an error
func ResolveMultiplier(territory string, strategy model.PricingStrategy, ppp *model.PPPData, custom map[string]float64) (float64, model.MultiplierSource, error) {
	switch strategy {
	case model.StrategyDirect:
		return 1.0, model.SourceDirect, nil

	case model.StrategyPPP:
		if ppp != nil {
			if m, ok := ppp.Multipliers[territory]; ok {
				return m, model.SourceWorldBank, nil
			}
		}
		return staticOrUnity(territory), model.SourceStatic, nil

	case model.StrategyBigMac:
		if m, ok := source.BigMacMultiplier(territory); ok {
			return m, model.SourceBigMac, nil
		}
		return staticOrUnity(territory), model.SourceStatic, nil

	case model.StrategyCustom:
		if m, ok := custom[territory]; ok {
			return m, model.SourceCustom, nil
		}
		return 0, "", fmt.Errorf("%w: %s", ErrNoCustomMultiplier, territory)
	}

	return 0, "", fmt.Errorf("%w %q", model.ErrUnknownStrategy, strategy)
}

func staticOrUnity(territory string) float64 {
	if m, ok := source.StaticMultiplier(territory); ok {
		return m
	}
	return 1.0
}
