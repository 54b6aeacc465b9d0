// Package catalog holds the territory tables for the two storefronts and
// the adapters that translate each platform's price payloads into the
// canonical model types. The core never sees platform-specific shapes.
package catalog

import (
	"fmt"
	"sort"

	"github.com/avelara/storefront-pricing/internal/model"
)

type Platform string

const (
	PlatformPlay     Platform = "play"
	PlatformAppStore Platform = "appstore"
)

func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformPlay, PlatformAppStore:
		return Platform(s), nil
	}
	return "", fmt.Errorf("unknown platform %q", s)
}

// Territories returns the platform's catalog sorted by code.
func Territories(p Platform) []model.Territory {
	var table map[string]territoryEntry
	switch p {
	case PlatformAppStore:
		table = appStoreTerritories
	default:
		table = playTerritories
	}

	out := make([]model.Territory, 0, len(table))
	for code, e := range table {
		out = append(out, model.Territory{Code: code, Name: e.name, Currency: e.currency})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// CurrencyFor returns the catalog currency for a territory on a platform.
func CurrencyFor(p Platform, code string) (string, bool) {
	table := playTerritories
	if p == PlatformAppStore {
		table = appStoreTerritories
	}
	e, ok := table[code]
	return e.currency, ok
}

// SupportedCodes is the union of both catalogs, used to size fallback
// multiplier coverage.
func SupportedCodes() []string {
	seen := map[string]bool{}
	for code := range playTerritories {
		seen[code] = true
	}
	for code := range appStoreTerritories {
		seen[code] = true
	}
	out := make([]string, 0, len(seen))
	for code := range seen {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
