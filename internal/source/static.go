package source

// staticMultipliers is the bundled regional-average fallback table. It backs
// any territory the live macro dataset is missing, and the whole PPP table
// when the live source cannot be reached. Values are coarse regional
// price-level averages relative to the US.
var staticMultipliers = map[string]float64{
	// North America
	"US": 1.00, "CA": 0.85, "MX": 0.45,
	// South America
	"BR": 0.45, "AR": 0.40, "CL": 0.55, "CO": 0.35, "PE": 0.40,
	"UY": 0.60, "EC": 0.45, "BO": 0.35, "PY": 0.35, "VE": 0.40,
	// Western Europe
	"GB": 0.95, "DE": 0.90, "FR": 0.90, "IT": 0.80, "ES": 0.75,
	"NL": 0.90, "BE": 0.85, "AT": 0.90, "CH": 1.20, "IE": 0.95,
	"PT": 0.70, "LU": 1.00, "GR": 0.65,
	// Nordics
	"SE": 0.95, "NO": 1.10, "DK": 1.05, "FI": 0.95, "IS": 1.10,
	// Eastern Europe
	"PL": 0.55, "CZ": 0.60, "HU": 0.55, "RO": 0.45, "BG": 0.45,
	"SK": 0.60, "HR": 0.55, "SI": 0.65, "LT": 0.55, "LV": 0.55,
	"EE": 0.60, "RS": 0.45, "UA": 0.30, "TR": 0.35,
	// Middle East & Africa
	"IL": 0.95, "SA": 0.60, "AE": 0.70, "QA": 0.65, "KW": 0.60,
	"BH": 0.55, "OM": 0.55, "JO": 0.50, "EG": 0.25, "MA": 0.40,
	"TN": 0.35, "ZA": 0.45, "NG": 0.30, "KE": 0.40, "GH": 0.35,
	// Asia
	"JP": 0.85, "KR": 0.75, "CN": 0.55, "HK": 0.80, "TW": 0.60,
	"SG": 0.85, "IN": 0.25, "ID": 0.35, "MY": 0.40, "TH": 0.40,
	"PH": 0.35, "VN": 0.30, "PK": 0.25, "BD": 0.30, "LK": 0.30,
	"KZ": 0.40, "KH": 0.35, "MM": 0.30, "NP": 0.30,
	// Oceania
	"AU": 0.95, "NZ": 0.85,
}

// StaticMultiplier returns the bundled fallback multiplier for a territory.
func StaticMultiplier(code string) (float64, bool) {
	m, ok := staticMultipliers[code]
	return m, ok
}
