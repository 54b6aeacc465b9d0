package source

// bigMacIndex holds local Big Mac price relative to the US price, from the
// most recent published index covering 53 countries. Used as an alternative
// multiplier source for the bigmac strategy.
var bigMacIndex = map[string]float64{
	"US": 1.00,
	"AR": 0.62, "AU": 0.81, "AZ": 0.49, "BH": 0.74, "BR": 0.78,
	"GB": 0.88, "CA": 0.89, "CL": 0.71, "CN": 0.58, "CO": 0.66,
	"CR": 0.83, "CZ": 0.72, "DK": 0.95, "EG": 0.33, "EU": 0.92,
	"GT": 0.72, "HK": 0.54, "HN": 0.68, "HU": 0.75, "IN": 0.39,
	"ID": 0.55, "IL": 1.01, "JP": 0.56, "JO": 0.60, "KW": 0.84,
	"MY": 0.45, "MX": 0.81, "MD": 0.55, "NL": 0.92, "NZ": 0.77,
	"NI": 0.64, "NO": 1.05, "OM": 0.65, "PK": 0.45, "PE": 0.66,
	"PH": 0.58, "PL": 0.69, "QA": 0.65, "RO": 0.56, "SA": 0.71,
	"SG": 0.74, "ZA": 0.43, "KR": 0.67, "LK": 0.43, "SE": 0.99,
	"CH": 1.41, "TW": 0.48, "TH": 0.66, "TR": 0.55, "AE": 0.78,
	"UY": 1.02, "VE": 0.70, "VN": 0.53,
}

// BigMacMultiplier returns the Big Mac index multiplier for a territory.
// Euro-area territories without their own entry share the EU value.
func BigMacMultiplier(code string) (float64, bool) {
	if m, ok := bigMacIndex[code]; ok {
		return m, true
	}
	if euroArea[code] {
		return bigMacIndex["EU"], true
	}
	return 0, false
}

var euroArea = map[string]bool{
	"AT": true, "BE": true, "HR": true, "CY": true, "EE": true,
	"FI": true, "FR": true, "DE": true, "GR": true, "IE": true,
	"IT": true, "LV": true, "LT": true, "LU": true, "MT": true,
	"PT": true, "SK": true, "SI": true, "ES": true,
}
