package catalog

type territoryEntry struct {
	name     string
	currency string
}

// playTerritories mirrors the Play billing territory list. Play bills some
// markets in USD rather than the local currency.
var playTerritories = map[string]territoryEntry{
	"US": {"United States", "USD"},
	"CA": {"Canada", "CAD"},
	"MX": {"Mexico", "MXN"},
	"BR": {"Brazil", "BRL"},
	"AR": {"Argentina", "ARS"},
	"CL": {"Chile", "CLP"},
	"CO": {"Colombia", "COP"},
	"PE": {"Peru", "PEN"},
	"BO": {"Bolivia", "BOB"},
	"EC": {"Ecuador", "USD"},
	"PY": {"Paraguay", "PYG"},
	"UY": {"Uruguay", "UYU"},
	"GB": {"United Kingdom", "GBP"},
	"DE": {"Germany", "EUR"},
	"FR": {"France", "EUR"},
	"IT": {"Italy", "EUR"},
	"ES": {"Spain", "EUR"},
	"NL": {"Netherlands", "EUR"},
	"BE": {"Belgium", "EUR"},
	"AT": {"Austria", "EUR"},
	"IE": {"Ireland", "EUR"},
	"PT": {"Portugal", "EUR"},
	"GR": {"Greece", "EUR"},
	"FI": {"Finland", "EUR"},
	"SK": {"Slovakia", "EUR"},
	"SI": {"Slovenia", "EUR"},
	"LT": {"Lithuania", "EUR"},
	"LV": {"Latvia", "EUR"},
	"EE": {"Estonia", "EUR"},
	"LU": {"Luxembourg", "EUR"},
	"CH": {"Switzerland", "CHF"},
	"SE": {"Sweden", "SEK"},
	"NO": {"Norway", "NOK"},
	"DK": {"Denmark", "DKK"},
	"IS": {"Iceland", "USD"},
	"PL": {"Poland", "PLN"},
	"CZ": {"Czechia", "CZK"},
	"HU": {"Hungary", "HUF"},
	"RO": {"Romania", "RON"},
	"BG": {"Bulgaria", "BGN"},
	"HR": {"Croatia", "EUR"},
	"RS": {"Serbia", "RSD"},
	"UA": {"Ukraine", "UAH"},
	"TR": {"Turkey", "TRY"},
	"IL": {"Israel", "ILS"},
	"SA": {"Saudi Arabia", "SAR"},
	"AE": {"United Arab Emirates", "AED"},
	"QA": {"Qatar", "QAR"},
	"KW": {"Kuwait", "KWD"},
	"BH": {"Bahrain", "BHD"},
	"OM": {"Oman", "OMR"},
	"JO": {"Jordan", "JOD"},
	"EG": {"Egypt", "EGP"},
	"MA": {"Morocco", "MAD"},
	"TN": {"Tunisia", "USD"},
	"ZA": {"South Africa", "ZAR"},
	"NG": {"Nigeria", "NGN"},
	"KE": {"Kenya", "KES"},
	"GH": {"Ghana", "GHS"},
	"JP": {"Japan", "JPY"},
	"KR": {"South Korea", "KRW"},
	"HK": {"Hong Kong", "HKD"},
	"TW": {"Taiwan", "TWD"},
	"SG": {"Singapore", "SGD"},
	"IN": {"India", "INR"},
	"ID": {"Indonesia", "IDR"},
	"MY": {"Malaysia", "MYR"},
	"TH": {"Thailand", "THB"},
	"PH": {"Philippines", "PHP"},
	"VN": {"Vietnam", "VND"},
	"PK": {"Pakistan", "PKR"},
	"BD": {"Bangladesh", "BDT"},
	"LK": {"Sri Lanka", "LKR"},
	"KZ": {"Kazakhstan", "KZT"},
	"KH": {"Cambodia", "USD"},
	"MM": {"Myanmar", "USD"},
	"NP": {"Nepal", "USD"},
	"AU": {"Australia", "AUD"},
	"NZ": {"New Zealand", "NZD"},
}

// appStoreTerritories mirrors the App Store storefront list. The App Store
// prices many smaller markets in USD and groups the euro area under EUR.
var appStoreTerritories = map[string]territoryEntry{
	"US": {"United States", "USD"},
	"CA": {"Canada", "CAD"},
	"MX": {"Mexico", "MXN"},
	"BR": {"Brazil", "BRL"},
	"AR": {"Argentina", "USD"},
	"CL": {"Chile", "CLP"},
	"CO": {"Colombia", "COP"},
	"PE": {"Peru", "PEN"},
	"EC": {"Ecuador", "USD"},
	"PY": {"Paraguay", "USD"},
	"UY": {"Uruguay", "USD"},
	"GB": {"United Kingdom", "GBP"},
	"DE": {"Germany", "EUR"},
	"FR": {"France", "EUR"},
	"IT": {"Italy", "EUR"},
	"ES": {"Spain", "EUR"},
	"NL": {"Netherlands", "EUR"},
	"BE": {"Belgium", "EUR"},
	"AT": {"Austria", "EUR"},
	"IE": {"Ireland", "EUR"},
	"PT": {"Portugal", "EUR"},
	"GR": {"Greece", "EUR"},
	"FI": {"Finland", "EUR"},
	"SK": {"Slovakia", "EUR"},
	"SI": {"Slovenia", "EUR"},
	"LT": {"Lithuania", "EUR"},
	"LV": {"Latvia", "EUR"},
	"EE": {"Estonia", "EUR"},
	"LU": {"Luxembourg", "EUR"},
	"HR": {"Croatia", "EUR"},
	"CH": {"Switzerland", "CHF"},
	"SE": {"Sweden", "SEK"},
	"NO": {"Norway", "NOK"},
	"DK": {"Denmark", "DKK"},
	"PL": {"Poland", "PLN"},
	"CZ": {"Czechia", "CZK"},
	"HU": {"Hungary", "HUF"},
	"RO": {"Romania", "RON"},
	"BG": {"Bulgaria", "BGN"},
	"RS": {"Serbia", "USD"},
	"UA": {"Ukraine", "USD"},
	"TR": {"Turkey", "TRY"},
	"IL": {"Israel", "ILS"},
	"SA": {"Saudi Arabia", "SAR"},
	"AE": {"United Arab Emirates", "AED"},
	"QA": {"Qatar", "QAR"},
	"KW": {"Kuwait", "USD"},
	"BH": {"Bahrain", "USD"},
	"OM": {"Oman", "USD"},
	"JO": {"Jordan", "USD"},
	"EG": {"Egypt", "EGP"},
	"MA": {"Morocco", "USD"},
	"ZA": {"South Africa", "ZAR"},
	"NG": {"Nigeria", "NGN"},
	"KE": {"Kenya", "USD"},
	"JP": {"Japan", "JPY"},
	"KR": {"South Korea", "KRW"},
	"HK": {"Hong Kong", "HKD"},
	"TW": {"Taiwan", "TWD"},
	"SG": {"Singapore", "SGD"},
	"IN": {"India", "INR"},
	"ID": {"Indonesia", "IDR"},
	"MY": {"Malaysia", "MYR"},
	"TH": {"Thailand", "THB"},
	"PH": {"Philippines", "PHP"},
	"VN": {"Vietnam", "VND"},
	"PK": {"Pakistan", "PKR"},
	"KZ": {"Kazakhstan", "KZT"},
	"AU": {"Australia", "AUD"},
	"NZ": {"New Zealand", "NZD"},
}
