package invoice

// CurrencyCode is an ISO 4217 currency code from the supported set.
type CurrencyCode string

// The 20 supported currencies. The set is a closed contract shared with the
// UI currency selector: adding a code here requires updating the selector's
// option list in the same change.
const (
	CurrencyUSD CurrencyCode = "USD"
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyGBP CurrencyCode = "GBP"
	CurrencyINR CurrencyCode = "INR"
	CurrencyJPY CurrencyCode = "JPY"
	CurrencyCAD CurrencyCode = "CAD"
	CurrencyAUD CurrencyCode = "AUD"
	CurrencyCHF CurrencyCode = "CHF"
	CurrencyCNY CurrencyCode = "CNY"
	CurrencySGD CurrencyCode = "SGD"
	CurrencyHKD CurrencyCode = "HKD"
	CurrencyNZD CurrencyCode = "NZD"
	CurrencySEK CurrencyCode = "SEK"
	CurrencyNOK CurrencyCode = "NOK"
	CurrencyDKK CurrencyCode = "DKK"
	CurrencyMXN CurrencyCode = "MXN"
	CurrencyBRL CurrencyCode = "BRL"
	CurrencyKRW CurrencyCode = "KRW"
	CurrencyZAR CurrencyCode = "ZAR"
	CurrencyAED CurrencyCode = "AED"
)

// SymbolTable maps currency codes to display symbols. The table is passed to
// FormatCurrency explicitly so alternate sets can be substituted in tests or
// white-label deployments.
type SymbolTable map[CurrencyCode]string

var defaultSymbols = SymbolTable{
	CurrencyUSD: "$",
	CurrencyEUR: "€",
	CurrencyGBP: "£",
	CurrencyINR: "₹",
	CurrencyJPY: "¥",
	CurrencyCAD: "C$",
	CurrencyAUD: "A$",
	CurrencyCHF: "CHF",
	CurrencyCNY: "¥",
	CurrencySGD: "S$",
	CurrencyHKD: "HK$",
	CurrencyNZD: "NZ$",
	CurrencySEK: "kr",
	CurrencyNOK: "kr",
	CurrencyDKK: "kr",
	CurrencyMXN: "$",
	CurrencyBRL: "R$",
	CurrencyKRW: "₩",
	CurrencyZAR: "R",
	CurrencyAED: "د.إ",
}

// DefaultSymbols returns a fresh copy of the built-in symbol table.
func DefaultSymbols() SymbolTable {
	t := make(SymbolTable, len(defaultSymbols))
	for code, sym := range defaultSymbols {
		t[code] = sym
	}
	return t
}

// SupportedCurrencies returns the supported codes in selector display order.
func SupportedCurrencies() []CurrencyCode {
	return []CurrencyCode{
		CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyINR, CurrencyJPY,
		CurrencyCAD, CurrencyAUD, CurrencyCHF, CurrencyCNY, CurrencySGD,
		CurrencyHKD, CurrencyNZD, CurrencySEK, CurrencyNOK, CurrencyDKK,
		CurrencyMXN, CurrencyBRL, CurrencyKRW, CurrencyZAR, CurrencyAED,
	}
}
