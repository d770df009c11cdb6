package invoice

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatCurrency renders an amount for display: the currency's symbol
// followed by the absolute value with exactly two fraction digits and comma
// grouping. A negative amount gets a leading "-" before the symbol
// ("-$12.50", never "$-12.50"). Codes missing from the table fall back to
// the code itself.
func FormatCurrency(amount float64, code CurrencyCode, symbols SymbolTable) string {
	symbol, ok := symbols[code]
	if !ok || symbol == "" {
		symbol = string(code)
	}

	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + symbol + groupThousands(fmt.Sprintf("%.2f", math.Abs(amount)))
}

// groupThousands inserts comma separators into the integer part of a
// "1234.56"-style decimal string.
func groupThousands(s string) string {
	intPart, fracPart, _ := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return intPart + "." + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + "." + fracPart
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
}

// FormatDate renders a date string as a long-form human date
// ("January 5, 2025"). Anything unparseable yields ""; the function never
// fails. Downstream views rely on the empty fallback, so keep it.
func FormatDate(value string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return FormatTime(t)
		}
	}
	return ""
}

// FormatTime renders a time.Time in the same long form as FormatDate.
func FormatTime(t time.Time) string {
	return t.Format("January 2, 2006")
}
