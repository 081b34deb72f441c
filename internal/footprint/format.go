package footprint

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer is the locale-aware message printer for pt-BR number display
// ("1.234,56"). Parsing of user input lives in internal/numeric; this is
// output only.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatNumber formats a value for display in pt-BR convention with at
// least two and at most maxFraction fraction digits. Non-finite values
// render as zero so broken rows never leak "NaN" into a report.
func FormatNumber(v float64, maxFraction int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	if maxFraction < 2 {
		maxFraction = 2
	}
	return printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(maxFraction)))
}

// Per-column fraction digits used by reports and exports, matching the
// precision of each derived metric.
const (
	FractionKg      = 4
	FractionMetrics = 6
)
