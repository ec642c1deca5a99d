package printing

import (
	"strings"
	"time"

	"github.com/aqario/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// amounts at or above this magnitude lose cents in float64
var exactFloatLimit = decimal.New(1, 12)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders d with thousands separators and exactly two
// decimals: 1150 -> "1,150.00".
func FormatAmount(d decimal.Decimal) string {
	d = valueobject.RoundCurrency(d)
	if d.Abs().LessThan(exactFloatLimit) {
		return amountPrinter.Sprint(number.Decimal(d.InexactFloat64(),
			number.Scale(int(valueobject.CurrencyPlaces))))
	}
	return groupThousands(valueobject.FixedString(d))
}

// FormatRate renders a percentage with two decimals: 15 -> "15.00%"
func FormatRate(d decimal.Decimal) string {
	return valueobject.FixedString(d) + "%"
}

// FormatDate renders the calendar date in UTC
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.DateOnly)
}

// groupThousands inserts separators into a fixed-point decimal string
func groupThousands(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return sign + b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
