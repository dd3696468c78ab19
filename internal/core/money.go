package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Cents is a monetary amount in integer US cents. Amounts live as cents
// everywhere between the form boundary and the database so no float
// arithmetic ever touches money.
type Cents int64

// ParseDollars converts a user-entered dollar string ("15.50") into cents.
// Fractions beyond two decimal places round half away from zero.
func ParseDollars(s string) (Cents, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid dollar amount %q: %w", s, err)
	}
	return Cents(d.Shift(2).Round(0).IntPart()), nil
}

// Dollars returns the exact decimal dollar value.
func (c Cents) Dollars() decimal.Decimal {
	return decimal.NewFromInt(int64(c)).Shift(-2)
}

var enUS = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders cents as a grouped en-US dollar string: 123456 → "$1,234.56".
func FormatCurrency(c Cents) string {
	neg := c < 0
	if neg {
		c = -c
	}
	f, _ := c.Dollars().Float64()
	s := enUS.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	if neg {
		return "-" + s
	}
	return s
}

// FormatDate renders a date the way the dashboard displays it: "Oct 4, 2024".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
