// Package format renders money, numbers, dates and labels for one configured
// locale/currency pair.
package format

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	ErrInvalidLocale   = errors.New("invalid locale")
	ErrInvalidCurrency = errors.New("invalid currency")
)

// Formatter is safe for concurrent use once built.
type Formatter struct {
	tag     language.Tag
	unit    currency.Unit
	scale   int
	symbol  string
	printer *message.Printer
	layouts layouts
}

// New builds a Formatter for a BCP 47 locale (ex: en-US, ko-KR) and an ISO
// 4217 currency code (ex: USD, KRW).
func New(locale, currencyCode string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidLocale, "%q: %v", locale, err)
	}

	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(currencyCode)))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidCurrency, "%q: %v", currencyCode, err)
	}

	scale, _ := currency.Standard.Rounding(unit)
	printer := message.NewPrinter(tag, message.Catalog(labels))

	return &Formatter{
		tag:     tag,
		unit:    unit,
		scale:   scale,
		symbol:  printer.Sprint(currency.NarrowSymbol(unit)),
		printer: printer,
		layouts: layoutsFor(tag),
	}, nil
}

func (f *Formatter) Locale() string {
	return f.tag.String()
}

func (f *Formatter) CurrencyCode() string {
	return f.unit.String()
}

// Scale is the number of fraction digits the currency is displayed with.
func (f *Formatter) Scale() int {
	return f.scale
}

// Currency formats an amount as symbol followed by the grouped number, with no
// space between them: $1,234.50, ₩13,000.
func (f *Formatter) Currency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := f.printer.Sprint(number.Decimal(roundTo(amount, f.scale), number.Scale(f.scale)))
	if strings.Trim(digits, "0.,") == "" {
		sign = ""
	}

	return sign + f.symbol + digits
}

// Number formats an integer with the locale grouping separator.
func (f *Formatter) Number(n int) string {
	return f.printer.Sprint(number.Decimal(n))
}

// Percent formats an already computed percentage with one fraction digit.
func (f *Formatter) Percent(p float64) string {
	return f.printer.Sprint(number.Decimal(roundTo(p, 1), number.Scale(1))) + "%"
}

// Text renders a catalog message in the formatter locale. Keys missing from
// the catalog are rendered as plain format strings.
func (f *Formatter) Text(key string, args ...interface{}) string {
	return f.printer.Sprintf(key, args...)
}

func roundTo(v float64, scale int) float64 {
	pow := math.Pow(10, float64(scale))
	return math.Round(v*pow) / pow
}
