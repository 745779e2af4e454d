// Package format holds the display helpers page logic shares: currency
// and date formatting and a generic debounce wrapper.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultDateLayout renders dates the way the dashboards show them.
const DefaultDateLayout = "Jan 2, 2006"

// Option configures a Formatter.
type Option func(*Formatter)

// WithLanguage sets the locale used for symbols, digits, and grouping.
func WithLanguage(tag language.Tag) Option {
	return func(f *Formatter) { f.lang = tag }
}

// WithDateLayout sets the time layout Date renders with.
func WithDateLayout(layout string) Option {
	return func(f *Formatter) {
		if layout != "" {
			f.dateLayout = layout
		}
	}
}

// Formatter renders values for display in one locale.
type Formatter struct {
	lang       language.Tag
	dateLayout string
	printer    *message.Printer
}

// NewFormatter returns a Formatter for English with the default date
// layout unless options say otherwise.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		lang:       language.English,
		dateLayout: DefaultDateLayout,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.printer = message.NewPrinter(f.lang)
	return f
}

// Currency renders an amount with the currency's symbol and the
// locale's digit grouping, two fraction digits. A code that is not a
// known ISO 4217 currency falls back to "CODE 123.45".
func (f *Formatter) Currency(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		plain := strconv.FormatFloat(amount, 'f', 2, 64)
		if code = strings.ToUpper(strings.TrimSpace(code)); code == "" {
			return plain
		}
		return fmt.Sprintf("%s %s", code, plain)
	}
	sym := f.printer.Sprint(currency.Symbol(unit))
	return sym + f.printer.Sprint(number.Decimal(amount, number.Scale(2)))
}

// Date renders a time with the configured layout.
func (f *Formatter) Date(t time.Time) string {
	return t.Format(f.dateLayout)
}
