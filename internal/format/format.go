// Package format renders money and timestamps the way the pt-BR frontend
// showed them. Pure functions, no state.
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Currency renders a BRL amount, e.g. "R$ 1.234,56". This is the only
// place display rounding happens; the value stays a decimal all the way,
// so cents never pick up float drift.
func Currency(v decimal.Decimal) string {
	fixed := v.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	sep := strings.IndexByte(fixed, '.')
	units, err := strconv.ParseInt(fixed[:sep], 10, 64)
	if err != nil {
		// Beyond int64 reais; no menu prices live out here.
		return sign + "R$ " + fixed[:sep] + "," + fixed[sep+1:]
	}
	return sign + printer.Sprintf("R$ %d,%s", units, fixed[sep+1:])
}

// isoLayouts are the timestamp shapes the backend emits: zoned RFC 3339,
// the bare LocalDateTime variant, and a date-only fallback.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseISO(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// DateTime renders "02/01/2006 às 15:04", or a fixed placeholder when
// the input does not parse.
func DateTime(s string) string {
	ts, ok := parseISO(s)
	if !ok {
		return "Data inválida"
	}
	return ts.Format("02/01/2006") + " às " + ts.Format("15:04")
}

// Date renders "02/01/2006".
func Date(s string) string {
	ts, ok := parseISO(s)
	if !ok {
		return "Data inválida"
	}
	return ts.Format("02/01/2006")
}

// Time renders "15:04".
func Time(s string) string {
	ts, ok := parseISO(s)
	if !ok {
		return "Hora inválida"
	}
	return ts.Format("15:04")
}
