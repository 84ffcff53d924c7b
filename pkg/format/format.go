// Package format renders quote amounts and durations for display.
// Locale and currency are fixed configuration of the clinic, not inputs.
package format

import (
	"strconv"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	locale  = language.MustParse("es-MX")
	unit    = currency.MXN
	printer = message.NewPrinter(locale)
)

// Currency renders an amount as a localized currency string. Zero and large
// amounts go through the exact same path as everything else.
func Currency(amount float64) string {
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(amount)))
}

// Duration renders whole surgery hours. nil means the duration is unknown
// and fails closed to "N/A"; zero is rendered like any other plural value.
func Duration(hours *int) string {
	if hours == nil {
		return "N/A"
	}
	if *hours == 1 {
		return "1 hora"
	}
	return strconv.Itoa(*hours) + " horas"
}
