// Package format renders amounts and dates the way es-CO users read them.
package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/adrianAraqueG/gaston/internal/core"
)

var locale = language.MustParse("es-CO")

var shortMonths = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Currency formats m as Colombian pesos, e.g. "$ 1.234.567,00".
func Currency(m core.Money) string {
	sign := ""
	if m.IsNegative() {
		sign = "-"
	}
	abs := m.Abs().Round(2).InexactFloat64()
	p := message.NewPrinter(locale)
	return sign + "$ " + p.Sprint(number.Decimal(abs, number.Scale(2)))
}

// Date is the numeric day/month/year form, e.g. "5/3/2024".
func Date(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// DateTime is the long form, e.g. "5 de marzo de 2024, 02:30 p. m.".
func DateTime(t time.Time) string {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	suffix := "a. m."
	if t.Hour() >= 12 {
		suffix = "p. m."
	}
	return fmt.Sprintf("%d de %s de %d, %02d:%02d %s",
		t.Day(), shortMonths[t.Month()-1], t.Year(), hour, t.Minute(), suffix)
}

// Percent renders a 0..100 share without decimals.
func Percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}

// Optional renders nil or blank strings as a dash.
func Optional(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "-"
	}
	return *s
}
