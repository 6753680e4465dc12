// Package moeda formata valores monetários em Real brasileiro (pt-BR).
// Formatação é cosmética: o cálculo interno usa decimal e só arredonda
// nos pontos de saída definidos.
package moeda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Format devolve o valor no formato "R$ 1.234,56" (vírgula decimal, ponto de milhar).
func Format(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return printer.Sprintf("R$ %v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatPercent devolve o valor como percentual com duas casas, ex.: "27,50%".
func FormatPercent(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return printer.Sprintf("%v%%", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
