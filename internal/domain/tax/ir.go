// Package tax implementa o estimador de Imposto de Renda do carnê-leão com a
// dedução simplificada de 20% e a tabela progressiva mensal de 2025.
//
// Como o motor de preços, as funções são puras e nunca retornam erro: guardas
// explícitas devolvem zero nos casos de divisão por zero.
package tax

import "github.com/shopspring/decimal"

// Bracket faixa da tabela progressiva. Max é o teto da base de cálculo
// (inclusivo); a última faixa tem NoLimit=true e captura qualquer base.
type Bracket struct {
	Max       decimal.Decimal
	NoLimit   bool
	Rate      decimal.Decimal // fração (0.075 = 7,5%)
	Deduction decimal.Decimal // parcela a deduzir em R$
}

// brackets2025 tabela mensal vigente em 2025, em ordem crescente de teto.
// Faixas contíguas e exaustivas: toda base não negativa cai em exatamente uma.
var brackets2025 = []Bracket{
	{Max: decimal.NewFromFloat(2259.20), Rate: decimal.Zero, Deduction: decimal.Zero},
	{Max: decimal.NewFromFloat(2826.65), Rate: decimal.NewFromFloat(0.075), Deduction: decimal.NewFromFloat(169.44)},
	{Max: decimal.NewFromFloat(4664.68), Rate: decimal.NewFromFloat(0.15), Deduction: decimal.NewFromFloat(381.44)},
	{Max: decimal.NewFromFloat(5839.45), Rate: decimal.NewFromFloat(0.225), Deduction: decimal.NewFromFloat(662.77)},
	{NoLimit: true, Rate: decimal.NewFromFloat(0.275), Deduction: decimal.NewFromFloat(896.00)},
}

// simplifiedDeductionFactor fator da dedução simplificada: base = 80% da receita.
var simplifiedDeductionFactor = decimal.NewFromFloat(0.80)

var hundred = decimal.NewFromInt(100)

// Brackets2025 devolve a tabela de faixas (cópia defensiva).
func Brackets2025() []Bracket {
	out := make([]Bracket, len(brackets2025))
	copy(out, brackets2025)
	return out
}

// MonthlyResult resultado do cálculo mensal. Valores monetários com 2 casas;
// AppliedRate e EffectiveRate já em percentual (x100).
type MonthlyResult struct {
	MonthlyRevenue  decimal.Decimal
	CalculationBase decimal.Decimal
	IRDue           decimal.Decimal
	AppliedRate     decimal.Decimal
	EffectiveRate   decimal.Decimal
}

// RealCostsResult resultado mensal considerando custos reais informados.
type RealCostsResult struct {
	MonthlyResult
	RealCosts            decimal.Decimal
	RealProfit           decimal.Decimal
	ProfitAfterIR        decimal.Decimal
	IRPercentageOnProfit decimal.Decimal
}

// AnnualProjection projeção anual: os valores mensais multiplicados por 12.
// O carnê-leão é apurado mês a mês, então a escala linear é o comportamento
// pretendido — a tabela não é reaplicada sobre a receita anualizada.
type AnnualProjection struct {
	AnnualRevenue         decimal.Decimal
	AnnualCalculationBase decimal.Decimal
	AnnualIRDue           decimal.Decimal
	EffectiveRate         decimal.Decimal
}

// MonthlyIR calcula o IR mensal do carnê-leão:
//  1. base de cálculo = receita * 0,80 (dedução simplificada de 20%)
//  2. primeira faixa com base <= teto (a última não tem teto)
//  3. IR = base*alíquota - parcela a deduzir, nunca negativo
//  4. alíquota efetiva = IR / receita * 100 (receita 0 -> 0)
func MonthlyIR(monthlyRevenue decimal.Decimal) MonthlyResult {
	base := monthlyRevenue.Mul(simplifiedDeductionFactor)

	var irDue, appliedRate decimal.Decimal
	for _, b := range brackets2025 {
		if b.NoLimit || base.LessThanOrEqual(b.Max) {
			irDue = base.Mul(b.Rate).Sub(b.Deduction)
			appliedRate = b.Rate
			break
		}
	}
	if irDue.IsNegative() {
		irDue = decimal.Zero
	}

	var effectiveRate decimal.Decimal
	if monthlyRevenue.IsPositive() {
		effectiveRate = irDue.Div(monthlyRevenue).Mul(hundred)
	}

	return MonthlyResult{
		MonthlyRevenue:  monthlyRevenue.Round(2),
		CalculationBase: base.Round(2),
		IRDue:           irDue.Round(2),
		AppliedRate:     appliedRate.Mul(hundred),
		EffectiveRate:   effectiveRate.Round(2),
	}
}

// IRWithRealCosts envolve MonthlyIR e acrescenta a visão de lucro real:
// lucro = receita - custos; lucro após IR = lucro - IR devido;
// peso do IR sobre o lucro = IR / lucro * 100 (lucro <= 0 -> 0).
func IRWithRealCosts(monthlyRevenue, realCosts decimal.Decimal) RealCostsResult {
	monthly := MonthlyIR(monthlyRevenue)
	realProfit := monthlyRevenue.Sub(realCosts)

	var irOnProfit decimal.Decimal
	if realProfit.IsPositive() {
		irOnProfit = monthly.IRDue.Div(realProfit).Mul(hundred)
	}

	return RealCostsResult{
		MonthlyResult:        monthly,
		RealCosts:            realCosts.Round(2),
		RealProfit:           realProfit.Round(2),
		ProfitAfterIR:        realProfit.Sub(monthly.IRDue).Round(2),
		IRPercentageOnProfit: irOnProfit.Round(2),
	}
}

// AnnualIRProjection projeta o ano multiplicando os valores mensais por 12.
func AnnualIRProjection(monthlyRevenue decimal.Decimal) AnnualProjection {
	monthly := MonthlyIR(monthlyRevenue)
	twelve := decimal.NewFromInt(12)
	return AnnualProjection{
		AnnualRevenue:         monthly.MonthlyRevenue.Mul(twelve),
		AnnualCalculationBase: monthly.CalculationBase.Mul(twelve),
		AnnualIRDue:           monthly.IRDue.Mul(twelve),
		EffectiveRate:         monthly.EffectiveRate,
	}
}
