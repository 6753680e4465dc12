package dto

import "github.com/shopspring/decimal"

// IRSimulationRequest simulação do carnê-leão. Com UseRealData=true a receita
// e os custos dos últimos 30 dias são lidos das vendas registradas e os campos
// manuais são ignorados.
type IRSimulationRequest struct {
	MonthlyRevenue decimal.Decimal `json:"monthlyRevenue"`
	RealCosts      decimal.Decimal `json:"realCosts"`
	UseRealData    bool            `json:"useRealData"`
}

// IRSimulationResponse resultado mensal + visão de lucro real + projeção anual.
type IRSimulationResponse struct {
	MonthlyRevenue       decimal.Decimal     `json:"monthlyRevenue"`
	CalculationBase      decimal.Decimal     `json:"calculationBase"`
	IRDue                decimal.Decimal     `json:"irDue"`
	IRDueBRL             string              `json:"irDueBrl"`
	AppliedRate          decimal.Decimal     `json:"appliedRate"`
	EffectiveRate        decimal.Decimal     `json:"effectiveRate"`
	RealCosts            decimal.Decimal     `json:"realCosts"`
	RealProfit           decimal.Decimal     `json:"realProfit"`
	ProfitAfterIR        decimal.Decimal     `json:"profitAfterIr"`
	IRPercentageOnProfit decimal.Decimal     `json:"irPercentageOnProfit"`
	Annual               AnnualIRProjection  `json:"annual"`
	Brackets             []IRBracketResponse `json:"brackets"`
}

// AnnualIRProjection projeção anual linear (x12) dos valores mensais.
type AnnualIRProjection struct {
	AnnualRevenue         decimal.Decimal `json:"annualRevenue"`
	AnnualCalculationBase decimal.Decimal `json:"annualCalculationBase"`
	AnnualIRDue           decimal.Decimal `json:"annualIrDue"`
	EffectiveRate         decimal.Decimal `json:"effectiveRate"`
}

// IRBracketResponse faixa da tabela progressiva exposta no catálogo.
type IRBracketResponse struct {
	Max       decimal.Decimal `json:"max"`
	NoLimit   bool            `json:"noLimit"`
	Rate      decimal.Decimal `json:"rate"`
	Deduction decimal.Decimal `json:"deduction"`
}
