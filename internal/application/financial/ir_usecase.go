// Package financial contém o caso de uso do estimador de carnê-leão.
package financial

import (
	"fmt"
	"time"

	"perfumaria/internal/application/dto"
	"perfumaria/internal/domain"
	"perfumaria/internal/domain/repository"
	"perfumaria/internal/domain/tax"
	"perfumaria/pkg/moeda"
)

// IRUseCase simula o IR mensal do carnê-leão com entrada manual ou com os
// números reais dos últimos 30 dias de vendas.
type IRUseCase struct {
	sales repository.SaleRepository
	now   func() time.Time
}

// NewIRUseCase constrói o caso de uso.
func NewIRUseCase(sales repository.SaleRepository) *IRUseCase {
	return &IRUseCase{sales: sales, now: time.Now}
}

// Simulate roda o estimador. Com UseRealData, receita e custos vêm das vendas
// dos últimos 30 dias (custo = compra*quantidade + frete, via join com
// produtos); os campos manuais do corpo são ignorados nesse modo.
func (uc *IRUseCase) Simulate(in dto.IRSimulationRequest) (*dto.IRSimulationResponse, error) {
	revenue := in.MonthlyRevenue
	costs := in.RealCosts

	if in.UseRealData {
		end := uc.now()
		start := end.AddDate(0, 0, -30)
		var err error
		revenue, costs, err = uc.sales.GetRevenueAndCosts(start, end)
		if err != nil {
			return nil, fmt.Errorf("carnê-leão: receita real: %w", err)
		}
	}

	if revenue.IsNegative() || costs.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	result := tax.IRWithRealCosts(revenue, costs)
	annual := tax.AnnualIRProjection(revenue)

	return &dto.IRSimulationResponse{
		MonthlyRevenue:       result.MonthlyRevenue,
		CalculationBase:      result.CalculationBase,
		IRDue:                result.IRDue,
		IRDueBRL:             moeda.Format(result.IRDue),
		AppliedRate:          result.AppliedRate,
		EffectiveRate:        result.EffectiveRate,
		RealCosts:            result.RealCosts,
		RealProfit:           result.RealProfit,
		ProfitAfterIR:        result.ProfitAfterIR,
		IRPercentageOnProfit: result.IRPercentageOnProfit,
		Annual: dto.AnnualIRProjection{
			AnnualRevenue:         annual.AnnualRevenue,
			AnnualCalculationBase: annual.AnnualCalculationBase,
			AnnualIRDue:           annual.AnnualIRDue,
			EffectiveRate:         annual.EffectiveRate,
		},
		Brackets: bracketsDTO(),
	}, nil
}

func bracketsDTO() []dto.IRBracketResponse {
	brackets := tax.Brackets2025()
	out := make([]dto.IRBracketResponse, 0, len(brackets))
	for _, b := range brackets {
		out = append(out, dto.IRBracketResponse{
			Max:       b.Max,
			NoLimit:   b.NoLimit,
			Rate:      b.Rate,
			Deduction: b.Deduction,
		})
	}
	return out
}

// Brackets expõe a tabela de faixas vigente para exibição no simulador.
func (uc *IRUseCase) Brackets() []tax.Bracket {
	return tax.Brackets2025()
}
