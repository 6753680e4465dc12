// Package analytics calcula as estatísticas do dashboard a partir de
// snapshots de vendas e produtos. Funções puras: os filtros e a leitura dos
// dados ficam no caso de uso; aqui só entra aritmética sobre as listas.
package analytics

import (
	"github.com/shopspring/decimal"

	"perfumaria/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Stats métricas agregadas do negócio para o período/filtro aplicado.
type Stats struct {
	TotalRevenue          decimal.Decimal
	TotalProfit           decimal.Decimal
	AverageMargin         decimal.Decimal // lucro/receita * 100 (receita 0 -> 0)
	TotalSales            int
	AverageTicket         decimal.Decimal // receita/vendas (0 vendas -> 0)
	TotalStock            int
	LowStockProducts      []*entity.Product
	MostSoldProductID     string
	MostUsedPaymentMethod string
	PaymentMethodCounts   map[string]int
}

// Compute agrega as métricas. lowStockThreshold define o corte da lista de
// estoque baixo (estoque <= limite). Empates de produto mais vendido e forma
// de pagamento mais usada são resolvidos pela primeira ocorrência na ordem
// das vendas (determinístico).
func Compute(sales []*entity.Sale, products []*entity.Product, lowStockThreshold int) Stats {
	var revenue, profit decimal.Decimal
	for _, s := range sales {
		revenue = revenue.Add(s.TotalValue)
		profit = profit.Add(s.NetProfit)
	}

	var avgMargin decimal.Decimal
	if revenue.IsPositive() {
		avgMargin = profit.Div(revenue).Mul(hundred).Round(2)
	}

	var avgTicket decimal.Decimal
	if len(sales) > 0 {
		avgTicket = revenue.Div(decimal.NewFromInt(int64(len(sales)))).Round(2)
	}

	totalStock := 0
	var lowStock []*entity.Product
	for _, p := range products {
		totalStock += p.Stock
		if p.Stock <= lowStockThreshold {
			lowStock = append(lowStock, p)
		}
	}

	mostSold := topByCount(sales, func(s *entity.Sale) (string, int) { return s.ProductID, s.Quantity })
	mostUsed := topByCount(sales, func(s *entity.Sale) (string, int) { return s.PaymentMethod, 1 })

	methodCounts := make(map[string]int)
	for _, s := range sales {
		if s.PaymentMethod != "" {
			methodCounts[s.PaymentMethod]++
		}
	}

	return Stats{
		TotalRevenue:          revenue.Round(2),
		TotalProfit:           profit.Round(2),
		AverageMargin:         avgMargin,
		TotalSales:            len(sales),
		AverageTicket:         avgTicket,
		TotalStock:            totalStock,
		LowStockProducts:      lowStock,
		MostSoldProductID:     mostSold,
		MostUsedPaymentMethod: mostUsed,
		PaymentMethodCounts:   methodCounts,
	}
}

// topByCount devolve a chave de maior contagem acumulada, com empate
// resolvido pela ordem de primeira aparição (mapas Go não têm ordem estável).
func topByCount(sales []*entity.Sale, keyFn func(*entity.Sale) (string, int)) string {
	counts := make(map[string]int)
	var order []string
	for _, s := range sales {
		key, n := keyFn(s)
		if key == "" {
			continue
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key] += n
	}
	best := ""
	bestCount := 0
	for _, key := range order {
		if counts[key] > bestCount {
			best = key
			bestCount = counts[key]
		}
	}
	return best
}
