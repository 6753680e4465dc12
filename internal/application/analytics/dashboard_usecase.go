// Package analytics contém o caso de uso do dashboard: filtra as vendas,
// carrega o snapshot de produtos e delega a aritmética ao domínio.
package analytics

import (
	"context"
	"fmt"
	"time"

	"perfumaria/internal/application/dto"
	"perfumaria/internal/domain/analytics"
	"perfumaria/internal/domain/entity"
	"perfumaria/internal/domain/repository"
	"perfumaria/pkg/moeda"
)

// DashboardUseCase gera as métricas agregadas do período filtrado.
type DashboardUseCase struct {
	sales             repository.SaleRepository
	products          repository.ProductRepository
	lowStockThreshold int
}

// NewDashboardUseCase constrói o caso de uso. lowStockThreshold vem da
// configuração (ESTOQUE_BAIXO_LIMITE).
func NewDashboardUseCase(sales repository.SaleRepository, products repository.ProductRepository, lowStockThreshold int) *DashboardUseCase {
	return &DashboardUseCase{sales: sales, products: products, lowStockThreshold: lowStockThreshold}
}

// GetDashboard busca vendas filtradas e produtos em paralelo e computa as
// métricas. As duas consultas são independentes, então rodam em goroutines.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, in dto.DashboardFilterRequest) (*dto.DashboardResponse, error) {
	filter, err := buildFilter(in)
	if err != nil {
		return nil, err
	}

	type salesResult struct {
		sales []*entity.Sale
		err   error
	}
	type productsResult struct {
		products []*entity.Product
		err      error
	}

	salesCh := make(chan salesResult, 1)
	productsCh := make(chan productsResult, 1)

	go func() {
		s, err := uc.sales.ListAll(filter)
		salesCh <- salesResult{s, err}
	}()
	go func() {
		p, err := uc.products.ListAll()
		productsCh <- productsResult{p, err}
	}()

	salesRes := <-salesCh
	productsRes := <-productsCh

	if salesRes.err != nil {
		return nil, fmt.Errorf("dashboard: vendas: %w", salesRes.err)
	}
	if productsRes.err != nil {
		return nil, fmt.Errorf("dashboard: produtos: %w", productsRes.err)
	}

	stats := analytics.Compute(salesRes.sales, productsRes.products, uc.lowStockThreshold)

	lowStock := make([]dto.ProductResponse, 0, len(stats.LowStockProducts))
	for _, p := range stats.LowStockProducts {
		lowStock = append(lowStock, toProductResponse(p))
	}

	var mostSold *dto.ProductResponse
	if stats.MostSoldProductID != "" {
		for _, p := range productsRes.products {
			if p.ID == stats.MostSoldProductID {
				resp := toProductResponse(p)
				mostSold = &resp
				break
			}
		}
	}

	return &dto.DashboardResponse{
		TotalRevenue:          stats.TotalRevenue,
		TotalRevenueBRL:       moeda.Format(stats.TotalRevenue),
		TotalProfit:           stats.TotalProfit,
		TotalProfitBRL:        moeda.Format(stats.TotalProfit),
		AverageMargin:         stats.AverageMargin,
		TotalSales:            stats.TotalSales,
		AverageTicket:         stats.AverageTicket,
		TotalStock:            stats.TotalStock,
		LowStockProducts:      lowStock,
		MostSoldProduct:       mostSold,
		MostUsedPaymentMethod: stats.MostUsedPaymentMethod,
		PaymentMethodCounts:   stats.PaymentMethodCounts,
	}, nil
}

// buildFilter converte as datas da query string (2006-01-02) para o filtro do
// repositório. EndDate cobre o dia inteiro (23:59:59.999...).
func buildFilter(in dto.DashboardFilterRequest) (repository.SaleFilter, error) {
	filter := repository.SaleFilter{
		Status:        in.Status,
		PaymentMethod: in.PaymentMethod,
		ProductID:     in.ProductID,
		ClientID:      in.ClientID,
	}
	if in.StartDate != "" {
		start, err := time.Parse("2006-01-02", in.StartDate)
		if err != nil {
			return filter, fmt.Errorf("dashboard: startDate inválida: %w", err)
		}
		filter.StartDate = start
	}
	if in.EndDate != "" {
		end, err := time.Parse("2006-01-02", in.EndDate)
		if err != nil {
			return filter, fmt.Errorf("dashboard: endDate inválida: %w", err)
		}
		filter.EndDate = end.Add(24*time.Hour - time.Nanosecond)
	}
	return filter, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		Margin:        p.Margin,
		Stock:         p.Stock,
		Supplier:      p.Supplier,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
