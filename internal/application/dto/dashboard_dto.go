package dto

import (
	"github.com/shopspring/decimal"
)

// DashboardFilterRequest filtros do dashboard via query string.
// Datas no formato 2006-01-02; campos vazios são ignorados.
type DashboardFilterRequest struct {
	StartDate     string `query:"startDate"`
	EndDate       string `query:"endDate"`
	Status        string `query:"status"`
	PaymentMethod string `query:"paymentMethod"`
	ProductID     string `query:"productId"`
	ClientID      string `query:"clientId"`
}

// DashboardResponse métricas agregadas do período filtrado.
type DashboardResponse struct {
	TotalRevenue          decimal.Decimal    `json:"totalRevenue"`
	TotalRevenueBRL       string             `json:"totalRevenueBrl"`
	TotalProfit           decimal.Decimal    `json:"totalProfit"`
	TotalProfitBRL        string             `json:"totalProfitBrl"`
	AverageMargin         decimal.Decimal    `json:"averageMargin"`
	TotalSales            int                `json:"totalSales"`
	AverageTicket         decimal.Decimal    `json:"averageTicket"`
	TotalStock            int                `json:"totalStock"`
	LowStockProducts      []ProductResponse  `json:"lowStockProducts"`
	MostSoldProduct       *ProductResponse   `json:"mostSoldProduct,omitempty"`
	MostUsedPaymentMethod string             `json:"mostUsedPaymentMethod,omitempty"`
	PaymentMethodCounts   map[string]int     `json:"paymentMethodCounts"`
}
