package sales

import (
	"github.com/shopspring/decimal"

	"perfumaria/internal/application/dto"
	"perfumaria/internal/domain"
	"perfumaria/internal/domain/catalog"
	"perfumaria/internal/domain/pricing"
	"perfumaria/internal/domain/repository"
)

// QuoteUseCase roda o pipeline de preço completo sem persistir nada: é o
// recálculo que o formulário de venda dispara a cada alteração de campo.
type QuoteUseCase struct {
	products repository.ProductRepository
}

// NewQuoteUseCase constrói o caso de uso.
func NewQuoteUseCase(products repository.ProductRepository) *QuoteUseCase {
	return &QuoteUseCase{products: products}
}

// Quote simula a venda: subtotal, taxa, lucro, preço sugerido com frete,
// comparação de lucro e valor de parcela. Nenhum efeito colateral — estoque e
// vendas não são tocados.
func (uc *QuoteUseCase) Quote(in dto.SaleQuoteRequest) (*dto.SaleQuoteResponse, error) {
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity <= 0 {
		return nil, domain.NewValidationError(map[string]string{"quantity": "Quantidade deve ser maior que zero"})
	}

	purchase := product.PurchasePrice
	resp := &dto.SaleQuoteResponse{}

	if in.ShippingCost.IsPositive() {
		profitBase := pricing.ProfitWithoutShipping(in.UnitPrice, purchase, in.Quantity, in.Discount, in.PaymentMethod)
		adjusted := pricing.AdjustedPrice(profitBase, purchase, in.Quantity, in.ShippingCost, in.PaymentMethod)

		finalPrice := in.FinalProductPrice
		if finalPrice.IsZero() {
			finalPrice = in.UnitPrice
		}

		totals := pricing.TotalsWithShipping(finalPrice, purchase, in.Quantity, in.Discount, in.ShippingCost, in.PaymentMethod)
		cmp := pricing.CompareShippingProfit(profitBase, totals.NetProfit)

		resp.ProductSubtotal = totals.ProductSubtotal
		resp.TotalCharged = totals.TotalCharged
		resp.Fee = totals.Fee
		resp.TotalCost = totals.TotalCost
		resp.NetProfit = totals.NetProfit
		resp.ProfitWithoutShipping = profitBase.Round(2)
		resp.AdjustedPrice = adjusted
		resp.BelowSuggestedPrice = adjusted.IsPositive() && finalPrice.LessThan(adjusted)
		resp.Comparison = &dto.ProfitComparisonDTO{
			Difference:       cmp.Difference,
			PercentageChange: cmp.PercentageChange,
			IsLower:          cmp.IsLower,
			IsHigher:         cmp.IsHigher,
			IsSame:           cmp.IsSame,
		}
	} else {
		total := pricing.SaleTotal(in.UnitPrice, in.Quantity, in.Discount)
		fee := pricing.Fee(in.PaymentMethod, total)
		net := pricing.NetProfit(total, purchase, in.Quantity, fee)

		resp.ProductSubtotal = total.Round(2)
		resp.TotalCharged = total.Round(2)
		resp.Fee = fee.Round(2)
		resp.TotalCost = purchase.Mul(decimal.NewFromInt(int64(in.Quantity))).Round(2)
		resp.NetProfit = net.Round(2)
		resp.ProfitWithoutShipping = net.Round(2)
	}

	if in.PaymentMethod == catalog.PixInstallment && in.NumInstallments > 0 {
		plan := pricing.SplitInstallments(resp.TotalCharged, in.NumInstallments)
		resp.InstallmentValue = plan.InstallmentValue
	}

	return resp, nil
}
