package sales

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"perfumaria/internal/domain/catalog"
	"perfumaria/internal/domain/entity"
	"perfumaria/internal/domain/pricing"
)

// applyPricing recalcula todos os campos derivados da venda a partir do
// produto. Nada do que o cliente HTTP mandar nesses campos sobrevive: total,
// taxa, lucro, preço sugerido e valor de parcela saem sempre do motor.
func applyPricing(s *entity.Sale, purchasePrice decimal.Decimal) {
	if s.FinalProductPrice.IsZero() {
		s.FinalProductPrice = s.UnitPrice
	}

	if s.ShippingCost.IsPositive() {
		profitBase := pricing.ProfitWithoutShipping(s.UnitPrice, purchasePrice, s.Quantity, s.Discount, s.PaymentMethod)
		s.AdjustedPrice = pricing.AdjustedPrice(profitBase, purchasePrice, s.Quantity, s.ShippingCost, s.PaymentMethod)

		totals := pricing.TotalsWithShipping(s.FinalProductPrice, purchasePrice, s.Quantity, s.Discount, s.ShippingCost, s.PaymentMethod)
		s.TotalValue = totals.TotalCharged
		s.Fee = totals.Fee
		s.NetProfit = totals.NetProfit
	} else {
		s.AdjustedPrice = decimal.Zero
		total := pricing.SaleTotal(s.UnitPrice, s.Quantity, s.Discount)
		fee := pricing.Fee(s.PaymentMethod, total)
		s.TotalValue = total.Round(2)
		s.Fee = fee.Round(2)
		s.NetProfit = pricing.NetProfit(total, purchasePrice, s.Quantity, fee).Round(2)
	}

	if s.PaymentMethod == catalog.PixInstallment && s.NumInstallments > 0 {
		plan := pricing.SplitInstallments(s.TotalValue, s.NumInstallments)
		s.InstallmentValue = plan.InstallmentValue
	} else {
		s.NumInstallments = 0
		s.InstallmentValue = decimal.Zero
	}
}

// buildInstallments materializa o lote de parcelas da venda. A última parcela
// absorve o resto de arredondamento para que a soma do lote feche exatamente
// com o total (a deriva do divisor puro fica só no valor "de vitrine").
// Vencimentos mensais a partir de firstDueDate (omitida -> 30 dias da venda).
func buildInstallments(s *entity.Sale, firstDueDate *time.Time) []*entity.Installment {
	if s.PaymentMethod != catalog.PixInstallment || s.NumInstallments <= 0 {
		return nil
	}

	first := s.Date.AddDate(0, 0, 30)
	if firstDueDate != nil {
		first = *firstDueDate
	}

	now := time.Now()
	n := s.NumInstallments
	batch := make([]*entity.Installment, 0, n)
	accumulated := decimal.Zero
	for i := 1; i <= n; i++ {
		value := s.InstallmentValue
		if i == n {
			value = s.TotalValue.Sub(accumulated)
		}
		accumulated = accumulated.Add(value)

		due := first.AddDate(0, i-1, 0)
		batch = append(batch, &entity.Installment{
			ID:                fmt.Sprintf("%s-P%d", s.ID, i),
			SaleID:            s.ID,
			InstallmentNumber: i,
			TotalInstallments: n,
			Value:             value,
			DueDate:           &due,
			Status:            entity.InstallmentStatusPendente,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}
	return batch
}
