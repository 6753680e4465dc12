package pricing

import (
	"github.com/shopspring/decimal"

	"perfumaria/internal/domain/catalog"
)

// oneCent tolerância de comparação de lucros (1 centavo).
var oneCent = decimal.NewFromFloat(0.01)

// ShippingTotals resultado da etapa final do pipeline de frete.
type ShippingTotals struct {
	ProductSubtotal decimal.Decimal // finalProductPrice*qty - discount (sem clamp)
	TotalCharged    decimal.Decimal // subtotal do produto + frete (base da taxa)
	Fee             decimal.Decimal // taxa sobre o valor combinado
	TotalCost       decimal.Decimal // custo dos produtos + frete
	NetProfit       decimal.Decimal // subtotal - custo dos produtos - taxa
}

// ProfitComparison comparação entre o lucro sem e com frete.
type ProfitComparison struct {
	Difference       decimal.Decimal
	PercentageChange decimal.Decimal
	IsLower          bool
	IsHigher         bool
	IsSame           bool
}

// ProfitWithoutShipping (etapa A) calcula o lucro de referência sem frete.
// Diferente de SaleTotal, o subtotal aqui não é limitado a zero: a etapa B
// precisa do valor algébrico exato para resolver o preço ajustado.
func ProfitWithoutShipping(originalPrice, purchasePrice decimal.Decimal, quantity int, discount decimal.Decimal, paymentMethod string) decimal.Decimal {
	qty := decimal.NewFromInt(int64(quantity))
	subtotal := originalPrice.Mul(qty).Sub(discount)
	fee := Fee(paymentMethod, subtotal)
	return subtotal.Sub(purchasePrice.Mul(qty)).Sub(fee)
}

// AdjustedPrice (etapa B) resolve o preço unitário que, com o frete somado à
// base da taxa, restaura o lucro da etapa A.
//
// Para taxa percentual, forma fechada da equação
//
//	P*q - compra*q - taxa((P*q)+frete) = lucro
//
// assumindo taxa = rate*(subtotal+frete) e rate < 1:
//
//	P = (lucro + compra*q + frete*rate) / (q * (1 - rate))
//
// O frete em si não entra no numerador: ele é repassado pelo custo (fica fora
// do termo de custo do lucro, ver TotalsWithShipping); só o acréscimo de taxa
// que ele provoca precisa ser recuperado no preço.
//
// Para taxa fixa, o valor constante é absorvido uma única vez e não entra na
// fórmula: P = (lucro + compra*q + frete) / q (simplificação do modelo, que
// não restaura o lucro com exatidão — comportamento herdado e mantido).
// Sem frete ou sem taxa (none/chave desconhecida) -> 0 (nenhum ajuste).
// Resultado arredondado a 2 casas (precisão de moeda).
func AdjustedPrice(profitWithoutShipping, purchasePrice decimal.Decimal, quantity int, shippingCost decimal.Decimal, paymentMethod string) decimal.Decimal {
	if shippingCost.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if quantity <= 0 {
		return decimal.Zero
	}
	method, ok := catalog.PaymentMethodByKey(paymentMethod)
	if !ok {
		return decimal.Zero
	}

	qty := decimal.NewFromInt(int64(quantity))
	goodsCost := purchasePrice.Mul(qty)

	switch method.Type {
	case catalog.FeePercentage:
		num := profitWithoutShipping.Add(goodsCost).Add(shippingCost.Mul(method.Rate))
		den := qty.Mul(decimal.NewFromInt(1).Sub(method.Rate))
		return num.Div(den).Round(2)
	case catalog.FeeFixed:
		return profitWithoutShipping.Add(goodsCost).Add(shippingCost).Div(qty).Round(2)
	default:
		return decimal.Zero
	}
}

// TotalsWithShipping (etapa C) calcula os totais finais com frete.
// A taxa incide sobre o valor combinado (subtotal do produto + frete), não só
// sobre o subtotal. O frete fica fora do termo de custo do lucro líquido: é
// repassado ao cliente/transportadora pelo valor de custo e só o impacto dele
// na taxa afeta o lucro.
func TotalsWithShipping(finalProductPrice, purchasePrice decimal.Decimal, quantity int, discount, shippingCost decimal.Decimal, paymentMethod string) ShippingTotals {
	qty := decimal.NewFromInt(int64(quantity))
	productSubtotal := finalProductPrice.Mul(qty).Sub(discount)
	totalCharged := productSubtotal.Add(shippingCost)
	fee := Fee(paymentMethod, totalCharged)
	goodsCost := purchasePrice.Mul(qty)
	return ShippingTotals{
		ProductSubtotal: productSubtotal.Round(2),
		TotalCharged:    totalCharged.Round(2),
		Fee:             fee.Round(2),
		TotalCost:       goodsCost.Add(shippingCost).Round(2),
		NetProfit:       productSubtotal.Sub(goodsCost).Sub(fee).Round(2),
	}
}

// CompareShippingProfit compara o lucro com frete contra a referência sem
// frete. IsSame usa tolerância de 1 centavo; fora dela, exatamente um entre
// IsLower/IsHigher é verdadeiro. Referência zero -> variação percentual 0.
func CompareShippingProfit(profitWithoutShipping, profitWithShipping decimal.Decimal) ProfitComparison {
	diff := profitWithShipping.Sub(profitWithoutShipping)

	var pct decimal.Decimal
	if !profitWithoutShipping.IsZero() {
		pct = diff.Div(profitWithoutShipping).Mul(hundred).Round(2)
	}

	same := diff.Abs().LessThan(oneCent)
	return ProfitComparison{
		Difference:       diff.Round(2),
		PercentageChange: pct,
		IsLower:          !same && diff.IsNegative(),
		IsHigher:         !same && diff.IsPositive(),
		IsSame:           same,
	}
}
