// Package pricing implementa o motor de cálculo de preços e lucro da revenda:
// taxa do processador de pagamento, margem, total da venda, lucro líquido,
// ajuste de preço com frete e divisão em parcelas.
//
// Todas as funções são puras e nunca retornam erro: casos de divisão por zero
// ou chave desconhecida são protegidos com retorno zero (a validação de
// entrada acontece em camada anterior, internal/domain/validation).
// Arredondamento a 2 casas só nos pontos de saída definidos.
package pricing

import (
	"github.com/shopspring/decimal"

	"perfumaria/internal/domain/catalog"
)

var hundred = decimal.NewFromInt(100)

// Fee calcula a taxa em R$ da forma de pagamento sobre o valor cobrado.
// Chave desconhecida -> 0. Tipo percentage -> amount*rate; fixed -> rate
// constante, independente do valor; none -> 0.
func Fee(paymentMethod string, amount decimal.Decimal) decimal.Decimal {
	method, ok := catalog.PaymentMethodByKey(paymentMethod)
	if !ok {
		return decimal.Zero
	}
	switch method.Type {
	case catalog.FeePercentage:
		return amount.Mul(method.Rate)
	case catalog.FeeFixed:
		return method.Rate
	default:
		return decimal.Zero
	}
}

// Margin calcula a margem de lucro do produto em percentual.
// purchasePrice <= 0 -> 0 (evita divisão por zero; mascara produtos de custo
// zero, comportamento aceito). Pode ser negativa (venda abaixo do custo).
func Margin(purchasePrice, salePrice decimal.Decimal) decimal.Decimal {
	if purchasePrice.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return salePrice.Sub(purchasePrice).Div(purchasePrice).Mul(hundred)
}

// SaleTotal calcula o valor total da venda: unitPrice*quantity - discount,
// nunca negativo (desconto maior que o subtotal é absorvido em zero; a
// rejeição de descontos inválidos é papel da validação, não do cálculo).
func SaleTotal(unitPrice decimal.Decimal, quantity int, discount decimal.Decimal) decimal.Decimal {
	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Sub(discount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// NetProfit calcula o lucro líquido: total - custo dos produtos - taxa.
// Pode ser negativo (prejuízo); não é limitado.
func NetProfit(saleTotal, purchasePrice decimal.Decimal, quantity int, fee decimal.Decimal) decimal.Decimal {
	totalCost := purchasePrice.Mul(decimal.NewFromInt(int64(quantity)))
	return saleTotal.Sub(totalCost).Sub(fee)
}
