package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfumaria/internal/domain/catalog"
	"perfumaria/internal/domain/pricing"
)

func TestProfitWithoutShipping(t *testing.T) {
	// subtotal = 150*2 - 10 = 290; taxa = 290*0.0498 = 14.442;
	// lucro = 290 - 80*2 - 14.442 = 115.558
	got := pricing.ProfitWithoutShipping(dec("150"), dec("80"), 2, dec("10"), catalog.CreditNow)
	assert.True(t, dec("115.558").Equal(got), "lucro sem frete = %s", got)
}

func TestProfitWithoutShipping_SubtotalNegativoNaoTrava(t *testing.T) {
	// Diferente de SaleTotal: o subtotal negativo passa direto para a álgebra.
	// subtotal = 10*1 - 50 = -40; taxa CASH = 0; lucro = -40 - 5 = -45
	got := pricing.ProfitWithoutShipping(dec("10"), dec("5"), 1, dec("50"), catalog.Cash)
	assert.True(t, dec("-45").Equal(got), "lucro = %s", got)
}

func TestAdjustedPrice_Guardas(t *testing.T) {
	profit := dec("100")
	tests := []struct {
		name     string
		shipping string
		quantity int
		method   string
	}{
		{"frete zero", "0", 2, catalog.PixMP},
		{"frete negativo", "-10", 2, catalog.PixMP},
		{"quantidade zero", "25", 0, catalog.PixMP},
		{"sem taxa nao ha ajuste", "25", 2, catalog.Cash},
		{"chave desconhecida", "25", 2, "XYZ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.AdjustedPrice(profit, dec("50"), tt.quantity, dec(tt.shipping), tt.method)
			assert.True(t, got.IsZero(), "AdjustedPrice = %s, esperado 0", got)
		})
	}
}

func TestAdjustedPrice_VetorPercentual(t *testing.T) {
	// CREDIT_NOW (4,98%), lucro alvo 125.06, compra 80*2, frete 25:
	// P = (125.06 + 160 + 25*0.0498) / (2 * 0.9502) = 286.305/1.9004 -> 150.66
	got := pricing.AdjustedPrice(dec("125.06"), dec("80"), 2, dec("25"), catalog.CreditNow)
	assert.True(t, dec("150.66").Equal(got), "AdjustedPrice = %s", got)
}

func TestAdjustedPrice_VetorTaxaFixa(t *testing.T) {
	// BOLETO: a taxa fixa não entra na fórmula (simplificação mantida):
	// P = (136.51 + 160 + 25) / 2 = 160.755 -> 160.76
	got := pricing.AdjustedPrice(dec("136.51"), dec("80"), 2, dec("25"), catalog.Boleto)
	assert.True(t, dec("160.76").Equal(got), "AdjustedPrice = %s", got)
}

func TestTotalsWithShipping_VetorCompleto(t *testing.T) {
	// preço final 120, compra 50, qty 2, desconto 10, frete 25, CREDIT_NOW:
	// subtotal = 230; cobrado = 255; taxa = 255*0.0498 = 12.699 -> 12.70;
	// custo = 125; lucro = 230 - 100 - 12.699 = 117.301 -> 117.30
	totals := pricing.TotalsWithShipping(dec("120"), dec("50"), 2, dec("10"), dec("25"), catalog.CreditNow)

	assert.True(t, dec("230").Equal(totals.ProductSubtotal), "subtotal = %s", totals.ProductSubtotal)
	assert.True(t, dec("255").Equal(totals.TotalCharged), "cobrado = %s", totals.TotalCharged)
	assert.True(t, dec("12.70").Equal(totals.Fee), "taxa = %s", totals.Fee)
	assert.True(t, dec("125").Equal(totals.TotalCost), "custo = %s", totals.TotalCost)
	assert.True(t, dec("117.30").Equal(totals.NetProfit), "lucro = %s", totals.NetProfit)
}

func TestTotalsWithShipping_TaxaSobreValorCombinado(t *testing.T) {
	// A taxa incide sobre subtotal+frete, não só sobre o subtotal.
	com := pricing.TotalsWithShipping(dec("100"), dec("50"), 1, decimal.Zero, dec("30"), catalog.PixMP)
	sem := pricing.TotalsWithShipping(dec("100"), dec("50"), 1, decimal.Zero, decimal.Zero, catalog.PixMP)
	assert.True(t, com.Fee.GreaterThan(sem.Fee), "taxa com frete (%s) deve superar sem frete (%s)", com.Fee, sem.Fee)
}

// TestRoundTrip_PrecoAjustadoRestauraLucro é a lei central da etapa B: para
// toda forma de pagamento percentual, alimentar a etapa C com o preço ajustado
// reproduz o lucro sem frete dentro de 1 centavo (o arredondamento do preço a
// 2 casas impede igualdade exata).
func TestRoundTrip_PrecoAjustadoRestauraLucro(t *testing.T) {
	oneCent := dec("0.01")
	original := dec("150")
	purchase := dec("80")
	quantity := 2
	shipping := dec("25")

	for _, m := range catalog.PaymentMethods() {
		if m.Type != catalog.FeePercentage {
			continue
		}
		t.Run(m.Key, func(t *testing.T) {
			profitA := pricing.ProfitWithoutShipping(original, purchase, quantity, decimal.Zero, m.Key)
			adjusted := pricing.AdjustedPrice(profitA, purchase, quantity, shipping, m.Key)
			require.True(t, adjusted.IsPositive(), "preço ajustado deve ser positivo")

			totals := pricing.TotalsWithShipping(adjusted, purchase, quantity, decimal.Zero, shipping, m.Key)
			diff := totals.NetProfit.Sub(profitA).Abs()
			assert.True(t, diff.LessThanOrEqual(oneCent),
				"lucro com frete %s diverge do alvo %s em %s (> 1 centavo)", totals.NetProfit, profitA, diff)
		})
	}
}

func TestCompareShippingProfit(t *testing.T) {
	t.Run("lucro menor", func(t *testing.T) {
		cmp := pricing.CompareShippingProfit(dec("100"), dec("90"))
		assert.True(t, dec("-10").Equal(cmp.Difference))
		assert.True(t, dec("-10").Equal(cmp.PercentageChange))
		assert.True(t, cmp.IsLower)
		assert.False(t, cmp.IsHigher)
		assert.False(t, cmp.IsSame)
	})

	t.Run("lucro maior", func(t *testing.T) {
		cmp := pricing.CompareShippingProfit(dec("100"), dec("110"))
		assert.True(t, cmp.IsHigher)
		assert.False(t, cmp.IsLower)
	})

	t.Run("identico", func(t *testing.T) {
		cmp := pricing.CompareShippingProfit(dec("87.35"), dec("87.35"))
		assert.True(t, cmp.IsSame)
		assert.True(t, cmp.Difference.IsZero())
	})

	t.Run("dentro da tolerancia de 1 centavo", func(t *testing.T) {
		cmp := pricing.CompareShippingProfit(dec("100"), dec("100.005"))
		assert.True(t, cmp.IsSame)
		assert.False(t, cmp.IsLower)
		assert.False(t, cmp.IsHigher)
	})

	t.Run("referencia zero nao divide", func(t *testing.T) {
		cmp := pricing.CompareShippingProfit(decimal.Zero, dec("5"))
		assert.True(t, cmp.PercentageChange.IsZero(), "variação percentual = %s", cmp.PercentageChange)
		assert.True(t, cmp.IsHigher)
	})
}
