package tax_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfumaria/internal/domain/tax"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TestMonthlyIR_VetoresExatos pinos de validação do estimador: receita,
// base de cálculo e IR devido conferidos à mão contra a tabela mensal de 2025.
func TestMonthlyIR_VetoresExatos(t *testing.T) {
	tests := []struct {
		revenue     string
		wantBase    string
		wantIR      string
		wantApplied string
	}{
		// 3000 * 0.80 = 2400 -> faixa 7,5%: 2400*0.075 - 169.44 = 10.56
		{"3000", "2400.00", "10.56", "7.5"},
		// 5000 * 0.80 = 4000 -> faixa 15%: 4000*0.15 - 381.44 = 218.56
		{"5000", "4000.00", "218.56", "15"},
		// 11400 * 0.80 = 9120 -> faixa 27,5%: 9120*0.275 - 896 = 1612.00
		{"11400", "9120.00", "1612.00", "27.5"},
	}
	for _, tt := range tests {
		t.Run("receita "+tt.revenue, func(t *testing.T) {
			got := tax.MonthlyIR(dec(tt.revenue))
			assert.True(t, dec(tt.wantBase).Equal(got.CalculationBase), "base = %s", got.CalculationBase)
			assert.True(t, dec(tt.wantIR).Equal(got.IRDue), "IR = %s", got.IRDue)
			assert.True(t, dec(tt.wantApplied).Equal(got.AppliedRate), "alíquota = %s", got.AppliedRate)
		})
	}
}

func TestMonthlyIR_ReceitaZero(t *testing.T) {
	got := tax.MonthlyIR(decimal.Zero)
	assert.True(t, got.IRDue.IsZero(), "IR = %s", got.IRDue)
	assert.True(t, got.EffectiveRate.IsZero(), "alíquota efetiva = %s", got.EffectiveRate)
	assert.True(t, got.CalculationBase.IsZero())
}

func TestMonthlyIR_FaixaIsenta(t *testing.T) {
	// 2500 * 0.80 = 2000 <= 2259.20 -> isento
	got := tax.MonthlyIR(dec("2500"))
	assert.True(t, got.IRDue.IsZero(), "IR = %s", got.IRDue)
	assert.True(t, got.AppliedRate.IsZero())
}

// TestMonthlyIR_FronteiraDeFaixa base exatamente no teto da faixa isenta
// (teto inclusivo) e um centavo de receita acima.
func TestMonthlyIR_FronteiraDeFaixa(t *testing.T) {
	// 2824 * 0.80 = 2259.20, exatamente o teto -> ainda isento
	noTeto := tax.MonthlyIR(dec("2824"))
	assert.True(t, noTeto.IRDue.IsZero(), "IR no teto = %s", noTeto.IRDue)
	assert.True(t, noTeto.AppliedRate.IsZero())

	// 2824.01 * 0.80 = 2259.208 -> faixa de 7,5%, IR bruto 0.0006 -> 0.00;
	// o piso em zero segura o valor não negativo perto da fronteira.
	acima := tax.MonthlyIR(dec("2824.01"))
	assert.True(t, dec("7.5").Equal(acima.AppliedRate), "alíquota = %s", acima.AppliedRate)
	assert.False(t, acima.IRDue.IsNegative(), "IR nunca negativo, veio %s", acima.IRDue)
}

func TestMonthlyIR_AliquotaEfetiva(t *testing.T) {
	// 218.56 / 5000 * 100 = 4.3712 -> 4.37
	got := tax.MonthlyIR(dec("5000"))
	assert.True(t, dec("4.37").Equal(got.EffectiveRate), "alíquota efetiva = %s", got.EffectiveRate)
}

func TestIRWithRealCosts(t *testing.T) {
	got := tax.IRWithRealCosts(dec("5000"), dec("3000"))

	assert.True(t, dec("218.56").Equal(got.IRDue), "IR = %s", got.IRDue)
	assert.True(t, dec("2000.00").Equal(got.RealProfit), "lucro real = %s", got.RealProfit)
	assert.True(t, dec("1781.44").Equal(got.ProfitAfterIR), "lucro após IR = %s", got.ProfitAfterIR)
	// 218.56 / 2000 * 100 = 10.928 -> 10.93
	assert.True(t, dec("10.93").Equal(got.IRPercentageOnProfit), "peso do IR = %s", got.IRPercentageOnProfit)
}

func TestIRWithRealCosts_PrejuizoNaoDivide(t *testing.T) {
	got := tax.IRWithRealCosts(dec("5000"), dec("6000"))
	assert.True(t, dec("-1000.00").Equal(got.RealProfit))
	assert.True(t, got.IRPercentageOnProfit.IsZero(), "peso do IR com prejuízo = %s", got.IRPercentageOnProfit)
	assert.True(t, dec("-1218.56").Equal(got.ProfitAfterIR), "lucro após IR = %s", got.ProfitAfterIR)
}

// TestAnnualIRProjection a projeção anual é a escala linear x12 dos valores
// mensais, exata — a tabela não é reaplicada sobre a receita anualizada
// (o carnê-leão é apurado mês a mês).
func TestAnnualIRProjection(t *testing.T) {
	monthly := tax.MonthlyIR(dec("3000"))
	annual := tax.AnnualIRProjection(dec("3000"))

	twelve := decimal.NewFromInt(12)
	assert.True(t, monthly.IRDue.Mul(twelve).Equal(annual.AnnualIRDue), "IR anual = %s", annual.AnnualIRDue)
	assert.True(t, dec("36000.00").Equal(annual.AnnualRevenue))
	assert.True(t, dec("28800.00").Equal(annual.AnnualCalculationBase))
	assert.True(t, monthly.EffectiveRate.Equal(annual.EffectiveRate))
}

func TestBrackets2025_ContiguasEOrdenadas(t *testing.T) {
	brackets := tax.Brackets2025()
	require.Len(t, brackets, 5)

	for i := 1; i < len(brackets); i++ {
		if brackets[i].NoLimit {
			continue
		}
		assert.True(t, brackets[i].Max.GreaterThan(brackets[i-1].Max),
			"faixa %d deve ter teto maior que a anterior", i)
	}
	assert.True(t, brackets[len(brackets)-1].NoLimit, "última faixa captura qualquer base")
	assert.True(t, dec("0.275").Equal(brackets[len(brackets)-1].Rate))
}
