package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"perfumaria/internal/domain/pricing"
)

func TestSplitInstallments_DivisaoExata(t *testing.T) {
	plan := pricing.SplitInstallments(dec("100"), 4)
	assert.Equal(t, 4, plan.NumInstallments)
	assert.True(t, dec("25").Equal(plan.InstallmentValue), "parcela = %s", plan.InstallmentValue)
}

// TestSplitInstallments_DerivaUmCentavo documenta a deriva de arredondamento
// como comportamento conhecido: 1000/3 -> 3x 333,33 = 999,99, um centavo a
// menos que o total. A compensação na última parcela é papel da camada de
// persistência, não desta função.
func TestSplitInstallments_DerivaUmCentavo(t *testing.T) {
	plan := pricing.SplitInstallments(dec("1000"), 3)
	assert.True(t, dec("333.33").Equal(plan.InstallmentValue), "parcela = %s", plan.InstallmentValue)

	sum := plan.InstallmentValue.Mul(decimal.NewFromInt(3))
	assert.True(t, dec("999.99").Equal(sum), "soma = %s", sum)
	assert.True(t, dec("1000").Sub(sum).Equal(dec("0.01")), "deriva deve ser exatamente 1 centavo")
}

func TestSplitInstallments_ParcelasInvalidas(t *testing.T) {
	for _, n := range []int{0, -1} {
		plan := pricing.SplitInstallments(dec("500"), n)
		assert.True(t, plan.InstallmentValue.IsZero(), "n=%d deve devolver parcela zero", n)
	}
}
