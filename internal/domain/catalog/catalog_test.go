package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfumaria/internal/domain/catalog"
)

func TestPaymentMethods_OrdemDeExibicao(t *testing.T) {
	methods := catalog.PaymentMethods()
	require.Len(t, methods, 8)

	keys := make([]string, len(methods))
	for i, m := range methods {
		keys[i] = m.Key
	}
	assert.Equal(t, []string{
		catalog.PixMP, catalog.CreditNow, catalog.Credit14, catalog.Credit30,
		catalog.DebitCaixa, catalog.Boleto, catalog.PixInstallment, catalog.Cash,
	}, keys)
}

func TestPaymentMethodByKey(t *testing.T) {
	boleto, ok := catalog.PaymentMethodByKey(catalog.Boleto)
	require.True(t, ok)
	assert.Equal(t, catalog.FeeFixed, boleto.Type)
	assert.True(t, decimal.RequireFromString("3.49").Equal(boleto.Rate))

	pix, ok := catalog.PaymentMethodByKey(catalog.PixMP)
	require.True(t, ok)
	assert.Equal(t, catalog.FeePercentage, pix.Type)
	assert.True(t, decimal.RequireFromString("0.0099").Equal(pix.Rate))

	_, ok = catalog.PaymentMethodByKey("INEXISTENTE")
	assert.False(t, ok)
}

func TestDeliveryTypes(t *testing.T) {
	assert.True(t, catalog.IsDeliveryType(catalog.Retirada))
	assert.True(t, catalog.IsDeliveryType(catalog.EntregaLocal))
	assert.True(t, catalog.IsDeliveryType(catalog.Correios))
	assert.False(t, catalog.IsDeliveryType("Drone"))
}
