// Package catalog define os catálogos estáticos do sistema: formas de
// pagamento com suas taxas e tipos de entrega. Tabelas ordenadas e imutáveis;
// nunca modificadas em runtime.
package catalog

import "github.com/shopspring/decimal"

// FeeType classifica como a taxa de uma forma de pagamento é cobrada.
type FeeType string

const (
	FeePercentage FeeType = "percentage" // Rate é fração do valor (0.0099 = 0,99%)
	FeeFixed      FeeType = "fixed"      // Rate é valor em R$, independente do montante
	FeeNone       FeeType = "none"       // sem taxa
)

// Chaves das formas de pagamento.
const (
	PixMP          = "PIX_MP"
	CreditNow      = "CREDIT_NOW"
	Credit14       = "CREDIT_14"
	Credit30       = "CREDIT_30"
	DebitCaixa     = "DEBIT_CAIXA"
	Boleto         = "BOLETO"
	PixInstallment = "PIX_INSTALLMENT"
	Cash           = "CASH"
)

// PaymentMethod forma de pagamento com taxa do processador (Mercado Pago).
type PaymentMethod struct {
	Key   string
	Label string
	Rate  decimal.Decimal // fração para percentage, R$ para fixed, ignorada para none
	Type  FeeType
}

// paymentMethods na ordem de exibição do formulário de venda.
var paymentMethods = []PaymentMethod{
	{Key: PixMP, Label: "Pix via Link MP", Rate: decimal.NewFromFloat(0.0099), Type: FeePercentage},
	{Key: CreditNow, Label: "Cartão Crédito na hora (Link MP)", Rate: decimal.NewFromFloat(0.0498), Type: FeePercentage},
	{Key: Credit14, Label: "Cartão Crédito 14 dias (Link MP)", Rate: decimal.NewFromFloat(0.0449), Type: FeePercentage},
	{Key: Credit30, Label: "Cartão Crédito 30 dias (Link MP)", Rate: decimal.NewFromFloat(0.0399), Type: FeePercentage},
	{Key: DebitCaixa, Label: "Débito Virtual Caixa (Link MP)", Rate: decimal.NewFromFloat(0.0399), Type: FeePercentage},
	{Key: Boleto, Label: "Boleto (Link MP)", Rate: decimal.NewFromFloat(3.49), Type: FeeFixed},
	{Key: PixInstallment, Label: "Pix Parcelado Conhecidos", Rate: decimal.Zero, Type: FeeNone},
	{Key: Cash, Label: "Dinheiro", Rate: decimal.Zero, Type: FeeNone},
}

// PaymentMethods devolve o catálogo na ordem de exibição (cópia defensiva do slice).
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}

// PaymentMethodByKey busca uma forma de pagamento pela chave.
// ok=false para chave desconhecida (o motor de cálculo trata como taxa zero).
func PaymentMethodByKey(key string) (PaymentMethod, bool) {
	for _, m := range paymentMethods {
		if m.Key == key {
			return m, true
		}
	}
	return PaymentMethod{}, false
}

// IsPaymentMethod informa se a chave existe no catálogo.
func IsPaymentMethod(key string) bool {
	_, ok := PaymentMethodByKey(key)
	return ok
}
