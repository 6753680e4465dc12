// Package validation implementa a camada de validação de formulários que
// antecede o motor de cálculo: os calculadores assumem entrada numérica
// válida e cuidam só da aritmética; esta camada devolve um resultado
// estruturado por campo que a interface usa para bloquear a submissão.
package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"perfumaria/internal/domain/catalog"
	"perfumaria/internal/domain/entity"
	"perfumaria/pkg/brdoc"
)

// Result resultado de validação: IsValid e os erros por nome de campo.
type Result struct {
	IsValid bool
	Errors  map[string]string
}

func newResult() *Result {
	return &Result{Errors: make(map[string]string)}
}

func (r *Result) add(field, message string) {
	if _, exists := r.Errors[field]; !exists {
		r.Errors[field] = message
	}
}

func (r *Result) finish() Result {
	r.IsValid = len(r.Errors) == 0
	return *r
}

// ValidateProduct valida os campos do produto.
func ValidateProduct(p *entity.Product) Result {
	r := newResult()

	if strings.TrimSpace(p.Name) == "" {
		r.add("name", "Nome do produto é obrigatório")
	}
	if p.PurchasePrice.LessThanOrEqual(decimal.Zero) {
		r.add("purchasePrice", "Valor de compra deve ser maior que zero")
	}
	if p.SalePrice.LessThanOrEqual(decimal.Zero) {
		r.add("salePrice", "Valor de venda deve ser maior que zero")
	}
	if p.PurchasePrice.IsPositive() && p.SalePrice.IsPositive() && p.PurchasePrice.GreaterThan(p.SalePrice) {
		r.add("salePrice", "Valor de venda deve ser maior que o valor de compra")
	}
	if p.Stock < 0 {
		r.add("stock", "Estoque não pode ser negativo")
	}

	return r.finish()
}

// ValidateClient valida os campos do cliente, incluindo o checksum do CPF.
func ValidateClient(c *entity.Client) Result {
	r := newResult()

	if strings.TrimSpace(c.Name) == "" {
		r.add("name", "Nome do cliente é obrigatório")
	}
	if strings.TrimSpace(c.CPF) == "" {
		r.add("cpf", "CPF é obrigatório")
	} else if err := brdoc.ValidateCPF(c.CPF); err != nil {
		r.add("cpf", "CPF inválido")
	}
	if strings.TrimSpace(c.Phone) == "" {
		r.add("phone", "Telefone é obrigatório")
	}
	if strings.TrimSpace(c.Address) == "" {
		r.add("address", "Endereço é obrigatório")
	}

	return r.finish()
}

// ValidateSale valida a venda contra o estoque disponível do produto.
// Os campos derivados (total, taxa, lucro) não são validados aqui: são
// sempre recalculados pelo motor, nunca aceitos de fora.
func ValidateSale(s *entity.Sale, availableStock int) Result {
	r := newResult()

	if s.ClientID == "" {
		r.add("clientId", "Cliente é obrigatório")
	}
	if s.ProductID == "" {
		r.add("productId", "Produto é obrigatório")
	}
	if s.Quantity <= 0 {
		r.add("quantity", "Quantidade deve ser maior que zero")
	} else if s.Quantity > availableStock {
		r.add("quantity", fmt.Sprintf("Quantidade em estoque insuficiente. Disponível: %d", availableStock))
	}
	if s.UnitPrice.LessThanOrEqual(decimal.Zero) {
		r.add("unitPrice", "Valor unitário deve ser maior que zero")
	}
	if s.Discount.IsNegative() {
		r.add("discount", "Desconto não pode ser negativo")
	} else {
		totalBeforeDiscount := s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
		if s.Discount.GreaterThan(totalBeforeDiscount) {
			r.add("discount", "Desconto não pode ser maior que o valor total")
		}
	}
	if s.PaymentMethod == "" {
		r.add("paymentMethod", "Forma de pagamento é obrigatória")
	} else if !catalog.IsPaymentMethod(s.PaymentMethod) {
		r.add("paymentMethod", "Forma de pagamento desconhecida")
	}
	if s.DeliveryType != "" && !catalog.IsDeliveryType(s.DeliveryType) {
		r.add("deliveryType", "Tipo de entrega desconhecido")
	}
	if s.ShippingCost.IsNegative() {
		r.add("shippingCost", "Frete não pode ser negativo")
	}
	if s.Status == "" {
		r.add("status", "Status é obrigatório")
	} else if s.Status != entity.SaleStatusPendente && s.Status != entity.SaleStatusPago && s.Status != entity.SaleStatusEntregue {
		r.add("status", "Status inválido")
	}
	if s.Date.IsZero() {
		r.add("date", "Data da venda é obrigatória")
	}
	if s.PaymentMethod == catalog.PixInstallment && s.NumInstallments <= 0 {
		r.add("numInstallments", "Número de parcelas é obrigatório para Pix Parcelado")
	}

	return r.finish()
}
