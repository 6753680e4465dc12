package validation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"perfumaria/internal/domain/catalog"
	"perfumaria/internal/domain/entity"
	"perfumaria/internal/domain/validation"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validProduct() *entity.Product {
	return &entity.Product{
		Name:          "Perfume Amadeirado 100ml",
		PurchasePrice: dec("80"),
		SalePrice:     dec("150"),
		Stock:         5,
	}
}

func TestValidateProduct(t *testing.T) {
	t.Run("produto valido", func(t *testing.T) {
		r := validation.ValidateProduct(validProduct())
		assert.True(t, r.IsValid)
		assert.Empty(t, r.Errors)
	})

	t.Run("nome vazio", func(t *testing.T) {
		p := validProduct()
		p.Name = "   "
		r := validation.ValidateProduct(p)
		assert.False(t, r.IsValid)
		assert.Contains(t, r.Errors, "name")
	})

	t.Run("venda abaixo da compra", func(t *testing.T) {
		p := validProduct()
		p.SalePrice = dec("50")
		r := validation.ValidateProduct(p)
		assert.False(t, r.IsValid)
		assert.Contains(t, r.Errors, "salePrice")
	})

	t.Run("estoque negativo", func(t *testing.T) {
		p := validProduct()
		p.Stock = -1
		r := validation.ValidateProduct(p)
		assert.False(t, r.IsValid)
		assert.Contains(t, r.Errors, "stock")
	})
}

func validClient() *entity.Client {
	return &entity.Client{
		Name:    "Maria Souza",
		CPF:     "52998224725",
		Phone:   "11987654321",
		Address: "Rua das Flores, 123",
	}
}

func TestValidateClient(t *testing.T) {
	t.Run("cliente valido", func(t *testing.T) {
		r := validation.ValidateClient(validClient())
		assert.True(t, r.IsValid)
	})

	t.Run("cpf com digito verificador errado", func(t *testing.T) {
		c := validClient()
		c.CPF = "52998224726"
		r := validation.ValidateClient(c)
		assert.False(t, r.IsValid)
		assert.Equal(t, "CPF inválido", r.Errors["cpf"])
	})

	t.Run("campos obrigatorios", func(t *testing.T) {
		r := validation.ValidateClient(&entity.Client{})
		assert.False(t, r.IsValid)
		for _, field := range []string{"name", "cpf", "phone", "address"} {
			assert.Contains(t, r.Errors, field)
		}
	})
}

func validSale() *entity.Sale {
	return &entity.Sale{
		Date:          time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		ClientID:      "C001",
		ProductID:     "P001",
		Quantity:      2,
		UnitPrice:     dec("150"),
		Discount:      dec("10"),
		PaymentMethod: catalog.PixMP,
		Status:        entity.SaleStatusPago,
	}
}

func TestValidateSale(t *testing.T) {
	t.Run("venda valida", func(t *testing.T) {
		r := validation.ValidateSale(validSale(), 10)
		assert.True(t, r.IsValid)
		assert.Empty(t, r.Errors)
	})

	t.Run("estoque insuficiente", func(t *testing.T) {
		s := validSale()
		s.Quantity = 5
		r := validation.ValidateSale(s, 3)
		assert.False(t, r.IsValid)
		assert.Equal(t, "Quantidade em estoque insuficiente. Disponível: 3", r.Errors["quantity"])
	})

	t.Run("desconto maior que o total", func(t *testing.T) {
		s := validSale()
		s.Discount = dec("500")
		r := validation.ValidateSale(s, 10)
		assert.False(t, r.IsValid)
		assert.Contains(t, r.Errors, "discount")
	})

	t.Run("forma de pagamento desconhecida", func(t *testing.T) {
		s := validSale()
		s.PaymentMethod = "CHEQUE"
		r := validation.ValidateSale(s, 10)
		assert.False(t, r.IsValid)
		assert.Contains(t, r.Errors, "paymentMethod")
	})

	t.Run("pix parcelado exige numero de parcelas", func(t *testing.T) {
		s := validSale()
		s.PaymentMethod = catalog.PixInstallment
		s.NumInstallments = 0
		r := validation.ValidateSale(s, 10)
		assert.False(t, r.IsValid)
		assert.Contains(t, r.Errors, "numInstallments")
	})

	t.Run("status invalido", func(t *testing.T) {
		s := validSale()
		s.Status = "Cancelada"
		r := validation.ValidateSale(s, 10)
		assert.False(t, r.IsValid)
		assert.Contains(t, r.Errors, "status")
	})
}
