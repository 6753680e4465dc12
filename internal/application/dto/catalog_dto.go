package dto

import "github.com/shopspring/decimal"

// PaymentMethodResponse entrada do catálogo de formas de pagamento.
type PaymentMethodResponse struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Rate  decimal.Decimal `json:"rate"`
	Type  string          `json:"type"`
}

// DeliveryTypeResponse entrada do catálogo de tipos de entrega.
type DeliveryTypeResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// CatalogResponse catálogos estáticos consumidos pelos formulários.
type CatalogResponse struct {
	PaymentMethods []PaymentMethodResponse `json:"paymentMethods"`
	DeliveryTypes  []DeliveryTypeResponse  `json:"deliveryTypes"`
}
