package catalog

// Chaves dos tipos de entrega.
const (
	Retirada     = "RETIRADA"
	EntregaLocal = "ENTREGA_LOCAL"
	Correios     = "CORREIOS"
)

// DeliveryType tipo de entrega da venda.
type DeliveryType struct {
	Key   string
	Label string
}

var deliveryTypes = []DeliveryType{
	{Key: Retirada, Label: "Retirada em mãos"},
	{Key: EntregaLocal, Label: "Entrega local"},
	{Key: Correios, Label: "Envio pelos Correios"},
}

// DeliveryTypes devolve o catálogo na ordem de exibição.
func DeliveryTypes() []DeliveryType {
	out := make([]DeliveryType, len(deliveryTypes))
	copy(out, deliveryTypes)
	return out
}

// IsDeliveryType informa se a chave existe no catálogo.
func IsDeliveryType(key string) bool {
	for _, d := range deliveryTypes {
		if d.Key == key {
			return true
		}
	}
	return false
}
