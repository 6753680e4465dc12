package http

import (
	"github.com/gofiber/fiber/v2"

	"perfumaria/internal/application/dto"
	"perfumaria/internal/application/financial"
	"perfumaria/internal/domain/catalog"
)

// CatalogHandler catálogos estáticos e tabela do IR (público).
type CatalogHandler struct {
	irUC *financial.IRUseCase
}

// NewCatalogHandler constrói o handler.
func NewCatalogHandler(irUC *financial.IRUseCase) *CatalogHandler {
	return &CatalogHandler{irUC: irUC}
}

// Get godoc
// @Summary      Formas de pagamento e tipos de entrega
// @Tags         catalogos
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalogos [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	methods := catalog.PaymentMethods()
	out := dto.CatalogResponse{
		PaymentMethods: make([]dto.PaymentMethodResponse, 0, len(methods)),
	}
	for _, m := range methods {
		out.PaymentMethods = append(out.PaymentMethods, dto.PaymentMethodResponse{
			Key:   m.Key,
			Label: m.Label,
			Rate:  m.Rate,
			Type:  string(m.Type),
		})
	}
	for _, d := range catalog.DeliveryTypes() {
		out.DeliveryTypes = append(out.DeliveryTypes, dto.DeliveryTypeResponse{
			Key:   d.Key,
			Label: d.Label,
		})
	}
	return c.JSON(out)
}

// Brackets godoc
// @Summary      Tabela progressiva mensal do IRPF vigente
// @Tags         catalogos
// @Produce      json
// @Success      200  {array}  dto.IRBracketResponse
// @Router       /api/catalogos/ir [get]
func (h *CatalogHandler) Brackets(c *fiber.Ctx) error {
	brackets := h.irUC.Brackets()
	out := make([]dto.IRBracketResponse, 0, len(brackets))
	for _, b := range brackets {
		out = append(out, dto.IRBracketResponse{
			Max:       b.Max,
			NoLimit:   b.NoLimit,
			Rate:      b.Rate,
			Deduction: b.Deduction,
		})
	}
	return c.JSON(out)
}
