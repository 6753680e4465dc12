package http

import (
	"github.com/gofiber/fiber/v2"

	"perfumaria/internal/application/dto"
	"perfumaria/internal/application/financial"
)

// FinancialHandler simulador de carnê-leão (protegido).
type FinancialHandler struct {
	uc *financial.IRUseCase
}

// NewFinancialHandler constrói o handler.
func NewFinancialHandler(uc *financial.IRUseCase) *FinancialHandler {
	return &FinancialHandler{uc: uc}
}

// Simulate godoc
// @Summary      Simular IR mensal (carnê-leão)
// @Tags         financeiro
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IRSimulationRequest  true  "Receita/custos manuais ou useRealData"
// @Success      200   {object}  dto.IRSimulationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/financeiro/ir [post]
func (h *FinancialHandler) Simulate(c *fiber.Ctx) error {
	var in dto.IRSimulationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Simulate(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
