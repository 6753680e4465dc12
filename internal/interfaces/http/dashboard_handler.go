package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "perfumaria/internal/application/analytics"
	"perfumaria/internal/application/dto"
)

// DashboardHandler métricas agregadas (protegido).
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Dashboard do período filtrado
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        startDate      query  string  false  "Data inicial (2006-01-02)"
// @Param        endDate        query  string  false  "Data final (2006-01-02)"
// @Param        status         query  string  false  "Status da venda"
// @Param        paymentMethod  query  string  false  "Forma de pagamento"
// @Param        productId      query  string  false  "ID do produto"
// @Param        clientId       query  string  false  "ID do cliente"
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	var in dto.DashboardFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: "filtros inválidos"})
	}
	out, err := h.uc.GetDashboard(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
