package http

import (
	"github.com/gofiber/fiber/v2"

	"perfumaria/internal/application/dto"
	"perfumaria/internal/application/usecase"
)

// InstallmentHandler consulta e baixa de parcelas (protegido).
type InstallmentHandler struct {
	uc *usecase.InstallmentUseCase
}

// NewInstallmentHandler constrói o handler.
func NewInstallmentHandler(uc *usecase.InstallmentUseCase) *InstallmentHandler {
	return &InstallmentHandler{uc: uc}
}

// ListBySale godoc
// @Summary      Parcelas de uma venda
// @Tags         parcelas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {object}  dto.InstallmentListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id}/parcelas [get]
func (h *InstallmentHandler) ListBySale(c *fiber.Ctx) error {
	out, err := h.uc.ListBySale(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Ajustar vencimento/status de uma parcela
// @Tags         parcelas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da parcela (ex.: V001-P1)"
// @Param        body  body  dto.UpdateInstallmentRequest  true  "Campos a ajustar"
// @Success      200   {object}  dto.InstallmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/parcelas/{id} [put]
func (h *InstallmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInstallmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receive godoc
// @Summary      Dar baixa em uma parcela
// @Tags         parcelas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da parcela (ex.: V001-P1)"
// @Param        body  body  dto.ReceiveInstallmentRequest  false  "Data de pagamento (opcional)"
// @Success      200   {object}  dto.InstallmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/parcelas/{id}/recebimento [post]
func (h *InstallmentHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveInstallmentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.uc.Receive(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reopen godoc
// @Summary      Desfazer a baixa de uma parcela
// @Tags         parcelas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da parcela"
// @Success      200  {object}  dto.InstallmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parcelas/{id}/recebimento [delete]
func (h *InstallmentHandler) Reopen(c *fiber.Ctx) error {
	out, err := h.uc.Reopen(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
