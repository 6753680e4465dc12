package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"perfumaria/internal/application/dto"
	"perfumaria/internal/application/sales"
	"perfumaria/internal/domain/repository"
)

// SaleHandler vendas: CRUD, simulação de preço e carnê em PDF (protegido).
type SaleHandler struct {
	uc      *sales.SaleUseCase
	quoteUC *sales.QuoteUseCase
	carneUC *sales.CarneUseCase
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(uc *sales.SaleUseCase, quoteUC *sales.QuoteUseCase, carneUC *sales.CarneUseCase) *SaleHandler {
	return &SaleHandler{uc: uc, quoteUC: quoteUC, carneUC: carneUC}
}

// Create godoc
// @Summary      Registrar venda
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Dados da venda"
// @Success      201   {object}  dto.SaleResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/vendas [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Quote godoc
// @Summary      Simular venda (sem persistir)
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleQuoteRequest  true  "Parâmetros da simulação"
// @Success      200   {object}  dto.SaleQuoteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vendas/simulacao [post]
func (h *SaleHandler) Quote(c *fiber.Ctx) error {
	var in dto.SaleQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.quoteUC.Quote(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Buscar venda por ID
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar vendas
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        startDate      query  string  false  "Data inicial (2006-01-02)"
// @Param        endDate        query  string  false  "Data final (2006-01-02)"
// @Param        status         query  string  false  "Status da venda"
// @Param        paymentMethod  query  string  false  "Forma de pagamento"
// @Param        productId      query  string  false  "ID do produto"
// @Param        clientId       query  string  false  "ID do cliente"
// @Param        limit          query  int     false  "Limite"  default(20)
// @Param        offset         query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/vendas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	filter, err := saleFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: "datas no formato 2006-01-02"})
	}
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(filter, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar venda
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da venda"
// @Param        body  body  dto.UpdateSaleRequest  true  "Dados da venda"
// @Success      200   {object}  dto.SaleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover venda (e o lote de parcelas dela)
// @Tags         vendas
// @Security     Bearer
// @Param        id  path  string  true  "ID da venda"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Carne godoc
// @Summary      Carnê de parcelas em PDF
// @Tags         vendas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID da venda"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id}/carne [get]
func (h *SaleHandler) Carne(c *fiber.Ctx) error {
	pdfBytes, err := h.carneUC.Generate(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="carne-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}

func saleFilterFromQuery(c *fiber.Ctx) (repository.SaleFilter, error) {
	filter := repository.SaleFilter{
		Status:        c.Query("status"),
		PaymentMethod: c.Query("paymentMethod"),
		ProductID:     c.Query("productId"),
		ClientID:      c.Query("clientId"),
	}
	if v := c.Query("startDate"); v != "" {
		start, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, err
		}
		filter.StartDate = start
	}
	if v := c.Query("endDate"); v != "" {
		end, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, err
		}
		filter.EndDate = end.Add(24*time.Hour - time.Nanosecond)
	}
	return filter, nil
}
