package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Moein-9/optica-api/internal/application/billing"
	"github.com/Moein-9/optica-api/internal/application/dto"
)

// InvoiceHandler reads finalized invoices and appends to their histories.
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Get godoc
// @Summary      Get invoice with payment and edit histories
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Invoice ID"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List invoices, newest first
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int   false  "Limit"   default(50)
// @Param        offset  query  int   false  "Offset"  default(0)
// @Param        unpaid  query  bool  false  "Only invoices with a balance"
// @Success      200     {array}  dto.InvoiceResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(
		c.QueryInt("limit", 50),
		c.QueryInt("offset", 0),
		c.QueryBool("unpaid", false),
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddPayment godoc
// @Summary      Record a payment against the remaining balance
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Invoice ID"
// @Param        body  body  dto.AddPaymentRequest  true  "Amount, method, optional approval number"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/payments [post]
func (h *InvoiceHandler) AddPayment(c *fiber.Ctx) error {
	var in dto.AddPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.AddPayment(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddEdit godoc
// @Summary      Append a note to the invoice's edit trail
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Invoice ID"
// @Param        body  body  dto.AddEditRequest  true  "Note"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/edits [post]
func (h *InvoiceHandler) AddEdit(c *fiber.Ctx) error {
	var in dto.AddEditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.AddEdit(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
