package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Moein-9/optica-api/internal/application/receipts"
	"github.com/Moein-9/optica-api/internal/i18n"
)

// ReceiptHandler serves the printable renditions of an invoice. Language
// comes from ?lang= when present, otherwise from Accept-Language.
type ReceiptHandler struct {
	uc *receipts.ReceiptUseCase
}

// NewReceiptHandler builds the handler.
func NewReceiptHandler(uc *receipts.ReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

func receiptLang(c *fiber.Ctx) string {
	if lang := c.Query("lang"); lang == i18n.LangEnglish || lang == i18n.LangArabic {
		return lang
	}
	return i18n.Match(c.Get("Accept-Language"))
}

// PDF godoc
// @Summary      A4 invoice PDF
// @Tags         receipts
// @Security     Bearer
// @Produce      application/pdf
// @Param        id    path   string  true   "Invoice ID"
// @Param        lang  query  string  false  "en | ar"
// @Success      200   {file}  binary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *ReceiptHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.InvoicePDF(id, receiptLang(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s.pdf"`, id))
	return c.Send(out)
}

// Thermal godoc
// @Summary      80mm thermal receipt (ESC/POS bytes)
// @Tags         receipts
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        id    path   string  true   "Invoice ID"
// @Param        lang  query  string  false  "en | ar"
// @Success      200   {file}  binary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/receipt [get]
func (h *ReceiptHandler) Thermal(c *fiber.Ctx) error {
	out, err := h.uc.ThermalReceipt(c.Params("id"), receiptLang(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/octet-stream")
	return c.Send(out)
}

// Label godoc
// @Summary      Work order label for the lens envelope (ESC/POS bytes)
// @Tags         receipts
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        id   path  string  true  "Invoice ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/label [get]
func (h *ReceiptHandler) Label(c *fiber.Ctx) error {
	out, err := h.uc.Label(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/octet-stream")
	return c.Send(out)
}
