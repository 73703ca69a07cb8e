package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Moein-9/optica-api/internal/application/billing"
	"github.com/Moein-9/optica-api/internal/application/dto"
	"github.com/Moein-9/optica-api/internal/application/usecase"
)

// PatientHandler handles patient file requests (protected).
type PatientHandler struct {
	uc        *usecase.PatientUseCase
	invoiceUC *billing.InvoiceUseCase
}

// NewPatientHandler builds the handler.
func NewPatientHandler(uc *usecase.PatientUseCase, invoiceUC *billing.InvoiceUseCase) *PatientHandler {
	return &PatientHandler{uc: uc, invoiceUC: invoiceUC}
}

// Create godoc
// @Summary      Create patient file
// @Tags         patients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePatientRequest  true  "Patient data"
// @Success      201   {object}  dto.PatientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/patients [post]
func (h *PatientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePatientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Name == "" || in.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name and phone are required"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get patient file
// @Tags         patients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Patient ID"
// @Success      200  {object}  dto.PatientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/patients/{id} [get]
func (h *PatientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Search patients by name or phone
// @Tags         patients
// @Security     Bearer
// @Produce      json
// @Param        q      query  string  true   "Name or phone substring"
// @Param        limit  query  int     false  "Limit"  default(20)
// @Success      200    {array}  dto.PatientResponse
// @Router       /api/patients/search [get]
func (h *PatientHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "q is required"})
	}
	out, err := h.uc.Search(query, c.QueryInt("limit", 20))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update patient file
// @Tags         patients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Patient ID"
// @Param        body  body  dto.UpdatePatientRequest  true  "Fields to update"
// @Success      200   {object}  dto.PatientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/patients/{id} [put]
func (h *PatientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePatientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List patient files
// @Tags         patients
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.PatientResponse
// @Router       /api/patients [get]
func (h *PatientHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Invoices godoc
// @Summary      Patient transaction history
// @Tags         patients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Patient ID"
// @Success      200  {array}  dto.InvoiceResponse
// @Router       /api/patients/{id}/invoices [get]
func (h *PatientHandler) Invoices(c *fiber.Ctx) error {
	out, err := h.invoiceUC.ListByPatient(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
