package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Moein-9/optica-api/internal/application/billing"
	"github.com/Moein-9/optica-api/internal/application/dto"
)

// WorkflowHandler exposes the invoice workflow state machine. Every endpoint
// returns the full session view so the client re-renders from it.
type WorkflowHandler struct {
	uc *billing.WorkflowUseCase
}

// NewWorkflowHandler builds the handler.
func NewWorkflowHandler(uc *billing.WorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{uc: uc}
}

// Start godoc
// @Summary      Open a new invoice session
// @Tags         workflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartSessionRequest  true  "glasses | contacts | exam | repair"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/workflow/sessions [post]
func (h *WorkflowHandler) Start(c *fiber.Ctx) error {
	var in dto.StartSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Start(c.Context(), in.InvoiceType)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Get session state
// @Tags         workflow
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Session ID"
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/workflow/sessions/{id} [get]
func (h *WorkflowHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetPatient godoc
// @Summary      Patient step
// @Tags         workflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Session ID"
// @Param        body  body  dto.SetPatientRequest  true  "Patient reference or skip"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/workflow/sessions/{id}/patient [put]
func (h *WorkflowHandler) SetPatient(c *fiber.Ctx) error {
	var in dto.SetPatientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.SetPatient(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetGlasses godoc
// @Summary      Products step for a glasses draft
// @Tags         workflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Session ID"
// @Param        body  body  dto.GlassesSelectionRequest  true  "Lens and frame selection"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/workflow/sessions/{id}/glasses [put]
func (h *WorkflowHandler) SetGlasses(c *fiber.Ctx) error {
	var in dto.GlassesSelectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.SetGlasses(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetContacts godoc
// @Summary      Products step for a contacts draft
// @Tags         workflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Session ID"
// @Param        body  body  dto.ContactsSelectionRequest  true  "Contact lens lines"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/workflow/sessions/{id}/contacts [put]
func (h *WorkflowHandler) SetContacts(c *fiber.Ctx) error {
	var in dto.ContactsSelectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.SetContacts(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetService godoc
// @Summary      Products step for exam and repair drafts
// @Tags         workflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Session ID"
// @Param        body  body  dto.ServiceSelectionRequest  true  "Service selection or repair description"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/workflow/sessions/{id}/service [put]
func (h *WorkflowHandler) SetService(c *fiber.Ctx) error {
	var in dto.ServiceSelectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.SetService(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetPayment godoc
// @Summary      Payment step
// @Tags         workflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Session ID"
// @Param        body  body  dto.SetPaymentRequest  true  "Discount, deposit and method"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/workflow/sessions/{id}/payment [put]
func (h *WorkflowHandler) SetPayment(c *fiber.Ctx) error {
	var in dto.SetPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.SetPayment(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PayInFull godoc
// @Summary      Set the deposit to the current total
// @Tags         workflow
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Session ID"
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/workflow/sessions/{id}/pay-in-full [post]
func (h *WorkflowHandler) PayInFull(c *fiber.Ctx) error {
	out, err := h.uc.PayInFull(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SwitchType godoc
// @Summary      Change the draft's invoice type
// @Tags         workflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Session ID"
// @Param        body  body  dto.StartSessionRequest  true  "New invoice type"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/workflow/sessions/{id}/type [put]
func (h *WorkflowHandler) SwitchType(c *fiber.Ctx) error {
	var in dto.StartSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.SwitchType(c.Context(), c.Params("id"), in.InvoiceType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reset godoc
// @Summary      Discard the draft and restart at the patient step
// @Tags         workflow
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Session ID"
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/workflow/sessions/{id}/reset [post]
func (h *WorkflowHandler) Reset(c *fiber.Ctx) error {
	out, err := h.uc.Reset(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Finalize the draft into an invoice
// @Tags         workflow
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Session ID"
// @Success      201  {object}  dto.SaveInvoiceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/workflow/sessions/{id}/save [post]
func (h *WorkflowHandler) Save(c *fiber.Ctx) error {
	out, err := h.uc.Save(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
