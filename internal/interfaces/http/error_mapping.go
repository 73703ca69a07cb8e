package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Moein-9/optica-api/internal/application/dto"
	"github.com/Moein-9/optica-api/internal/domain"
)

// domainStatus maps domain sentinel errors to an HTTP status and a stable
// error code. Everything not listed is a 500.
var domainStatus = map[error]struct {
	status int
	code   string
}{
	domain.ErrNotFound:            {fiber.StatusNotFound, "NOT_FOUND"},
	domain.ErrInvalidInput:        {fiber.StatusBadRequest, "VALIDATION"},
	domain.ErrDuplicate:           {fiber.StatusConflict, "DUPLICATE"},
	domain.ErrConflict:            {fiber.StatusConflict, "CONFLICT"},
	domain.ErrOutOfStock:          {fiber.StatusConflict, "OUT_OF_STOCK"},
	domain.ErrUnauthorized:        {fiber.StatusUnauthorized, "UNAUTHORIZED"},
	domain.ErrForbidden:           {fiber.StatusForbidden, "FORBIDDEN"},
	domain.ErrSessionNotFound:     {fiber.StatusNotFound, "SESSION_NOT_FOUND"},
	domain.ErrSessionFinalized:    {fiber.StatusConflict, "SESSION_FINALIZED"},
	domain.ErrStepOrder:           {fiber.StatusConflict, "STEP_ORDER"},
	domain.ErrPatientRequired:     {fiber.StatusBadRequest, "PATIENT_REQUIRED"},
	domain.ErrLensRequired:        {fiber.StatusBadRequest, "LENS_REQUIRED"},
	domain.ErrFrameIncomplete:     {fiber.StatusBadRequest, "FRAME_INCOMPLETE"},
	domain.ErrContactItemsMissing: {fiber.StatusBadRequest, "CONTACT_ITEMS_MISSING"},
	domain.ErrExamServiceMissing:  {fiber.StatusConflict, "EXAM_SERVICE_MISSING"},
	domain.ErrRepairIncomplete:    {fiber.StatusBadRequest, "REPAIR_INCOMPLETE"},
	domain.ErrPaymentMethodEmpty:  {fiber.StatusBadRequest, "PAYMENT_METHOD_REQUIRED"},
	domain.ErrAuthNumberRequired:  {fiber.StatusBadRequest, "AUTH_NUMBER_REQUIRED"},
	domain.ErrNegativeAmount:      {fiber.StatusBadRequest, "NEGATIVE_AMOUNT"},
}

// respondError translates a use case error into the JSON error envelope.
func respondError(c *fiber.Ctx, err error) error {
	for sentinel, m := range domainStatus {
		if errors.Is(err, sentinel) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
