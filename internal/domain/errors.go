package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("conflict with current state")
	ErrOutOfStock         = errors.New("frame out of stock")
)

// Workflow validation errors. Each one maps to a step transition that must be
// blocked without mutating the draft; handlers surface them as user-correctable
// messages (HTTP 422).
var (
	ErrSessionNotFound     = errors.New("workflow session not found")
	ErrSessionFinalized    = errors.New("workflow session already finalized")
	ErrStepOrder           = errors.New("operation not allowed at current step")
	ErrPatientRequired     = errors.New("select a patient or skip the patient file")
	ErrLensRequired        = errors.New("select a lens type or skip lenses")
	ErrFrameIncomplete     = errors.New("frame requires brand and model")
	ErrContactItemsMissing = errors.New("select at least one contact lens item")
	ErrExamServiceMissing  = errors.New("no eye exam service configured in the catalog")
	ErrRepairIncomplete    = errors.New("repair requires a description and a non-negative price")
	ErrPaymentMethodEmpty  = errors.New("payment method is required")
	ErrAuthNumberRequired  = errors.New("card payments require an approval number")
	ErrNegativeAmount      = errors.New("discount and deposit must not be negative")
)
