package dto

import "github.com/shopspring/decimal"

// CreateFrameRequest body for POST /api/frames.
type CreateFrameRequest struct {
	Brand string          `json:"brand"`
	Model string          `json:"model"`
	Color string          `json:"color,omitempty"`
	Size  string          `json:"size,omitempty"`
	Price decimal.Decimal `json:"price"`
	Qty   int             `json:"qty"`
}

// FrameResponse frame in responses.
type FrameResponse struct {
	ID    string          `json:"id"`
	Brand string          `json:"brand"`
	Model string          `json:"model"`
	Color string          `json:"color,omitempty"`
	Size  string          `json:"size,omitempty"`
	Price decimal.Decimal `json:"price"`
	Qty   int             `json:"qty"`
}

// LensTypeResponse lens family with its base price.
type LensTypeResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	NameAr   string          `json:"name_ar,omitempty"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

// CoatingResponse coating option.
type CoatingResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	NameAr         string          `json:"name_ar,omitempty"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	IsPhotochromic bool            `json:"is_photochromic"`
}

// ThicknessResponse thickness/index option.
type ThicknessResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	NameAr   string          `json:"name_ar,omitempty"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

// CombinationPriceResponse result of the bundled-price lookup.
// Price is null when no combination row matches.
type CombinationPriceResponse struct {
	Price *decimal.Decimal `json:"price"`
}

// ContactLensResponse contact lens product.
type ContactLensResponse struct {
	ID    string          `json:"id"`
	Brand string          `json:"brand"`
	Type  string          `json:"type"`
	Power string          `json:"power,omitempty"`
	Color string          `json:"color,omitempty"`
	Price decimal.Decimal `json:"price"`
	Qty   int             `json:"qty"`
}

// ServiceResponse billable service.
type ServiceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	NameAr      string          `json:"name_ar,omitempty"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
}
