package repository

import (
	"github.com/shopspring/decimal"

	"github.com/Moein-9/optica-api/internal/domain/entity"
)

// FrameRepository persistence port for the frame inventory.
type FrameRepository interface {
	Create(frame *entity.Frame) error
	GetByID(id string) (*entity.Frame, error)
	// Search matches brand, model or color, case-insensitive substring.
	Search(query string, limit int) ([]*entity.Frame, error)
	Update(frame *entity.Frame) error
	// AdjustQty adds delta to the frame's stock quantity. Returns
	// domain.ErrOutOfStock when the result would go below zero.
	AdjustQty(id string, delta int) error
	List(limit, offset int) ([]*entity.Frame, error)
}

// LensCatalogRepository read port for lens components and bundled prices.
type LensCatalogRepository interface {
	ListLensTypes() ([]*entity.LensType, error)
	ListCoatingsByCategory(category string) ([]*entity.LensCoating, error)
	ListThicknessesByCategory(category string) ([]*entity.LensThickness, error)
	// GetCombinationPrice returns the bundled price for an exact
	// {lensTypeID, coatingID, thicknessID} match, or nil when no combination
	// row exists.
	GetCombinationPrice(lensTypeID, coatingID, thicknessID string) (*decimal.Decimal, error)
}

// ContactLensRepository persistence port for contact lens stock.
type ContactLensRepository interface {
	Create(lens *entity.ContactLens) error
	GetByID(id string) (*entity.ContactLens, error)
	Search(query string, limit int) ([]*entity.ContactLens, error)
	List(limit, offset int) ([]*entity.ContactLens, error)
}

// ServiceRepository read port for billable services.
type ServiceRepository interface {
	ListByCategory(category string) ([]*entity.ServiceItem, error)
	GetByID(id string) (*entity.ServiceItem, error)
	// GetExamService returns the store's eye exam service, or nil when none
	// is configured (the workflow surfaces that as a validation error).
	GetExamService() (*entity.ServiceItem, error)
}
