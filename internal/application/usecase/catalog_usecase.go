package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Moein-9/optica-api/internal/application/dto"
	"github.com/Moein-9/optica-api/internal/domain"
	"github.com/Moein-9/optica-api/internal/domain/entity"
	"github.com/Moein-9/optica-api/internal/domain/repository"
)

// CatalogUseCase read and maintenance operations over the product catalogs:
// frames, lens components, contact lenses and services. The workflow consumes
// these catalogs through its own ports; this use case backs the browse and
// search endpoints.
type CatalogUseCase struct {
	frameRepo   repository.FrameRepository
	lensRepo    repository.LensCatalogRepository
	contactRepo repository.ContactLensRepository
	serviceRepo repository.ServiceRepository
}

// NewCatalogUseCase builds the use case.
func NewCatalogUseCase(
	frameRepo repository.FrameRepository,
	lensRepo repository.LensCatalogRepository,
	contactRepo repository.ContactLensRepository,
	serviceRepo repository.ServiceRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		frameRepo:   frameRepo,
		lensRepo:    lensRepo,
		contactRepo: contactRepo,
		serviceRepo: serviceRepo,
	}
}

// ── Frames ────────────────────────────────────────────────────────────────────

// CreateFrame adds a frame to the inventory.
func (uc *CatalogUseCase) CreateFrame(in dto.CreateFrameRequest) (*dto.FrameResponse, error) {
	if in.Brand == "" || in.Model == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Qty < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	frame := &entity.Frame{
		ID:        uuid.New().String(),
		Brand:     in.Brand,
		Model:     in.Model,
		Color:     in.Color,
		Size:      in.Size,
		Price:     in.Price,
		Qty:       in.Qty,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.frameRepo.Create(frame); err != nil {
		return nil, err
	}
	return toFrameResponse(frame), nil
}

// SearchFrames finds in-stock frames by brand, model or color substring.
func (uc *CatalogUseCase) SearchFrames(query string, limit int) ([]*dto.FrameResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	frames, err := uc.frameRepo.Search(query, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FrameResponse, 0, len(frames))
	for _, f := range frames {
		out = append(out, toFrameResponse(f))
	}
	return out, nil
}

// ListFrames pages through the frame inventory.
func (uc *CatalogUseCase) ListFrames(limit, offset int) ([]*dto.FrameResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	frames, err := uc.frameRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FrameResponse, 0, len(frames))
	for _, f := range frames {
		out = append(out, toFrameResponse(f))
	}
	return out, nil
}

// AdjustFrameQty corrects stock by delta (restock or shrinkage).
func (uc *CatalogUseCase) AdjustFrameQty(id string, delta int) (*dto.FrameResponse, error) {
	if err := uc.frameRepo.AdjustQty(id, delta); err != nil {
		return nil, err
	}
	frame, err := uc.frameRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if frame == nil {
		return nil, domain.ErrNotFound
	}
	return toFrameResponse(frame), nil
}

// ── Lens catalog ──────────────────────────────────────────────────────────────

// ListLensTypes returns every sellable lens family.
func (uc *CatalogUseCase) ListLensTypes() ([]*dto.LensTypeResponse, error) {
	lensTypes, err := uc.lensRepo.ListLensTypes()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LensTypeResponse, 0, len(lensTypes))
	for _, lt := range lensTypes {
		out = append(out, &dto.LensTypeResponse{
			ID: lt.ID, Name: lt.Name, NameAr: lt.NameAr, Category: lt.Category, Price: lt.Price,
		})
	}
	return out, nil
}

// ListCoatings returns coatings filtered by lens category, so a reading lens
// never offers a sunglasses-only coating.
func (uc *CatalogUseCase) ListCoatings(category string) ([]*dto.CoatingResponse, error) {
	coatings, err := uc.lensRepo.ListCoatingsByCategory(category)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CoatingResponse, 0, len(coatings))
	for _, c := range coatings {
		out = append(out, &dto.CoatingResponse{
			ID: c.ID, Name: c.Name, NameAr: c.NameAr, Category: c.Category,
			Price: c.Price, IsPhotochromic: c.IsPhotochromic,
		})
	}
	return out, nil
}

// ListThicknesses returns thickness options filtered by lens category.
func (uc *CatalogUseCase) ListThicknesses(category string) ([]*dto.ThicknessResponse, error) {
	thicknesses, err := uc.lensRepo.ListThicknessesByCategory(category)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ThicknessResponse, 0, len(thicknesses))
	for _, th := range thicknesses {
		out = append(out, &dto.ThicknessResponse{
			ID: th.ID, Name: th.Name, NameAr: th.NameAr, Category: th.Category, Price: th.Price,
		})
	}
	return out, nil
}

// GetCombinationPrice looks up the bundled price for an exact component
// triple. Price is nil when no combination is configured; the caller then
// sums the individual component prices.
func (uc *CatalogUseCase) GetCombinationPrice(lensTypeID, coatingID, thicknessID string) (*dto.CombinationPriceResponse, error) {
	if lensTypeID == "" || coatingID == "" || thicknessID == "" {
		return nil, domain.ErrInvalidInput
	}
	price, err := uc.lensRepo.GetCombinationPrice(lensTypeID, coatingID, thicknessID)
	if err != nil {
		return nil, err
	}
	return &dto.CombinationPriceResponse{Price: price}, nil
}

// ── Contact lenses ────────────────────────────────────────────────────────────

// SearchContactLenses finds products by brand or type substring.
func (uc *CatalogUseCase) SearchContactLenses(query string, limit int) ([]*dto.ContactLensResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	lenses, err := uc.contactRepo.Search(query, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContactLensResponse, 0, len(lenses))
	for _, l := range lenses {
		out = append(out, toContactLensResponse(l))
	}
	return out, nil
}

// ListContactLenses pages through contact lens stock.
func (uc *CatalogUseCase) ListContactLenses(limit, offset int) ([]*dto.ContactLensResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	lenses, err := uc.contactRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContactLensResponse, 0, len(lenses))
	for _, l := range lenses {
		out = append(out, toContactLensResponse(l))
	}
	return out, nil
}

// ── Services ──────────────────────────────────────────────────────────────────

// ListServices returns billable services, optionally filtered by category.
func (uc *CatalogUseCase) ListServices(category string) ([]*dto.ServiceResponse, error) {
	services, err := uc.serviceRepo.ListByCategory(category)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, &dto.ServiceResponse{
			ID: s.ID, Name: s.Name, NameAr: s.NameAr, Description: s.Description,
			Category: s.Category, Price: s.Price,
		})
	}
	return out, nil
}

func toFrameResponse(f *entity.Frame) *dto.FrameResponse {
	if f == nil {
		return nil
	}
	return &dto.FrameResponse{
		ID:    f.ID,
		Brand: f.Brand,
		Model: f.Model,
		Color: f.Color,
		Size:  f.Size,
		Price: f.Price,
		Qty:   f.Qty,
	}
}

func toContactLensResponse(l *entity.ContactLens) *dto.ContactLensResponse {
	if l == nil {
		return nil
	}
	return &dto.ContactLensResponse{
		ID:    l.ID,
		Brand: l.Brand,
		Type:  l.Type,
		Power: l.Power,
		Color: l.Color,
		Price: l.Price,
		Qty:   l.Qty,
	}
}
