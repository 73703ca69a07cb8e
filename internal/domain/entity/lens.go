package entity

import "github.com/shopspring/decimal"

// Lens catalog categories used by the category-filtered getters.
const (
	LensCategoryDistance    = "distance"
	LensCategoryReading     = "reading"
	LensCategoryProgressive = "progressive"
	LensCategoryBifocal     = "bifocal"
	LensCategorySunglasses  = "sunglasses"
)

// LensType a sellable lens family (single vision, progressive, ...).
type LensType struct {
	ID       string
	Name     string
	NameAr   string
	Category string
	Price    decimal.Decimal
}

// LensCoating an optional coating (anti-reflective, blue light, photochromic, ...).
type LensCoating struct {
	ID             string
	Name           string
	NameAr         string
	Category       string
	Price          decimal.Decimal
	IsPhotochromic bool
}

// LensThickness an index/thickness option (1.56, 1.61, 1.67, ...).
type LensThickness struct {
	ID       string
	Name     string
	NameAr   string
	Category string
	Price    decimal.Decimal
}

// LensPricingCombination a bundled price for an exact {lens type, coating,
// thickness} triple. When a combination row matches the draft's selection its
// price supersedes the three individual component prices.
type LensPricingCombination struct {
	ID          string
	LensTypeID  string
	CoatingID   string
	ThicknessID string
	Price       decimal.Decimal
}
