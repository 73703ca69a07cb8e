package entity

import "github.com/shopspring/decimal"

// Service catalog categories.
const (
	ServiceCategoryExam   = "exam"
	ServiceCategoryRepair = "repair"
)

// ServiceItem a billable service (eye exam, nose pad replacement, ...).
type ServiceItem struct {
	ID          string
	Name        string
	NameAr      string
	Description string
	Category    string
	Price       decimal.Decimal
}
