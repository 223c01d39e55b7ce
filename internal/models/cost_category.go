package models

// CostCategory is a top-level budget grouping, e.g. a trade or a vendor.
type CostCategory struct {
	Base
	Name          string   `gorm:"not null;uniqueIndex" json:"name"`
	Description   *string  `json:"description"`
	BudgetedTotal *float64 `json:"budgeted_total"`
}

// TableName overrides the default table name.
func (CostCategory) TableName() string { return "cost_categories" }
