package models

// CostArticle is a budget line item owned by exactly one category.
// CategoryID is fixed at creation.
type CostArticle struct {
	Base
	CategoryID     string   `gorm:"not null;index" json:"category_id"`
	Name           string   `gorm:"not null" json:"name"`
	BudgetedAmount *float64 `json:"budgeted_amount"`
	Notes          *string  `json:"notes"`
}

// TableName overrides the default table name.
func (CostArticle) TableName() string { return "cost_articles" }
