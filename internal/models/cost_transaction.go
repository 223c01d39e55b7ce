package models

// Known payment methods. PaymentMethod is free text; these are the values
// the ledger has seen in practice.
const (
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodMobileWallet = "mobile_wallet"
	PaymentMethodCard         = "card"
	PaymentMethodServiceFee   = "service_fee"
)

// CostTransaction is one payment recorded against an article.
type CostTransaction struct {
	Base
	ArticleID       string  `gorm:"not null;index" json:"article_id"`
	TransactionDate Date    `gorm:"not null;index" json:"transaction_date"`
	PhaseNumber     *int    `json:"phase_number"`
	PaymentMethod   string  `gorm:"not null" json:"payment_method"`
	Amount          float64 `gorm:"not null" json:"amount"`
	HasInvoice      bool    `gorm:"not null" json:"has_invoice"`
	Notes           *string `json:"notes"`
}

// TableName overrides the default table name.
func (CostTransaction) TableName() string { return "cost_transactions" }
