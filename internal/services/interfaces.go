package services

import (
	"time"

	"reconstruction/internal/ledger"
	"reconstruction/internal/models"
	"reconstruction/internal/nullable"
	"reconstruction/internal/pagination"
)

// CategoryPatch lists the category fields an update may change. Nil and
// absent fields are left untouched; a null nullable field clears the column.
type CategoryPatch struct {
	Name          *string
	Description   nullable.Field[string]
	BudgetedTotal nullable.Field[float64]
}

// CategoryServicer defines the contract for cost-category business logic.
type CategoryServicer interface {
	CreateCategory(name string, description *string, budgetedTotal *float64) (*models.CostCategory, error)
	ListCategories(page pagination.PageRequest) (*pagination.PageResponse[models.CostCategory], error)
	GetCategoryByID(id string) (*models.CostCategory, error)
	UpdateCategory(id string, patch CategoryPatch) (*models.CostCategory, error)
	DeleteCategory(id string) error
}

// ArticleFilter holds optional filter parameters for listing articles.
type ArticleFilter struct {
	CategoryID *string
}

// ArticlePatch lists the article fields an update may change. The owning
// category is fixed at creation and cannot be patched.
type ArticlePatch struct {
	Name           *string
	BudgetedAmount nullable.Field[float64]
	Notes          nullable.Field[string]
}

// ArticleServicer defines the contract for cost-article business logic.
type ArticleServicer interface {
	CreateArticle(categoryID, name string, budgetedAmount *float64, notes *string) (*models.CostArticle, error)
	ListArticles(filter ArticleFilter, page pagination.PageRequest) (*pagination.PageResponse[models.CostArticle], error)
	GetArticleByID(id string) (*models.CostArticle, error)
	UpdateArticle(id string, patch ArticlePatch) (*models.CostArticle, error)
	DeleteArticle(id string) error
}

// NewTransaction carries the fields of a transaction to create. Amount is
// a pointer so that a missing amount can be told apart from zero.
type NewTransaction struct {
	ArticleID       string
	TransactionDate models.Date
	PaymentMethod   string
	Amount          *float64
	HasInvoice      bool
	PhaseNumber     *int
	Notes           *string
}

// TransactionPatch lists the transaction fields an update may change.
// There is no created_at: it is fixed at insert.
type TransactionPatch struct {
	ArticleID       *string
	TransactionDate *models.Date
	PhaseNumber     nullable.Field[int]
	PaymentMethod   *string
	Amount          *float64
	HasInvoice      *bool
	Notes           nullable.Field[string]
}

// TransactionFilter holds optional filter parameters for listing
// transactions. From and To are inclusive.
type TransactionFilter struct {
	ArticleID  *string
	CategoryID *string
	From       *models.Date
	To         *models.Date
}

// TransactionServicer defines the contract for cost-transaction business logic.
type TransactionServicer interface {
	CreateTransaction(in NewTransaction) (*models.CostTransaction, error)
	ListTransactions(filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.CostTransaction], error)
	GetTransactionByID(id string) (*models.CostTransaction, error)
	UpdateTransaction(id string, patch TransactionPatch) (*models.CostTransaction, error)
	DeleteTransaction(id string) error
}

// SummaryServicer exposes the aggregation engine over the current ledger.
type SummaryServicer interface {
	Overall() (*ledger.OverallSummary, error)
	Category(id string) (*ledger.CategorySummary, error)
	Transactions(filter TransactionFilter) ([]ledger.AnnotatedTransaction, error)
}

// ReminderPatch lists the reminder fields an update may change.
type ReminderPatch struct {
	Text   *string
	DueAt  nullable.Field[time.Time]
	Status *models.ReminderStatus
}

// PendingReminderSource is the part of the reminder store the dashboard
// depends on.
type PendingReminderSource interface {
	CountPending() (int64, error)
	ListPending() ([]models.Reminder, error)
}

// ReminderServicer defines the contract for reminder business logic.
type ReminderServicer interface {
	PendingReminderSource
	CreateReminder(text string, dueAt *time.Time) (*models.Reminder, error)
	ListReminders(status *models.ReminderStatus, page pagination.PageRequest) (*pagination.PageResponse[models.Reminder], error)
	GetReminderByID(id string) (*models.Reminder, error)
	UpdateReminder(id string, patch ReminderPatch) (*models.Reminder, error)
	DeleteReminder(id string) error
}

// DaySummary is the spend of one day inside a week view.
type DaySummary struct {
	Date                models.Date `json:"date"`
	TotalSpent          float64     `json:"total_spent"`
	TotalWithInvoice    float64     `json:"total_with_invoice"`
	TotalWithoutInvoice float64     `json:"total_without_invoice"`
	TransactionCount    int         `json:"transaction_count"`
}

// TodayView is the dashboard for a single day.
type TodayView struct {
	Date                models.Date                   `json:"date"`
	TotalSpent          float64                       `json:"total_spent"`
	TotalWithInvoice    float64                       `json:"total_with_invoice"`
	TotalWithoutInvoice float64                       `json:"total_without_invoice"`
	Transactions        []ledger.AnnotatedTransaction `json:"transactions"`
	PendingReminders    int64                         `json:"pending_reminders"`
	Reminders           []models.Reminder             `json:"reminders"`
	RecentTransactions  []ledger.AnnotatedTransaction `json:"recent_transactions"`
}

// WeekView is the dashboard for the Monday..Sunday week containing a day.
type WeekView struct {
	StartOfWeek         models.Date                   `json:"start_of_week"`
	EndOfWeek           models.Date                   `json:"end_of_week"`
	TotalSpent          float64                       `json:"total_spent"`
	TotalWithInvoice    float64                       `json:"total_with_invoice"`
	TotalWithoutInvoice float64                       `json:"total_without_invoice"`
	Days                []DaySummary                  `json:"days"`
	Transactions        []ledger.AnnotatedTransaction `json:"transactions"`
}

// CategoryOverview is one row of the overview's per-category breakdown.
type CategoryOverview struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Budgeted    *float64 `json:"budgeted"`
	Spent       float64  `json:"spent"`
	Invoiced    float64  `json:"invoiced"`
	NotInvoiced float64  `json:"not_invoiced"`
	Articles    int      `json:"articles"`
}

// OverviewView is the whole-project dashboard.
type OverviewView struct {
	TotalBudgeted      float64                       `json:"total_budgeted"`
	TotalSpent         float64                       `json:"total_spent"`
	TotalInvoiced      float64                       `json:"total_invoiced"`
	TotalNotInvoiced   float64                       `json:"total_not_invoiced"`
	PendingReminders   int64                         `json:"pending_reminders"`
	Categories         []CategoryOverview            `json:"categories"`
	RecentTransactions []ledger.AnnotatedTransaction `json:"recent_transactions"`
}

// DashboardServicer composes the dashboard views. A nil day means today in
// the service's configured location.
type DashboardServicer interface {
	Today(day *models.Date) (*TodayView, error)
	Week(day *models.Date) (*WeekView, error)
	Overview() (*OverviewView, error)
}
