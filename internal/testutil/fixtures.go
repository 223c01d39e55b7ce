package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"reconstruction/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a category with a unique name and no budget.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.CostCategory {
	t.Helper()
	return CreateTestCategoryWithBudget(t, db, fmt.Sprintf("Category %d", nextID()), nil)
}

// CreateTestCategoryWithBudget creates a category with the given name and budgeted total.
func CreateTestCategoryWithBudget(t *testing.T, db *gorm.DB, name string, budget *float64) *models.CostCategory {
	t.Helper()

	category := &models.CostCategory{
		Name:          name,
		BudgetedTotal: budget,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestArticle creates an article under the given category.
func CreateTestArticle(t *testing.T, db *gorm.DB, categoryID string) *models.CostArticle {
	t.Helper()

	article := &models.CostArticle{
		CategoryID: categoryID,
		Name:       fmt.Sprintf("Article %d", nextID()),
	}
	if err := db.Create(article).Error; err != nil {
		t.Fatalf("failed to create test article: %v", err)
	}
	return article
}

// CreateTestTransaction creates a cash transaction under the given article.
func CreateTestTransaction(t *testing.T, db *gorm.DB, articleID string, date models.Date, amount float64, hasInvoice bool) *models.CostTransaction {
	t.Helper()

	txn := &models.CostTransaction{
		ArticleID:       articleID,
		TransactionDate: date,
		PaymentMethod:   models.PaymentMethodCash,
		Amount:          amount,
		HasInvoice:      hasInvoice,
	}
	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	// Keep created_at strictly increasing so "most recent" ordering is stable.
	time.Sleep(2 * time.Millisecond)
	return txn
}

// CreateTestReminder creates a reminder with the given status.
func CreateTestReminder(t *testing.T, db *gorm.DB, status models.ReminderStatus) *models.Reminder {
	t.Helper()

	reminder := &models.Reminder{
		Text:   fmt.Sprintf("Reminder %d", nextID()),
		Status: status,
	}
	if status == models.ReminderStatusDone {
		now := time.Now()
		reminder.CompletedAt = &now
	}
	if err := db.Create(reminder).Error; err != nil {
		t.Fatalf("failed to create test reminder: %v", err)
	}
	return reminder
}
