package services

import (
	"math"
	"testing"
	"time"

	"reconstruction/internal/models"
	"reconstruction/internal/testutil"
)

func TestSummaryRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	categories := NewCategoryService(db)
	articles := NewArticleService(db)
	txns := NewTransactionService(db)
	summary := NewSummaryService(db)

	cat, err := categories.CreateCategory("Electrician", nil, ptr(850.0))
	testutil.AssertNoError(t, err)
	art, err := articles.CreateArticle(cat.ID, "Service Drop", ptr(850.0), nil)
	testutil.AssertNoError(t, err)
	_, err = txns.CreateTransaction(NewTransaction{
		ArticleID:       art.ID,
		TransactionDate: models.NewDate(2025, time.January, 1),
		PaymentMethod:   models.PaymentMethodCash,
		Amount:          ptr(850.0),
		HasInvoice:      false,
	})
	testutil.AssertNoError(t, err)

	overall, err := summary.Overall()
	testutil.AssertNoError(t, err)

	if len(overall.Categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(overall.Categories))
	}
	c := overall.Categories[0]
	if c.TotalSpent != 850 || c.TotalWithInvoice != 0 || c.TotalWithoutInvoice != 850 || c.TransactionCount != 1 {
		t.Errorf("unexpected category summary %+v", c)
	}
	if overall.TotalBudgeted != 850 || overall.TotalSpent != 850 {
		t.Errorf("unexpected grand totals %+v", overall)
	}

	one, err := summary.Category(cat.ID)
	testutil.AssertNoError(t, err)
	if one.ArticleCount != 1 || len(one.Articles) != 1 || one.Articles[0].TotalSpent != 850 {
		t.Errorf("unexpected single category summary %+v", one)
	}
}

func TestSummaryInvariants(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	summary := NewSummaryService(db)

	budgeted := testutil.CreateTestCategoryWithBudget(t, db, "Builder", ptr(10000.0))
	unbudgeted := testutil.CreateTestCategoryWithBudget(t, db, "Misc", nil)
	a := testutil.CreateTestArticle(t, db, budgeted.ID)
	b := testutil.CreateTestArticle(t, db, unbudgeted.ID)

	day := models.NewDate(2025, time.February, 1)
	for i := 0; i < 10; i++ {
		testutil.CreateTestTransaction(t, db, a.ID, day, 0.1, i%2 == 0)
	}
	testutil.CreateTestTransaction(t, db, b.ID, day, 19.99, true)
	testutil.CreateTestTransaction(t, db, b.ID, day, 5.01, false)

	overall, err := summary.Overall()
	testutil.AssertNoError(t, err)

	if overall.TotalBudgeted != 10000 {
		t.Errorf("categories without a budget must count as zero, got %v", overall.TotalBudgeted)
	}
	if overall.TotalSpent != 26 {
		t.Errorf("expected exact total 26, got %v", overall.TotalSpent)
	}

	var spent float64
	for _, c := range overall.Categories {
		if math.Abs(c.TotalWithInvoice+c.TotalWithoutInvoice-c.TotalSpent) > 1e-9 {
			t.Errorf("%s: with %v + without %v != spent %v", c.Name, c.TotalWithInvoice, c.TotalWithoutInvoice, c.TotalSpent)
		}
		spent += c.TotalSpent
	}
	if spent != overall.TotalSpent {
		t.Errorf("sum of categories %v != grand total %v", spent, overall.TotalSpent)
	}
	if overall.Categories[0].Name != "Builder" || overall.Categories[1].Name != "Misc" {
		t.Errorf("expected insertion order, got %s, %s", overall.Categories[0].Name, overall.Categories[1].Name)
	}
}

func TestSummarySubCentCategoriesAddUp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	day := models.NewDate(2025, time.March, 1)
	for _, name := range []string{"Tiles", "Paint", "Doors"} {
		c := testutil.CreateTestCategoryWithBudget(t, db, name, nil)
		a := testutil.CreateTestArticle(t, db, c.ID)
		testutil.CreateTestTransaction(t, db, a.ID, day, 0.005, true)
	}

	overall, err := NewSummaryService(db).Overall()
	testutil.AssertNoError(t, err)

	var spent, invoiced float64
	for _, c := range overall.Categories {
		spent += c.TotalSpent
		invoiced += c.TotalWithInvoice
	}
	if overall.TotalSpent != 0.03 || overall.TotalWithInvoice != 0.03 || overall.TotalWithoutInvoice != 0 {
		t.Errorf("unexpected grand totals %+v", overall)
	}
	if math.Abs(spent-overall.TotalSpent) > 1e-9 || math.Abs(invoiced-overall.TotalWithInvoice) > 1e-9 {
		t.Errorf("categories sum to %v/%v, grand totals are %v/%v", spent, invoiced, overall.TotalSpent, overall.TotalWithInvoice)
	}

	view, err := NewDashboardService(db, &stubReminders{}, fixedClock, time.UTC).Overview()
	testutil.AssertNoError(t, err)
	if view.TotalSpent != overall.TotalSpent || view.TotalInvoiced != overall.TotalWithInvoice {
		t.Errorf("overview %+v disagrees with summary %+v", view, overall)
	}
	for _, c := range view.Categories {
		if c.Spent != 0.01 || c.Invoiced != 0.01 || c.NotInvoiced != 0 {
			t.Errorf("unexpected overview row %+v", c)
		}
	}
}

func TestSummaryCategoryNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	_, err := NewSummaryService(db).Category("missing")
	testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
}

func TestSummaryTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	summary := NewSummaryService(db)

	cat := testutil.CreateTestCategoryWithBudget(t, db, "Electrician", nil)
	art := testutil.CreateTestArticle(t, db, cat.ID)
	testutil.CreateTestTransaction(t, db, art.ID, models.NewDate(2025, 3, 2), 20, false)
	testutil.CreateTestTransaction(t, db, art.ID, models.NewDate(2025, 3, 1), 10, true)

	rows, err := summary.Transactions(TransactionFilter{CategoryID: &cat.ID})
	testutil.AssertNoError(t, err)

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].TransactionDate.String() != "2025-03-01" {
		t.Errorf("expected oldest first, got %s", rows[0].TransactionDate)
	}
	if rows[0].CategoryName != "Electrician" || rows[0].ArticleName != art.Name {
		t.Errorf("expected names to be joined, got %+v", rows[0])
	}

	from := models.NewDate(2025, 3, 2)
	to := models.NewDate(2025, 3, 1)
	_, err = summary.Transactions(TransactionFilter{From: &from, To: &to})
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}
