package services

import (
	"testing"
	"time"

	"reconstruction/internal/models"
	"reconstruction/internal/nullable"
	"reconstruction/internal/pagination"
	"reconstruction/internal/testutil"
)

func TestCreateArticle(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewArticleService(db)
		cat := testutil.CreateTestCategory(t, db)

		art, err := svc.CreateArticle(cat.ID, "Service Drop", ptr(850.0), ptr("main line"))
		testutil.AssertNoError(t, err)

		if art.CategoryID != cat.ID {
			t.Errorf("expected category %s, got %s", cat.ID, art.CategoryID)
		}
		if art.BudgetedAmount == nil || *art.BudgetedAmount != 850 {
			t.Errorf("expected budgeted amount 850, got %v", art.BudgetedAmount)
		}
	})

	t.Run("names_need_not_be_unique", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewArticleService(db)
		cat := testutil.CreateTestCategory(t, db)

		_, err := svc.CreateArticle(cat.ID, "Labour", nil, nil)
		testutil.AssertNoError(t, err)
		_, err = svc.CreateArticle(cat.ID, "Labour", nil, nil)
		testutil.AssertNoError(t, err)
	})

	t.Run("unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewArticleService(db)

		_, err := svc.CreateArticle("missing", "Orphan", nil, nil)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
		testutil.AssertRowCount(t, db, "cost_articles", 0)
	})

	t.Run("blank_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewArticleService(db)
		cat := testutil.CreateTestCategory(t, db)

		_, err := svc.CreateArticle(cat.ID, "", nil, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListArticles(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewArticleService(db)

	first := testutil.CreateTestCategory(t, db)
	second := testutil.CreateTestCategory(t, db)
	a1 := testutil.CreateTestArticle(t, db, first.ID)
	time.Sleep(2 * time.Millisecond)
	a2 := testutil.CreateTestArticle(t, db, first.ID)
	testutil.CreateTestArticle(t, db, second.ID)

	all, err := svc.ListArticles(ArticleFilter{}, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if all.TotalItems != 3 {
		t.Errorf("expected 3 articles, got %d", all.TotalItems)
	}

	filtered, err := svc.ListArticles(ArticleFilter{CategoryID: &first.ID}, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if len(filtered.Data) != 2 || filtered.Data[0].ID != a1.ID || filtered.Data[1].ID != a2.ID {
		t.Errorf("expected [%s %s], got %+v", a1.ID, a2.ID, filtered.Data)
	}

	none, err := svc.ListArticles(ArticleFilter{CategoryID: ptr("missing")}, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if len(none.Data) != 0 {
		t.Errorf("expected no articles, got %d", len(none.Data))
	}
}

func TestUpdateArticle(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewArticleService(db)
		cat := testutil.CreateTestCategory(t, db)

		art, err := svc.CreateArticle(cat.ID, "Panel", ptr(400.0), nil)
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateArticle(art.ID, ArticlePatch{Notes: nullable.Of("upgrade to 200A")})
		testutil.AssertNoError(t, err)

		if updated.Notes == nil || *updated.Notes != "upgrade to 200A" {
			t.Errorf("expected notes to be set, got %v", updated.Notes)
		}
		if updated.Name != "Panel" || *updated.BudgetedAmount != 400 || updated.CategoryID != cat.ID {
			t.Errorf("untouched fields changed: %+v", updated)
		}
	})

	t.Run("blank_notes_clear_the_field", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewArticleService(db)
		cat := testutil.CreateTestCategory(t, db)

		art, err := svc.CreateArticle(cat.ID, "Panel", nil, ptr("old"))
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateArticle(art.ID, ArticlePatch{Notes: nullable.Of("")})
		testutil.AssertNoError(t, err)
		if updated.Notes != nil {
			t.Errorf("expected notes cleared, got %q", *updated.Notes)
		}
	})

	t.Run("null_clears_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewArticleService(db)
		cat := testutil.CreateTestCategory(t, db)

		art, err := svc.CreateArticle(cat.ID, "Panel", ptr(400.0), ptr("keep"))
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateArticle(art.ID, ArticlePatch{BudgetedAmount: nullable.Null[float64]()})
		testutil.AssertNoError(t, err)
		if updated.BudgetedAmount != nil {
			t.Errorf("expected budget cleared, got %v", *updated.BudgetedAmount)
		}
		if updated.Notes == nil || *updated.Notes != "keep" {
			t.Errorf("absent notes must stay untouched, got %v", updated.Notes)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := NewArticleService(db).UpdateArticle("missing", ArticlePatch{Name: ptr("x")})
		testutil.AssertAppError(t, err, "ARTICLE_NOT_FOUND")
	})
}

func TestDeleteArticle(t *testing.T) {
	t.Run("with_transactions_is_blocked", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewArticleService(db)
		cat := testutil.CreateTestCategory(t, db)
		art := testutil.CreateTestArticle(t, db, cat.ID)
		testutil.CreateTestTransaction(t, db, art.ID, models.NewDate(2025, 1, 1), 10, false)

		err := svc.DeleteArticle(art.ID)
		testutil.AssertAppError(t, err, "ARTICLE_HAS_TRANSACTIONS")
		testutil.AssertRowCount(t, db, "cost_articles", 1)
		testutil.AssertRowCount(t, db, "cost_transactions", 1)
	})

	t.Run("empty_article", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewArticleService(db)
		cat := testutil.CreateTestCategory(t, db)
		art := testutil.CreateTestArticle(t, db, cat.ID)

		testutil.AssertNoError(t, svc.DeleteArticle(art.ID))
		testutil.AssertRowCount(t, db, "cost_articles", 0)

		// The category is now empty and may go too.
		testutil.AssertNoError(t, NewCategoryService(db).DeleteCategory(cat.ID))
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		err := NewArticleService(db).DeleteArticle("missing")
		testutil.AssertAppError(t, err, "ARTICLE_NOT_FOUND")
	})
}
