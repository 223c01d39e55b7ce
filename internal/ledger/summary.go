package ledger

import (
	"github.com/shopspring/decimal"

	"reconstruction/internal/models"
)

// ArticleTotals is the spend recorded against one article.
type ArticleTotals struct {
	Article          models.CostArticle
	Spent            decimal.Decimal
	Invoices         InvoiceSplit
	TransactionCount int
}

// CategoryTotals is the spend recorded against one category. BudgetedTotal
// is passed through from the category untouched and may be nil.
type CategoryTotals struct {
	Category         models.CostCategory
	Spent            decimal.Decimal
	Invoices         InvoiceSplit
	ArticleCount     int
	TransactionCount int
	Articles         []ArticleTotals
}

// Totals is the whole-ledger summary.
type Totals struct {
	Budgeted   decimal.Decimal
	Spent      decimal.Decimal
	Invoices   InvoiceSplit
	Categories []CategoryTotals
}

// Summarize folds the snapshot into per-article, per-category and grand
// totals. Categories without a budget contribute zero to Budgeted.
func Summarize(s Snapshot) Totals {
	idx := s.index()

	totals := Totals{
		Budgeted:   decimal.Zero,
		Spent:      decimal.Zero,
		Invoices:   InvoiceSplit{WithInvoice: decimal.Zero, WithoutInvoice: decimal.Zero},
		Categories: make([]CategoryTotals, 0, len(s.Categories)),
	}

	for _, c := range s.Categories {
		ct := summarizeCategory(idx, c)
		totals.Categories = append(totals.Categories, ct)
		totals.Spent = totals.Spent.Add(ct.Spent)
		totals.Invoices = totals.Invoices.Add(ct.Invoices)
		if c.BudgetedTotal != nil {
			totals.Budgeted = totals.Budgeted.Add(decimal.NewFromFloat(*c.BudgetedTotal))
		}
	}

	return totals
}

// SummarizeCategory returns the totals of a single category, or false when
// the category is not part of the snapshot.
func SummarizeCategory(s Snapshot, categoryID string) (CategoryTotals, bool) {
	idx := s.index()
	c, ok := idx.categories[categoryID]
	if !ok {
		return CategoryTotals{}, false
	}
	return summarizeCategory(idx, c), true
}

func summarizeCategory(idx index, c models.CostCategory) CategoryTotals {
	articles := idx.articlesByCategory[c.ID]

	ct := CategoryTotals{
		Category:     c,
		Spent:        decimal.Zero,
		Invoices:     InvoiceSplit{WithInvoice: decimal.Zero, WithoutInvoice: decimal.Zero},
		ArticleCount: len(articles),
		Articles:     make([]ArticleTotals, 0, len(articles)),
	}

	for _, a := range articles {
		txns := idx.txnsByArticle[a.ID]
		at := ArticleTotals{
			Article:          a,
			Spent:            Sum(txns),
			Invoices:         SplitInvoices(txns),
			TransactionCount: len(txns),
		}
		ct.Articles = append(ct.Articles, at)
		ct.Spent = ct.Spent.Add(at.Spent)
		ct.Invoices = ct.Invoices.Add(at.Invoices)
		ct.TransactionCount += at.TransactionCount
	}

	return ct
}
