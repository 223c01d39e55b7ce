package ledger

import (
	"github.com/shopspring/decimal"
)

// Round converts an accumulated amount to a float rounded to cents.
func Round(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// SplitReport is the rounded form of an InvoiceSplit. Without is derived
// from the rounded total so that With + Without always equals Total.
type SplitReport struct {
	Total   float64
	With    float64
	Without float64
}

// ReportSplit rounds a split against the total it partitions.
func ReportSplit(total decimal.Decimal, s InvoiceSplit) SplitReport {
	return roundSplit(total, s).report()
}

// ArticleSummary is the client-facing form of ArticleTotals.
type ArticleSummary struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	BudgetedAmount      *float64 `json:"budgeted_amount"`
	TotalSpent          float64  `json:"total_spent"`
	TotalWithInvoice    float64  `json:"total_with_invoice"`
	TotalWithoutInvoice float64  `json:"total_without_invoice"`
	TransactionCount    int      `json:"transaction_count"`
}

// CategorySummary is the client-facing form of CategoryTotals.
type CategorySummary struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	BudgetedTotal       *float64         `json:"budgeted_total"`
	TotalSpent          float64          `json:"total_spent"`
	TotalWithInvoice    float64          `json:"total_with_invoice"`
	TotalWithoutInvoice float64          `json:"total_without_invoice"`
	ArticleCount        int              `json:"article_count"`
	TransactionCount    int              `json:"transaction_count"`
	Articles            []ArticleSummary `json:"articles"`
}

// OverallSummary is the client-facing form of Totals.
type OverallSummary struct {
	TotalBudgeted       float64           `json:"total_budgeted"`
	TotalSpent          float64           `json:"total_spent"`
	TotalWithInvoice    float64           `json:"total_with_invoice"`
	TotalWithoutInvoice float64           `json:"total_without_invoice"`
	Categories          []CategorySummary `json:"categories"`
}

// Report rounds the article totals for presentation.
func (a ArticleTotals) Report() ArticleSummary {
	return a.report(roundSplit(a.Spent, a.Invoices))
}

func (a ArticleTotals) report(r roundedSplit) ArticleSummary {
	split := r.report()
	return ArticleSummary{
		ID:                  a.Article.ID,
		Name:                a.Article.Name,
		BudgetedAmount:      a.Article.BudgetedAmount,
		TotalSpent:          split.Total,
		TotalWithInvoice:    split.With,
		TotalWithoutInvoice: split.Without,
		TransactionCount:    a.TransactionCount,
	}
}

// Report rounds the category totals for presentation. The category figures
// are the sums of the rounded article figures.
func (c CategoryTotals) Report() CategorySummary {
	s, _ := c.report()
	return s
}

func (c CategoryTotals) report() (CategorySummary, roundedSplit) {
	sum := roundedSplit{total: decimal.Zero, with: decimal.Zero}
	articles := make([]ArticleSummary, 0, len(c.Articles))
	for _, a := range c.Articles {
		r := roundSplit(a.Spent, a.Invoices)
		sum = sum.add(r)
		articles = append(articles, a.report(r))
	}
	split := sum.report()
	return CategorySummary{
		ID:                  c.Category.ID,
		Name:                c.Category.Name,
		BudgetedTotal:       c.Category.BudgetedTotal,
		TotalSpent:          split.Total,
		TotalWithInvoice:    split.With,
		TotalWithoutInvoice: split.Without,
		ArticleCount:        c.ArticleCount,
		TransactionCount:    c.TransactionCount,
		Articles:            articles,
	}, sum
}

// Report rounds the grand totals for presentation. The grand figures are
// the sums of the rounded category figures.
func (t Totals) Report() OverallSummary {
	sum := roundedSplit{total: decimal.Zero, with: decimal.Zero}
	categories := make([]CategorySummary, 0, len(t.Categories))
	for _, c := range t.Categories {
		cs, r := c.report()
		sum = sum.add(r)
		categories = append(categories, cs)
	}
	split := sum.report()
	return OverallSummary{
		TotalBudgeted:       Round(t.Budgeted),
		TotalSpent:          split.Total,
		TotalWithInvoice:    split.With,
		TotalWithoutInvoice: split.Without,
		Categories:          categories,
	}
}

// roundedSplit holds a total and its invoiced part already rounded to cents.
type roundedSplit struct {
	total decimal.Decimal
	with  decimal.Decimal
}

func roundSplit(total decimal.Decimal, s InvoiceSplit) roundedSplit {
	return roundedSplit{total: total.Round(2), with: s.WithInvoice.Round(2)}
}

func (r roundedSplit) add(o roundedSplit) roundedSplit {
	return roundedSplit{total: r.total.Add(o.total), with: r.with.Add(o.with)}
}

func (r roundedSplit) report() SplitReport {
	return SplitReport{
		Total:   r.total.InexactFloat64(),
		With:    r.with.InexactFloat64(),
		Without: r.total.Sub(r.with).InexactFloat64(),
	}
}
