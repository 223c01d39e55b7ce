package ledger

import (
	"github.com/shopspring/decimal"

	"reconstruction/internal/models"
)

// Snapshot is a read-only copy of the ledger. Slices are expected in
// insertion order; aggregation preserves that order.
type Snapshot struct {
	Categories   []models.CostCategory
	Articles     []models.CostArticle
	Transactions []models.CostTransaction
}

// index groups children under their parents by foreign key.
type index struct {
	articlesByCategory map[string][]models.CostArticle
	txnsByArticle      map[string][]models.CostTransaction
	articles           map[string]models.CostArticle
	categories         map[string]models.CostCategory
}

func (s Snapshot) index() index {
	idx := index{
		articlesByCategory: make(map[string][]models.CostArticle),
		txnsByArticle:      make(map[string][]models.CostTransaction),
		articles:           make(map[string]models.CostArticle, len(s.Articles)),
		categories:         make(map[string]models.CostCategory, len(s.Categories)),
	}
	for _, c := range s.Categories {
		idx.categories[c.ID] = c
	}
	for _, a := range s.Articles {
		idx.articles[a.ID] = a
		idx.articlesByCategory[a.CategoryID] = append(idx.articlesByCategory[a.CategoryID], a)
	}
	for _, t := range s.Transactions {
		idx.txnsByArticle[t.ArticleID] = append(idx.txnsByArticle[t.ArticleID], t)
	}
	return idx
}

// Amount converts a stored amount to a decimal using its shortest exact
// representation, so 0.1 becomes exactly 0.1.
func Amount(t models.CostTransaction) decimal.Decimal {
	return decimal.NewFromFloat(t.Amount)
}

// Sum adds up the amounts of txns.
func Sum(txns []models.CostTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(Amount(t))
	}
	return total
}

// InvoiceSplit partitions spend into invoiced and non-invoiced amounts.
type InvoiceSplit struct {
	WithInvoice    decimal.Decimal
	WithoutInvoice decimal.Decimal
}

// SplitInvoices partitions txns by their invoice flag.
func SplitInvoices(txns []models.CostTransaction) InvoiceSplit {
	split := InvoiceSplit{WithInvoice: decimal.Zero, WithoutInvoice: decimal.Zero}
	for _, t := range txns {
		if t.HasInvoice {
			split.WithInvoice = split.WithInvoice.Add(Amount(t))
		} else {
			split.WithoutInvoice = split.WithoutInvoice.Add(Amount(t))
		}
	}
	return split
}

// Add returns the element-wise sum of two splits.
func (s InvoiceSplit) Add(o InvoiceSplit) InvoiceSplit {
	return InvoiceSplit{
		WithInvoice:    s.WithInvoice.Add(o.WithInvoice),
		WithoutInvoice: s.WithoutInvoice.Add(o.WithoutInvoice),
	}
}

// Total is the amount covered by the split.
func (s InvoiceSplit) Total() decimal.Decimal {
	return s.WithInvoice.Add(s.WithoutInvoice)
}
