package ledger

import (
	"sort"

	"reconstruction/internal/models"
)

// Filter selects transactions. Nil fields match everything; From and To
// are inclusive.
type Filter struct {
	ArticleID  *string
	CategoryID *string
	From       *models.Date
	To         *models.Date
}

// Filter returns the snapshot transactions matching f, in snapshot order.
func (s Snapshot) Filter(f Filter) []models.CostTransaction {
	var articleCategory map[string]string
	if f.CategoryID != nil {
		articleCategory = make(map[string]string, len(s.Articles))
		for _, a := range s.Articles {
			articleCategory[a.ID] = a.CategoryID
		}
	}

	out := make([]models.CostTransaction, 0)
	for _, t := range s.Transactions {
		if f.ArticleID != nil && t.ArticleID != *f.ArticleID {
			continue
		}
		if f.CategoryID != nil && articleCategory[t.ArticleID] != *f.CategoryID {
			continue
		}
		if f.From != nil && t.TransactionDate.Before(*f.From) {
			continue
		}
		if f.To != nil && t.TransactionDate.After(*f.To) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Between returns the transactions dated within [from, to].
func Between(txns []models.CostTransaction, from, to models.Date) []models.CostTransaction {
	out := make([]models.CostTransaction, 0)
	for _, t := range txns {
		if t.TransactionDate.Before(from) || t.TransactionDate.After(to) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// On returns the transactions dated day.
func On(txns []models.CostTransaction, day models.Date) []models.CostTransaction {
	return Between(txns, day, day)
}

// MostRecent returns up to n transactions ordered by creation time, newest
// first. Ties fall back to the id, which is time ordered as well.
func MostRecent(txns []models.CostTransaction, n int) []models.CostTransaction {
	sorted := make([]models.CostTransaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].ID > sorted[j].ID
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// SortByDate returns a copy of txns ordered by transaction date, oldest
// first, then by creation time.
func SortByDate(txns []models.CostTransaction) []models.CostTransaction {
	sorted := make([]models.CostTransaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.TransactionDate.Equal(b.TransactionDate) {
			return a.TransactionDate.Before(b.TransactionDate)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return sorted
}

// AnnotatedTransaction is a transaction joined with the names of its article
// and category, for display.
type AnnotatedTransaction struct {
	models.CostTransaction
	ArticleName  string `json:"article"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category"`
}

// Annotate joins each transaction with its article and category names.
// Transactions whose article is missing from the snapshot keep empty names.
func (s Snapshot) Annotate(txns []models.CostTransaction) []AnnotatedTransaction {
	idx := s.index()
	out := make([]AnnotatedTransaction, 0, len(txns))
	for _, t := range txns {
		at := AnnotatedTransaction{CostTransaction: t}
		if a, ok := idx.articles[t.ArticleID]; ok {
			at.ArticleName = a.Name
			at.CategoryID = a.CategoryID
			if c, ok := idx.categories[a.CategoryID]; ok {
				at.CategoryName = c.Name
			}
		}
		out = append(out, at)
	}
	return out
}
