package services

import (
	"gorm.io/gorm"

	apperrors "reconstruction/internal/errors"
	"reconstruction/internal/ledger"
)

// summaryService loads ledger snapshots and runs the aggregation engine over
// them. Nothing is cached; every call reads the store again.
type summaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db}
}

// Overall returns the grand summary with every category in insertion order.
func (s *summaryService) Overall() (*ledger.OverallSummary, error) {
	snap, err := loadSnapshot(s.db)
	if err != nil {
		return nil, err
	}
	report := ledger.Summarize(snap).Report()
	return &report, nil
}

// Category returns the summary of one category.
func (s *summaryService) Category(id string) (*ledger.CategorySummary, error) {
	snap, err := loadSnapshot(s.db)
	if err != nil {
		return nil, err
	}
	totals, ok := ledger.SummarizeCategory(snap, id)
	if !ok {
		return nil, apperrors.ErrCategoryNotFound
	}
	report := totals.Report()
	return &report, nil
}

// Transactions returns every transaction matching filter, annotated with
// article and category names, oldest first.
func (s *summaryService) Transactions(filter TransactionFilter) ([]ledger.AnnotatedTransaction, error) {
	if err := validateRange(filter); err != nil {
		return nil, err
	}
	snap, err := loadSnapshot(s.db)
	if err != nil {
		return nil, err
	}
	txns := snap.Filter(ledger.Filter{
		ArticleID:  filter.ArticleID,
		CategoryID: filter.CategoryID,
		From:       filter.From,
		To:         filter.To,
	})
	return snap.Annotate(ledger.SortByDate(txns)), nil
}

// loadSnapshot reads the three ledger tables inside one transaction, each in
// insertion order.
func loadSnapshot(db *gorm.DB) (ledger.Snapshot, error) {
	var snap ledger.Snapshot
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("created_at ASC, id ASC").Find(&snap.Categories).Error; err != nil {
			return err
		}
		if err := tx.Order("created_at ASC, id ASC").Find(&snap.Articles).Error; err != nil {
			return err
		}
		return tx.Order("created_at ASC, id ASC").Find(&snap.Transactions).Error
	})
	if err != nil {
		return ledger.Snapshot{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snap, nil
}
