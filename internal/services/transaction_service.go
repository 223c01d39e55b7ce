package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "reconstruction/internal/errors"
	"reconstruction/internal/models"
	"reconstruction/internal/pagination"
)

// transactionService handles cost-transaction business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction records a payment against an existing article.
func (s *transactionService) CreateTransaction(in NewTransaction) (*models.CostTransaction, error) {
	if in.Amount == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount is required")
	}
	method := strings.TrimSpace(in.PaymentMethod)
	if method == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "payment method is required")
	}
	if in.TransactionDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction date is required")
	}

	txn := &models.CostTransaction{
		ArticleID:       in.ArticleID,
		TransactionDate: in.TransactionDate,
		PhaseNumber:     in.PhaseNumber,
		PaymentMethod:   method,
		Amount:          *in.Amount,
		HasInvoice:      in.HasInvoice,
		Notes:           trimOptional(in.Notes),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.CostArticle](tx, in.ArticleID, apperrors.ErrArticleNotFound); err != nil {
			return err
		}
		if err := tx.Create(txn).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// ListTransactions retrieves a page of transactions, newest date first.
func (s *transactionService) ListTransactions(filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.CostTransaction], error) {
	if err := validateRange(filter); err != nil {
		return nil, err
	}

	query := applyTransactionFilters(s.db.Model(&models.CostTransaction{}), filter)
	result, err := pagination.Find[models.CostTransaction](query, page,
		"cost_transactions.transaction_date DESC, cost_transactions.created_at DESC, cost_transactions.id DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &result, nil
}

// GetTransactionByID retrieves a transaction by ID.
func (s *transactionService) GetTransactionByID(id string) (*models.CostTransaction, error) {
	return findByID[models.CostTransaction](s.db, id, apperrors.ErrTransactionNotFound)
}

// UpdateTransaction applies the supplied fields of patch. Moving the
// transaction to another article requires that article to exist.
func (s *transactionService) UpdateTransaction(id string, patch TransactionPatch) (*models.CostTransaction, error) {
	var txn *models.CostTransaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		txn, err = findByID[models.CostTransaction](tx, id, apperrors.ErrTransactionNotFound)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if patch.ArticleID != nil && *patch.ArticleID != txn.ArticleID {
			if _, err := findByID[models.CostArticle](tx, *patch.ArticleID, apperrors.ErrArticleNotFound); err != nil {
				return err
			}
			updates["article_id"] = *patch.ArticleID
		}
		if patch.TransactionDate != nil {
			if patch.TransactionDate.IsZero() {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction date cannot be empty")
			}
			updates["transaction_date"] = *patch.TransactionDate
		}
		setNullable(updates, "phase_number", patch.PhaseNumber)
		if patch.PaymentMethod != nil {
			method := strings.TrimSpace(*patch.PaymentMethod)
			if method == "" {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "payment method cannot be empty")
			}
			updates["payment_method"] = method
		}
		if patch.Amount != nil {
			updates["amount"] = *patch.Amount
		}
		if patch.HasInvoice != nil {
			updates["has_invoice"] = *patch.HasInvoice
		}
		setNullableText(updates, "notes", patch.Notes)
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(txn).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		txn, err = findByID[models.CostTransaction](tx, id, apperrors.ErrTransactionNotFound)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// DeleteTransaction removes a transaction.
func (s *transactionService) DeleteTransaction(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.CostTransaction](tx, id, apperrors.ErrTransactionNotFound); err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&models.CostTransaction{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// validateRange rejects a date range whose start is after its end.
func validateRange(filter TransactionFilter) error {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "from must not be after to")
	}
	return nil
}

// applyTransactionFilters adds WHERE clauses for the non-nil filter fields.
// Dates compare as YYYY-MM-DD text, so both bounds are inclusive.
func applyTransactionFilters(query *gorm.DB, filter TransactionFilter) *gorm.DB {
	if filter.ArticleID != nil {
		query = query.Where("cost_transactions.article_id = ?", *filter.ArticleID)
	}
	if filter.CategoryID != nil {
		query = query.
			Joins("JOIN cost_articles ON cost_articles.id = cost_transactions.article_id").
			Where("cost_articles.category_id = ?", *filter.CategoryID)
	}
	if filter.From != nil {
		query = query.Where("cost_transactions.transaction_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("cost_transactions.transaction_date <= ?", *filter.To)
	}
	return query
}
