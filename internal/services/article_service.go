package services

import (
	"fmt"

	"gorm.io/gorm"

	apperrors "reconstruction/internal/errors"
	"reconstruction/internal/models"
	"reconstruction/internal/pagination"
)

// articleService handles cost-article business logic.
type articleService struct {
	db *gorm.DB
}

// NewArticleService creates a new ArticleServicer.
func NewArticleService(db *gorm.DB) ArticleServicer {
	return &articleService{db: db}
}

// CreateArticle creates a budget line under an existing category.
func (s *articleService) CreateArticle(categoryID, name string, budgetedAmount *float64, notes *string) (*models.CostArticle, error) {
	name, err := requireName(name, "article")
	if err != nil {
		return nil, err
	}

	article := &models.CostArticle{
		CategoryID:     categoryID,
		Name:           name,
		BudgetedAmount: budgetedAmount,
		Notes:          trimOptional(notes),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.CostCategory](tx, categoryID, apperrors.ErrCategoryNotFound); err != nil {
			return err
		}
		if err := tx.Create(article).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return article, nil
}

// ListArticles retrieves a page of articles in insertion order, optionally
// restricted to one category. An unknown category yields an empty page.
func (s *articleService) ListArticles(filter ArticleFilter, page pagination.PageRequest) (*pagination.PageResponse[models.CostArticle], error) {
	query := s.db.Model(&models.CostArticle{})
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	result, err := pagination.Find[models.CostArticle](query, page, "created_at ASC, id ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &result, nil
}

// GetArticleByID retrieves an article by ID.
func (s *articleService) GetArticleByID(id string) (*models.CostArticle, error) {
	return findByID[models.CostArticle](s.db, id, apperrors.ErrArticleNotFound)
}

// UpdateArticle applies the supplied fields of patch.
func (s *articleService) UpdateArticle(id string, patch ArticlePatch) (*models.CostArticle, error) {
	var article *models.CostArticle
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		article, err = findByID[models.CostArticle](tx, id, apperrors.ErrArticleNotFound)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if patch.Name != nil {
			name, err := requireName(*patch.Name, "article")
			if err != nil {
				return err
			}
			updates["name"] = name
		}
		setNullable(updates, "budgeted_amount", patch.BudgetedAmount)
		setNullableText(updates, "notes", patch.Notes)
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(article).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		article, err = findByID[models.CostArticle](tx, id, apperrors.ErrArticleNotFound)
		return err
	})
	if err != nil {
		return nil, err
	}
	return article, nil
}

// DeleteArticle removes an article that has no transactions left.
func (s *articleService) DeleteArticle(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.CostArticle](tx, id, apperrors.ErrArticleNotFound); err != nil {
			return err
		}

		txns, err := countWhere(tx, &models.CostTransaction{}, "article_id = ?", id)
		if err != nil {
			return err
		}
		if txns > 0 {
			return apperrors.WithMessage(apperrors.ErrArticleHasTransactions,
				fmt.Sprintf("article still has %d transaction(s); delete them first", txns))
		}

		if err := tx.Where("id = ?", id).Delete(&models.CostArticle{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
