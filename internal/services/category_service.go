package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "reconstruction/internal/errors"
	"reconstruction/internal/models"
	"reconstruction/internal/pagination"
)

// categoryService handles cost-category business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category with a unique name.
func (s *categoryService) CreateCategory(name string, description *string, budgetedTotal *float64) (*models.CostCategory, error) {
	name, err := requireName(name, "category")
	if err != nil {
		return nil, err
	}

	category := &models.CostCategory{
		Name:          name,
		Description:   trimOptional(description),
		BudgetedTotal: budgetedTotal,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureCategoryNameFree(tx, name, ""); err != nil {
			return err
		}
		if err := tx.Create(category).Error; err != nil {
			return categoryWriteError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories retrieves a page of categories in insertion order.
func (s *categoryService) ListCategories(page pagination.PageRequest) (*pagination.PageResponse[models.CostCategory], error) {
	result, err := pagination.Find[models.CostCategory](s.db.Model(&models.CostCategory{}), page, "created_at ASC, id ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &result, nil
}

// GetCategoryByID retrieves a category by ID.
func (s *categoryService) GetCategoryByID(id string) (*models.CostCategory, error) {
	return findByID[models.CostCategory](s.db, id, apperrors.ErrCategoryNotFound)
}

// UpdateCategory applies the supplied fields of patch.
func (s *categoryService) UpdateCategory(id string, patch CategoryPatch) (*models.CostCategory, error) {
	var category *models.CostCategory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		category, err = findByID[models.CostCategory](tx, id, apperrors.ErrCategoryNotFound)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if patch.Name != nil {
			name, err := requireName(*patch.Name, "category")
			if err != nil {
				return err
			}
			if name != category.Name {
				if err := ensureCategoryNameFree(tx, name, id); err != nil {
					return err
				}
			}
			updates["name"] = name
		}
		setNullableText(updates, "description", patch.Description)
		setNullable(updates, "budgeted_total", patch.BudgetedTotal)
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(category).Updates(updates).Error; err != nil {
			return categoryWriteError(err)
		}
		category, err = findByID[models.CostCategory](tx, id, apperrors.ErrCategoryNotFound)
		return err
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category that has no articles left.
func (s *categoryService) DeleteCategory(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.CostCategory](tx, id, apperrors.ErrCategoryNotFound); err != nil {
			return err
		}

		articles, err := countWhere(tx, &models.CostArticle{}, "category_id = ?", id)
		if err != nil {
			return err
		}
		if articles > 0 {
			return apperrors.WithMessage(apperrors.ErrCategoryHasArticles,
				fmt.Sprintf("category still has %d article(s); delete them first", articles))
		}

		if err := tx.Where("id = ?", id).Delete(&models.CostCategory{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// ensureCategoryNameFree fails when another category (other than exceptID)
// already uses name.
func ensureCategoryNameFree(tx *gorm.DB, name, exceptID string) error {
	count, err := countWhere(tx, &models.CostCategory{}, "name = ? AND id <> ?", name, exceptID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category with this name already exists")
	}
	return nil
}

// categoryWriteError maps a unique-index violation that slipped past the
// name check (a concurrent insert) to the same validation error.
func categoryWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category with this name already exists")
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
