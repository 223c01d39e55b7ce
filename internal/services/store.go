package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "reconstruction/internal/errors"
	"reconstruction/internal/nullable"
)

// findByID loads the row with the given id into a new T. A missing row is
// reported as notFound; any other failure as an internal error.
func findByID[T any](db *gorm.DB, id string, notFound *apperrors.AppError) (*T, error) {
	var out T
	if err := db.Where("id = ?", id).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &out, nil
}

// countWhere counts rows of model matching query.
func countWhere(db *gorm.DB, model interface{}, query string, args ...interface{}) (int64, error) {
	var count int64
	if err := db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count, nil
}

// requireName trims name and rejects it when blank.
func requireName(name, what string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, what+" name is required")
	}
	return name, nil
}

// setNullable records a present field in updates. A null field clears the
// column.
func setNullable[T any](updates map[string]interface{}, column string, f nullable.Field[T]) {
	if !f.Present {
		return
	}
	if f.Value == nil {
		updates[column] = nil
		return
	}
	updates[column] = *f.Value
}

// setNullableText is setNullable for free text. Blank text also clears the
// column.
func setNullableText(updates map[string]interface{}, column string, f nullable.Field[string]) {
	if f.Present {
		updates[column] = trimOptional(f.Value)
	}
}

// trimOptional trims an optional free-text field. Blank text is stored as NULL.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
