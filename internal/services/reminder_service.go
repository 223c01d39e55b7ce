package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "reconstruction/internal/errors"
	"reconstruction/internal/models"
	"reconstruction/internal/pagination"
)

// reminderService handles reminder business logic.
type reminderService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewReminderService creates a new ReminderServicer.
func NewReminderService(db *gorm.DB) ReminderServicer {
	return &reminderService{db: db, now: time.Now}
}

// CreateReminder creates a pending reminder.
func (s *reminderService) CreateReminder(text string, dueAt *time.Time) (*models.Reminder, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "reminder text is required")
	}

	reminder := &models.Reminder{
		Text:   text,
		DueAt:  dueAt,
		Status: models.ReminderStatusPending,
	}
	if err := s.db.Create(reminder).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return reminder, nil
}

// ListReminders retrieves a page of reminders, optionally with one status.
func (s *reminderService) ListReminders(status *models.ReminderStatus, page pagination.PageRequest) (*pagination.PageResponse[models.Reminder], error) {
	query := s.db.Model(&models.Reminder{})
	if status != nil {
		if !status.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown reminder status")
		}
		query = query.Where("status = ?", *status)
	}

	result, err := pagination.Find[models.Reminder](query, page, "created_at ASC, id ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &result, nil
}

// GetReminderByID retrieves a reminder by ID.
func (s *reminderService) GetReminderByID(id string) (*models.Reminder, error) {
	return findByID[models.Reminder](s.db, id, apperrors.ErrReminderNotFound)
}

// UpdateReminder applies the supplied fields of patch. Marking a reminder
// done stamps completed_at; any other status clears it.
func (s *reminderService) UpdateReminder(id string, patch ReminderPatch) (*models.Reminder, error) {
	var reminder *models.Reminder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		reminder, err = findByID[models.Reminder](tx, id, apperrors.ErrReminderNotFound)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if patch.Text != nil {
			text := strings.TrimSpace(*patch.Text)
			if text == "" {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "reminder text cannot be empty")
			}
			updates["text"] = text
		}
		setNullable(updates, "due_at", patch.DueAt)
		if patch.Status != nil {
			if !patch.Status.Valid() {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown reminder status")
			}
			updates["status"] = *patch.Status
			if *patch.Status == models.ReminderStatusDone {
				updates["completed_at"] = s.now()
			} else {
				updates["completed_at"] = nil
			}
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(reminder).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		reminder, err = findByID[models.Reminder](tx, id, apperrors.ErrReminderNotFound)
		return err
	})
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

// DeleteReminder removes a reminder.
func (s *reminderService) DeleteReminder(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.Reminder](tx, id, apperrors.ErrReminderNotFound); err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&models.Reminder{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// CountPending returns the number of pending reminders.
func (s *reminderService) CountPending() (int64, error) {
	return countWhere(s.db, &models.Reminder{}, "status = ?", models.ReminderStatusPending)
}

// ListPending returns all pending reminders, earliest due first; reminders
// without a due date come last.
func (s *reminderService) ListPending() ([]models.Reminder, error) {
	reminders := []models.Reminder{}
	if err := s.db.Where("status = ?", models.ReminderStatusPending).
		Order("due_at IS NULL, due_at ASC, created_at ASC").
		Find(&reminders).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return reminders, nil
}
