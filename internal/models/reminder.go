package models

import "time"

// ReminderStatus represents the lifecycle state of a reminder
type ReminderStatus string

const (
	ReminderStatusPending   ReminderStatus = "pending"
	ReminderStatusDone      ReminderStatus = "done"
	ReminderStatusDismissed ReminderStatus = "dismissed"
)

// Valid reports whether s is a known status.
func (s ReminderStatus) Valid() bool {
	switch s {
	case ReminderStatusPending, ReminderStatusDone, ReminderStatusDismissed:
		return true
	}
	return false
}

// Reminder is a to-do item surfaced on the dashboard while pending.
type Reminder struct {
	Base
	Text        string         `gorm:"not null" json:"text"`
	DueAt       *time.Time     `json:"due_at"`
	Status      ReminderStatus `gorm:"not null;index" json:"status"`
	CompletedAt *time.Time     `json:"completed_at"`
}

// TableName overrides the default table name.
func (Reminder) TableName() string { return "reminders" }
