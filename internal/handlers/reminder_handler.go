package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "reconstruction/internal/errors"
	"reconstruction/internal/models"
	"reconstruction/internal/nullable"
	"reconstruction/internal/pagination"
	"reconstruction/internal/services"
)

// ReminderHandler handles reminder requests.
type ReminderHandler struct {
	reminderService services.ReminderServicer
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService services.ReminderServicer) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// CreateReminderRequest represents the request payload for creating a reminder.
type CreateReminderRequest struct {
	Text  string     `json:"text" binding:"required,notblank,max=500"`
	DueAt *time.Time `json:"due_at"`
}

// UpdateReminderRequest represents the request payload for updating a reminder.
type UpdateReminderRequest struct {
	Text   *string                   `json:"text" binding:"omitempty,notblank,max=500"`
	DueAt  nullable.Field[time.Time] `json:"due_at" swaggertype:"string" format:"date-time"`
	Status *models.ReminderStatus    `json:"status" binding:"omitempty,reminder_status" enums:"pending,done,dismissed"`
}

// CreateReminder handles the creation of a new reminder.
// @Summary     Create a reminder
// @Tags        reminders
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body CreateReminderRequest true "Reminder details"
// @Success     201 {object} models.Reminder "Reminder created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reminders [post]
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	reminder, err := h.reminderService.CreateReminder(req.Text, req.DueAt)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reminder": reminder})
}

// ListReminders handles listing reminders.
// @Summary     List reminders
// @Tags        reminders
// @Produce     json
// @Security    ApiKeyAuth
// @Param       status    query string false "Filter by status (pending/done/dismissed)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Reminder] "Paginated reminders"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reminders [get]
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	var status *models.ReminderStatus
	if v := c.Query("status"); v != "" {
		s := models.ReminderStatus(v)
		if !s.Valid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be 'pending', 'done' or 'dismissed'"))
			return
		}
		status = &s
	}

	result, err := h.reminderService.ListReminders(status, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetReminder handles retrieving a specific reminder.
// @Summary     Get reminder by ID
// @Tags        reminders
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Reminder ID"
// @Success     200 {object} models.Reminder "Reminder details"
// @Failure     400 {object} ErrorResponse "Invalid reminder ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Reminder not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reminders/{id} [get]
func (h *ReminderHandler) GetReminder(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	reminder, err := h.reminderService.GetReminderByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminder": reminder})
}

// UpdateReminder handles patching a reminder.
// @Summary     Update reminder
// @Description Update text, due date or status. Setting status to done stamps completed_at.
// @Tags        reminders
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path string                true "Reminder ID"
// @Param       request body UpdateReminderRequest true "Fields to change"
// @Success     200 {object} models.Reminder "Updated reminder"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Reminder not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reminders/{id} [patch]
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	reminder, err := h.reminderService.UpdateReminder(id, services.ReminderPatch{
		Text:   req.Text,
		DueAt:  req.DueAt,
		Status: req.Status,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminder": reminder})
}

// DeleteReminder handles deleting a reminder.
// @Summary     Delete reminder
// @Tags        reminders
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Reminder ID"
// @Success     200 {object} MessageResponse "Reminder deleted"
// @Failure     400 {object} ErrorResponse "Invalid reminder ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Reminder not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reminders/{id} [delete]
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.reminderService.DeleteReminder(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}
