package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "reconstruction/internal/errors"
	"reconstruction/internal/models"
	"reconstruction/internal/pagination"
	"reconstruction/internal/services"
)

// --- mock reminder service ---

type mockReminderService struct {
	createReminderFn  func(text string, dueAt *time.Time) (*models.Reminder, error)
	listRemindersFn   func(status *models.ReminderStatus, page pagination.PageRequest) (*pagination.PageResponse[models.Reminder], error)
	getReminderByIDFn func(id string) (*models.Reminder, error)
	updateReminderFn  func(id string, patch services.ReminderPatch) (*models.Reminder, error)
	deleteReminderFn  func(id string) error
}

func (m *mockReminderService) CreateReminder(text string, dueAt *time.Time) (*models.Reminder, error) {
	if m.createReminderFn != nil {
		return m.createReminderFn(text, dueAt)
	}
	return &models.Reminder{Text: text, DueAt: dueAt, Status: models.ReminderStatusPending}, nil
}

func (m *mockReminderService) ListReminders(status *models.ReminderStatus, page pagination.PageRequest) (*pagination.PageResponse[models.Reminder], error) {
	if m.listRemindersFn != nil {
		return m.listRemindersFn(status, page)
	}
	resp := pagination.NewPageResponse([]models.Reminder{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockReminderService) GetReminderByID(id string) (*models.Reminder, error) {
	if m.getReminderByIDFn != nil {
		return m.getReminderByIDFn(id)
	}
	return &models.Reminder{Base: models.Base{ID: id}}, nil
}

func (m *mockReminderService) UpdateReminder(id string, patch services.ReminderPatch) (*models.Reminder, error) {
	if m.updateReminderFn != nil {
		return m.updateReminderFn(id, patch)
	}
	return &models.Reminder{}, nil
}

func (m *mockReminderService) DeleteReminder(id string) error {
	if m.deleteReminderFn != nil {
		return m.deleteReminderFn(id)
	}
	return nil
}

func (m *mockReminderService) CountPending() (int64, error) { return 0, nil }

func (m *mockReminderService) ListPending() ([]models.Reminder, error) { return nil, nil }

var _ services.ReminderServicer = (*mockReminderService)(nil)

func setupReminderRouter(handler *ReminderHandler) *gin.Engine {
	r := gin.New()
	r.POST("/reminders", handler.CreateReminder)
	r.GET("/reminders", handler.ListReminders)
	r.GET("/reminders/:id", handler.GetReminder)
	r.PATCH("/reminders/:id", handler.UpdateReminder)
	r.DELETE("/reminders/:id", handler.DeleteReminder)
	return r
}

func TestReminderHandler_CreateReminder(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var gotDue *time.Time
		remSvc := &mockReminderService{
			createReminderFn: func(text string, dueAt *time.Time) (*models.Reminder, error) {
				gotDue = dueAt
				return &models.Reminder{Text: text, DueAt: dueAt, Status: models.ReminderStatusPending}, nil
			},
		}
		r := setupReminderRouter(NewReminderHandler(remSvc))

		rec := doRequest(r, "POST", "/reminders", `{"text":"Call the electrician","due_at":"2025-01-10T09:00:00Z"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		want := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
		if gotDue == nil || !gotDue.Equal(want) {
			t.Errorf("expected due %v, got %v", want, gotDue)
		}
		rem := parseJSON(t, rec)["reminder"].(map[string]interface{})
		if rem["status"] != "pending" {
			t.Errorf("expected pending, got %v", rem["status"])
		}
	})

	t.Run("returns 400 on blank text", func(t *testing.T) {
		r := setupReminderRouter(NewReminderHandler(&mockReminderService{}))

		rec := doRequest(r, "POST", "/reminders", `{"text":"  "}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestReminderHandler_ListReminders(t *testing.T) {
	t.Run("filters by status", func(t *testing.T) {
		var gotStatus *models.ReminderStatus
		remSvc := &mockReminderService{
			listRemindersFn: func(status *models.ReminderStatus, _ pagination.PageRequest) (*pagination.PageResponse[models.Reminder], error) {
				gotStatus = status
				resp := pagination.NewPageResponse([]models.Reminder{}, 1, 20, 0)
				return &resp, nil
			},
		}
		r := setupReminderRouter(NewReminderHandler(remSvc))

		rec := doRequest(r, "GET", "/reminders?status=done", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotStatus == nil || *gotStatus != models.ReminderStatusDone {
			t.Errorf("expected done filter, got %v", gotStatus)
		}
	})

	t.Run("passes null due_at as a clear", func(t *testing.T) {
		var gotPatch services.ReminderPatch
		remSvc := &mockReminderService{
			updateReminderFn: func(id string, patch services.ReminderPatch) (*models.Reminder, error) {
				gotPatch = patch
				return &models.Reminder{Base: models.Base{ID: id}, Status: models.ReminderStatusPending}, nil
			},
		}
		r := setupReminderRouter(NewReminderHandler(remSvc))

		rec := doRequest(r, "PATCH", "/reminders/"+testID, `{"due_at":null}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !gotPatch.DueAt.IsNull() || gotPatch.Status != nil {
			t.Errorf("expected only a due_at clear, got %+v", gotPatch)
		}
	})

	t.Run("returns 400 on unknown status", func(t *testing.T) {
		r := setupReminderRouter(NewReminderHandler(&mockReminderService{}))

		rec := doRequest(r, "GET", "/reminders?status=later", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestReminderHandler_GetReminder(t *testing.T) {
	remSvc := &mockReminderService{
		getReminderByIDFn: func(_ string) (*models.Reminder, error) { return nil, apperrors.ErrReminderNotFound },
	}
	r := setupReminderRouter(NewReminderHandler(remSvc))

	rec := doRequest(r, "GET", "/reminders/"+testID, "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	assertErrorCode(t, parseJSON(t, rec), "REMINDER_NOT_FOUND")
}

func TestReminderHandler_UpdateReminder(t *testing.T) {
	t.Run("marks done", func(t *testing.T) {
		var gotPatch services.ReminderPatch
		remSvc := &mockReminderService{
			updateReminderFn: func(id string, patch services.ReminderPatch) (*models.Reminder, error) {
				gotPatch = patch
				now := time.Now()
				return &models.Reminder{Base: models.Base{ID: id}, Status: *patch.Status, CompletedAt: &now}, nil
			},
		}
		r := setupReminderRouter(NewReminderHandler(remSvc))

		rec := doRequest(r, "PATCH", "/reminders/"+testID, `{"status":"done"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotPatch.Status == nil || *gotPatch.Status != models.ReminderStatusDone {
			t.Errorf("expected done, got %v", gotPatch.Status)
		}
		if gotPatch.Text != nil || gotPatch.DueAt.Present {
			t.Errorf("expected only status in patch, got %+v", gotPatch)
		}
	})

	t.Run("returns 400 on unknown status", func(t *testing.T) {
		r := setupReminderRouter(NewReminderHandler(&mockReminderService{}))

		rec := doRequest(r, "PATCH", "/reminders/"+testID, `{"status":"snoozed"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestReminderHandler_DeleteReminder(t *testing.T) {
	r := setupReminderRouter(NewReminderHandler(&mockReminderService{}))

	rec := doRequest(r, "DELETE", "/reminders/"+testID, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if msg := parseJSON(t, rec)["message"]; msg != "Reminder deleted successfully" {
		t.Errorf("unexpected message %v", msg)
	}
}
