package services

import (
	"testing"
	"time"

	"reconstruction/internal/models"
	"reconstruction/internal/nullable"
	"reconstruction/internal/pagination"
	"reconstruction/internal/testutil"
)

func TestCreateReminder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewReminderService(db)

	due := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	r, err := svc.CreateReminder("Call the electrician", &due)
	testutil.AssertNoError(t, err)

	if r.Status != models.ReminderStatusPending {
		t.Errorf("expected pending, got %s", r.Status)
	}
	if r.CompletedAt != nil {
		t.Error("new reminder should not be completed")
	}

	_, err = svc.CreateReminder("  ", nil)
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestUpdateReminderStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewReminderService(db)

	r, err := svc.CreateReminder("Order tiles", nil)
	testutil.AssertNoError(t, err)

	done := models.ReminderStatusDone
	updated, err := svc.UpdateReminder(r.ID, ReminderPatch{Status: &done})
	testutil.AssertNoError(t, err)
	if updated.CompletedAt == nil {
		t.Fatal("expected completed_at to be set")
	}

	pending := models.ReminderStatusPending
	updated, err = svc.UpdateReminder(r.ID, ReminderPatch{Status: &pending})
	testutil.AssertNoError(t, err)
	if updated.CompletedAt != nil {
		t.Error("expected completed_at to be cleared")
	}
	if updated.Text != "Order tiles" {
		t.Errorf("text changed to %q", updated.Text)
	}

	bogus := models.ReminderStatus("snoozed")
	_, err = svc.UpdateReminder(r.ID, ReminderPatch{Status: &bogus})
	testutil.AssertAppError(t, err, "INVALID_INPUT")

	_, err = svc.UpdateReminder("missing", ReminderPatch{Text: ptr("x")})
	testutil.AssertAppError(t, err, "REMINDER_NOT_FOUND")
}

func TestUpdateReminderDueAt(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewReminderService(db)

	due := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	r, err := svc.CreateReminder("Book the crane", &due)
	testutil.AssertNoError(t, err)

	later := due.Add(48 * time.Hour)
	updated, err := svc.UpdateReminder(r.ID, ReminderPatch{DueAt: nullable.Of(later)})
	testutil.AssertNoError(t, err)
	if updated.DueAt == nil || !updated.DueAt.Equal(later) {
		t.Errorf("expected due_at %v, got %v", later, updated.DueAt)
	}

	updated, err = svc.UpdateReminder(r.ID, ReminderPatch{Text: ptr("Book the big crane")})
	testutil.AssertNoError(t, err)
	if updated.DueAt == nil {
		t.Error("absent due_at must stay untouched")
	}

	updated, err = svc.UpdateReminder(r.ID, ReminderPatch{DueAt: nullable.Null[time.Time]()})
	testutil.AssertNoError(t, err)
	if updated.DueAt != nil {
		t.Errorf("expected due_at cleared, got %v", *updated.DueAt)
	}
}

func TestListReminders(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewReminderService(db)

	testutil.CreateTestReminder(t, db, models.ReminderStatusPending)
	testutil.CreateTestReminder(t, db, models.ReminderStatusPending)
	testutil.CreateTestReminder(t, db, models.ReminderStatusDone)
	testutil.CreateTestReminder(t, db, models.ReminderStatusDismissed)

	all, err := svc.ListReminders(nil, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if all.TotalItems != 4 {
		t.Errorf("expected 4 reminders, got %d", all.TotalItems)
	}

	status := models.ReminderStatusDone
	done, err := svc.ListReminders(&status, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if done.TotalItems != 1 {
		t.Errorf("expected 1 done reminder, got %d", done.TotalItems)
	}

	count, err := svc.CountPending()
	testutil.AssertNoError(t, err)
	if count != 2 {
		t.Errorf("expected 2 pending, got %d", count)
	}
}

func TestListPendingOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewReminderService(db)

	later := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	sooner := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	undated, err := svc.CreateReminder("whenever", nil)
	testutil.AssertNoError(t, err)
	second, err := svc.CreateReminder("later", &later)
	testutil.AssertNoError(t, err)
	first, err := svc.CreateReminder("sooner", &sooner)
	testutil.AssertNoError(t, err)
	testutil.CreateTestReminder(t, db, models.ReminderStatusDone)

	pending, err := svc.ListPending()
	testutil.AssertNoError(t, err)

	if len(pending) != 3 {
		t.Fatalf("expected 3 pending, got %d", len(pending))
	}
	if pending[0].ID != first.ID || pending[1].ID != second.ID || pending[2].ID != undated.ID {
		t.Errorf("unexpected order: %s, %s, %s", pending[0].Text, pending[1].Text, pending[2].Text)
	}
}

func TestDeleteReminder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewReminderService(db)

	r := testutil.CreateTestReminder(t, db, models.ReminderStatusPending)
	testutil.AssertNoError(t, svc.DeleteReminder(r.ID))

	_, err := svc.GetReminderByID(r.ID)
	testutil.AssertAppError(t, err, "REMINDER_NOT_FOUND")
}
