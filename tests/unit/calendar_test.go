package handlers_test

import (
	"testing"
	"time"

	"github.com/paneldb/paneldb/internal/models"
	"github.com/paneldb/paneldb/tests/helpers"
)

// TestCreateCalendarEvent tests the POST /api/createCalendarEvent endpoint
func TestCreateCalendarEvent(t *testing.T) {
	app, db := setupApp(t)
	user := helpers.CreateTestUser(t, db, "Ada", "ada@example.com")

	resp := postJSON(t, app, "/api/createCalendarEvent", map[string]interface{}{
		"user_id":    user.ID,
		"title":      "Standup",
		"start_time": "2026-09-01T09:00:00Z",
		"end_time":   "2026-09-01T09:15:00Z",
		"is_all_day": false,
	})
	helpers.AssertStatus(t, resp, 200)

	var event models.CalendarEvent
	helpers.ParseJSON(t, resp, &event)
	if event.ID == 0 {
		t.Error("Expected assigned id")
	}
	if event.UserID != user.ID {
		t.Errorf("Expected user_id %d, got %d", user.ID, event.UserID)
	}
	if event.UpdatedAt.IsZero() {
		t.Error("Expected assigned updated_at")
	}
}

// TestCreateCalendarEventUnknownUser tests that a rejected foreign key
// leaves no row behind
func TestCreateCalendarEventUnknownUser(t *testing.T) {
	app, db := setupApp(t)

	resp := postJSON(t, app, "/api/createCalendarEvent", map[string]interface{}{
		"user_id":    999,
		"title":      "Orphan",
		"start_time": "2026-09-01T09:00:00Z",
		"end_time":   "2026-09-01T10:00:00Z",
	})
	helpers.AssertStatus(t, resp, 400)

	var count int64
	db.Model(&models.CalendarEvent{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no event rows after rejected create, got %d", count)
	}
}

// TestCreateCalendarEventValidation tests required field rejection
func TestCreateCalendarEventValidation(t *testing.T) {
	app, db := setupApp(t)
	user := helpers.CreateTestUser(t, db, "Ada", "ada@example.com")

	resp := postJSON(t, app, "/api/createCalendarEvent", map[string]interface{}{
		"user_id":  user.ID,
		"title":    "No times",
		"end_time": "2026-09-01T10:00:00Z",
	})
	helpers.AssertStatus(t, resp, 400)

	resp = postJSON(t, app, "/api/createCalendarEvent", map[string]interface{}{
		"user_id":    user.ID,
		"start_time": "2026-09-01T09:00:00Z",
		"end_time":   "2026-09-01T10:00:00Z",
	})
	helpers.AssertStatus(t, resp, 400)
}

// TestCreateCalendarEventReversedRange tests that no ordering is enforced
// between start_time and end_time
func TestCreateCalendarEventReversedRange(t *testing.T) {
	app, db := setupApp(t)
	user := helpers.CreateTestUser(t, db, "Ada", "ada@example.com")

	resp := postJSON(t, app, "/api/createCalendarEvent", map[string]interface{}{
		"user_id":    user.ID,
		"title":      "Backwards",
		"start_time": "2026-09-01T10:00:00Z",
		"end_time":   "2026-09-01T09:00:00Z",
	})
	helpers.AssertStatus(t, resp, 200)
}

// TestGetUserEventsOrdering tests ascending start_time ordering regardless
// of insertion order
func TestGetUserEventsOrdering(t *testing.T) {
	app, db := setupApp(t)
	user := helpers.CreateTestUser(t, db, "Ada", "ada@example.com")

	t1 := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	t3 := time.Date(2026, 9, 3, 9, 0, 0, 0, time.UTC)

	// Insert out of order
	helpers.CreateTestEvent(t, db, user.ID, "second", t2, t2.Add(time.Hour))
	helpers.CreateTestEvent(t, db, user.ID, "third", t3, t3.Add(time.Hour))
	helpers.CreateTestEvent(t, db, user.ID, "first", t1, t1.Add(time.Hour))

	resp := get(t, app, "/api/getUserEvents?user_id=1")
	helpers.AssertStatus(t, resp, 200)

	var events []models.CalendarEvent
	helpers.ParseJSON(t, resp, &events)
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	for i, want := range []string{"first", "second", "third"} {
		if events[i].Title != want {
			t.Errorf("Expected event %d to be %s, got %s", i, want, events[i].Title)
		}
	}
}

// TestGetUserEventsDateFilter tests the optional start_date/end_date bounds
func TestGetUserEventsDateFilter(t *testing.T) {
	app, db := setupApp(t)
	user := helpers.CreateTestUser(t, db, "Ada", "ada@example.com")

	t1 := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	t3 := time.Date(2026, 9, 20, 9, 0, 0, 0, time.UTC)
	helpers.CreateTestEvent(t, db, user.ID, "early", t1, t1.Add(time.Hour))
	helpers.CreateTestEvent(t, db, user.ID, "middle", t2, t2.Add(time.Hour))
	helpers.CreateTestEvent(t, db, user.ID, "late", t3, t3.Add(time.Hour))

	resp := get(t, app, "/api/getUserEvents?user_id=1&start_date=2026-09-05&end_date=2026-09-15")
	helpers.AssertStatus(t, resp, 200)

	var events []models.CalendarEvent
	helpers.ParseJSON(t, resp, &events)
	if len(events) != 1 {
		t.Fatalf("Expected 1 event in window, got %d", len(events))
	}
	if events[0].Title != "middle" {
		t.Errorf("Expected middle, got %s", events[0].Title)
	}

	// A user with no events gets an empty array, not null
	helpers.CreateTestUser(t, db, "Bea", "bea@example.com")
	resp = get(t, app, "/api/getUserEvents?user_id=2")
	helpers.AssertStatus(t, resp, 200)

	events = nil
	helpers.ParseJSON(t, resp, &events)
	if events == nil || len(events) != 0 {
		t.Errorf("Expected empty array, got %v", events)
	}
}

// TestUpdateCalendarEvent tests partial update semantics
func TestUpdateCalendarEvent(t *testing.T) {
	app, db := setupApp(t)
	user := helpers.CreateTestUser(t, db, "Ada", "ada@example.com")
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	event := helpers.CreateTestEvent(t, db, user.ID, "Standup", start, start.Add(time.Hour))

	resp := postJSON(t, app, "/api/updateCalendarEvent", map[string]interface{}{
		"id":    event.ID,
		"title": "Daily standup",
	})
	helpers.AssertStatus(t, resp, 200)

	var updated models.CalendarEvent
	helpers.ParseJSON(t, resp, &updated)
	if updated.Title != "Daily standup" {
		t.Errorf("Expected updated title, got %s", updated.Title)
	}
	if !updated.StartTime.Equal(start) {
		t.Errorf("Expected start_time untouched, got %v", updated.StartTime)
	}

	// Explicit null clears the optional description
	db.Model(event).Update("description", "notes")
	resp = postJSON(t, app, "/api/updateCalendarEvent", map[string]interface{}{
		"id":          event.ID,
		"description": nil,
	})
	helpers.AssertStatus(t, resp, 200)

	helpers.ParseJSON(t, resp, &updated)
	if updated.Description != nil {
		t.Errorf("Expected description cleared, got %v", *updated.Description)
	}
}

// TestUpdateCalendarEventValidation tests null rejection on required fields
func TestUpdateCalendarEventValidation(t *testing.T) {
	app, db := setupApp(t)
	user := helpers.CreateTestUser(t, db, "Ada", "ada@example.com")
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	event := helpers.CreateTestEvent(t, db, user.ID, "Standup", start, start.Add(time.Hour))

	resp := postJSON(t, app, "/api/updateCalendarEvent", map[string]interface{}{
		"id":    event.ID,
		"title": nil,
	})
	helpers.AssertStatus(t, resp, 400)

	resp = postJSON(t, app, "/api/updateCalendarEvent", map[string]interface{}{
		"id":         event.ID,
		"start_time": nil,
	})
	helpers.AssertStatus(t, resp, 400)
}

// TestUpdateCalendarEventNotFound tests updating a nonexistent event
func TestUpdateCalendarEventNotFound(t *testing.T) {
	app, _ := setupApp(t)

	resp := postJSON(t, app, "/api/updateCalendarEvent", map[string]interface{}{
		"id":    999,
		"title": "Nothing",
	})
	helpers.AssertStatus(t, resp, 404)
}

// TestUpdateCalendarEventNoOp tests that an update carrying only the id
// still succeeds, returns the current row, and refreshes updated_at
func TestUpdateCalendarEventNoOp(t *testing.T) {
	app, db := setupApp(t)
	user := helpers.CreateTestUser(t, db, "Ada", "ada@example.com")
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	event := helpers.CreateTestEvent(t, db, user.ID, "Standup", start, start.Add(time.Hour))

	// Backdate the modification timestamp so the refresh is observable
	stale := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := db.Model(event).UpdateColumn("updated_at", stale).Error; err != nil {
		t.Fatalf("Failed to backdate updated_at: %v", err)
	}

	resp := postJSON(t, app, "/api/updateCalendarEvent", map[string]interface{}{
		"id": event.ID,
	})
	helpers.AssertStatus(t, resp, 200)

	var updated models.CalendarEvent
	helpers.ParseJSON(t, resp, &updated)
	if updated.Title != "Standup" {
		t.Errorf("Expected title unchanged, got %s", updated.Title)
	}
	if !updated.StartTime.Equal(start) {
		t.Errorf("Expected start_time unchanged, got %v", updated.StartTime)
	}
	if !updated.UpdatedAt.After(stale) {
		t.Errorf("Expected updated_at refreshed past %v, got %v", stale, updated.UpdatedAt)
	}

	// The refresh is persisted, not just reported
	var stored models.CalendarEvent
	if err := db.First(&stored, event.ID).Error; err != nil {
		t.Fatalf("Failed to read back event: %v", err)
	}
	if !stored.UpdatedAt.After(stale) {
		t.Errorf("Expected persisted updated_at refreshed, got %v", stored.UpdatedAt)
	}
}

// TestDeleteCalendarEventTwice tests that the first delete reports true and
// the repeat reports false without erroring
func TestDeleteCalendarEventTwice(t *testing.T) {
	app, db := setupApp(t)
	user := helpers.CreateTestUser(t, db, "Ada", "ada@example.com")
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	event := helpers.CreateTestEvent(t, db, user.ID, "Standup", start, start.Add(time.Hour))

	resp := postJSON(t, app, "/api/deleteCalendarEvent", map[string]interface{}{
		"eventId": event.ID,
	})
	helpers.AssertStatus(t, resp, 200)

	var result map[string]interface{}
	helpers.ParseJSON(t, resp, &result)
	if result["deleted"] != true {
		t.Error("Expected deleted=true on first delete")
	}

	resp = postJSON(t, app, "/api/deleteCalendarEvent", map[string]interface{}{
		"eventId": event.ID,
	})
	helpers.AssertStatus(t, resp, 200)

	helpers.ParseJSON(t, resp, &result)
	if result["deleted"] != false {
		t.Error("Expected deleted=false on repeat delete")
	}
}
