package handlers_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/paneldb/paneldb/internal/services"
	"github.com/paneldb/paneldb/tests/helpers"
)

// TestGetDashboardData tests the aggregation caps: five upcoming events and
// ten favorite tracks, newest favorites first
func TestGetDashboardData(t *testing.T) {
	app, db := setupApp(t)
	user := helpers.CreateTestUser(t, db, "Ada", "ada@example.com")

	// Seven future events, one past event
	base := time.Now().Add(24 * time.Hour)
	for i := 0; i < 7; i++ {
		start := base.Add(time.Duration(i) * time.Hour)
		helpers.CreateTestEvent(t, db, user.ID, fmt.Sprintf("event-%d", i), start, start.Add(time.Hour))
	}
	past := time.Now().Add(-24 * time.Hour)
	helpers.CreateTestEvent(t, db, user.ID, "past", past, past.Add(time.Hour))

	// Twelve favorites with distinct added_at, plus one non-favorite
	added := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		helpers.CreateTestTrack(t, db, user.ID, fmt.Sprintf("fav-%d", i), true, added.Add(time.Duration(i)*time.Hour))
	}
	helpers.CreateTestTrack(t, db, user.ID, "not-fav", false, added.Add(100*time.Hour))

	helpers.CreateTestWeather(t, db, user.ID, "London", 18.5, time.Now())

	resp := get(t, app, "/api/getDashboardData?userId=1")
	helpers.AssertStatus(t, resp, 200)

	var data services.DashboardData
	helpers.ParseJSON(t, resp, &data)

	if data.User == nil || data.User.ID != user.ID {
		t.Fatalf("Expected user in dashboard, got %+v", data.User)
	}

	if len(data.UpcomingEvents) != 5 {
		t.Errorf("Expected 5 upcoming events, got %d", len(data.UpcomingEvents))
	}
	for _, e := range data.UpcomingEvents {
		if e.Title == "past" {
			t.Error("Expected past events to be excluded")
		}
	}
	if len(data.UpcomingEvents) > 0 && data.UpcomingEvents[0].Title != "event-0" {
		t.Errorf("Expected soonest event first, got %s", data.UpcomingEvents[0].Title)
	}

	if len(data.FavoriteTracks) != 10 {
		t.Errorf("Expected 10 favorite tracks, got %d", len(data.FavoriteTracks))
	}
	if len(data.FavoriteTracks) > 0 && data.FavoriteTracks[0].Title != "fav-11" {
		t.Errorf("Expected most recently added favorite first, got %s", data.FavoriteTracks[0].Title)
	}
	for _, track := range data.FavoriteTracks {
		if !track.IsFavorite {
			t.Errorf("Expected only favorites, got %s", track.Title)
		}
	}

	if data.CurrentWeather == nil || data.CurrentWeather.Location != "London" {
		t.Errorf("Expected current weather, got %+v", data.CurrentWeather)
	}
}

// TestGetDashboardDataEmpty tests a user with no dependent rows: empty
// arrays and a null weather slot, not an error
func TestGetDashboardDataEmpty(t *testing.T) {
	app, db := setupApp(t)
	helpers.CreateTestUser(t, db, "Ada", "ada@example.com")

	resp := get(t, app, "/api/getDashboardData?userId=1")
	helpers.AssertStatus(t, resp, 200)

	var data map[string]interface{}
	helpers.ParseJSON(t, resp, &data)

	if data["currentWeather"] != nil {
		t.Errorf("Expected null currentWeather, got %v", data["currentWeather"])
	}
	events, ok := data["upcomingEvents"].([]interface{})
	if !ok || len(events) != 0 {
		t.Errorf("Expected empty upcomingEvents array, got %v", data["upcomingEvents"])
	}
	tracks, ok := data["favoriteTracks"].([]interface{})
	if !ok || len(tracks) != 0 {
		t.Errorf("Expected empty favoriteTracks array, got %v", data["favoriteTracks"])
	}
}

// TestGetDashboardDataUnknownUser tests the aggregation's 404
func TestGetDashboardDataUnknownUser(t *testing.T) {
	app, _ := setupApp(t)

	resp := get(t, app, "/api/getDashboardData?userId=999")
	helpers.AssertStatus(t, resp, 404)
}
