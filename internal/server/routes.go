// Route registration shared by the server command and the tests.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paneldb/paneldb/internal/handlers"
	"github.com/paneldb/paneldb/internal/middleware"
	"gorm.io/gorm"
)

// RegisterRoutes wires every api handler onto the app.
func RegisterRoutes(app *fiber.App, db *gorm.DB) {
	userHandler := &handlers.UserHandler{DB: db}
	calendarHandler := &handlers.CalendarHandler{DB: db}
	weatherHandler := &handlers.WeatherHandler{DB: db}
	musicHandler := &handlers.MusicHandler{DB: db}
	dashboardHandler := &handlers.DashboardHandler{DB: db}
	healthHandler := &handlers.HealthHandler{}

	api := app.Group("/api", middleware.VersionMiddleware())

	api.Get("/healthcheck", healthHandler.Healthcheck)

	api.Post("/createUser", userHandler.CreateUser)
	api.Get("/getUser", userHandler.GetUser)
	api.Post("/updateUser", userHandler.UpdateUser)

	api.Post("/createCalendarEvent", calendarHandler.CreateCalendarEvent)
	api.Get("/getUserEvents", calendarHandler.GetUserEvents)
	api.Post("/updateCalendarEvent", calendarHandler.UpdateCalendarEvent)
	api.Post("/deleteCalendarEvent", calendarHandler.DeleteCalendarEvent)

	api.Post("/createWeatherRecord", weatherHandler.CreateWeatherRecord)
	api.Get("/getCurrentWeather", weatherHandler.GetCurrentWeather)

	api.Post("/createMusicTrack", musicHandler.CreateMusicTrack)
	api.Get("/getUserMusicTracks", musicHandler.GetUserMusicTracks)
	api.Post("/updateMusicTrack", musicHandler.UpdateMusicTrack)
	api.Post("/deleteMusicTrack", musicHandler.DeleteMusicTrack)

	api.Get("/getDashboardData", dashboardHandler.GetDashboardData)
}
