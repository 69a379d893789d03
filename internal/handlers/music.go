package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paneldb/paneldb/internal/services"
	"github.com/paneldb/paneldb/internal/types"
	"github.com/paneldb/paneldb/internal/utils"
	"gorm.io/gorm"
)

// MusicHandler handles music track operations
type MusicHandler struct {
	DB *gorm.DB
}

// CreateMusicTrack handles POST /api/createMusicTrack
// @Summary Add a music track
// @Description Add a track to a user's collection
// @Tags Music
// @Accept json
// @Produce json
// @Param body body services.CreateMusicTrackInput true "Track to add"
// @Success 200 {object} models.MusicTrack
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /createMusicTrack [post]
func (h *MusicHandler) CreateMusicTrack(c *fiber.Ctx) error {
	var input services.CreateMusicTrackInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if input.UserID == 0 {
		return utils.ValidationErrorResponse(c, "user_id is required")
	}
	if input.Title == "" {
		return utils.ValidationErrorResponse(c, "title is required")
	}
	if input.Artist == "" {
		return utils.ValidationErrorResponse(c, "artist is required")
	}
	if input.DurationSeconds <= 0 {
		return utils.ValidationErrorResponse(c, "duration_seconds must be a positive integer")
	}
	if input.SpotifyURL != nil && !validURL(*input.SpotifyURL) {
		return utils.ValidationErrorResponse(c, "spotify_url must be a valid URL")
	}

	track, err := services.CreateMusicTrack(h.DB, input)
	if err != nil {
		return respondServiceError(c, err, "createMusicTrack")
	}

	return c.Status(fiber.StatusOK).JSON(track)
}

// GetUserMusicTracks handles GET /api/getUserMusicTracks
// @Summary List a user's music tracks
// @Description List tracks ordered by added_at descending, optionally restricted to favorites
// @Tags Music
// @Produce json
// @Param user_id query int true "User ID"
// @Param favorites_only query bool false "Return only favorite tracks"
// @Success 200 {array} models.MusicTrack
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /getUserMusicTracks [get]
func (h *MusicHandler) GetUserMusicTracks(c *fiber.Ctx) error {
	userID, err := queryID(c, "user_id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	favoritesOnly := c.QueryBool("favorites_only", false)

	tracks, err := services.GetUserMusicTracks(h.DB, userID, favoritesOnly)
	if err != nil {
		return respondServiceError(c, err, "getUserMusicTracks")
	}

	return c.Status(fiber.StatusOK).JSON(tracks)
}

// UpdateMusicTrack handles POST /api/updateMusicTrack
// @Summary Update a music track
// @Description Apply a partial update to a track; nullable fields can be cleared with an explicit null
// @Tags Music
// @Accept json
// @Produce json
// @Param body body services.UpdateMusicTrackInput true "Fields to update"
// @Success 200 {object} models.MusicTrack
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /updateMusicTrack [post]
func (h *MusicHandler) UpdateMusicTrack(c *fiber.Ctx) error {
	var input services.UpdateMusicTrackInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if input.ID == 0 {
		return utils.ValidationErrorResponse(c, "id is required")
	}
	if input.Title.Set && (!input.Title.Valid || input.Title.Value == "") {
		return utils.ValidationErrorResponse(c, "title must be a non-empty string")
	}
	if input.Artist.Set && (!input.Artist.Valid || input.Artist.Value == "") {
		return utils.ValidationErrorResponse(c, "artist must be a non-empty string")
	}
	if input.DurationSeconds.Set && (!input.DurationSeconds.Valid || input.DurationSeconds.Value <= 0) {
		return utils.ValidationErrorResponse(c, "duration_seconds must be a positive integer")
	}
	if input.IsFavorite.Set && !input.IsFavorite.Valid {
		return utils.ValidationErrorResponse(c, "is_favorite must not be null")
	}
	if input.SpotifyURL.Set && input.SpotifyURL.Valid && !validURL(input.SpotifyURL.Value) {
		return utils.ValidationErrorResponse(c, "spotify_url must be a valid URL")
	}

	track, err := services.UpdateMusicTrack(h.DB, input)
	if err != nil {
		return respondServiceError(c, err, "updateMusicTrack")
	}

	return c.Status(fiber.StatusOK).JSON(track)
}

// DeleteMusicTrack handles POST /api/deleteMusicTrack
// @Summary Remove a music track
// @Description Delete a track by id; deleted is true iff a row was removed
// @Tags Music
// @Accept json
// @Produce json
// @Param body body object true "Track id"
// @Success 200 {object} utils.DeleteResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /deleteMusicTrack [post]
func (h *MusicHandler) DeleteMusicTrack(c *fiber.Ctx) error {
	var body struct {
		TrackID types.FlexID `json:"trackId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}
	if body.TrackID == 0 {
		return utils.ValidationErrorResponse(c, "trackId is required")
	}

	deleted, err := services.DeleteMusicTrack(h.DB, body.TrackID.Uint())
	if err != nil {
		return respondServiceError(c, err, "deleteMusicTrack")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"deleted": deleted})
}
