package services

import (
	"errors"
	"log"

	"github.com/paneldb/paneldb/internal/models"
	"github.com/paneldb/paneldb/internal/types"
	"gorm.io/gorm"
)

// CreateMusicTrackInput is the input for the createMusicTrack operation.
type CreateMusicTrackInput struct {
	UserID          types.FlexID `json:"user_id"`
	Title           string       `json:"title"`
	Artist          string       `json:"artist"`
	Album           *string      `json:"album"`
	DurationSeconds int          `json:"duration_seconds"`
	Genre           *string      `json:"genre"`
	SpotifyURL      *string      `json:"spotify_url"`
	IsFavorite      bool         `json:"is_favorite"`
}

// UpdateMusicTrackInput is the input for the updateMusicTrack operation.
// Explicit null on an optional field clears it, e.g. removing a track's
// Spotify link.
type UpdateMusicTrackInput struct {
	ID              types.FlexID           `json:"id"`
	Title           types.Optional[string] `json:"title"`
	Artist          types.Optional[string] `json:"artist"`
	Album           types.Optional[string] `json:"album"`
	DurationSeconds types.Optional[int]    `json:"duration_seconds"`
	Genre           types.Optional[string] `json:"genre"`
	SpotifyURL      types.Optional[string] `json:"spotify_url"`
	IsFavorite      types.Optional[bool]   `json:"is_favorite"`
}

// CreateMusicTrack inserts a track. A user_id that references no user is
// rejected by the store's foreign key and surfaced as a referential
// integrity error.
func CreateMusicTrack(db *gorm.DB, input CreateMusicTrackInput) (*models.MusicTrack, error) {
	track := models.MusicTrack{
		UserID:          input.UserID.Uint(),
		Title:           input.Title,
		Artist:          input.Artist,
		Album:           input.Album,
		DurationSeconds: input.DurationSeconds,
		Genre:           input.Genre,
		SpotifyURL:      input.SpotifyURL,
		IsFavorite:      input.IsFavorite,
	}

	if err := db.Create(&track).Error; err != nil {
		log.Printf("Music track creation failed: %v", err)
		if isForeignKeyViolation(err) {
			return nil, types.NewReferentialIntegrityError("music track", input.UserID.Uint())
		}
		return nil, err
	}

	return &track, nil
}

// GetUserMusicTracks returns a user's tracks ordered descending by added_at,
// most recently added first. favoritesOnly narrows to is_favorite rows.
func GetUserMusicTracks(db *gorm.DB, userID uint, favoritesOnly bool) ([]models.MusicTrack, error) {
	tracks := []models.MusicTrack{}

	query := db.Where("user_id = ?", userID)
	if favoritesOnly {
		query = query.Where("is_favorite = ?", true)
	}

	if err := query.Order("added_at DESC").Find(&tracks).Error; err != nil {
		log.Printf("Failed to fetch user music tracks: %v", err)
		return nil, err
	}

	return tracks, nil
}

// UpdateMusicTrack applies the provided subset of mutable fields. Updating a
// nonexistent id is a not-found error; an empty update set returns the
// current row unchanged.
func UpdateMusicTrack(db *gorm.DB, input UpdateMusicTrackInput) (*models.MusicTrack, error) {
	var track models.MusicTrack
	if err := db.First(&track, input.ID.Uint()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError("music track", input.ID.Uint())
		}
		log.Printf("Music track update failed: %v", err)
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title.Set {
		updates["title"] = input.Title.Value
	}
	if input.Artist.Set {
		updates["artist"] = input.Artist.Value
	}
	if input.Album.Set {
		updates["album"] = input.Album.Ptr()
	}
	if input.DurationSeconds.Set {
		updates["duration_seconds"] = input.DurationSeconds.Value
	}
	if input.Genre.Set {
		updates["genre"] = input.Genre.Ptr()
	}
	if input.SpotifyURL.Set {
		updates["spotify_url"] = input.SpotifyURL.Ptr()
	}
	if input.IsFavorite.Set {
		updates["is_favorite"] = input.IsFavorite.Value
	}

	if len(updates) == 0 {
		return &track, nil
	}

	if err := db.Model(&track).Updates(updates).Error; err != nil {
		log.Printf("Music track update failed: %v", err)
		return nil, err
	}

	return &track, nil
}

// DeleteMusicTrack removes the track and reports whether a row was removed.
// Deleting an absent id is not an error; it returns false.
func DeleteMusicTrack(db *gorm.DB, id uint) (bool, error) {
	result := db.Delete(&models.MusicTrack{}, id)
	if result.Error != nil {
		log.Printf("Music track deletion failed: %v", result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
