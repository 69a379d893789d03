package services

import (
	"errors"
	"log"
	"time"

	"github.com/paneldb/paneldb/internal/models"
	"github.com/paneldb/paneldb/internal/types"
	"gorm.io/gorm"
)

// CreateCalendarEventInput is the input for the createCalendarEvent operation.
type CreateCalendarEventInput struct {
	UserID      types.FlexID `json:"user_id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	StartTime   time.Time    `json:"start_time"`
	EndTime     time.Time    `json:"end_time"`
	Location    *string      `json:"location"`
	IsAllDay    bool         `json:"is_all_day"`
}

// UpdateCalendarEventInput is the input for the updateCalendarEvent operation.
type UpdateCalendarEventInput struct {
	ID          types.FlexID              `json:"id"`
	Title       types.Optional[string]    `json:"title"`
	Description types.Optional[string]    `json:"description"`
	StartTime   types.Optional[time.Time] `json:"start_time"`
	EndTime     types.Optional[time.Time] `json:"end_time"`
	Location    types.Optional[string]    `json:"location"`
	IsAllDay    types.Optional[bool]      `json:"is_all_day"`
}

// CreateCalendarEvent inserts an event. A user_id that references no user is
// rejected by the store's foreign key and surfaced as a referential
// integrity error. No invariant relates start_time and end_time.
func CreateCalendarEvent(db *gorm.DB, input CreateCalendarEventInput) (*models.CalendarEvent, error) {
	event := models.CalendarEvent{
		UserID:      input.UserID.Uint(),
		Title:       input.Title,
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Location:    input.Location,
		IsAllDay:    input.IsAllDay,
	}

	if err := db.Create(&event).Error; err != nil {
		log.Printf("Calendar event creation failed: %v", err)
		if isForeignKeyViolation(err) {
			return nil, types.NewReferentialIntegrityError("calendar event", input.UserID.Uint())
		}
		return nil, err
	}

	return &event, nil
}

// GetUserEvents returns a user's events ordered ascending by start_time.
// Optional bounds both filter on start_time and combine with AND.
func GetUserEvents(db *gorm.DB, userID uint, startDate, endDate *time.Time) ([]models.CalendarEvent, error) {
	events := []models.CalendarEvent{}

	query := db.Where("user_id = ?", userID)
	if startDate != nil {
		query = query.Where("start_time >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("start_time <= ?", *endDate)
	}

	if err := query.Order("start_time ASC").Find(&events).Error; err != nil {
		log.Printf("Failed to fetch user events: %v", err)
		return nil, err
	}

	return events, nil
}

// UpdateCalendarEvent applies the provided subset of mutable fields and
// refreshes updated_at unconditionally, even when the update set is
// otherwise empty.
func UpdateCalendarEvent(db *gorm.DB, input UpdateCalendarEventInput) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	if err := db.First(&event, input.ID.Uint()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError("calendar event", input.ID.Uint())
		}
		log.Printf("Calendar event update failed: %v", err)
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if input.Title.Set {
		updates["title"] = input.Title.Value
	}
	if input.Description.Set {
		updates["description"] = input.Description.Ptr()
	}
	if input.StartTime.Set {
		updates["start_time"] = input.StartTime.Value
	}
	if input.EndTime.Set {
		updates["end_time"] = input.EndTime.Value
	}
	if input.Location.Set {
		updates["location"] = input.Location.Ptr()
	}
	if input.IsAllDay.Set {
		updates["is_all_day"] = input.IsAllDay.Value
	}

	if err := db.Model(&event).Updates(updates).Error; err != nil {
		log.Printf("Calendar event update failed: %v", err)
		return nil, err
	}

	return &event, nil
}

// DeleteCalendarEvent removes the event and reports whether a row was
// removed. Deleting an absent id is not an error; it returns false.
func DeleteCalendarEvent(db *gorm.DB, id uint) (bool, error) {
	result := db.Delete(&models.CalendarEvent{}, id)
	if result.Error != nil {
		log.Printf("Calendar event deletion failed: %v", result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
