package services

import (
	"errors"
	"log"

	"github.com/paneldb/paneldb/internal/models"
	"github.com/paneldb/paneldb/internal/types"
	"gorm.io/gorm"
)

// CreateUserInput is the input for the createUser operation.
type CreateUserInput struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Location *string `json:"location"`
}

// UpdateUserInput is the input for the updateUser operation. Optional fields
// distinguish absent (leave untouched) from explicit null (clear).
type UpdateUserInput struct {
	ID       types.FlexID           `json:"id"`
	Name     types.Optional[string] `json:"name"`
	Email    types.Optional[string] `json:"email"`
	Location types.Optional[string] `json:"location"`
}

// CreateUser inserts a user. The store assigns the identifier and the
// creation timestamp.
func CreateUser(db *gorm.DB, input CreateUserInput) (*models.User, error) {
	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Location: input.Location,
	}

	if err := db.Create(&user).Error; err != nil {
		log.Printf("User creation failed: %v", err)
		return nil, err
	}

	return &user, nil
}

// GetUser returns the user or (nil, nil) when absent. Absence is a normal
// outcome at this level, never an error.
func GetUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("User fetch failed: %v", err)
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies the provided subset of mutable fields. Updating a
// nonexistent id is a not-found error; an empty update set returns the
// current row unchanged.
func UpdateUser(db *gorm.DB, input UpdateUserInput) (*models.User, error) {
	var user models.User
	if err := db.First(&user, input.ID.Uint()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError("user", input.ID.Uint())
		}
		log.Printf("User update failed: %v", err)
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name.Set {
		updates["name"] = input.Name.Value
	}
	if input.Email.Set {
		updates["email"] = input.Email.Value
	}
	if input.Location.Set {
		updates["location"] = input.Location.Ptr()
	}

	if len(updates) == 0 {
		return &user, nil
	}

	if err := db.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("User update failed: %v", err)
		return nil, err
	}

	return &user, nil
}
