package types

import "fmt"

// NotFoundError signals that an update or aggregation lookup targeted a row
// that does not exist. Plain reads return nil instead of this error.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// NewNotFoundError builds a NotFoundError for the given entity and identifier.
func NewNotFoundError(entity string, id uint) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// ReferentialIntegrityError signals that a create referenced a user that does
// not exist, either detected by a pre-check or surfaced by the store's
// foreign key constraint.
type ReferentialIntegrityError struct {
	Entity string
	UserID uint
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("cannot create %s: user with id %d not found", e.Entity, e.UserID)
}

// NewReferentialIntegrityError builds a ReferentialIntegrityError.
func NewReferentialIntegrityError(entity string, userID uint) *ReferentialIntegrityError {
	return &ReferentialIntegrityError{Entity: entity, UserID: userID}
}
