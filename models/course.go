package models

import "time"

// Course is a course owned by exactly one User.
//
// EstimatedTime and MaterialsNeeded are optional: nil is stored as NULL and
// rendered as JSON null. In an update a nil value leaves the stored column
// untouched.
type Course struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`

	// UserID is the owner. Whatever the client sends is overwritten with the
	// authenticated caller before the course reaches the store.
	UserID int64 `json:"userId"`

	// User is the owner joined on read. Only public fields are populated.
	User *User `json:"user,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}
