package models

import "time"

// User is an account that owns courses.
//
// Password carries the bcrypt hash once the user has been loaded from the
// store. It is excluded from JSON so a User can be written to a response as is.
type User struct {
	// ID is the generated primary key.
	ID int64 `json:"id"`

	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`

	// Password is the one-way hash of the user's password. Never serialized.
	Password string `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u with the password hash and timestamps cleared.
func (u User) Public() User {
	return User{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}

// UserRegistration is the request body of POST /api/users.
// Password is the plain-text password; it is hashed before it reaches the store.
type UserRegistration struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}
