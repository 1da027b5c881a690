// Package entity defines the domain entities for the accounts feature.
package entity

import "time"

// User represents a registered account in the system.
// It holds profile data, authentication credentials and an optional
// reference to an uploaded profile picture.
type User struct {
	// ID is the unique identifier for the user, assigned at creation.
	ID uint `gorm:"primaryKey"`

	// Name is the user's display name. Optional at the storage layer.
	Name string `gorm:"size:255"`

	// Number is the user's phone number. Optional at the storage layer.
	Number string `gorm:"size:32"`

	// DOB is the user's date of birth. Nil when never supplied.
	DOB *time.Time `gorm:"type:date"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext.
	Password string `gorm:"size:255;not null"`

	// ProfilePicture is the public path of the uploaded picture,
	// e.g. "/uploads/<name>". Empty until a picture is uploaded.
	ProfilePicture string `gorm:"size:512"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
