package model

import (
	"context"
	"time"
)

// User is a registered account. Username is immutable and owns every other entity.
type User struct {
	Username         string
	PasswordHash     string
	IsAdmin          bool
	PublicKey        string
	PrivateKey       string
	Description      string
	DisplayName      string
	PrimaryColor     string
	SecondaryColor   string
	TertiaryColor    string
	ProfilePictureID *string
	CreatedAt        time.Time
}

// PublicProfile is what other users are allowed to see about an account.
type PublicProfile struct {
	Username         string
	DisplayName      string
	Description      string
	ProfilePictureID *string
}

// Profile returns the public view of the user.
func (u User) Profile() PublicProfile {
	return PublicProfile{
		Username:         u.Username,
		DisplayName:      u.DisplayName,
		Description:      u.Description,
		ProfilePictureID: u.ProfilePictureID,
	}
}

// ProvisionParams carries the raw input for a new account.
type ProvisionParams struct {
	Username       string
	Password       string
	DisplayName    string
	Description    string
	PrimaryColor   string
	SecondaryColor string
	TertiaryColor  string
}

// UpdateProfileParams lists profile fields to change. Nil fields are left as is.
type UpdateProfileParams struct {
	DisplayName      *string
	Description      *string
	PrimaryColor     *string
	SecondaryColor   *string
	TertiaryColor    *string
	ProfilePictureID *string
}

// UserStore persists users.
type UserStore interface {
	// Create inserts a new user. Returns ErrConflict if the username is taken.
	Create(ctx context.Context, user User) (User, error)
	// GetByUsername returns ErrNotFound if there is no such user.
	GetByUsername(ctx context.Context, username string) (User, error)
	UpdateProfile(ctx context.Context, username string, params UpdateProfileParams) error
	UpdatePassword(ctx context.Context, username string, passwordHash string) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
