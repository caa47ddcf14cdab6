package model

import (
	"time"

	"github.com/postwave/postwave/pkg/domain/types"
)

// RoleUser is the role assigned at registration
const RoleUser = "user"

// User represents a registered account
type User struct {
	ID           types.UserID `json:"id"`
	Email        string       `json:"email"`
	Username     string       `json:"username"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	PhoneNumber  string       `json:"phone_number,omitempty"`
	PasswordHash string       `json:"-"`
	Role         string       `json:"role"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// NewUser creates a new active User with a generated ID
func NewUser(email, username, firstName, lastName string) *User {
	now := time.Now()
	return &User{
		ID:        types.NewUserID(),
		Email:     email,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Role:      RoleUser,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Owner is the public identity of a content author
type Owner struct {
	ID       types.UserID `json:"id"`
	Username string       `json:"username"`
}

// Owner returns the public identity of the user
func (u *User) Owner() Owner {
	return Owner{ID: u.ID, Username: u.Username}
}
