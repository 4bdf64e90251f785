package accounts

import (
	"time"

	"github.com/google/uuid"
)

// Account maps to the accounts table. One row per login identity: the
// barangay admin, each barangay health worker, and one account per household.
type Account struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	Username          string     `db:"username" json:"username"`
	PasswordHash      string     `db:"password_hash" json:"-"`
	Role              string     `db:"role" json:"role"`
	FirstName         string     `db:"first_name" json:"first_name"`
	MiddleName        *string    `db:"middle_name" json:"middle_name,omitempty"`
	LastName          string     `db:"last_name" json:"last_name"`
	Suffix            *string    `db:"suffix" json:"suffix,omitempty"`
	ContactNumber     *string    `db:"contact_number" json:"contact_number,omitempty"`
	Email             *string    `db:"email" json:"email,omitempty"`
	Address           *string    `db:"address" json:"address,omitempty"`
	HouseholdNumber   *string    `db:"household_number" json:"household_number,omitempty"`
	ProfilePictureURL *string    `db:"profile_picture_url" json:"profile_picture_url,omitempty"`
	IsActive          bool       `db:"is_active" json:"is_active"`
	LastLoginAt       *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// FullName renders the account's display name.
func (a *Account) FullName() string {
	name := a.FirstName
	if a.MiddleName != nil && *a.MiddleName != "" {
		name += " " + *a.MiddleName
	}
	name += " " + a.LastName
	if a.Suffix != nil && *a.Suffix != "" {
		name += " " + *a.Suffix
	}
	return name
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the signed token and the authenticated account.
type LoginResponse struct {
	Token   string   `json:"token"`
	Account *Account `json:"account"`
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Username        string  `json:"username"`
	Password        string  `json:"password"`
	Role            string  `json:"role"`
	FirstName       string  `json:"first_name"`
	MiddleName      *string `json:"middle_name,omitempty"`
	LastName        string  `json:"last_name"`
	Suffix          *string `json:"suffix,omitempty"`
	ContactNumber   *string `json:"contact_number,omitempty"`
	Email           *string `json:"email,omitempty"`
	Address         *string `json:"address,omitempty"`
	HouseholdNumber *string `json:"household_number,omitempty"`
}

// ChangePasswordRequest is the payload for updating an account's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
