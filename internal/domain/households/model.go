package households

import (
	"time"

	"github.com/google/uuid"
)

// Household maps to the households table. The household number is a
// human-assigned string (e.g. "BRGY7-16") that residents reference directly,
// so it must stay unique even though it is not the primary key.
type Household struct {
	ID              uuid.UUID `db:"id" json:"id"`
	HouseholdNumber string    `db:"household_number" json:"household_number"`
	HeadFirstName   string    `db:"head_first_name" json:"head_first_name"`
	HeadMiddleName  *string   `db:"head_middle_name" json:"head_middle_name,omitempty"`
	HeadLastName    string    `db:"head_last_name" json:"head_last_name"`
	HeadSuffix      *string   `db:"head_suffix" json:"head_suffix,omitempty"`
	Address         string    `db:"address" json:"address"`
	ContactNumber   *string   `db:"contact_number" json:"contact_number,omitempty"`
	Email           *string   `db:"email" json:"email,omitempty"`
	FamilySize      int       `db:"family_size" json:"family_size"`
	TotalMembers    int       `db:"total_members" json:"total_members"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
