package residents

import (
	"time"

	"github.com/google/uuid"
)

// Resident maps to the residents table. Residents reference their household
// by its human-assigned number, not by row id; the marginalized_groups list
// mixes user-asserted tags (pwd, pregnant, solo parent) with the derived
// age-bucket tag, which is replaced on every write.
type Resident struct {
	ID                uuid.UUID `db:"id" json:"id"`
	FirstName         string    `db:"first_name" json:"first_name"`
	MiddleName        *string   `db:"middle_name" json:"middle_name,omitempty"`
	LastName          string    `db:"last_name" json:"last_name"`
	Suffix            *string   `db:"suffix" json:"suffix,omitempty"`
	BirthDate         time.Time `db:"birth_date" json:"birth_date"`
	BirthPlace        *string   `db:"birth_place" json:"birth_place,omitempty"`
	Gender            string    `db:"gender" json:"gender"`
	ContactNumber     *string   `db:"contact_number" json:"contact_number,omitempty"`
	HouseholdNumber   *string   `db:"household_number" json:"household_number,omitempty"`
	MarginalizedGroups []string `db:"marginalized_groups" json:"marginalized_groups"`
	HeightCM          *float64  `db:"height_cm" json:"height_cm,omitempty"`
	WeightKG          *float64  `db:"weight_kg" json:"weight_kg,omitempty"`
	BloodType         *string   `db:"blood_type" json:"blood_type,omitempty"`
	IsActive          bool      `db:"is_active" json:"is_active"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// ResidentView is a Resident plus the derived display values.
type ResidentView struct {
	*Resident
	LifeStage   string `json:"life_stage"`
	AgeDisplay  string `json:"age_display"`
	BMI         string `json:"bmi"`
	BMICategory string `json:"bmi_category"`
}

// NewView computes the derived fields for a resident as of now.
func NewView(r *Resident) *ResidentView {
	today := time.Now()
	bmi, cat := BMI(r.HeightCM, r.WeightKG)
	return &ResidentView{
		Resident:    r,
		LifeStage:   Classify(r.BirthDate, today, overrideTag(r.MarginalizedGroups)),
		AgeDisplay:  AgeDisplay(r.BirthDate, today),
		BMI:         bmi,
		BMICategory: cat,
	}
}

// overrideTag returns the first override tag present in the group list.
func overrideTag(groups []string) string {
	for _, g := range groups {
		if g == "pwd" || g == "pregnant" {
			return g
		}
	}
	return ""
}
