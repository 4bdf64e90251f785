package residents

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/brgycare/brgycare/internal/platform/telemetry"
)

var validGenders = map[string]bool{
	"male": true, "female": true,
}

var contactNumberPattern = regexp.MustCompile(`^\d{11}$`)

type Service struct {
	residents  ResidentRepository
	households MemberRecounter
}

func NewService(residents ResidentRepository, households MemberRecounter) *Service {
	return &Service{residents: residents, households: households}
}

func (s *Service) validate(r *Resident) error {
	if r.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if r.LastName == "" {
		return fmt.Errorf("last_name is required")
	}
	if r.BirthDate.IsZero() {
		return fmt.Errorf("birth_date is required")
	}
	if r.BirthDate.After(time.Now()) {
		return fmt.Errorf("birth_date cannot be in the future")
	}
	if !validGenders[r.Gender] {
		return fmt.Errorf("invalid gender: %s", r.Gender)
	}
	if r.ContactNumber != nil && *r.ContactNumber != "" && !contactNumberPattern.MatchString(*r.ContactNumber) {
		return fmt.Errorf("contact_number must be 11 digits")
	}
	if r.HeightCM != nil && *r.HeightCM < 0 {
		return fmt.Errorf("height_cm cannot be negative")
	}
	if r.WeightKG != nil && *r.WeightKG < 0 {
		return fmt.Errorf("weight_kg cannot be negative")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, r *Resident) error {
	if err := s.validate(r); err != nil {
		return err
	}
	r.IsActive = true
	r.MarginalizedGroups = ApplyAgeTag(r.MarginalizedGroups, r.BirthDate, time.Now())

	if err := s.residents.Create(ctx, r); err != nil {
		return err
	}
	telemetry.CountResidentRegistered()

	if r.HouseholdNumber != nil && *r.HouseholdNumber != "" {
		if err := s.households.RecountMembers(ctx, *r.HouseholdNumber); err != nil {
			return fmt.Errorf("resident saved but member recount failed: %w", err)
		}
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ResidentView, error) {
	r, err := s.residents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewView(r), nil
}

func (s *Service) Update(ctx context.Context, r *Resident) error {
	if err := s.validate(r); err != nil {
		return err
	}

	prev, err := s.residents.GetByID(ctx, r.ID)
	if err != nil {
		return fmt.Errorf("resident not found")
	}
	r.MarginalizedGroups = ApplyAgeTag(r.MarginalizedGroups, r.BirthDate, time.Now())

	if err := s.residents.Update(ctx, r); err != nil {
		return err
	}

	// Moving a resident between households changes both member counts.
	numbers := map[string]bool{}
	if prev.HouseholdNumber != nil && *prev.HouseholdNumber != "" {
		numbers[*prev.HouseholdNumber] = true
	}
	if r.HouseholdNumber != nil && *r.HouseholdNumber != "" {
		numbers[*r.HouseholdNumber] = true
	}
	for n := range numbers {
		if err := s.households.RecountMembers(ctx, n); err != nil {
			return fmt.Errorf("resident saved but member recount failed: %w", err)
		}
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	r, err := s.residents.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("resident not found")
	}
	if err := s.residents.Delete(ctx, id); err != nil {
		return err
	}
	if r.HouseholdNumber != nil && *r.HouseholdNumber != "" {
		if err := s.households.RecountMembers(ctx, *r.HouseholdNumber); err != nil {
			return fmt.Errorf("resident removed but member recount failed: %w", err)
		}
	}
	return nil
}

func (s *Service) ListByHousehold(ctx context.Context, householdNumber string) ([]*ResidentView, error) {
	items, err := s.residents.ListByHousehold(ctx, householdNumber)
	if err != nil {
		return nil, err
	}
	views := make([]*ResidentView, 0, len(items))
	for _, r := range items {
		views = append(views, NewView(r))
	}
	return views, nil
}

func (s *Service) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*ResidentView, int, error) {
	items, total, err := s.residents.Search(ctx, params, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	views := make([]*ResidentView, 0, len(items))
	for _, r := range items {
		views = append(views, NewView(r))
	}
	return views, total, nil
}
