package households

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

var contactNumberPattern = regexp.MustCompile(`^\d{11}$`)

type Service struct {
	households HouseholdRepository
	residents  ResidentCounter
}

func NewService(households HouseholdRepository, residents ResidentCounter) *Service {
	return &Service{households: households, residents: residents}
}

func (s *Service) Create(ctx context.Context, h *Household) error {
	if h.HouseholdNumber == "" {
		return fmt.Errorf("household_number is required")
	}
	if h.HeadFirstName == "" {
		return fmt.Errorf("head_first_name is required")
	}
	if h.HeadLastName == "" {
		return fmt.Errorf("head_last_name is required")
	}
	if h.Address == "" {
		return fmt.Errorf("address is required")
	}
	if h.FamilySize < 0 {
		return fmt.Errorf("family_size cannot be negative")
	}
	if h.ContactNumber != nil && *h.ContactNumber != "" && !contactNumberPattern.MatchString(*h.ContactNumber) {
		return fmt.Errorf("contact_number must be 11 digits")
	}

	// The number is a denormalized key referenced by residents, so check it
	// is free before inserting.
	if existing, err := s.households.GetByNumber(ctx, h.HouseholdNumber); err == nil && existing != nil {
		return fmt.Errorf("household number already in use: %s", h.HouseholdNumber)
	}

	return s.households.Create(ctx, h)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Household, error) {
	return s.households.GetByID(ctx, id)
}

func (s *Service) GetByNumber(ctx context.Context, householdNumber string) (*Household, error) {
	return s.households.GetByNumber(ctx, householdNumber)
}

func (s *Service) Update(ctx context.Context, h *Household) error {
	if h.HeadFirstName == "" {
		return fmt.Errorf("head_first_name is required")
	}
	if h.HeadLastName == "" {
		return fmt.Errorf("head_last_name is required")
	}
	if h.ContactNumber != nil && *h.ContactNumber != "" && !contactNumberPattern.MatchString(*h.ContactNumber) {
		return fmt.Errorf("contact_number must be 11 digits")
	}
	return s.households.Update(ctx, h)
}

// Delete removes a household together with all of its residents. The two
// deletes run in one transaction so a failure leaves both intact.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	h, err := s.households.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("household not found")
	}
	return s.households.DeleteWithResidents(ctx, id, h.HouseholdNumber)
}

// RecountMembers refreshes the cached member count from the resident store.
// Callers invoke it after every resident mutation; concurrent recounts are
// last-write-wins.
func (s *Service) RecountMembers(ctx context.Context, householdNumber string) error {
	count, err := s.residents.CountByHousehold(ctx, householdNumber)
	if err != nil {
		return fmt.Errorf("counting residents: %w", err)
	}
	return s.households.UpdateTotalMembers(ctx, householdNumber, count)
}

// Search returns households ordered by the numeric-suffix comparator rather
// than plain string order, so "BRGY7-2" lists before "BRGY7-10". The full
// filtered set is fetched and sorted before the page is sliced, otherwise
// the comparator order would only hold within a page. A barangay has a few
// hundred households at most.
func (s *Service) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Household, int, error) {
	items, total, err := s.households.Search(ctx, params, 0, 0)
	if err != nil {
		return nil, 0, err
	}
	SortByHouseholdNumber(items)

	if offset > len(items) {
		offset = len(items)
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end], total, nil
}
