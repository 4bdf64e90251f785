package residents

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repositories --

type mockResidentRepo struct {
	residents map[uuid.UUID]*Resident
}

func newMockResidentRepo() *mockResidentRepo {
	return &mockResidentRepo{residents: make(map[uuid.UUID]*Resident)}
}

func (m *mockResidentRepo) Create(_ context.Context, r *Resident) error {
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	r.UpdatedAt = time.Now()
	m.residents[r.ID] = r
	return nil
}

func (m *mockResidentRepo) GetByID(_ context.Context, id uuid.UUID) (*Resident, error) {
	r, ok := m.residents[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return r, nil
}

func (m *mockResidentRepo) Update(_ context.Context, r *Resident) error {
	if _, ok := m.residents[r.ID]; !ok {
		return fmt.Errorf("not found")
	}
	m.residents[r.ID] = r
	return nil
}

func (m *mockResidentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.residents, id)
	return nil
}

func (m *mockResidentRepo) ListByHousehold(_ context.Context, number string) ([]*Resident, error) {
	var result []*Resident
	for _, r := range m.residents {
		if r.HouseholdNumber != nil && *r.HouseholdNumber == number {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockResidentRepo) CountByHousehold(_ context.Context, number string) (int, error) {
	count := 0
	for _, r := range m.residents {
		if r.HouseholdNumber != nil && *r.HouseholdNumber == number {
			count++
		}
	}
	return count, nil
}

func (m *mockResidentRepo) Search(_ context.Context, _ map[string]string, limit, offset int) ([]*Resident, int, error) {
	var result []*Resident
	for _, r := range m.residents {
		result = append(result, r)
	}
	total := len(result)
	if offset >= len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

type mockRecounter struct {
	calls []string
}

func (m *mockRecounter) RecountMembers(_ context.Context, number string) error {
	m.calls = append(m.calls, number)
	return nil
}

func str(s string) *string { return &s }

func newTestResident() *Resident {
	return &Resident{
		FirstName:       "Liza",
		LastName:        "Manalo",
		BirthDate:       time.Date(1990, time.March, 10, 0, 0, 0, 0, time.UTC),
		Gender:          "female",
		HouseholdNumber: str("BRGY7-1"),
	}
}

// -- Tests --

func TestCreateResident(t *testing.T) {
	repo := newMockResidentRepo()
	recounter := &mockRecounter{}
	svc := NewService(repo, recounter)

	r := newTestResident()
	r.MarginalizedGroups = []string{"solo parent"}
	if err := svc.Create(context.Background(), r); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if r.ID == uuid.Nil {
		t.Error("expected generated ID")
	}
	if !r.IsActive {
		t.Error("new residents should be active")
	}

	// The derived age bucket is appended after the asserted tags.
	if len(r.MarginalizedGroups) != 2 || r.MarginalizedGroups[1] != StageAdult {
		t.Errorf("MarginalizedGroups = %v, want [solo parent adult]", r.MarginalizedGroups)
	}

	if len(recounter.calls) != 1 || recounter.calls[0] != "BRGY7-1" {
		t.Errorf("recount calls = %v, want [BRGY7-1]", recounter.calls)
	}
}

func TestCreateResidentValidation(t *testing.T) {
	svc := NewService(newMockResidentRepo(), &mockRecounter{})
	bad := "123" // not 11 digits

	tests := []struct {
		name   string
		mutate func(*Resident)
	}{
		{"missing first name", func(r *Resident) { r.FirstName = "" }},
		{"missing birth date", func(r *Resident) { r.BirthDate = time.Time{} }},
		{"future birth date", func(r *Resident) { r.BirthDate = time.Now().AddDate(1, 0, 0) }},
		{"invalid gender", func(r *Resident) { r.Gender = "other" }},
		{"bad contact number", func(r *Resident) { r.ContactNumber = &bad }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResident()
			tt.mutate(r)
			if err := svc.Create(context.Background(), r); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestUpdateResidentRecountsBothHouseholds(t *testing.T) {
	repo := newMockResidentRepo()
	recounter := &mockRecounter{}
	svc := NewService(repo, recounter)

	r := newTestResident()
	if err := svc.Create(context.Background(), r); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	recounter.calls = nil

	moved := *r
	moved.HouseholdNumber = str("BRGY7-2")
	if err := svc.Update(context.Background(), &moved); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	seen := map[string]bool{}
	for _, n := range recounter.calls {
		seen[n] = true
	}
	if !seen["BRGY7-1"] || !seen["BRGY7-2"] {
		t.Errorf("recount calls = %v, want both old and new household", recounter.calls)
	}
}

func TestUpdateRefreshesAgeTag(t *testing.T) {
	repo := newMockResidentRepo()
	svc := NewService(repo, &mockRecounter{})

	r := newTestResident()
	if err := svc.Create(context.Background(), r); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Correct the birth date to a toddler's; the stale adult tag must be
	// replaced, not accumulated.
	updated := *r
	updated.BirthDate = time.Now().AddDate(-2, 0, 0)
	if err := svc.Update(context.Background(), &updated); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	stages := 0
	for _, g := range updated.MarginalizedGroups {
		if IsLifeStage(g) {
			stages++
			if g != StageToddler {
				t.Errorf("age tag = %q, want %q", g, StageToddler)
			}
		}
	}
	if stages != 1 {
		t.Errorf("found %d age tags, want exactly 1: %v", stages, updated.MarginalizedGroups)
	}
}

func TestDeleteResidentRecounts(t *testing.T) {
	repo := newMockResidentRepo()
	recounter := &mockRecounter{}
	svc := NewService(repo, recounter)

	r := newTestResident()
	if err := svc.Create(context.Background(), r); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	recounter.calls = nil

	if err := svc.Delete(context.Background(), r.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(recounter.calls) != 1 || recounter.calls[0] != "BRGY7-1" {
		t.Errorf("recount calls = %v, want [BRGY7-1]", recounter.calls)
	}

	if err := svc.Delete(context.Background(), uuid.New()); err == nil {
		t.Error("expected error deleting unknown resident")
	}
}

func TestGetReturnsDerivedView(t *testing.T) {
	repo := newMockResidentRepo()
	svc := NewService(repo, &mockRecounter{})

	r := newTestResident()
	h, w := 170.0, 70.0
	r.HeightCM, r.WeightKG = &h, &w
	if err := svc.Create(context.Background(), r); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	v, err := svc.Get(context.Background(), r.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if v.LifeStage != StageAdult {
		t.Errorf("LifeStage = %q, want adult", v.LifeStage)
	}
	if v.BMI != "24.22" || v.BMICategory != "normal" {
		t.Errorf("BMI = %q (%q), want 24.22 normal", v.BMI, v.BMICategory)
	}
}

func TestOverrideTagInView(t *testing.T) {
	repo := newMockResidentRepo()
	svc := NewService(repo, &mockRecounter{})

	r := newTestResident()
	r.MarginalizedGroups = []string{"pregnant"}
	if err := svc.Create(context.Background(), r); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	v, err := svc.Get(context.Background(), r.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if v.LifeStage != "pregnant" {
		t.Errorf("LifeStage = %q, want pregnant override", v.LifeStage)
	}
}
