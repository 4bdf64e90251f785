package residents

import (
	"context"

	"github.com/google/uuid"
)

// ResidentRepository persists resident records.
type ResidentRepository interface {
	Create(ctx context.Context, r *Resident) error
	GetByID(ctx context.Context, id uuid.UUID) (*Resident, error)
	Update(ctx context.Context, r *Resident) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByHousehold(ctx context.Context, householdNumber string) ([]*Resident, error)
	CountByHousehold(ctx context.Context, householdNumber string) (int, error)
	Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Resident, int, error)
}

// MemberRecounter refreshes a household's cached member count after a
// resident mutation.
type MemberRecounter interface {
	RecountMembers(ctx context.Context, householdNumber string) error
}
