package households

import (
	"context"

	"github.com/google/uuid"
)

// HouseholdRepository persists household records.
type HouseholdRepository interface {
	Create(ctx context.Context, h *Household) error
	GetByID(ctx context.Context, id uuid.UUID) (*Household, error)
	GetByNumber(ctx context.Context, householdNumber string) (*Household, error)
	Update(ctx context.Context, h *Household) error
	UpdateTotalMembers(ctx context.Context, householdNumber string, total int) error
	// DeleteWithResidents removes the household and every resident that
	// references its household number in one transaction.
	DeleteWithResidents(ctx context.Context, id uuid.UUID, householdNumber string) error
	// Search returns matching households in plain string order. A limit of
	// zero or less returns the whole filtered set.
	Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Household, int, error)
}

// ResidentCounter is the slice of the resident store the household service
// needs for keeping total_members in sync.
type ResidentCounter interface {
	CountByHousehold(ctx context.Context, householdNumber string) (int, error)
}
