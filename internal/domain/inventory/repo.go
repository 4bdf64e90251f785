package inventory

import (
	"context"

	"github.com/google/uuid"
)

// MedicineRepository persists medicine batches.
type MedicineRepository interface {
	Create(ctx context.Context, m *Medicine) error
	GetByID(ctx context.Context, id uuid.UUID) (*Medicine, error)
	Update(ctx context.Context, m *Medicine) error
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]*Medicine, error)
	Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Medicine, int, error)
}

// ReleaseRepository persists the append-only release audit trail.
type ReleaseRepository interface {
	Create(ctx context.Context, rel *Release) error
	ListByMedicine(ctx context.Context, medicineID uuid.UUID) ([]*Release, error)
	Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Release, int, error)
}
