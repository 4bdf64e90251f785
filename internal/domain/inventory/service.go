package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brgycare/brgycare/internal/platform/telemetry"
)

type Service struct {
	medicines MedicineRepository
	releases  ReleaseRepository
}

func NewService(medicines MedicineRepository, releases ReleaseRepository) *Service {
	return &Service{medicines: medicines, releases: releases}
}

func (s *Service) Create(ctx context.Context, m *Medicine) error {
	if m.MedCode == "" {
		return fmt.Errorf("med_code is required")
	}
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	if m.ExpiryDate.IsZero() {
		return fmt.Errorf("expiry_date is required")
	}
	m.Status = DeriveStatus(m.Quantity)
	return s.medicines.Create(ctx, m)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Medicine, error) {
	m, err := s.medicines.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Status = DeriveStatus(m.Quantity)
	return m, nil
}

func (s *Service) Update(ctx context.Context, m *Medicine) error {
	if m.MedCode == "" {
		return fmt.Errorf("med_code is required")
	}
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	m.Status = DeriveStatus(m.Quantity)
	return s.medicines.Update(ctx, m)
}

// Delete removes a batch, allowed only once it is expired or depleted.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := s.medicines.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("medicine not found")
	}
	if !m.Expired(time.Now()) && m.Quantity > 0 {
		return fmt.Errorf("medicine still has stock and is not expired")
	}
	return s.medicines.Delete(ctx, id)
}

// ReleaseStock decrements a batch and records the audit entry. The two
// writes are sequential: a failed audit insert after a successful decrement
// is reported but the decrement is not rolled back.
func (s *Service) ReleaseStock(ctx context.Context, id uuid.UUID, req *ReleaseRequest, releasedBy string) (*Release, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if req.Barangay == "" {
		return nil, fmt.Errorf("barangay is required")
	}

	m, err := s.medicines.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("medicine not found")
	}
	if req.Amount > m.Quantity {
		return nil, fmt.Errorf("amount %d exceeds available quantity %d", req.Amount, m.Quantity)
	}

	before := m.Quantity
	after := before - req.Amount
	if err := s.medicines.UpdateQuantity(ctx, id, after, DeriveStatus(after)); err != nil {
		return nil, fmt.Errorf("updating quantity: %w", err)
	}

	rel := &Release{
		MedicineID:     m.ID,
		MedCode:        m.MedCode,
		Name:           m.Name,
		Amount:         req.Amount,
		QuantityBefore: before,
		QuantityAfter:  after,
		Barangay:       req.Barangay,
		ReleasedBy:     releasedBy,
	}
	if err := s.releases.Create(ctx, rel); err != nil {
		return nil, fmt.Errorf("stock released but audit record failed: %w", err)
	}

	telemetry.CountMedicineReleased(m.MedCode, req.Amount)
	return rel, nil
}

// Restock increases a batch's quantity.
func (s *Service) Restock(ctx context.Context, id uuid.UUID, req *RestockRequest) (*Medicine, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	m, err := s.medicines.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("medicine not found")
	}

	m.Quantity += req.Amount
	m.Status = DeriveStatus(m.Quantity)
	if err := s.medicines.UpdateQuantity(ctx, id, m.Quantity, m.Status); err != nil {
		return nil, fmt.Errorf("updating quantity: %w", err)
	}
	return m, nil
}

func (s *Service) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Medicine, int, error) {
	items, total, err := s.medicines.Search(ctx, params, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	for _, m := range items {
		m.Status = DeriveStatus(m.Quantity)
	}
	return items, total, nil
}

// Grouped returns all batches grouped by med_code in first-seen order.
func (s *Service) Grouped(ctx context.Context) ([]*Group, error) {
	items, err := s.medicines.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range items {
		m.Status = DeriveStatus(m.Quantity)
	}
	return GroupByCode(items), nil
}

func (s *Service) Releases(ctx context.Context, params map[string]string, limit, offset int) ([]*Release, int, error) {
	return s.releases.Search(ctx, params, limit, offset)
}

func (s *Service) ReleasesForMedicine(ctx context.Context, id uuid.UUID) ([]*Release, error) {
	return s.releases.ListByMedicine(ctx, id)
}
