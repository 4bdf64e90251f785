package dashboard

import (
	"context"
	"time"

	"github.com/brgycare/brgycare/internal/domain/inventory"
	"github.com/brgycare/brgycare/internal/domain/residents"
	"github.com/brgycare/brgycare/internal/platform/auth"
)

const recentAnnouncementCount = 5

type Service struct {
	repo DashboardRepository
	now  func() time.Time
}

func NewService(repo DashboardRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Summary aggregates the dashboard counts in one pass over the record sets.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	profiles, err := s.repo.ListResidentProfiles(ctx)
	if err != nil {
		return nil, err
	}
	households, err := s.repo.CountHouseholds(ctx)
	if err != nil {
		return nil, err
	}
	bhws, err := s.repo.CountAccountsByRole(ctx, auth.RoleBHW)
	if err != nil {
		return nil, err
	}
	quantities, err := s.repo.ListMedicineQuantities(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.RecentAnnouncements(ctx, recentAnnouncementCount)
	if err != nil {
		return nil, err
	}

	today := s.now()
	sum := &Summary{
		TotalResidents:      len(profiles),
		TotalHouseholds:     households,
		TotalBHWs:           bhws,
		LifeStages:          make(map[string]int),
		MarginalizedGroups:  make(map[string]int),
		RecentAnnouncements: recent,
	}

	for _, p := range profiles {
		sum.LifeStages[residents.Classify(p.BirthDate, today, "")]++
		for _, tag := range p.Tags {
			if residents.IsLifeStage(tag) {
				continue
			}
			sum.MarginalizedGroups[tag]++
		}
	}

	sum.Medicines.TotalBatches = len(quantities)
	for _, q := range quantities {
		if inventory.DeriveStatus(q) == inventory.StatusOutOfStock {
			sum.Medicines.OutOfStock++
		} else {
			sum.Medicines.Available++
		}
	}

	return sum, nil
}
