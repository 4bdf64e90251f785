package dashboard

import "context"

// DashboardRepository reads the aggregates the summary is built from.
type DashboardRepository interface {
	CountHouseholds(ctx context.Context) (int, error)
	CountAccountsByRole(ctx context.Context, role string) (int, error)
	ListResidentProfiles(ctx context.Context) ([]*ResidentProfile, error)
	ListMedicineQuantities(ctx context.Context) ([]int, error)
	RecentAnnouncements(ctx context.Context, limit int) ([]*RecentAnnouncement, error)
}
