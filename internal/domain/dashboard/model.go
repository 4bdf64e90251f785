package dashboard

import "time"

// Summary is the payload behind the admin dashboard: headline totals plus
// the distribution breakdowns the charts are drawn from.
type Summary struct {
	TotalResidents  int `json:"total_residents"`
	TotalHouseholds int `json:"total_households"`
	TotalBHWs       int `json:"total_bhws"`

	LifeStages         map[string]int `json:"life_stages"`
	MarginalizedGroups map[string]int `json:"marginalized_groups"`

	Medicines MedicineSummary `json:"medicines"`

	RecentAnnouncements []*RecentAnnouncement `json:"recent_announcements"`
}

// MedicineSummary counts batches by availability.
type MedicineSummary struct {
	TotalBatches int `json:"total_batches"`
	Available    int `json:"available"`
	OutOfStock   int `json:"out_of_stock"`
}

// ResidentProfile is the slice of a resident record the classifier needs.
type ResidentProfile struct {
	BirthDate time.Time
	Tags      []string
}

// RecentAnnouncement is a trimmed announcement for the dashboard feed.
type RecentAnnouncement struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Important bool   `json:"important"`
}
