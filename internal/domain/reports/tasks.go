package reports

// BHWTasks is the fixed catalog of weekly task descriptions. Weekly report
// submissions are validated against this list; anything else is rejected.
var BHWTasks = []string{
	"Conducted house-to-house visitation",
	"Monitored blood pressure of residents",
	"Assisted in barangay health station operations",
	"Recorded vital signs of patients",
	"Distributed medicines to residents",
	"Assisted in immunization activities",
	"Weighed infants and children",
	"Monitored malnourished children",
	"Conducted health education sessions",
	"Assisted in prenatal check-ups",
	"Monitored pregnant women",
	"Followed up postpartum mothers",
	"Referred patients to the rural health unit",
	"Assisted in family planning counseling",
	"Conducted deworming activities",
	"Distributed vitamin A supplements",
	"Assisted in operation timbang",
	"Updated resident health records",
	"Monitored senior citizens",
	"Monitored persons with disabilities",
	"Assisted in tuberculosis case finding",
	"Followed up tuberculosis patients on treatment",
	"Conducted dengue prevention campaign",
	"Inspected water sources and sanitation",
	"Assisted in feeding program",
	"Attended barangay health meetings",
	"Attended training or seminar",
	"Prepared and submitted health reports",
	"Assisted in medical mission",
	"Responded to health emergencies",
}

var validTasks = func() map[string]bool {
	m := make(map[string]bool, len(BHWTasks))
	for _, t := range BHWTasks {
		m[t] = true
	}
	return m
}()

// IsValidTask reports whether a task string is in the catalog.
func IsValidTask(task string) bool {
	return validTasks[task]
}
