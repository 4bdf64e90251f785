package announcements

import "time"

// DaysInMonth returns the number of days in the zero-based month of year.
// Day 0 of the following month is the last day of this one.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildMonthCalendar expands a year and zero-based month into week-major
// rows of exactly 7 slots. Slots before the first day and after the last day
// hold 0; days run 1..DaysInMonth. The first day lands on its weekday column
// with Sunday in column 0.
func BuildMonthCalendar(year, month int) [][]int {
	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday())
	days := DaysInMonth(year, month)

	var weeks [][]int
	week := make([]int, 0, 7)

	for i := 0; i < lead; i++ {
		week = append(week, 0)
	}
	for d := 1; d <= days; d++ {
		week = append(week, d)
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]int, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, 0)
		}
		weeks = append(weeks, week)
	}
	return weeks
}
