package announcements

import "testing"

func countDays(weeks [][]int) int {
	n := 0
	for _, w := range weeks {
		for _, d := range w {
			if d != 0 {
				n++
			}
		}
	}
	return n
}

func TestBuildMonthCalendarLeapFebruary(t *testing.T) {
	weeks := BuildMonthCalendar(2024, 1)

	if got := countDays(weeks); got != 29 {
		t.Errorf("February 2024 has %d day cells, want 29", got)
	}
	for i, w := range weeks {
		if len(w) != 7 {
			t.Errorf("week %d has %d cells, want 7", i, len(w))
		}
	}

	// 2024-02-01 was a Thursday, so four empty slots lead the first week.
	first := weeks[0]
	for i := 0; i < 4; i++ {
		if first[i] != 0 {
			t.Errorf("lead slot %d = %d, want 0", i, first[i])
		}
	}
	if first[4] != 1 {
		t.Errorf("first day cell = %d, want 1", first[4])
	}
}

func TestBuildMonthCalendarNonLeapFebruary(t *testing.T) {
	weeks := BuildMonthCalendar(2023, 1)
	if got := countDays(weeks); got != 28 {
		t.Errorf("February 2023 has %d day cells, want 28", got)
	}
}

func TestBuildMonthCalendarAllMonths(t *testing.T) {
	wantDays := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	for month := 0; month < 12; month++ {
		weeks := BuildMonthCalendar(2023, month)

		if got := countDays(weeks); got != wantDays[month] {
			t.Errorf("month %d has %d days, want %d", month, got, wantDays[month])
		}
		if len(weeks) < 4 || len(weeks) > 6 {
			t.Errorf("month %d has %d weeks, want 4 to 6", month, len(weeks))
		}
		for i, w := range weeks {
			if len(w) != 7 {
				t.Errorf("month %d week %d has %d cells, want 7", month, i, len(w))
			}
		}

		// Days must appear in order 1..N with no gaps.
		expect := 1
		for _, w := range weeks {
			for _, d := range w {
				if d == 0 {
					continue
				}
				if d != expect {
					t.Fatalf("month %d: day %d out of order, want %d", month, d, expect)
				}
				expect++
			}
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2024, 1, 29},
		{2023, 1, 28},
		{2000, 1, 29},
		{1900, 1, 28},
		{2023, 0, 31},
		{2023, 11, 31},
		{2023, 3, 30},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}
