package residents

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeInMonths(t *testing.T) {
	today := date(2026, time.June, 15)

	tests := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"same day", date(2026, time.June, 15), 0},
		{"one month exactly", date(2026, time.May, 15), 1},
		{"one day short of a month", date(2026, time.May, 16), 0},
		{"eleven months", date(2025, time.July, 15), 11},
		{"one year", date(2025, time.June, 15), 12},
		{"day not yet reached decrements", date(2025, time.June, 16), 11},
		{"future birth clamps to zero", date(2026, time.July, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeInMonths(tt.birth, today); got != tt.want {
				t.Errorf("AgeInMonths() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClassifyBoundaries(t *testing.T) {
	today := date(2026, time.June, 15)

	tests := []struct {
		name  string
		birth time.Time
		want  string
	}{
		{"one month old", date(2026, time.May, 15), StageNewborn},
		{"exactly two months", date(2026, time.April, 15), StageInfant},
		{"eleven months", date(2025, time.July, 15), StageInfant},
		{"exactly twelve months", date(2025, time.June, 15), StageToddler},
		{"three years", date(2023, time.June, 15), StageToddler},
		{"exactly four years", date(2022, time.June, 15), StageChild},
		{"seventeen years", date(2009, time.June, 15), StageChild},
		{"exactly eighteen years", date(2008, time.June, 15), StageAdult},
		{"sixty-four years", date(1962, time.June, 15), StageAdult},
		{"exactly sixty-five years", date(1961, time.June, 15), StageSenior},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.birth, today, ""); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyOverridePrecedence(t *testing.T) {
	today := date(2026, time.June, 15)
	births := []time.Time{
		date(2026, time.May, 1),
		date(2020, time.January, 1),
		date(1950, time.March, 20),
	}

	for _, b := range births {
		if got := Classify(b, today, "pwd"); got != "pwd" {
			t.Errorf("Classify(%v, pwd) = %q, want pwd", b, got)
		}
		if got := Classify(b, today, "pregnant"); got != "pregnant" {
			t.Errorf("Classify(%v, pregnant) = %q, want pregnant", b, got)
		}
	}

	// Other tags are not overrides.
	if got := Classify(date(1950, time.March, 20), today, "solo parent"); got == "solo parent" {
		t.Error("non-override tag must not replace the age bucket")
	}
}

func TestClassifyMonotonicity(t *testing.T) {
	today := date(2026, time.June, 15)

	stageIndex := func(stage string) int {
		for i, s := range LifeStages {
			if s == stage {
				return i
			}
		}
		t.Fatalf("unknown stage %q", stage)
		return -1
	}

	// Walk birth dates from oldest to youngest; the stage index must be
	// non-increasing as the subject gets younger.
	prev := len(LifeStages)
	for birth := date(1940, time.January, 1); birth.Before(today); birth = birth.AddDate(0, 1, 0) {
		idx := stageIndex(Classify(birth, today, ""))
		if idx > prev {
			t.Fatalf("stage went up from %d to %d at birth %v", prev, idx, birth)
		}
		prev = idx
	}
}

func TestAgeDisplay(t *testing.T) {
	today := date(2026, time.June, 15)

	tests := []struct {
		birth time.Time
		want  string
	}{
		{date(2026, time.April, 15), "2 mo"},
		{date(2025, time.July, 15), "11 mo"},
		{date(2025, time.June, 15), "1 yr"},
		{date(2000, time.June, 15), "26 yr"},
	}

	for _, tt := range tests {
		if got := AgeDisplay(tt.birth, today); got != tt.want {
			t.Errorf("AgeDisplay(%v) = %q, want %q", tt.birth, got, tt.want)
		}
	}
}

func TestApplyAgeTag(t *testing.T) {
	today := date(2026, time.June, 15)
	birth := date(2000, time.June, 15) // adult

	groups := ApplyAgeTag([]string{"pwd", "child", "solo parent"}, birth, today)

	want := []string{"pwd", "solo parent", "adult"}
	if len(groups) != len(want) {
		t.Fatalf("groups = %v, want %v", groups, want)
	}
	for i := range want {
		if groups[i] != want[i] {
			t.Errorf("groups[%d] = %q, want %q", i, groups[i], want[i])
		}
	}

	// Applying twice must not duplicate the age tag.
	again := ApplyAgeTag(groups, birth, today)
	if len(again) != len(want) {
		t.Errorf("second apply grew the list: %v", again)
	}
}
