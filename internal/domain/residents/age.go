package residents

import (
	"fmt"
	"time"
)

// Life-stage buckets in ascending age order.
const (
	StageNewborn = "newborn"
	StageInfant  = "infant"
	StageToddler = "toddler"
	StageChild   = "child"
	StageAdult   = "adult"
	StageSenior  = "senior"
)

// LifeStages lists the buckets from youngest to oldest.
var LifeStages = []string{StageNewborn, StageInfant, StageToddler, StageChild, StageAdult, StageSenior}

// IsLifeStage reports whether tag is one of the derived age buckets.
func IsLifeStage(tag string) bool {
	for _, s := range LifeStages {
		if tag == s {
			return true
		}
	}
	return false
}

// AgeInMonths computes the age in whole months at today. A month is only
// counted once the day-of-month has been reached, so the comparison on the
// day uses < and not <=.
func AgeInMonths(birth, today time.Time) int {
	months := (today.Year()-birth.Year())*12 + int(today.Month()) - int(birth.Month())
	if today.Day() < birth.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months
}

// Classify maps a birth date to a life-stage bucket. An override of "pwd" or
// "pregnant" is returned unchanged; those tags outrank the age bucket.
func Classify(birth, today time.Time, override string) string {
	if override == "pwd" || override == "pregnant" {
		return override
	}

	months := AgeInMonths(birth, today)
	years := months / 12

	switch {
	case months < 2:
		return StageNewborn
	case months < 12:
		return StageInfant
	case years < 4:
		return StageToddler
	case years < 18:
		return StageChild
	case years < 65:
		return StageAdult
	}
	return StageSenior
}

// AgeDisplay renders the age as "{months} mo" under a year, else "{years} yr".
func AgeDisplay(birth, today time.Time) string {
	months := AgeInMonths(birth, today)
	if months < 12 {
		return fmt.Sprintf("%d mo", months)
	}
	return fmt.Sprintf("%d yr", months/12)
}

// ApplyAgeTag replaces any life-stage tag in the group list with the bucket
// derived from the birth date, keeping user-asserted tags untouched. The
// derived tag is appended once, at the end, matching the stored shape.
func ApplyAgeTag(groups []string, birth, today time.Time) []string {
	out := make([]string, 0, len(groups)+1)
	for _, g := range groups {
		if IsLifeStage(g) {
			continue
		}
		out = append(out, g)
	}
	return append(out, Classify(birth, today, ""))
}
