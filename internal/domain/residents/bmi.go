package residents

import (
	"fmt"
	"math"
)

// NotAvailable is returned when height or weight is missing.
const NotAvailable = "not available"

// BMI computes the body-mass index and its category band from height in
// centimeters and weight in kilograms. Either input missing or a
// non-positive height yields "not available" for both values; the
// calculation never divides by a missing or zero height.
func BMI(heightCM, weightKG *float64) (value, category string) {
	if heightCM == nil || weightKG == nil || *heightCM <= 0 || *weightKG <= 0 {
		return NotAvailable, NotAvailable
	}

	m := *heightCM / 100
	bmi := *weightKG / (m * m)
	bmi = math.Round(bmi*100) / 100

	switch {
	case bmi < 18.5:
		category = "underweight"
	case bmi < 25:
		category = "normal"
	case bmi < 30:
		category = "overweight"
	default:
		category = "obese"
	}

	return fmt.Sprintf("%.2f", bmi), category
}
