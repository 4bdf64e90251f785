package households

import (
	"sort"
	"strconv"
	"strings"
)

// numericKey extracts the sortable integer from a household number. It takes
// the substring after the last '-' if that parses as an integer, otherwise it
// tries the whole string. The second return reports whether a key was found.
func numericKey(s string) (int, bool) {
	if i := strings.LastIndex(s, "-"); i >= 0 {
		if n, err := strconv.Atoi(s[i+1:]); err == nil {
			return n, true
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	return 0, false
}

// CompareHouseholdNumbers is a total order over household-number strings.
// Numbers with a numeric key sort numerically and before numbers without one;
// the rest compare lexicographically.
func CompareHouseholdNumbers(a, b string) int {
	na, oka := numericKey(a)
	nb, okb := numericKey(b)

	switch {
	case oka && okb:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return strings.Compare(a, b)
	case oka:
		return -1
	case okb:
		return 1
	}
	return strings.Compare(a, b)
}

// SortByHouseholdNumber orders households in place using
// CompareHouseholdNumbers. The sort is stable so equal keys keep their
// original relative order.
func SortByHouseholdNumber(list []*Household) {
	sort.SliceStable(list, func(i, j int) bool {
		return CompareHouseholdNumbers(list[i].HouseholdNumber, list[j].HouseholdNumber) < 0
	})
}
