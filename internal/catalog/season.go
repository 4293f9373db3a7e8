package catalog

import "time"

// SeasonForMonth maps a calendar month to the selling season used by
// the relevance sort. November through February count as Winter,
// everything else as Summer. The month is always passed in explicitly
// so callers stay deterministic under test.
func SeasonForMonth(m time.Month) Season {
	switch m {
	case time.November, time.December, time.January, time.February:
		return SeasonWinter
	default:
		return SeasonSummer
	}
}
