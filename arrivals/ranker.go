package arrivals

import "sort"

const (
	// departedGraceSeconds keeps a trip in the results for five minutes
	// after it left the start stop.
	departedGraceSeconds = -300

	// maxTrains caps the published list.
	maxTrains = 3
)

// Rank orders matched arrivals by time to departure, drops trips outside the
// still-relevant window and truncates to the next three. When every trip has
// already departed, the single earliest one is returned instead of an empty
// list so consumers still see the last run. count is the length of the
// filtered list before truncation, so in the fallback case count is 0 while
// one train is returned.
func Rank(matched []Arrival) (trains []Arrival, count int) {
	sorted := make([]Arrival, len(matched))
	copy(sorted, matched)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TimeDiff < sorted[j].TimeDiff
	})

	upcoming := make([]Arrival, 0, len(sorted))
	for _, a := range sorted {
		if a.TimeDiff > departedGraceSeconds {
			upcoming = append(upcoming, a)
		}
	}
	count = len(upcoming)

	if count == 0 && len(sorted) > 0 {
		upcoming = sorted[:1]
	}
	if len(upcoming) > maxTrains {
		upcoming = upcoming[:maxTrains]
	}
	return upcoming, count
}
