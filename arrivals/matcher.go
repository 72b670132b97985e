package arrivals

import (
	"time"

	"github.com/theoremus-urban-solutions/transit-arrivals/feed"
)

// MatchStops evaluates one trip record against the configured line and stop
// pair. The route filter is an exact, case-sensitive string match. A stop
// entry with a zero arrival is treated as "no arrival here". The result is
// both-or-nothing: trips matching only one of the two stops produce nothing.
func MatchStops(rec feed.TripRecord, lineID, startStopID, endStopID string, now time.Time) (Arrival, bool) {
	if rec.RouteID != lineID {
		return Arrival{}, false
	}

	var start, end time.Time
	for _, st := range rec.Stops {
		if st.Arrival.IsZero() {
			continue
		}
		switch st.StopID {
		case startStopID:
			start = st.Arrival
		case endStopID:
			end = st.Arrival
		}
	}
	if start.IsZero() || end.IsZero() {
		return Arrival{}, false
	}
	return NewArrival(rec.TripID, start, end, now), true
}

// MatchAll runs MatchStops over a full feed snapshot.
func MatchAll(records []feed.TripRecord, lineID, startStopID, endStopID string, now time.Time) []Arrival {
	matched := make([]Arrival, 0, len(records))
	for _, rec := range records {
		if a, ok := MatchStops(rec, lineID, startStopID, endStopID, now); ok {
			matched = append(matched, a)
		}
	}
	return matched
}
