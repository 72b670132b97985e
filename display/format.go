// Package display renders snapshots into the strings a host UI shows. It is
// a thin presentation layer over the snapshot contract; nothing here feeds
// back into the poll cycle.
package display

import (
	"fmt"
	"time"

	"github.com/theoremus-urban-solutions/transit-arrivals/arrivals"
)

// TrainState formats one ranked arrival as "HH:MM → HH:MM", appending
// " (Tomorrow)" when the trip starts on a different calendar date than now.
// now must be in the agency timezone.
func TrainState(a arrivals.Arrival, now time.Time) string {
	s := a.StartTime.Format("15:04") + " → " + a.EndTime.Format("15:04")
	if a.Date != now.Format("2006-01-02") {
		s += " (Tomorrow)"
	}
	return s
}

// SnapshotState summarizes a snapshot for a status display. Error snapshots
// render as "Unavailable"; a successful empty result as "No trains
// scheduled".
func SnapshotState(s arrivals.Snapshot) string {
	switch {
	case s.Failed():
		return "Unavailable"
	case len(s.Trains) == 0:
		return "No trains scheduled"
	default:
		return fmt.Sprintf("%d upcoming trains", s.Count)
	}
}
