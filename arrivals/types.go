package arrivals

import (
	"encoding/json"
	"time"
)

// Arrival is one matched trip between the configured stop pair.
type Arrival struct {
	TripID    string    `json:"trip_id"`
	StartTime time.Time `json:"start_full"`
	EndTime   time.Time `json:"end_full"`
	// TimeDiff is start minus the poll's current time, in seconds.
	// Negative values mean the train already left the start stop.
	TimeDiff float64 `json:"time_diff"`
	// Date is the calendar date of StartTime in the agency timezone
	// (YYYY-MM-DD). The display layer compares it against today to decide
	// on a "(Tomorrow)" qualifier.
	Date string `json:"date"`
}

// NewArrival builds an Arrival for a trip with arrivals at both stops.
func NewArrival(tripID string, start, end, now time.Time) Arrival {
	return Arrival{
		TripID:    tripID,
		StartTime: start,
		EndTime:   end,
		TimeDiff:  start.Sub(now).Seconds(),
		Date:      start.Format("2006-01-02"),
	}
}

// Snapshot is the published result of one poll cycle. Exactly one shape is
// valid at a time: an error snapshot carries only Err, a data snapshot
// carries everything else. Consumers must check Failed before reading Trains.
type Snapshot struct {
	Trains           []Arrival
	Count            int
	LastUpdate       time.Time
	LineName         string
	StartStationName string
	EndStationName   string
	Err              string
}

// ErrorSnapshot wraps a fetch or decode failure for publication.
func ErrorSnapshot(msg string) Snapshot {
	return Snapshot{Err: msg}
}

// Failed reports whether the snapshot carries an error instead of data.
func (s Snapshot) Failed() bool { return s.Err != "" }

type snapshotData struct {
	Trains           []Arrival `json:"trains"`
	Count            int       `json:"count"`
	LastUpdate       string    `json:"last_update"`
	LineName         string    `json:"line_name"`
	StartStationName string    `json:"start_station_name"`
	EndStationName   string    `json:"end_station_name"`
}

type snapshotError struct {
	Error string `json:"error"`
}

// MarshalJSON keeps the wire shape tagged: error snapshots serialize as
// {"error": ...} with no trains key.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	if s.Failed() {
		return json.Marshal(snapshotError{Error: s.Err})
	}
	trains := s.Trains
	if trains == nil {
		trains = []Arrival{}
	}
	return json.Marshal(snapshotData{
		Trains:           trains,
		Count:            s.Count,
		LastUpdate:       s.LastUpdate.Format(time.RFC3339),
		LineName:         s.LineName,
		StartStationName: s.StartStationName,
		EndStationName:   s.EndStationName,
	})
}
