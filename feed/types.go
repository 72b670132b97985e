package feed

import "time"

// UnknownTripID is used when the feed omits a trip identifier.
const UnknownTripID = "unknown"

// TripRecord is one scheduled or real-time trip from a feed snapshot.
// Immutable once decoded; lifetime is a single poll cycle.
type TripRecord struct {
	TripID  string
	RouteID string
	Stops   []StopTime
}

// StopTime is one stop entry of a trip. Arrival is the zero time when the
// feed carried no usable arrival at this stop.
type StopTime struct {
	StopID  string
	Arrival time.Time
}
