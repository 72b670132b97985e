package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Entry-level skip reasons. Callers drop the entry and move on.
var (
	errNoTripUpdate = errors.New("entity has no trip_update")
	errNoArrival    = errors.New("stop has no arrival time")
)

type jsonFeedEntity struct {
	TripUpdate *jsonTripUpdate `json:"trip_update"`
}

type jsonTripUpdate struct {
	Trip           jsonTripDescriptor   `json:"trip"`
	StopTimeUpdate []jsonStopTimeUpdate `json:"stop_time_update"`
}

type jsonTripDescriptor struct {
	TripID  string `json:"trip_id"`
	RouteID string `json:"route_id"`
}

type jsonStopTimeUpdate struct {
	StopID  string             `json:"stop_id"`
	Arrival *jsonStopTimeEvent `json:"arrival"`
}

type jsonStopTimeEvent struct {
	Time jsonFeedTime `json:"time"`
}

// jsonFeedTime carries the nested arrival encoding. The low field is either
// an ISO-8601 string (possibly with a trailing Z) or an epoch number, so it
// is kept raw and interpreted in parseArrival.
type jsonFeedTime struct {
	Low json.RawMessage `json:"low"`
}

func decodeJSON(body []byte, loc *time.Location) ([]TripRecord, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("malformed JSON feed: %w", err)
	}

	records := make([]TripRecord, 0, len(entries))
	for _, raw := range entries {
		rec, err := decodeJSONEntry(raw, loc)
		if err != nil {
			// Bad entries never poison the rest of the feed.
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// decodeJSONEntry decodes a single feed entity. A returned error means the
// entry is skipped, not that decoding failed overall.
func decodeJSONEntry(raw json.RawMessage, loc *time.Location) (TripRecord, error) {
	var entity jsonFeedEntity
	if err := json.Unmarshal(raw, &entity); err != nil {
		return TripRecord{}, err
	}
	if entity.TripUpdate == nil {
		return TripRecord{}, errNoTripUpdate
	}

	tu := entity.TripUpdate
	rec := TripRecord{
		TripID:  tu.Trip.TripID,
		RouteID: tu.Trip.RouteID,
		Stops:   make([]StopTime, 0, len(tu.StopTimeUpdate)),
	}
	if rec.TripID == "" {
		rec.TripID = UnknownTripID
	}

	for _, stu := range tu.StopTimeUpdate {
		if stu.StopID == "" {
			continue
		}
		st := StopTime{StopID: stu.StopID}
		if stu.Arrival != nil {
			if t, err := parseArrival(stu.Arrival.Time.Low, loc); err == nil {
				st.Arrival = t
			}
		}
		rec.Stops = append(rec.Stops, st)
	}
	return rec, nil
}

// parseArrival interprets the arrival.time.low value. A trailing Z is
// normalized to an explicit UTC offset before parsing; bare numbers are
// treated as epoch seconds.
func parseArrival(raw json.RawMessage, loc *time.Location) (time.Time, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return time.Time{}, errNoArrival
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, err
		}
		if s == "" {
			return time.Time{}, errNoArrival
		}
		if strings.HasSuffix(s, "Z") {
			s = strings.TrimSuffix(s, "Z") + "+00:00"
		}
		t, err := time.Parse("2006-01-02T15:04:05-07:00", s)
		if err != nil {
			return time.Time{}, err
		}
		return t.In(loc), nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return time.Time{}, err
	}
	sec, err := n.Int64()
	if err != nil {
		return time.Time{}, err
	}
	if sec == 0 {
		return time.Time{}, errNoArrival
	}
	return time.Unix(sec, 0).In(loc), nil
}
