package feed

import (
	"fmt"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

func decodeProtobuf(body []byte, loc *time.Location) ([]TripRecord, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(body, &fm); err != nil {
		return nil, fmt.Errorf("malformed GTFS-RT feed: %w", err)
	}

	records := make([]TripRecord, 0, len(fm.Entity))
	for _, e := range fm.Entity {
		if e.TripUpdate == nil || e.TripUpdate.Trip == nil {
			continue
		}
		tu := e.TripUpdate
		rec := TripRecord{TripID: UnknownTripID}
		if tu.Trip.TripId != nil && *tu.Trip.TripId != "" {
			rec.TripID = *tu.Trip.TripId
		}
		if tu.Trip.RouteId != nil {
			rec.RouteID = *tu.Trip.RouteId
		}
		rec.Stops = make([]StopTime, 0, len(tu.StopTimeUpdate))
		for _, stu := range tu.StopTimeUpdate {
			if stu.StopId == nil {
				continue
			}
			st := StopTime{StopID: *stu.StopId}
			if stu.Arrival != nil && stu.Arrival.Time != nil {
				if sec := int64(*stu.Arrival.Time); sec != 0 {
					st.Arrival = time.Unix(sec, 0).In(loc)
				}
			}
			rec.Stops = append(rec.Stops, st)
		}
		records = append(records, rec)
	}
	return records, nil
}
