package feed

import (
	"testing"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

func marshalFeed(t *testing.T, entities []*gtfsrtpb.FeedEntity) []byte {
	t.Helper()
	fm := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{GtfsRealtimeVersion: proto.String("2.0")},
		Entity: entities,
	}
	b, err := proto.Marshal(fm)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return b
}

func tripUpdateEntity(id, tripID, routeID string, stops map[string]int64) *gtfsrtpb.FeedEntity {
	tu := &gtfsrtpb.TripUpdate{
		Trip: &gtfsrtpb.TripDescriptor{
			TripId:  proto.String(tripID),
			RouteId: proto.String(routeID),
		},
	}
	for stopID, epoch := range stops {
		stu := &gtfsrtpb.TripUpdate_StopTimeUpdate{StopId: proto.String(stopID)}
		if epoch != 0 {
			stu.Arrival = &gtfsrtpb.TripUpdate_StopTimeEvent{Time: proto.Int64(epoch)}
		}
		tu.StopTimeUpdate = append(tu.StopTimeUpdate, stu)
	}
	return &gtfsrtpb.FeedEntity{Id: proto.String(id), TripUpdate: tu}
}

func TestDecodeProtobufTripUpdates(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	body := marshalFeed(t, []*gtfsrtpb.FeedEntity{
		tripUpdateEntity("1", "UP-W_20", "UP-W", map[string]int64{"OAKPARK": 1714565400}),
	})

	records, err := decodeProtobuf(body, chicago)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.TripID != "UP-W_20" || rec.RouteID != "UP-W" {
		t.Errorf("unexpected trip identity: %+v", rec)
	}
	if len(rec.Stops) != 1 {
		t.Fatalf("expected 1 stop, got %d", len(rec.Stops))
	}
	got := rec.Stops[0].Arrival
	if got.Unix() != 1714565400 {
		t.Errorf("expected epoch 1714565400, got %d", got.Unix())
	}
	if got.Location() != chicago {
		t.Errorf("expected agency zone, got %v", got.Location())
	}
}

func TestDecodeProtobufSkipsNonTripEntities(t *testing.T) {
	body := marshalFeed(t, []*gtfsrtpb.FeedEntity{
		{Id: proto.String("alert-only")},
		tripUpdateEntity("2", "t", "R", nil),
	})

	records, err := decodeProtobuf(body, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestDecodeProtobufZeroArrival(t *testing.T) {
	body := marshalFeed(t, []*gtfsrtpb.FeedEntity{
		tripUpdateEntity("3", "t", "R", map[string]int64{"X": 0}),
	})

	records, err := decodeProtobuf(body, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !records[0].Stops[0].Arrival.IsZero() {
		t.Errorf("expected zero arrival, got %v", records[0].Stops[0].Arrival)
	}
}

func TestDecodeProtobufCorruptEnvelope(t *testing.T) {
	if _, err := decodeProtobuf([]byte("definitely not a protobuf"), time.UTC); err == nil {
		t.Fatal("expected a decode error")
	}
}
