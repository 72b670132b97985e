package arrivals

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSnapshotMarshalTaggedError(t *testing.T) {
	snap := ErrorSnapshot("HTTP 500")

	buf, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(buf, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(decoded["error"]) != `"HTTP 500"` {
		t.Errorf("expected error field, got %s", buf)
	}
	if _, hasTrains := decoded["trains"]; hasTrains {
		t.Errorf("error snapshot must not carry a trains key: %s", buf)
	}
	if len(decoded) != 1 {
		t.Errorf("error snapshot should carry only the error field: %s", buf)
	}
}

func TestSnapshotMarshalData(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	snap := Snapshot{
		Trains:           []Arrival{NewArrival("a", now.Add(10*time.Minute), now.Add(25*time.Minute), now)},
		Count:            1,
		LastUpdate:       now,
		LineName:         "Union Pacific West",
		StartStationName: "Oak Park",
		EndStationName:   "Ogilvie Transportation Center",
	}

	buf, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(buf, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, hasErr := decoded["error"]; hasErr {
		t.Errorf("data snapshot must not carry an error key: %s", buf)
	}
	for _, key := range []string{"trains", "count", "last_update", "line_name", "start_station_name", "end_station_name"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q in %s", key, buf)
		}
	}
}

func TestSnapshotMarshalEmptyTrains(t *testing.T) {
	snap := Snapshot{LastUpdate: time.Unix(0, 0).UTC()}

	buf, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		Trains []Arrival `json:"trains"`
		Count  int       `json:"count"`
	}
	if err := json.Unmarshal(buf, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Trains == nil {
		t.Errorf("trains should serialize as an empty array, got %s", buf)
	}
	if decoded.Count != 0 {
		t.Errorf("expected count 0, got %d", decoded.Count)
	}
}

func TestSnapshotFailed(t *testing.T) {
	if !ErrorSnapshot("boom").Failed() {
		t.Error("error snapshot should report Failed")
	}
	if (Snapshot{}).Failed() {
		t.Error("data snapshot should not report Failed")
	}
}
