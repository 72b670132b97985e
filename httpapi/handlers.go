package httpapi

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status            string `json:"status"`
	LastUpdateEpoch   int64  `json:"last_update_epoch"`
	LastUpdateSuccess bool   `json:"last_update_success"`
}

func handleHealth(src SnapshotSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		resp := healthResponse{
			Status:            "ok",
			LastUpdateSuccess: src.LastUpdateSuccess(),
		}
		if snap, ok := src.Latest(); ok && !snap.Failed() {
			resp.LastUpdateEpoch = snap.LastUpdate.Unix()
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func handleArrivals(src SnapshotSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		snap, ok := src.Latest()
		if !ok {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "no snapshot yet"})
			return
		}
		// Error snapshots are data too: the upstream failure is reported in
		// the tagged body, not as an HTTP error of this API.
		_ = json.NewEncoder(w).Encode(snap)
	}
}
