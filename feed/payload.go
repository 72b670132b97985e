package feed

import (
	"fmt"
	"strings"
	"time"
)

// Kind selects the decode path for a payload.
type Kind int

const (
	KindJSON Kind = iota
	KindProtobuf
)

func (k Kind) String() string {
	if k == KindProtobuf {
		return "protobuf"
	}
	return "json"
}

// KindFromString maps a config format override to a Kind.
func KindFromString(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return KindJSON, true
	case "protobuf":
		return KindProtobuf, true
	}
	return KindJSON, false
}

// KindFromContentType resolves the decode path from a response Content-Type.
// Binary protobuf feeds are commonly served as application/x-protobuf or
// application/octet-stream; everything JSON-ish decodes as JSON.
func KindFromContentType(ct string) Kind {
	ct = strings.ToLower(ct)
	switch {
	case strings.Contains(ct, "protobuf"), strings.Contains(ct, "octet-stream"):
		return KindProtobuf
	default:
		return KindJSON
	}
}

// Payload is one fetched feed response: raw bytes plus the resolved format.
type Payload struct {
	Kind Kind
	Body []byte
}

// Decode converts the payload into trip records with all timestamps in loc.
func (p Payload) Decode(loc *time.Location) ([]TripRecord, error) {
	switch p.Kind {
	case KindProtobuf:
		return decodeProtobuf(p.Body, loc)
	case KindJSON:
		return decodeJSON(p.Body, loc)
	default:
		return nil, fmt.Errorf("unknown payload kind %d", p.Kind)
	}
}
