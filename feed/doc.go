// Package feed decodes real-time trip-updates payloads into normalized trip
// records.
//
// Two wire formats are supported behind one tagged Payload type:
//   - JSON: an array of entities as served by agency REST gateways
//     (e.g. the Metra GTFS API)
//   - Protobuf: a standard GTFS-Realtime FeedMessage
//
// Decoding is one pass per poll; malformed individual entries are skipped,
// a malformed top-level payload is a hard error.
package feed
