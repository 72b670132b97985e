// Package arrivals matches decoded trip records against a configured stop
// pair and ranks the results into the published snapshot shape.
//
// Matching is both-or-nothing: a trip contributes only if it carries arrival
// times at the configured start and end stop. Ranking sorts by time to
// departure, drops trips that left more than five minutes ago and caps the
// result at the next three trains.
package arrivals
