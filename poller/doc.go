// Package poller owns the fetch cycle: one HTTP request per tick, decode,
// stop matching and ranking, and atomic publication of the resulting
// snapshot. Fetch, decode and rank failures are soft: they publish an error
// snapshot and the next tick runs normally.
package poller
