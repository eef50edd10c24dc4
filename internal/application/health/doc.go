// Package health implements the storage health monitor.
//
// The monitor runs a background loop that:
//   - Pings the database on a fixed interval
//   - Records check outcomes as metrics
//   - Keeps the latest status for inspection
//
// Each check is bounded by a per-check timeout.
package health
