// Package clock provides the monotonic millisecond clock the search
// package uses for its time fence. It's a thin wrapper around
// time.Now(), not ported from any teacher file: none of the example
// repos reach for a clock library (the teacher's own bot/minimax.go
// uses context.WithTimeout directly), so there is nothing in the pack
// to wire here beyond the standard library.
package clock

import "time"

// NowMS returns the current time in milliseconds, ported from
// original_source/main.c's now() (gettimeofday-based) and
// original_source/amiga.c's now() (DOS clock ticks) — both reduce to
// "milliseconds since some epoch" on their platform. Here the epoch is
// package initialisation, and time.Since reads Go's monotonic clock.
func NowMS() int64 {
	return time.Since(start).Milliseconds()
}

// start is the reference point NowMS measures from.
var start = time.Now()
