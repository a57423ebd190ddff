package auction

import (
	"time"
)

// RemainingSeconds returns how many whole seconds of bidding time remain
// relative to the last activity. reference is the timestamp of the most
// recent bid, or the first-bid grace reference when no bid exists. A negative
// result means the window has lapsed. Pure function; expiry is detected
// lazily on each poll, never by a background timer.
//
// Elapsed time truncates toward zero, so a reference still in the future
// (the first-bid grace) never gains a phantom second from rounding.
func RemainingSeconds(now, reference time.Time, bidWait time.Duration) int64 {
	elapsed := int64(now.Sub(reference) / time.Second)
	return int64(bidWait/time.Second) - elapsed
}

// FirstBidReference is the activity reference for an item with no bids yet.
// Offsetting the start by twice the bid window gives the first bid a doubled
// grace period before the item expires unsold.
func FirstBidReference(started time.Time, bidWait time.Duration) time.Time {
	return started.Add(2 * bidWait)
}
