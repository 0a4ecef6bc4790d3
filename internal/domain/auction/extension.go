package auction

import "time"

// ShouldExtend reports whether a bid accepted at bidAt falls inside the
// soft-close window of imminentMinutes before endAt.
func ShouldExtend(endAt, bidAt time.Time, imminentMinutes int) bool {
	if imminentMinutes <= 0 {
		return false
	}
	remaining := endAt.Sub(bidAt)
	return remaining >= 0 && remaining <= time.Duration(imminentMinutes)*time.Minute
}

func ExtendedEnd(endAt time.Time, increment time.Duration) time.Time {
	return endAt.Add(increment)
}
