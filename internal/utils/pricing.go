package utils

import "time"

// SurchargeBlockCents is charged for every completed 30-minute block a
// bike stays out.
const SurchargeBlockCents int32 = 500

const blockMinutes = 30

// CalculateSurcharge computes the overstay surcharge for the interval
// [start, end]. Elapsed time is truncated to whole minutes, then to
// completed 30-minute blocks; partial blocks are free. Callers must not
// pass end < start; a non-positive interval yields zero.
func CalculateSurcharge(start, end time.Time) int32 {
	minutes := int64(end.Sub(start) / time.Minute)
	if minutes <= 0 {
		return 0
	}
	blocks := int32(minutes / blockMinutes)
	return blocks * SurchargeBlockCents
}
