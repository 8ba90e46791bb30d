package domain

import "time"

// Rental records one checkout-to-return cycle. A rental is open while
// EndTime is nil and closed once it is set; closed rentals are never
// reopened or deleted.
type Rental struct {
	ID            int32      `json:"id"`
	CyclistID     int32      `json:"cyclist_id"`
	BikeID        int32      `json:"bike_id"`
	StartLockID   int32      `json:"start_lock_id"`
	EndLockID     *int32     `json:"end_lock_id,omitempty"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	ChargeID      string     `json:"charge_id"`
	ExtraChargeID *string    `json:"extra_charge_id,omitempty"`
	CreatedOn     time.Time  `json:"created_on"`
	UpdatedOn     time.Time  `json:"updated_on"`
}

// Open reports whether the bike is still out.
func (r *Rental) Open() bool {
	return r.EndTime == nil
}

// ReturnSummary is what the cyclist gets back after docking the bike.
type ReturnSummary struct {
	BikeID         int32     `json:"bike_id"`
	CyclistID      int32     `json:"cyclist_id"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	EndLockID      int32     `json:"end_lock_id"`
	SurchargeCents int32     `json:"surcharge_cents"`
	ExtraChargeID  string    `json:"extra_charge_id,omitempty"`
}
