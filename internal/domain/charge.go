package domain

type ChargeStatus string

const (
	// ChargeStatusCompleted means the card was billed immediately.
	ChargeStatusCompleted ChargeStatus = "COMPLETED"
	// ChargeStatusPending means the charge was queued at the payment
	// service for later collection.
	ChargeStatusPending ChargeStatus = "PENDING"
)

// Charge is the payment service's record of a billing attempt. The rental
// only keeps the ID; amount and status are shown in notifications.
type Charge struct {
	ID          string       `json:"id"`
	CyclistID   int32        `json:"cyclist_id"`
	AmountCents int32        `json:"amount_cents"`
	Status      ChargeStatus `json:"status"`
}
