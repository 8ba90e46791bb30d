// Package gateway holds the client abstractions for the downstream
// equipment, payment and notification microservices. The rental
// orchestrator only ever sees these interfaces; timeout and transport
// policy live in the implementations.
package gateway

import (
	"context"

	"bikeshare-rental-backend/internal/domain"
)

// EquipmentGateway talks to the lock/bike subsystem. Every call is
// synchronous; a transport error or non-success status means the call
// had no effect.
type EquipmentGateway interface {
	GetLock(ctx context.Context, lockID int32) (*domain.Lock, error)
	GetBikeAtLock(ctx context.Context, lockID int32) (*domain.Bike, error)
	GetBikeByID(ctx context.Context, bikeID int32) (*domain.Bike, error)
	IsBikeInUse(ctx context.Context, bikeID int32) (bool, error)
	// Unlock releases the bike from the dock. Must be called only after
	// billing has succeeded.
	Unlock(ctx context.Context, lockID, bikeID int32) error
	// Lock docks a returned bike.
	Lock(ctx context.Context, lockID, bikeID int32) error
}

// PaymentGateway bills cyclists. When Charge is declined or unreachable
// the caller falls back to EnqueuePendingCharge, which records the charge
// for later collection by the payment service.
type PaymentGateway interface {
	Charge(ctx context.Context, cyclistID int32, amountCents int32) (*domain.Charge, error)
	EnqueuePendingCharge(ctx context.Context, cyclistID int32, amountCents int32) (*domain.Charge, error)
	ValidateCard(ctx context.Context, card *domain.CreditCard) error
}

// NotificationGateway sends transactional email. Callers decide whether a
// failure aborts their flow; the gateway just reports it.
type NotificationGateway interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}
