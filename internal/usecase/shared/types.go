package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation. Write commands never
// depend on the read-side view types.

type VendorSnapshot struct {
	ID       uuid.UUID
	Name     string
	IsActive bool
}

type ItemSnapshot struct {
	ID         uuid.UUID
	VendorID   uuid.UUID
	Name       string
	PriceCents int64
	IsActive   bool
	TrackStock bool
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}

type UserCredentials struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	VendorID     *uuid.UUID
	IsActive     bool
}
