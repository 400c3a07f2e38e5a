package commands

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// Reservation lifecycle events. Topics double as the outbox job topic and
// the suffix of the NATS subject the dashboards subscribe to.
const (
	TopicReservationCreated   = "reservation.created"
	TopicReservationConfirmed = "reservation.confirmed"
	TopicReservationRejected  = "reservation.rejected"
	TopicReservationCanceled  = "reservation.canceled"
	TopicReservationNoShow    = "reservation.no_show"
	TopicReservationArrived   = "reservation.arrived"
)

type ReservationEvent struct {
	ReservationID uuid.UUID  `json:"reservation_id"`
	VendorID      uuid.UUID  `json:"vendor_id"`
	UserID        uuid.UUID  `json:"user_id"`
	Topic         string     `json:"topic"`
	Status        string     `json:"status"`
	CanceledBy    *string    `json:"canceled_by,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
	ArrivalAt     *time.Time `json:"arrival_at,omitempty"`
}

// EventPublisher fans reservation changes out to live subscribers. Delivery
// is best-effort; the outbox worker owns the durable notification path.
type EventPublisher interface {
	PublishReservationChanged(ctx context.Context, event ReservationEvent) error
}

// MediaStorage persists an uploaded image and returns its public URL.
type MediaStorage interface {
	Save(ctx context.Context, dir, filename string, content io.Reader) (string, error)
}
