package events

import (
	"context"
	"encoding/json"
	"fmt"

	"beach-reserve/internal/pkg/errs"
	"beach-reserve/internal/usecase/commands"

	"github.com/nats-io/nats.go"
)

// Subjects are per-vendor so a dashboard subscribes to
// "reservations.<vendor id>.>" and sees only its own stand.
func subjectFor(event commands.ReservationEvent) string {
	return fmt.Sprintf("reservations.%s.%s", event.VendorID, event.Topic)
}

type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("beach-reserve-api"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to NATS")
	}
	return &NATSPublisher{conn: conn}, nil
}

func (p *NATSPublisher) PublishReservationChanged(_ context.Context, event commands.ReservationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal reservation event")
	}
	return p.conn.Publish(subjectFor(event), payload)
}

func (p *NATSPublisher) Close() {
	p.conn.Close()
}

// NoopPublisher stands in when NATS is not configured (tests, single-node
// deployments without live dashboards).
type NoopPublisher struct{}

func (NoopPublisher) PublishReservationChanged(context.Context, commands.ReservationEvent) error {
	return nil
}
