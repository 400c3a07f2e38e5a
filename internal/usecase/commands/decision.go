package commands

import (
	"context"

	"beach-reserve/internal/domain/reservation"
	"beach-reserve/internal/infra"
	"beach-reserve/internal/pkg/clock"
	"beach-reserve/internal/pkg/errs"
	"beach-reserve/internal/pkg/pin"
	"beach-reserve/internal/usecase/queries"
	"beach-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotVendorReservation = errs.New("reservation belongs to another vendor")
	ErrDecisionRejected     = errs.New("decision not allowed")
	ErrCodeGeneration       = errs.New("failed to generate confirmation code")
)

// DecisionCommands covers everything a vendor does to a reservation after
// it lands on the dashboard.
type DecisionCommands interface {
	Approve(ctx context.Context, reservationID, actorVendorID uuid.UUID) error
	Reject(ctx context.Context, reservationID, actorVendorID uuid.UUID, reason *string) error
	Cancel(ctx context.Context, reservationID, actorVendorID uuid.UUID, reason *string) error
	MarkNoShow(ctx context.Context, reservationID, actorVendorID uuid.UUID) error
}

type decisionCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	policy    reservation.Policy
	clock     clock.Clock
}

func NewDecisionCommands(uow shared.UnitOfWork, publisher EventPublisher, policy reservation.Policy, clk clock.Clock) DecisionCommands {
	return &decisionCommandsImpl{
		uow:       uow,
		publisher: publisher,
		policy:    policy,
		clock:     clk,
	}
}

func (uc *decisionCommandsImpl) Approve(ctx context.Context, reservationID, actorVendorID uuid.UUID) error {
	code, err := pin.Generate()
	if err != nil {
		return errs.Mark(err, ErrCodeGeneration)
	}

	return uc.transition(ctx, reservationID, actorVendorID, TopicReservationConfirmed, false,
		func(entity *reservation.Reservation) error {
			return entity.Approve(uc.policy, code, uc.clock.Now())
		})
}

func (uc *decisionCommandsImpl) Reject(ctx context.Context, reservationID, actorVendorID uuid.UUID, reason *string) error {
	return uc.transition(ctx, reservationID, actorVendorID, TopicReservationRejected, true,
		func(entity *reservation.Reservation) error {
			return entity.Reject(uc.policy, reason, uc.clock.Now())
		})
}

func (uc *decisionCommandsImpl) Cancel(ctx context.Context, reservationID, actorVendorID uuid.UUID, reason *string) error {
	return uc.transition(ctx, reservationID, actorVendorID, TopicReservationCanceled, true,
		func(entity *reservation.Reservation) error {
			return entity.CancelByVendor(reason)
		})
}

func (uc *decisionCommandsImpl) MarkNoShow(ctx context.Context, reservationID, actorVendorID uuid.UUID) error {
	return uc.transition(ctx, reservationID, actorVendorID, TopicReservationNoShow, true,
		func(entity *reservation.Reservation) error {
			return entity.MarkNoShow(uc.policy, uc.clock.Now())
		})
}

func (uc *decisionCommandsImpl) transition(
	ctx context.Context,
	reservationID, actorVendorID uuid.UUID,
	topic string,
	restock bool,
	apply func(*reservation.Reservation) error,
) error {
	now := uc.clock.Now()

	var event *ReservationEvent
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if entity.VendorID() != actorVendorID {
			return ErrNotVendorReservation
		}

		if err := apply(entity); err != nil {
			return errs.Mark(err, ErrDecisionRejected)
		}

		if err := tx.Reservations().SaveState(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if restock {
			if err := tx.Items().RestockReservation(ctx, tx.DB(), reservationID); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		event = newReservationEvent(entity, reservationID, topic, uc.clock)
		return createNotificationJob(ctx, tx, *event, now)
	})
	if err != nil {
		return err
	}

	if publishErr := uc.publisher.PublishReservationChanged(ctx, *event); publishErr != nil {
		// Durable delivery goes through the outbox; live fan-out is best effort.
		return nil
	}
	return nil
}

func newReservationEvent(entity *reservation.Reservation, id uuid.UUID, topic string, clk clock.Clock) *ReservationEvent {
	var canceledBy *string
	if by := entity.CanceledBy(); by != nil {
		s := by.String()
		canceledBy = &s
	}

	return &ReservationEvent{
		ReservationID: id,
		VendorID:      entity.VendorID(),
		UserID:        entity.UserID(),
		Topic:         topic,
		Status:        entity.Status().String(),
		CanceledBy:    canceledBy,
		OccurredAt:    clk.Now(),
		ArrivalAt:     entity.ArrivalAt(),
	}
}
