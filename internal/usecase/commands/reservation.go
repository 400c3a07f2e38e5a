package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"beach-reserve/internal/domain/reservation"
	"beach-reserve/internal/infra"
	"beach-reserve/internal/pkg/clock"
	"beach-reserve/internal/pkg/errs"
	"beach-reserve/internal/usecase/queries"
	"beach-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVendorNotFound          = errs.New("vendor not found")
	ErrVendorInactive          = errs.New("vendor not accepting reservations")
	ErrItemNotFound            = errs.New("item not found")
	ErrItemUnavailable         = errs.New("item not available")
	ErrOutOfStock              = errs.New("not enough stock")
	ErrInvalidArrival          = errs.New("invalid arrival time")
	ErrCancelNotAllowed        = errs.New("cancellation not allowed")
	ErrCheckInFailed           = errs.New("check-in failed")
	ErrReservationNotOwned     = errs.New("reservation not owned by user")
	ErrDuplicateRequest        = errs.New("duplicate request with different payload")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const idempotencyTTL = 24 * time.Hour

type ArrivalInput struct {
	Day    time.Time
	Hour   int
	Minute int
}

type ItemInput struct {
	ItemID   uuid.UUID
	Quantity int32
}

type CreateReservationCommand struct {
	VendorID uuid.UUID
	Arrival  *ArrivalInput
	Note     string
	Items    []ItemInput
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, cmd CreateReservationCommand, userID uuid.UUID, idempotencyKey uuid.UUID) (*CreateReservationResult, error)
	CancelByUser(ctx context.Context, reservationID, userID uuid.UUID) error
	CheckIn(ctx context.Context, reservationID uuid.UUID, code string) error
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	publisher          EventPublisher
	policy             reservation.Policy
	clock              clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	publisher EventPublisher,
	policy reservation.Policy,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		publisher:          publisher,
		policy:             policy,
		clock:              clk,
	}
}

func (uc *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	cmd CreateReservationCommand,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateReservationResult, error) {
	now := uc.clock.Now()

	var arrivalAt *time.Time
	if cmd.Arrival != nil {
		instant, err := uc.policy.ValidateArrival(cmd.Arrival.Day, cmd.Arrival.Hour, cmd.Arrival.Minute, now)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidArrival)
		}
		arrivalAt = &instant
	}

	requestHash := calculateRequestHash(cmd)

	var (
		reservationID uuid.UUID
		replayedID    *uuid.UUID
		event         *ReservationEvent
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := uc.claimIdempotencyKey(ctx, tx, idempotencyKey, userID, requestHash, now)
		if err != nil {
			return err
		}
		if existing != nil {
			replayedID = existing
			return nil
		}

		entity, err := uc.buildReservation(ctx, tx, cmd, userID, arrivalAt)
		if err != nil {
			return err
		}

		for _, item := range cmd.Items {
			if err := tx.Items().ReserveStock(ctx, tx.DB(), item.ItemID, item.Quantity); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return ErrOutOfStock
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		reservationID, err = tx.Reservations().Create(ctx, tx.DB(), entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		event = newReservationEvent(entity, reservationID, TopicReservationCreated, uc.clock)
		if err := createNotificationJob(ctx, tx, *event, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		responseHash := calculateIDHash(reservationID)
		if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, userID, responseHash, reservationID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if replayedID != nil {
		view, err := uc.reservationQueries.GetByIDSystem(ctx, *replayedID)
		if err != nil {
			return nil, err
		}
		return &CreateReservationResult{Reservation: view, IsReplayed: true}, nil
	}

	uc.publish(ctx, *event)

	view, err := uc.reservationQueries.GetByIDSystem(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &CreateReservationResult{Reservation: view, IsReplayed: false}, nil
}

func (uc *reservationCommandsImpl) CancelByUser(ctx context.Context, reservationID, userID uuid.UUID) error {
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
		if entity.UserID() != userID {
			return ErrReservationNotOwned
		}

		if err := entity.CancelByUser(uc.policy, now); err != nil {
			return errs.Mark(err, ErrCancelNotAllowed)
		}

		if err := tx.Reservations().SaveState(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Items().RestockReservation(ctx, tx.DB(), reservationID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		event = newReservationEvent(entity, reservationID, TopicReservationCanceled, uc.clock)
		return createNotificationJob(ctx, tx, *event, now)
	})
	if err != nil {
		return err
	}

	uc.publish(ctx, *event)
	return nil
}

// CheckIn flips CONFIRMED to ARRIVED when the code the vendor handed out
// matches. The row lock makes the compare-and-set safe against a concurrent
// no-show sweep.
func (uc *reservationCommandsImpl) CheckIn(ctx context.Context, reservationID uuid.UUID, code string) error {
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

		if err := entity.CheckIn(code, now); err != nil {
			return errs.Mark(err, ErrCheckInFailed)
		}

		if err := tx.Reservations().SaveState(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		event = newReservationEvent(entity, reservationID, TopicReservationArrived, uc.clock)
		return createNotificationJob(ctx, tx, *event, now)
	})
	if err != nil {
		return err
	}

	uc.publish(ctx, *event)
	return nil
}

// claimIdempotencyKey inserts the key and inspects what is stored under it.
// A nil, nil return means the key is fresh and the caller owns it.
func (uc *reservationCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
	now time.Time,
) (*uuid.UUID, error) {
	if err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, "POST /reservations", requestHash, now.Add(idempotencyTTL)); err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	record, err := tx.Idempotency().Get(ctx, tx.DB(), key, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch record.Status {
	case "completed":
		if record.ResultReservationID == nil {
			return nil, errs.New("completed request missing result reservation ID")
		}
		return record.ResultReservationID, nil
	case "processing":
		if record.RequestHash != requestHash {
			return nil, ErrDuplicateRequest
		}
		// Our own fresh insert. A committed processing row from another
		// request cannot be observed: keys are inserted and completed in
		// a single transaction.
		return nil, nil
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (uc *reservationCommandsImpl) buildReservation(
	ctx context.Context,
	tx shared.Tx,
	cmd CreateReservationCommand,
	userID uuid.UUID,
	arrivalAt *time.Time,
) (*reservation.Reservation, error) {
	vendorSnap, err := tx.Reads().VendorByID(ctx, cmd.VendorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !vendorSnap.IsActive {
		return nil, ErrVendorInactive
	}

	lineItems, err := uc.resolveLineItems(ctx, tx, cmd)
	if err != nil {
		return nil, err
	}

	entity, err := reservation.NewReservation(cmd.VendorID, userID, arrivalAt, lineItems, reservation.NewNote(cmd.Note))
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return entity, nil
}

// resolveLineItems freezes names and unit prices from the current catalog.
func (uc *reservationCommandsImpl) resolveLineItems(
	ctx context.Context,
	tx shared.Tx,
	cmd CreateReservationCommand,
) ([]reservation.LineItem, error) {
	if len(cmd.Items) == 0 {
		return nil, errs.Mark(reservation.ErrNoItems, ErrDomainValidation)
	}

	ids := make([]uuid.UUID, len(cmd.Items))
	for i, item := range cmd.Items {
		ids[i] = item.ItemID
	}

	snapshots, err := tx.Reads().ItemsByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	byID := make(map[uuid.UUID]shared.ItemSnapshot, len(snapshots))
	for _, snap := range snapshots {
		byID[snap.ID] = snap
	}

	lineItems := make([]reservation.LineItem, 0, len(cmd.Items))
	for _, input := range cmd.Items {
		snap, ok := byID[input.ItemID]
		if !ok || snap.VendorID != cmd.VendorID {
			return nil, ErrItemNotFound
		}
		if !snap.IsActive {
			return nil, ErrItemUnavailable
		}

		lineItem, err := reservation.NewLineItem(snap.ID, snap.Name, input.Quantity, reservation.NewMoney(snap.PriceCents))
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		lineItems = append(lineItems, lineItem)
	}
	return lineItems, nil
}

func (uc *reservationCommandsImpl) publish(ctx context.Context, event ReservationEvent) {
	if err := uc.publisher.PublishReservationChanged(ctx, event); err != nil {
		slog.Warn("failed to publish reservation event",
			"reservation_id", event.ReservationID,
			"topic", event.Topic,
			"error", err.Error())
	}
}

func createNotificationJob(ctx context.Context, tx shared.Tx, event ReservationEvent, runAt time.Time) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), "push", event.Topic, payload, runAt)
}

func calculateRequestHash(cmd CreateReservationCommand) string {
	data, _ := json.Marshal(cmd)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
