package queries

import (
	"context"
	"time"

	"beach-reserve/internal/domain/reservation"
	"beach-reserve/internal/domain/user"
	"beach-reserve/internal/infra"
	"beach-reserve/internal/pkg/clock"
	"beach-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationAccess   = errs.New("reservation access denied")
)

type ReservationQueries interface {
	GetByID(ctx context.Context, actor AuthorizedUserView, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem skips access checks; used for idempotency replay.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListCurrentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*ReservationListItem, error)
	ListHistoryByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
	ListForVendorDay(ctx context.Context, vendorID uuid.UUID, day time.Time) ([]*ReservationListItem, error)
	ListVendorCurrent(ctx context.Context, vendorID uuid.UUID) ([]*ReservationListItem, error)
	ListVendorPast(ctx context.Context, vendorID uuid.UUID, limit int) ([]*ReservationListItem, error)
	CountPendingForVendor(ctx context.Context, vendorID uuid.UUID) (int64, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindCurrentByUser(ctx context.Context, userID uuid.UUID, since time.Time, limit int32) ([]*ReservationListItem, error)
	FindHistoryByUserFirstPage(ctx context.Context, userID uuid.UUID, before time.Time, limit int32) ([]*ReservationListItem, error)
	FindHistoryByUserKeyset(ctx context.Context, userID uuid.UUID, before time.Time, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByVendorBetween(ctx context.Context, vendorID uuid.UUID, from, to time.Time) ([]*ReservationListItem, error)
	FindVendorCurrent(ctx context.Context, vendorID uuid.UUID, from, to time.Time) ([]*ReservationListItem, error)
	FindVendorPast(ctx context.Context, vendorID uuid.UUID, before time.Time, limit int32) ([]*ReservationListItem, error)
	CountPendingByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error)
}

type reservationQueriesImpl struct {
	readStore       ReservationReadStore
	policy          reservation.Policy
	clock           clock.Clock
	currentTabSince time.Duration
}

func NewReservationQueries(readStore ReservationReadStore, policy reservation.Policy, clk clock.Clock, currentTabSince time.Duration) ReservationQueries {
	return &reservationQueriesImpl{
		readStore:       readStore,
		policy:          policy,
		clock:           clk,
		currentTabSince: currentTabSince,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor AuthorizedUserView, id uuid.UUID) (*ReservationView, error) {
	view, err := q.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch user.Role(actor.Role) {
	case user.RoleAdmin:
	case user.RoleVendor:
		if actor.VendorID == nil || *actor.VendorID != view.VendorID {
			return nil, ErrReservationAccess
		}
	default:
		if view.UserID != actor.ID {
			return nil, ErrReservationAccess
		}
		// The check-in code is handed over at the stand, never through the
		// customer's own reservation screen.
		view.ConfirmationCode = nil
	}

	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.findByID(ctx, id)
}

func (q *reservationQueriesImpl) findByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	now := q.clock.Now()
	view.CanCancel = q.policy.CanCancel(reservation.Status(view.Status), view.ArrivalAt, now)
	return view, nil
}

// ListCurrentByUser returns the "current" tab: still-open undated
// reservations plus those whose arrival is recent or upcoming.
func (q *reservationQueriesImpl) ListCurrentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*ReservationListItem, error) {
	now := q.clock.Now()
	since := now.Add(-q.currentTabSince)

	items, err := q.readStore.FindCurrentByUser(ctx, userID, since, int32(ValidateLimit(limit)))
	if err != nil {
		return nil, err
	}

	q.annotateCancelable(items, now)
	return items, nil
}

// ListHistoryByUser is the complement of the current tab: reservations whose
// arrival fell out of the recency window, or undated ones already settled.
func (q *reservationQueriesImpl) ListHistoryByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	validLimit := int32(ValidateLimit(limit))
	before := q.clock.Now().Add(-q.currentTabSince)

	var (
		items []*ReservationListItem
		err   error
	)
	if after == nil || after.After == "" {
		items, err = q.readStore.FindHistoryByUserFirstPage(ctx, userID, before, validLimit)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, errs.Wrap(decodeErr, "invalid cursor")
		}
		items, err = q.readStore.FindHistoryByUserKeyset(ctx, userID, before, lastCreatedAt, lastID, validLimit)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) == int(validLimit) {
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}

	return items, next, nil
}

// ListForVendorDay returns every reservation arriving on the given calendar
// day in the policy's timezone, plus undated ones created that day.
func (q *reservationQueriesImpl) ListForVendorDay(ctx context.Context, vendorID uuid.UUID, day time.Time) ([]*ReservationListItem, error) {
	loc := q.policy.Location()
	y, m, d := day.In(loc).Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, 1)

	items, err := q.readStore.FindByVendorBetween(ctx, vendorID, from, to)
	if err != nil {
		return nil, err
	}

	q.annotateCancelable(items, q.clock.Now())
	return items, nil
}

// ListVendorCurrent is the stand dashboard's working set: everything arriving
// today or tomorrow, plus undated reservations still open, earliest first.
func (q *reservationQueriesImpl) ListVendorCurrent(ctx context.Context, vendorID uuid.UUID) ([]*ReservationListItem, error) {
	now := q.clock.Now()
	from := q.startOfDay(now)
	to := from.AddDate(0, 0, 2)

	items, err := q.readStore.FindVendorCurrent(ctx, vendorID, from, to)
	if err != nil {
		return nil, err
	}

	q.annotateCancelable(items, now)
	return items, nil
}

// ListVendorPast returns settled or bygone reservations, newest first.
func (q *reservationQueriesImpl) ListVendorPast(ctx context.Context, vendorID uuid.UUID, limit int) ([]*ReservationListItem, error) {
	now := q.clock.Now()
	before := q.startOfDay(now)

	items, err := q.readStore.FindVendorPast(ctx, vendorID, before, int32(ValidateLimit(limit)))
	if err != nil {
		return nil, err
	}

	q.annotateCancelable(items, now)
	return items, nil
}

func (q *reservationQueriesImpl) CountPendingForVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	return q.readStore.CountPendingByVendor(ctx, vendorID)
}

func (q *reservationQueriesImpl) startOfDay(now time.Time) time.Time {
	loc := q.policy.Location()
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func (q *reservationQueriesImpl) annotateCancelable(items []*ReservationListItem, now time.Time) {
	for _, item := range items {
		item.CanCancel = q.policy.CanCancel(reservation.Status(item.Status), item.ArrivalAt, now)
	}
}
