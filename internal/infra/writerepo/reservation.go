package writerepo

import (
	"context"
	"time"

	"beach-reserve/internal/domain/reservation"
	"beach-reserve/internal/infra"
	"beach-reserve/internal/infra/db"
	"beach-reserve/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const insertReservationSQL = `
INSERT INTO reservations (
    id, vendor_id, user_id, arrival_time, status, total_cents, note,
    confirmation_code, expires_at, checked_in_at, canceled_by, cancel_reason
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

const insertReservationItemSQL = `
INSERT INTO reservation_items (reservation_id, item_id, name, quantity, unit_price_cents)
VALUES ($1, $2, $3, $4, $5)`

func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var note *string
	if !res.Note().IsEmpty() {
		s := res.Note().String()
		note = &s
	}
	var canceledBy *string
	if by := res.CanceledBy(); by != nil {
		s := by.String()
		canceledBy = &s
	}

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertReservationSQL,
		res.ID(),
		res.VendorID(),
		res.UserID(),
		res.ArrivalAt(),
		res.Status().String(),
		res.Total().Cents(),
		note,
		res.ConfirmationCode(),
		res.ExpiresAt(),
		res.CheckedInAt(),
		canceledBy,
		res.CancelReason(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	for _, item := range res.Items() {
		_, err := dbtx.Exec(ctx, insertReservationItemSQL,
			id, item.ItemID(), item.Name(), item.Quantity(), item.UnitPrice().Cents())
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create reservation item", err)
		}
	}

	return id, nil
}

const selectReservationForUpdateSQL = `
SELECT id, vendor_id, user_id, arrival_time, status, total_cents, note,
       confirmation_code, expires_at, checked_in_at, canceled_by, cancel_reason,
       created_at, updated_at
FROM reservations
WHERE id = $1
FOR UPDATE`

const selectReservationItemsSQL = `
SELECT item_id, name, quantity, unit_price_cents
FROM reservation_items
WHERE reservation_id = $1
ORDER BY created_at`

func (r *ReservationRepository) FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	var (
		resID, vendorID, userID              uuid.UUID
		arrivalAt, expiresAt, checkedInAt    *time.Time
		status                               string
		totalCents                           int64
		note, code, canceledBy, cancelReason *string
		createdAt, updatedAt                 time.Time
	)
	err := dbtx.QueryRow(ctx, selectReservationForUpdateSQL, id).Scan(
		&resID, &vendorID, &userID, &arrivalAt, &status, &totalCents, &note,
		&code, &expiresAt, &checkedInAt, &canceledBy, &cancelReason,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	items, err := r.loadItems(ctx, dbtx, resID)
	if err != nil {
		return nil, err
	}

	statusVO, err := reservation.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation status in storage", err)
	}

	var canceledByVO *reservation.CanceledBy
	if canceledBy != nil {
		by := reservation.CanceledBy(*canceledBy)
		canceledByVO = &by
	}

	noteValue := ""
	if note != nil {
		noteValue = *note
	}

	return reservation.ReconstructReservation(
		resID, vendorID, userID,
		arrivalAt,
		items,
		statusVO,
		reservation.NewMoney(totalCents),
		reservation.NewNote(noteValue),
		code,
		expiresAt, checkedInAt,
		canceledByVO,
		cancelReason,
		createdAt, updatedAt,
	), nil
}

func (r *ReservationRepository) loadItems(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) ([]reservation.LineItem, error) {
	rows, err := dbtx.Query(ctx, selectReservationItemsSQL, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation items", err)
	}
	defer rows.Close()

	var items []reservation.LineItem
	for rows.Next() {
		var (
			itemID         uuid.UUID
			name           string
			quantity       int32
			unitPriceCents int64
		)
		if err := rows.Scan(&itemID, &name, &quantity, &unitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation item", err)
		}

		item, err := reservation.NewLineItem(itemID, name, quantity, reservation.NewMoney(unitPriceCents))
		if err != nil {
			return nil, infra.WrapRepoErr("invalid reservation item in storage", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation items", err)
	}
	return items, nil
}

const updateReservationStateSQL = `
UPDATE reservations
SET status = $2,
    confirmation_code = $3,
    expires_at = $4,
    checked_in_at = $5,
    canceled_by = $6,
    cancel_reason = $7,
    updated_at = now()
WHERE id = $1`

// SaveState persists the fields the status transitions touch. Line items
// are immutable after creation.
func (r *ReservationRepository) SaveState(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error {
	var canceledBy *string
	if by := res.CanceledBy(); by != nil {
		s := by.String()
		canceledBy = &s
	}

	tag, err := dbtx.Exec(ctx, updateReservationStateSQL,
		res.ID(),
		res.Status().String(),
		res.ConfirmationCode(),
		res.ExpiresAt(),
		res.CheckedInAt(),
		canceledBy,
		res.CancelReason(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save reservation state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
