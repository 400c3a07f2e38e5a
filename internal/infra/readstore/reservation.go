package readstore

import (
	"context"
	"time"

	"beach-reserve/internal/infra"
	"beach-reserve/internal/infra/db"
	"beach-reserve/internal/pkg/pgconv"
	"beach-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const selectReservationViewSQL = `
SELECT r.id, r.vendor_id, v.name, r.user_id, u.display_name,
       r.arrival_time, r.status, r.total_cents, r.note, r.confirmation_code,
       r.expires_at, r.checked_in_at, r.canceled_by, r.cancel_reason,
       r.created_at, r.updated_at
FROM reservations r
JOIN vendors v ON v.id = r.vendor_id
JOIN users u ON u.id = r.user_id
WHERE r.id = $1`

const selectReservationViewItemsSQL = `
SELECT item_id, name, quantity, unit_price_cents
FROM reservation_items
WHERE reservation_id = $1
ORDER BY created_at`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var view queries.ReservationView
	err := r.db.QueryRow(ctx, selectReservationViewSQL, id).Scan(
		&view.ID, &view.VendorID, &view.VendorName, &view.UserID, &view.UserName,
		&view.ArrivalAt, &view.Status, &view.TotalCents, &view.Note, &view.ConfirmationCode,
		&view.ExpiresAt, &view.CheckedInAt, &view.CanceledBy, &view.CancelReason,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	rows, err := r.db.Query(ctx, selectReservationViewItemsSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item queries.ReservationItemView
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation item", err)
		}
		view.Items = append(view.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation items", err)
	}

	return &view, nil
}

const listItemColumns = `
SELECT r.id, r.vendor_id, v.name, u.display_name, r.arrival_time, r.status, r.total_cents,
       (SELECT COUNT(*) FROM reservation_items ri WHERE ri.reservation_id = r.id) AS item_count,
       r.created_at
FROM reservations r
JOIN vendors v ON v.id = r.vendor_id
JOIN users u ON u.id = r.user_id`

const findCurrentByUserSQL = listItemColumns + `
WHERE r.user_id = $1
  AND (r.arrival_time >= $2 OR (r.arrival_time IS NULL AND r.status IN ('PENDING', 'CONFIRMED')))
ORDER BY r.arrival_time NULLS FIRST, r.created_at DESC
LIMIT $3`

func (r *ReservationReadStore) FindCurrentByUser(ctx context.Context, userID uuid.UUID, since time.Time, limit int32) ([]*queries.ReservationListItem, error) {
	return r.list(ctx, findCurrentByUserSQL, userID, since, limit)
}

const findHistoryFirstPageSQL = listItemColumns + `
WHERE r.user_id = $1
  AND (r.arrival_time < $2 OR (r.arrival_time IS NULL AND r.status NOT IN ('PENDING', 'CONFIRMED')))
ORDER BY r.created_at DESC, r.id DESC
LIMIT $3`

func (r *ReservationReadStore) FindHistoryByUserFirstPage(ctx context.Context, userID uuid.UUID, before time.Time, limit int32) ([]*queries.ReservationListItem, error) {
	return r.list(ctx, findHistoryFirstPageSQL, userID, before, limit)
}

const findHistoryKeysetSQL = listItemColumns + `
WHERE r.user_id = $1
  AND (r.arrival_time < $2 OR (r.arrival_time IS NULL AND r.status NOT IN ('PENDING', 'CONFIRMED')))
  AND (r.created_at, r.id) < ($3, $4)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $5`

func (r *ReservationReadStore) FindHistoryByUserKeyset(ctx context.Context, userID uuid.UUID, before time.Time, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	return r.list(ctx, findHistoryKeysetSQL, userID, before, lastCreatedAt, lastID, limit)
}

const findByVendorBetweenSQL = listItemColumns + `
WHERE r.vendor_id = $1
  AND ((r.arrival_time >= $2 AND r.arrival_time < $3)
       OR (r.arrival_time IS NULL AND r.created_at >= $2 AND r.created_at < $3))
ORDER BY r.arrival_time NULLS FIRST, r.created_at`

func (r *ReservationReadStore) FindByVendorBetween(ctx context.Context, vendorID uuid.UUID, from, to time.Time) ([]*queries.ReservationListItem, error) {
	return r.list(ctx, findByVendorBetweenSQL, vendorID, from, to)
}

const findVendorCurrentSQL = listItemColumns + `
WHERE r.vendor_id = $1
  AND ((r.arrival_time >= $2 AND r.arrival_time < $3)
       OR (r.arrival_time IS NULL AND r.status IN ('PENDING', 'CONFIRMED')))
ORDER BY r.arrival_time NULLS FIRST, r.created_at`

func (r *ReservationReadStore) FindVendorCurrent(ctx context.Context, vendorID uuid.UUID, from, to time.Time) ([]*queries.ReservationListItem, error) {
	return r.list(ctx, findVendorCurrentSQL, vendorID, from, to)
}

const findVendorPastSQL = listItemColumns + `
WHERE r.vendor_id = $1
  AND (r.arrival_time < $2 OR (r.arrival_time IS NULL AND r.status NOT IN ('PENDING', 'CONFIRMED')))
ORDER BY r.created_at DESC, r.id DESC
LIMIT $3`

func (r *ReservationReadStore) FindVendorPast(ctx context.Context, vendorID uuid.UUID, before time.Time, limit int32) ([]*queries.ReservationListItem, error) {
	return r.list(ctx, findVendorPastSQL, vendorID, before, limit)
}

const countPendingByVendorSQL = `
SELECT COUNT(*) FROM reservations WHERE vendor_id = $1 AND status = 'PENDING'`

func (r *ReservationReadStore) CountPendingByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, countPendingByVendorSQL, vendorID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count pending reservations", err)
	}
	return count, nil
}

func (r *ReservationReadStore) list(ctx context.Context, sql string, args ...any) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		if err := rows.Scan(
			&item.ID, &item.VendorID, &item.VendorName, &item.UserName,
			&item.ArrivalAt, &item.Status, &item.TotalCents, &item.ItemCount,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation list item", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return result, nil
}
