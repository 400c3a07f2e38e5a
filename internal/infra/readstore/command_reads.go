package readstore

import (
	"context"

	"beach-reserve/internal/infra"
	"beach-reserve/internal/infra/db"
	"beach-reserve/internal/pkg/pgconv"
	"beach-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads serves the minimal snapshots write commands validate against.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

const vendorSnapshotSQL = `
SELECT id, name, is_active
FROM vendors
WHERE id = $1`

func (r *CommandReads) VendorByID(ctx context.Context, id uuid.UUID) (*shared.VendorSnapshot, error) {
	var snap shared.VendorSnapshot
	err := r.db.QueryRow(ctx, vendorSnapshotSQL, id).Scan(&snap.ID, &snap.Name, &snap.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vendor not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read vendor snapshot", err)
	}
	return &snap, nil
}

const itemSnapshotsSQL = `
SELECT id, vendor_id, name, price_cents, is_active, track_stock
FROM vendor_items
WHERE id = ANY($1)`

func (r *CommandReads) ItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.ItemSnapshot, error) {
	rows, err := r.db.Query(ctx, itemSnapshotsSQL, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read item snapshots", err)
	}
	defer rows.Close()

	var snapshots []shared.ItemSnapshot
	for rows.Next() {
		var snap shared.ItemSnapshot
		if err := rows.Scan(&snap.ID, &snap.VendorID, &snap.Name, &snap.PriceCents, &snap.IsActive, &snap.TrackStock); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item snapshot", err)
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}

func (r *CommandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	return NewIdempotencyReader(r.db).Get(ctx, key, userID)
}

const userCredentialsSQL = `
SELECT id, email, password_hash, role, vendor_id, is_active
FROM users
WHERE email = $1`

func (r *CommandReads) UserByEmail(ctx context.Context, email string) (*shared.UserCredentials, error) {
	var creds shared.UserCredentials
	err := r.db.QueryRow(ctx, userCredentialsSQL, email).Scan(
		&creds.ID, &creds.Email, &creds.PasswordHash, &creds.Role, &creds.VendorID, &creds.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read user credentials", err)
	}
	return &creds, nil
}

type IdempotencyReader struct {
	db db.DBTX
}

func NewIdempotencyReader(dbtx db.DBTX) *IdempotencyReader {
	return &IdempotencyReader{db: dbtx}
}

const idempotencyRecordSQL = `
SELECT key, user_id, status, request_hash, result_reservation_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2`

func (r *IdempotencyReader) Get(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	var record shared.IdempotencyRecord
	err := r.db.QueryRow(ctx, idempotencyRecordSQL, key, userID).Scan(
		&record.Key, &record.UserID, &record.Status, &record.RequestHash,
		&record.ResultReservationID, &record.ExpiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read idempotency key", err)
	}
	return &record, nil
}
