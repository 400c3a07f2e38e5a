package readstore

import (
	"context"

	"beach-reserve/internal/infra"
	"beach-reserve/internal/infra/db"
	"beach-reserve/internal/pkg/pgconv"
	"beach-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const findAuthorizedUserSQL = `
SELECT id, email, role, vendor_id, is_active
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, findAuthorizedUserSQL, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.VendorID, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

const findProfileSQL = `
SELECT id, email, role, display_name, avatar_url, vendor_id, created_at
FROM users
WHERE id = $1`

func (r *UserReadStore) FindProfileByID(ctx context.Context, id uuid.UUID) (*queries.UserProfileView, error) {
	var view queries.UserProfileView
	err := r.db.QueryRow(ctx, findProfileSQL, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.DisplayName, &view.AvatarURL,
		&view.VendorID, &view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user profile", err)
	}
	return &view, nil
}

const findPushTokensSQL = `
SELECT token
FROM user_push_tokens
WHERE user_id = $1
ORDER BY created_at`

// FindPushTokens returns every registered device token for a user. Used by
// the notification worker when delivering reservation updates.
func (r *UserReadStore) FindPushTokens(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx, findPushTokensSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list push tokens", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, infra.WrapRepoErr("failed to scan push token", err)
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}

const findVendorUserIDsSQL = `
SELECT id
FROM users
WHERE vendor_id = $1 AND is_active`

// FindVendorUserIDs returns the accounts operating a stand, so vendor-bound
// notifications reach every device behind the counter.
func (r *UserReadStore) FindVendorUserIDs(ctx context.Context, vendorID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, findVendorUserIDsSQL, vendorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vendor users", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan vendor user", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
