package writerepo

import (
	"context"

	"beach-reserve/internal/domain/user"
	"beach-reserve/internal/infra"
	"beach-reserve/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const insertUserSQL = `
INSERT INTO users (id, email, password_hash, role, display_name, vendor_id, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertUserSQL,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(),
		u.DisplayName(), u.VendorID(), u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

const updateLastLoginSQL = `
UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	if _, err := dbtx.Exec(ctx, updateLastLoginSQL, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

const updateProfileSQL = `
UPDATE users SET display_name = $2, updated_at = now() WHERE id = $1`

func (r *UserRepository) UpdateProfile(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, displayName string) error {
	tag, err := dbtx.Exec(ctx, updateProfileSQL, userID, displayName)
	if err != nil {
		return infra.WrapRepoErr("failed to update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

const updateAvatarSQL = `
UPDATE users SET avatar_url = $2, updated_at = now() WHERE id = $1`

func (r *UserRepository) SetAvatarURL(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, url string) error {
	tag, err := dbtx.Exec(ctx, updateAvatarSQL, userID, url)
	if err != nil {
		return infra.WrapRepoErr("failed to update avatar", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

const upsertPushTokenSQL = `
INSERT INTO user_push_tokens (user_id, token)
VALUES ($1, $2)
ON CONFLICT (user_id, token) DO UPDATE SET updated_at = now()`

func (r *UserRepository) UpsertPushToken(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, token string) error {
	if _, err := dbtx.Exec(ctx, upsertPushTokenSQL, userID, token); err != nil {
		return infra.WrapRepoErr("failed to upsert push token", err)
	}
	return nil
}

const deletePushTokenSQL = `
DELETE FROM user_push_tokens WHERE user_id = $1 AND token = $2`

func (r *UserRepository) DeletePushToken(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, token string) error {
	if _, err := dbtx.Exec(ctx, deletePushTokenSQL, userID, token); err != nil {
		return infra.WrapRepoErr("failed to delete push token", err)
	}
	return nil
}
