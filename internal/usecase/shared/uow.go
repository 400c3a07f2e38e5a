package shared

import (
	"context"
	"time"

	"beach-reserve/internal/domain/reservation"
	"beach-reserve/internal/domain/user"
	"beach-reserve/internal/domain/vendor"
	"beach-reserve/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Items() ItemRepository
	Vendors() VendorRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	VendorByID(ctx context.Context, id uuid.UUID) (*VendorSnapshot, error)
	ItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]ItemSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	UserByEmail(ctx context.Context, email string) (*UserCredentials, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, db db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	// FindForUpdate loads the full entity under a row lock so a status
	// transition cannot race a concurrent one.
	FindForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	SaveState(ctx context.Context, db db.DBTX, res *reservation.Reservation) error
}

type ItemRepository interface {
	Create(ctx context.Context, db db.DBTX, item *vendor.Item) (uuid.UUID, error)
	Save(ctx context.Context, db db.DBTX, item *vendor.Item) error
	Delete(ctx context.Context, db db.DBTX, id uuid.UUID) error
	FindForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (*vendor.Item, error)
	// ReserveStock conditionally decrements availability in a single
	// statement; zero rows touched means the stock ran out.
	ReserveStock(ctx context.Context, db db.DBTX, itemID uuid.UUID, qty int32) error
	// RestockReservation returns every tracked unit held by a reservation.
	RestockReservation(ctx context.Context, db db.DBTX, reservationID uuid.UUID) error
}

type VendorRepository interface {
	SetPhotoURL(ctx context.Context, db db.DBTX, vendorID uuid.UUID, url string) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, db db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	Get(ctx context.Context, db db.DBTX, key, userID uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, db db.DBTX, key, userID uuid.UUID, responseBodyHash string, resultReservationID uuid.UUID) error
	DeleteExpired(ctx context.Context, db db.DBTX) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, db db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, db db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, db db.DBTX, userID uuid.UUID) error
	UpdateProfile(ctx context.Context, db db.DBTX, userID uuid.UUID, displayName string) error
	SetAvatarURL(ctx context.Context, db db.DBTX, userID uuid.UUID, url string) error
	UpsertPushToken(ctx context.Context, db db.DBTX, userID uuid.UUID, token string) error
	DeletePushToken(ctx context.Context, db db.DBTX, userID uuid.UUID, token string) error
}
