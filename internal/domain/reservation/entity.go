package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus      = errors.New("invalid reservation status")
	ErrDecisionNotAllowed = errors.New("reservation is not awaiting a decision")
	ErrDecisionTooEarly   = errors.New("decision window has not opened")
	ErrCheckInNotAllowed  = errors.New("reservation is not awaiting check-in")
	ErrPinMismatch        = errors.New("confirmation code does not match")
	ErrNoShowNotAllowed   = errors.New("reservation cannot be marked no-show")
)

type Reservation struct {
	id               uuid.UUID
	vendorID         uuid.UUID
	userID           uuid.UUID
	arrivalAt        *time.Time
	items            []LineItem
	status           Status
	total            Money
	note             Note
	confirmationCode *string
	expiresAt        *time.Time
	checkedInAt      *time.Time
	canceledBy       *CanceledBy
	cancelReason     *string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewReservation builds a PENDING reservation. The arrival instant is
// expected to have passed Policy.ValidateArrival already; a nil arrival
// means "as soon as possible" and skips window checks entirely.
func NewReservation(
	vendorID, userID uuid.UUID,
	arrivalAt *time.Time,
	items []LineItem,
	note Note,
) (*Reservation, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	total := NewMoney(0)
	for _, item := range items {
		total = total.Add(item.Total())
	}

	return &Reservation{
		id:        uuid.New(),
		vendorID:  vendorID,
		userID:    userID,
		arrivalAt: arrivalAt,
		items:     items,
		status:    StatusPending,
		total:     total,
		note:      note,
	}, nil
}

func ReconstructReservation(
	id, vendorID, userID uuid.UUID,
	arrivalAt *time.Time,
	items []LineItem,
	status Status,
	total Money,
	note Note,
	confirmationCode *string,
	expiresAt, checkedInAt *time.Time,
	canceledBy *CanceledBy,
	cancelReason *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:               id,
		vendorID:         vendorID,
		userID:           userID,
		arrivalAt:        arrivalAt,
		items:            items,
		status:           status,
		total:            total,
		note:             note,
		confirmationCode: confirmationCode,
		expiresAt:        expiresAt,
		checkedInAt:      checkedInAt,
		canceledBy:       canceledBy,
		cancelReason:     cancelReason,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Approve confirms a pending reservation, attaches the check-in code the
// vendor hands out and, when an arrival instant exists, the no-show
// deadline derived from it.
func (r *Reservation) Approve(policy Policy, code string, now time.Time) error {
	if r.status != StatusPending {
		return ErrDecisionNotAllowed
	}
	if r.arrivalAt != nil && !policy.CanDecide(*r.arrivalAt, now) {
		return ErrDecisionTooEarly
	}

	r.status = StatusConfirmed
	r.confirmationCode = &code
	if r.arrivalAt != nil {
		expires := policy.ExpiresAt(*r.arrivalAt)
		r.expiresAt = &expires
	}
	return nil
}

// Reject declines a pending reservation on behalf of the vendor.
func (r *Reservation) Reject(policy Policy, reason *string, now time.Time) error {
	if r.status != StatusPending {
		return ErrDecisionNotAllowed
	}
	if r.arrivalAt != nil && !policy.CanDecide(*r.arrivalAt, now) {
		return ErrDecisionTooEarly
	}

	r.cancel(CanceledByVendor, reason)
	return nil
}

// CancelByUser applies the holder-side cancellation rules: open status and,
// when an arrival instant exists, enough distance from it.
func (r *Reservation) CancelByUser(policy Policy, now time.Time) error {
	if err := policy.CancelBlockReason(r.status, r.arrivalAt, now); err != nil {
		return err
	}
	r.cancel(CanceledByUser, nil)
	return nil
}

// CancelByVendor cancels any open reservation regardless of how close the
// arrival is. Used when the vendor has to bail out after confirming.
func (r *Reservation) CancelByVendor(reason *string) error {
	if !r.status.IsOpen() {
		return ErrCancelWrongStatus
	}
	r.cancel(CanceledByVendor, reason)
	return nil
}

// MarkNoShow closes a confirmed reservation whose grace window elapsed
// without a check-in.
func (r *Reservation) MarkNoShow(policy Policy, now time.Time) error {
	if !policy.CanMarkNoShow(r.status, r.expiresAt, r.checkedInAt, now) {
		return ErrNoShowNotAllowed
	}
	r.status = StatusNoShow
	return nil
}

// CheckIn transitions CONFIRMED to ARRIVED when the presented code matches.
// The code comparison lives here so no caller can skip it.
func (r *Reservation) CheckIn(code string, now time.Time) error {
	if r.status != StatusConfirmed {
		return ErrCheckInNotAllowed
	}
	if r.confirmationCode == nil || *r.confirmationCode != code {
		return ErrPinMismatch
	}

	r.status = StatusArrived
	r.checkedInAt = &now
	return nil
}

func (r *Reservation) cancel(by CanceledBy, reason *string) {
	r.status = StatusCanceled
	r.canceledBy = &by
	r.cancelReason = reason
}

func (r *Reservation) IsOpen() bool     { return r.status.IsOpen() }
func (r *Reservation) IsCanceled() bool { return r.status == StatusCanceled }

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) VendorID() uuid.UUID       { return r.vendorID }
func (r *Reservation) UserID() uuid.UUID         { return r.userID }
func (r *Reservation) ArrivalAt() *time.Time     { return r.arrivalAt }
func (r *Reservation) Items() []LineItem         { return r.items }
func (r *Reservation) Status() Status            { return r.status }
func (r *Reservation) Total() Money              { return r.total }
func (r *Reservation) Note() Note                { return r.note }
func (r *Reservation) ConfirmationCode() *string { return r.confirmationCode }
func (r *Reservation) ExpiresAt() *time.Time     { return r.expiresAt }
func (r *Reservation) CheckedInAt() *time.Time   { return r.checkedInAt }
func (r *Reservation) CanceledBy() *CanceledBy   { return r.canceledBy }
func (r *Reservation) CancelReason() *string     { return r.cancelReason }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }
