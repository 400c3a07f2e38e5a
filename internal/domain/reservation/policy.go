package reservation

import (
	"errors"
	"time"
)

var (
	ErrDayOutOfRange       = errors.New("arrival day must be today or tomorrow")
	ErrBeforeOpening       = errors.New("arrival time is before opening")
	ErrAfterClosing        = errors.New("arrival time is after closing")
	ErrInsufficientLead    = errors.New("arrival time must be further ahead")
	ErrCancelWrongStatus   = errors.New("reservation status does not allow cancellation")
	ErrCancelTooClose      = errors.New("too close to arrival time to cancel")
	ErrInvalidPolicyWindow = errors.New("policy opening must precede closing")
)

// Policy is the single authoritative arrival-window and cancellation rule
// set. Every surface (customer API, vendor API) calls it instead of
// re-implementing date arithmetic. It is pure: the current instant is always
// passed in, never read.
type Policy struct {
	openHour     int
	openMinute   int
	closeHour    int
	closeMinute  int
	maxDayOffset int
	minimumLead  time.Duration
	cancelCutoff time.Duration
	noShowGrace  time.Duration
	loc          *time.Location
}

type PolicyParams struct {
	OpenHour     int
	OpenMinute   int
	CloseHour    int
	CloseMinute  int
	MaxDayOffset int
	MinimumLead  time.Duration
	CancelCutoff time.Duration
	NoShowGrace  time.Duration
	Location     *time.Location
}

func NewPolicy(params PolicyParams) (Policy, error) {
	openMinutes := params.OpenHour*60 + params.OpenMinute
	closeMinutes := params.CloseHour*60 + params.CloseMinute
	if openMinutes >= closeMinutes {
		return Policy{}, ErrInvalidPolicyWindow
	}

	loc := params.Location
	if loc == nil {
		loc = time.UTC
	}

	maxOffset := params.MaxDayOffset
	if maxOffset < 0 {
		maxOffset = 0
	}

	return Policy{
		openHour:     params.OpenHour,
		openMinute:   params.OpenMinute,
		closeHour:    params.CloseHour,
		closeMinute:  params.CloseMinute,
		maxDayOffset: maxOffset,
		minimumLead:  params.MinimumLead,
		cancelCutoff: params.CancelCutoff,
		noShowGrace:  params.NoShowGrace,
		loc:          loc,
	}, nil
}

func (p Policy) Location() *time.Location { return p.loc }

// ValidateArrival checks a candidate arrival (calendar day plus time of day)
// against the booking window and returns the normalized instant.
//
// Rejections, in order:
//  1. the day is not within [today, today+maxDayOffset]
//  2. the time of day is before opening
//  3. the time of day is after closing (the close boundary itself is allowed)
//  4. for today only, the instant is less than the minimum lead ahead of now
//     (an instant exactly at now+lead is allowed)
func (p Policy) ValidateArrival(day time.Time, hour, minute int, now time.Time) (time.Time, error) {
	dayOffset, ok := p.dayOffset(day, now)
	if !ok {
		return time.Time{}, ErrDayOutOfRange
	}

	y, m, d := day.In(p.loc).Date()
	candidate := time.Date(y, m, d, hour, minute, 0, 0, p.loc)
	open := time.Date(y, m, d, p.openHour, p.openMinute, 0, 0, p.loc)
	close := time.Date(y, m, d, p.closeHour, p.closeMinute, 0, 0, p.loc)

	if candidate.Before(open) {
		return time.Time{}, ErrBeforeOpening
	}
	if candidate.After(close) {
		return time.Time{}, ErrAfterClosing
	}

	if dayOffset == 0 && candidate.Before(now.Add(p.minimumLead)) {
		return time.Time{}, ErrInsufficientLead
	}

	return candidate, nil
}

// CanCancel reports whether the holder may still cancel. Advisory on read
// paths; CancelBlockReason carries the authoritative distinction used by the
// cancellation command.
func (p Policy) CanCancel(status Status, arrivalAt *time.Time, now time.Time) bool {
	return p.CancelBlockReason(status, arrivalAt, now) == nil
}

func (p Policy) CancelBlockReason(status Status, arrivalAt *time.Time, now time.Time) error {
	if !status.IsOpen() {
		return ErrCancelWrongStatus
	}
	if arrivalAt != nil && !now.Before(arrivalAt.Add(-p.cancelCutoff)) {
		return ErrCancelTooClose
	}
	return nil
}

// CanDecide reports whether a vendor may approve or reject a reservation:
// only on the arrival day itself, from opening onward. Reservations made for
// tomorrow sit untouchable in the dashboard until the morning of.
func (p Policy) CanDecide(arrivalAt time.Time, now time.Time) bool {
	arrival := arrivalAt.In(p.loc)
	current := now.In(p.loc)

	ay, am, ad := arrival.Date()
	ny, nm, nd := current.Date()
	if ay != ny || am != nm || ad != nd {
		return false
	}

	open := time.Date(ny, nm, nd, p.openHour, p.openMinute, 0, 0, p.loc)
	return !current.Before(open)
}

// ExpiresAt is the instant after which a confirmed reservation that was
// never claimed may be marked NO_SHOW.
func (p Policy) ExpiresAt(arrivalAt time.Time) time.Time {
	return arrivalAt.Add(p.noShowGrace)
}

// CanMarkNoShow requires a confirmed reservation whose grace window has
// elapsed without a check-in.
func (p Policy) CanMarkNoShow(status Status, expiresAt *time.Time, checkedInAt *time.Time, now time.Time) bool {
	if status != StatusConfirmed || checkedInAt != nil {
		return false
	}
	return expiresAt != nil && now.After(*expiresAt)
}

func (p Policy) dayOffset(day, now time.Time) (int, bool) {
	dy, dm, dd := day.In(p.loc).Date()
	base := now.In(p.loc)

	for offset := 0; offset <= p.maxDayOffset; offset++ {
		cy, cm, cd := base.AddDate(0, 0, offset).Date()
		if dy == cy && dm == cm && dd == cd {
			return offset, true
		}
	}
	return 0, false
}
