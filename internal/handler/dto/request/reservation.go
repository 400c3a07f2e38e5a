package request

import (
	"errors"
	"strings"
	"time"

	"beach-reserve/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrInvalidArrivalFormat = errors.New("invalid arrival format")

// ArrivalRequest is the requested arrival slot. Day is "2006-01-02" and
// Time is "15:04", both in the beach's local timezone.
type ArrivalRequest struct {
	Day  string `json:"day" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type ReservationItemRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int32     `json:"quantity" binding:"required,gt=0"`
}

// CreateReservationRequest creates a reservation. A nil Arrival means
// "as soon as possible".
type CreateReservationRequest struct {
	VendorID uuid.UUID                `json:"vendor_id" binding:"required"`
	Arrival  *ArrivalRequest          `json:"arrival,omitempty"`
	Items    []ReservationItemRequest `json:"items" binding:"required,min=1,dive"`
	Note     string                   `json:"note"`
}

// ToCommand parses the arrival slot in loc, the beach's timezone. Parsing
// in any other zone would shift the date across the day boundary and the
// slot would be validated against the wrong operating day.
func (r CreateReservationRequest) ToCommand(loc *time.Location) (commands.CreateReservationCommand, error) {
	cmd := commands.CreateReservationCommand{
		VendorID: r.VendorID,
		Note:     strings.TrimSpace(r.Note),
	}
	for _, item := range r.Items {
		cmd.Items = append(cmd.Items, commands.ItemInput{ItemID: item.ItemID, Quantity: item.Quantity})
	}

	if r.Arrival == nil {
		return cmd, nil
	}

	day, err := time.ParseInLocation("2006-01-02", r.Arrival.Day, loc)
	if err != nil {
		return commands.CreateReservationCommand{}, ErrInvalidArrivalFormat
	}
	clock, err := time.Parse("15:04", r.Arrival.Time)
	if err != nil {
		return commands.CreateReservationCommand{}, ErrInvalidArrivalFormat
	}
	cmd.Arrival = &commands.ArrivalInput{
		Day:    day,
		Hour:   clock.Hour(),
		Minute: clock.Minute(),
	}
	return cmd, nil
}

type CheckInRequest struct {
	Code string `json:"code" binding:"required,len=4,numeric"`
}

// DecisionRequest carries an optional reason for rejections and vendor
// cancellations.
type DecisionRequest struct {
	Reason *string `json:"reason,omitempty"`
}

func (r DecisionRequest) GetReason() *string {
	if r.Reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
