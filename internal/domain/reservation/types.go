package reservation

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusArrived   Status = "ARRIVED"
	StatusNoShow    Status = "NO_SHOW"
	StatusCanceled  Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusArrived, StatusNoShow, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the reservation still awaits an outcome.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusConfirmed
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// CanceledBy records which actor triggered a cancellation. Push copy and
// audit views differ depending on who pulled the trigger.
type CanceledBy string

const (
	CanceledByUser   CanceledBy = "USER"
	CanceledByVendor CanceledBy = "VENDOR"
)

func (c CanceledBy) String() string {
	return string(c)
}

func (c CanceledBy) IsValid() bool {
	switch c {
	case CanceledByUser, CanceledByVendor:
		return true
	default:
		return false
	}
}
