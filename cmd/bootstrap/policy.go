package bootstrap

import (
	"time"

	"beach-reserve/internal/domain/reservation"
	"beach-reserve/internal/pkg/config"

	"go.uber.org/fx"
)

var PolicyModule = fx.Module("policy",
	fx.Provide(
		NewPolicy,
	),
)

// NewPolicy builds the arrival-window and cancellation rules from config.
func NewPolicy(cfg config.Config) (reservation.Policy, error) {
	loc, err := time.LoadLocation(cfg.Reservation.TimeZone)
	if err != nil {
		return reservation.Policy{}, err
	}

	return reservation.NewPolicy(reservation.PolicyParams{
		OpenHour:     cfg.Reservation.OpenHour,
		OpenMinute:   cfg.Reservation.OpenMinute,
		CloseHour:    cfg.Reservation.CloseHour,
		CloseMinute:  cfg.Reservation.CloseMinute,
		MaxDayOffset: cfg.Reservation.MaxDayOffset,
		MinimumLead:  cfg.Reservation.MinimumLead,
		CancelCutoff: cfg.Reservation.CancelCutoff,
		NoShowGrace:  cfg.Reservation.NoShowGrace,
		Location:     loc,
	})
}
