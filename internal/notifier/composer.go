package notifier

import (
	"beach-reserve/internal/usecase/commands"
)

// Audience selects who a reservation update is delivered to.
type Audience int

const (
	AudienceNone Audience = iota
	AudienceCustomer
	AudienceVendor
)

type Notification struct {
	Audience Audience
	Title    string
	Body     string
}

// Compose maps a reservation event to its push copy. The product ships in
// Brazilian Portuguese.
func Compose(event commands.ReservationEvent) Notification {
	switch event.Topic {
	case commands.TopicReservationCreated:
		return Notification{
			Audience: AudienceVendor,
			Title:    "Nova reserva!",
			Body:     "Você recebeu uma nova reserva. Toque para ver os detalhes.",
		}
	case commands.TopicReservationConfirmed:
		return Notification{
			Audience: AudienceCustomer,
			Title:    "Reserva confirmada!",
			Body:     "Sua reserva foi confirmada. Até logo!",
		}
	case commands.TopicReservationRejected:
		return Notification{
			Audience: AudienceCustomer,
			Title:    "Reserva recusada",
			Body:     "Infelizmente o vendedor não pôde aceitar sua reserva.",
		}
	case commands.TopicReservationCanceled:
		if event.CanceledBy != nil && *event.CanceledBy == "VENDOR" {
			return Notification{
				Audience: AudienceCustomer,
				Title:    "Reserva cancelada",
				Body:     "O vendedor precisou cancelar sua reserva.",
			}
		}
		return Notification{
			Audience: AudienceVendor,
			Title:    "Reserva cancelada",
			Body:     "O cliente cancelou a reserva.",
		}
	case commands.TopicReservationNoShow:
		return Notification{
			Audience: AudienceCustomer,
			Title:    "Reserva expirada",
			Body:     "Sua reserva foi marcada como não comparecimento.",
		}
	case commands.TopicReservationArrived:
		return Notification{
			Audience: AudienceVendor,
			Title:    "Cliente chegou",
			Body:     "Check-in realizado com sucesso.",
		}
	default:
		return Notification{Audience: AudienceNone}
	}
}
