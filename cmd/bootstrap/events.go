package bootstrap

import (
	"context"

	"beach-reserve/internal/infra/events"
	"beach-reserve/internal/infra/storage"
	"beach-reserve/internal/pkg/config"
	"beach-reserve/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(NewEventPublisher),
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		fx.Annotate(
			NewMediaStorage,
			fx.As(new(commands.MediaStorage)),
		),
	),
)

// NewEventPublisher dials NATS when a URL is configured and otherwise runs
// with a no-op publisher, so serve works without a broker.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (commands.EventPublisher, error) {
	if cfg.NATS.URL == "" {
		return events.NoopPublisher{}, nil
	}

	publisher, err := events.NewNATSPublisher(cfg.NATS.URL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			publisher.Close()
			return nil
		},
	})

	return publisher, nil
}

func NewMediaStorage(cfg config.Config) (*storage.LocalStorage, error) {
	return storage.NewLocalStorage(cfg.Media)
}
