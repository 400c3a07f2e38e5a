//go:build unit

package bootstrap_test

import (
	"testing"

	"beach-reserve/cmd/bootstrap"
	"beach-reserve/internal/infra/events"
	"beach-reserve/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewEventPublisher_WithoutBroker(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	publisher, err := bootstrap.NewEventPublisher(lc, config.Config{})
	require.NoError(t, err)
	assert.IsType(t, events.NoopPublisher{}, publisher)
}
