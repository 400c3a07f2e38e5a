//go:build unit

package notifier_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"beach-reserve/internal/notifier"
	"beach-reserve/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpoClient_Send(t *testing.T) {
	t.Run("posts the batch and accepts ok tickets", func(t *testing.T) {
		var received []notifier.ExpoMessage
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":[{"status":"ok"},{"status":"ok"}]}`))
		}))
		defer server.Close()

		client := notifier.NewExpoClient(server.URL)
		err := client.Send(context.Background(), []notifier.ExpoMessage{
			{To: "ExponentPushToken[aaa]", Title: "Nova reserva!", Body: "corpo"},
			{To: "ExponentPushToken[bbb]", Title: "Nova reserva!", Body: "corpo"},
		})

		require.NoError(t, err)
		require.Len(t, received, 2)
		assert.Equal(t, "ExponentPushToken[aaa]", received[0].To)
	})

	t.Run("fails the batch on a non-ok ticket", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":[{"status":"ok"},{"status":"error","message":"DeviceNotRegistered"}]}`))
		}))
		defer server.Close()

		client := notifier.NewExpoClient(server.URL)
		err := client.Send(context.Background(), []notifier.ExpoMessage{
			{To: "ExponentPushToken[aaa]", Title: "t", Body: "b"},
			{To: "ExponentPushToken[bbb]", Title: "t", Body: "b"},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "DeviceNotRegistered")
	})

	t.Run("fails on a non-200 gateway response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := notifier.NewExpoClient(server.URL)
		err := client.Send(context.Background(), []notifier.ExpoMessage{{To: "x", Title: "t", Body: "b"}})

		require.Error(t, err)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		client := notifier.NewExpoClient("http://127.0.0.1:1")
		require.NoError(t, client.Send(context.Background(), nil))
	})
}

func TestCompose(t *testing.T) {
	vendorSide := "VENDOR"
	userSide := "USER"

	tests := []struct {
		name       string
		topic      string
		canceledBy *string
		audience   notifier.Audience
		title      string
	}{
		{"created goes to the vendor", commands.TopicReservationCreated, nil, notifier.AudienceVendor, "Nova reserva!"},
		{"confirmed goes to the customer", commands.TopicReservationConfirmed, nil, notifier.AudienceCustomer, "Reserva confirmada!"},
		{"rejected goes to the customer", commands.TopicReservationRejected, nil, notifier.AudienceCustomer, "Reserva recusada"},
		{"vendor cancellation goes to the customer", commands.TopicReservationCanceled, &vendorSide, notifier.AudienceCustomer, "Reserva cancelada"},
		{"customer cancellation goes to the vendor", commands.TopicReservationCanceled, &userSide, notifier.AudienceVendor, "Reserva cancelada"},
		{"no-show goes to the customer", commands.TopicReservationNoShow, nil, notifier.AudienceCustomer, "Reserva expirada"},
		{"check-in goes to the vendor", commands.TopicReservationArrived, nil, notifier.AudienceVendor, "Cliente chegou"},
		{"unknown topic is dropped", "reservation.unknown", nil, notifier.AudienceNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := notifier.Compose(commands.ReservationEvent{Topic: tt.topic, CanceledBy: tt.canceledBy})

			assert.Equal(t, tt.audience, note.Audience)
			assert.Equal(t, tt.title, note.Title)
		})
	}
}
