package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockroom/internal/domain/constants"
	"stockroom/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishInventoryEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestIDHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	event := &service.InventoryEvent{
		RequestID:   "req-123",
		Type:        constants.EventStockLow,
		ProductID:   "7a3d3f1e-0000-0000-0000-000000000000",
		ProductName: "Widget",
		Stock:       2,
		Threshold:   5,
	}

	err := publisher.PublishInventoryEvent(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "req-123", requestIDHeader)
	assert.Equal(t, constants.EventStockLow, received.Message.Attributes["type"])
	assert.Equal(t, event.ProductID, received.Message.Attributes["product_id"])
	assert.Equal(t, "req-123", received.Message.Attributes["request_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	decoded, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decodedEvent service.InventoryEvent
	require.NoError(t, json.Unmarshal(decoded, &decodedEvent))
	assert.Equal(t, *event, decodedEvent)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishInventoryEvent(context.Background(), &service.InventoryEvent{
		Type: constants.EventOrderCreated,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status")
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: discardLogger()}

	err := publisher.PublishInventoryEvent(context.Background(), &service.InventoryEvent{
		Type: constants.EventOrderCreated,
	})
	assert.NoError(t, err)
	assert.NoError(t, publisher.Close())
}
