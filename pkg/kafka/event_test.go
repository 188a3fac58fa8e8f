package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartPayload struct {
	SessionID  string `json:"session_id"`
	TotalItems int    `json:"total_items"`
}

func TestEventRoundTrip(t *testing.T) {
	evt, err := NewEvent("sweetmoments.cart.updated", "sess-1", "cart", "storefront",
		cartPayload{SessionID: "sess-1", TotalItems: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, evt.EventID)
	assert.Equal(t, 1, evt.Version)
	assert.False(t, evt.Timestamp.IsZero())

	evt.WithCorrelationID("corr-1")

	data, err := evt.Marshal()
	require.NoError(t, err)

	decoded, err := UnmarshalEvent(data)
	require.NoError(t, err)
	assert.Equal(t, evt.EventID, decoded.EventID)
	assert.Equal(t, "corr-1", decoded.CorrelationID)
	assert.Equal(t, "cart", decoded.AggregateType)

	var payload cartPayload
	require.NoError(t, decoded.UnmarshalData(&payload))
	assert.Equal(t, 3, payload.TotalItems)
}

func TestNewEventRejectsUnmarshalableData(t *testing.T) {
	_, err := NewEvent("topic", "agg", "type", "src", make(chan int))
	assert.Error(t, err)
}
