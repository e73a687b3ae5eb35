package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONBMap_ValueAndScan(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  JSONBMap
	}{
		{name: "nil", input: nil, want: nil},
		{name: "bytes", input: []byte(`{"amount":"1500.00"}`), want: JSONBMap{"amount": "1500.00"}},
		{name: "string", input: `{"threshold":"1000"}`, want: JSONBMap{"threshold": "1000"}},
		{name: "empty string", input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m JSONBMap
			require.NoError(t, m.Scan(tt.input))
			assert.Equal(t, tt.want, m)
		})
	}

	var m JSONBMap
	assert.Error(t, m.Scan(42))

	value, err := JSONBMap{}.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	value, err = JSONBMap{"transactionId": "abc"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"transactionId":"abc"}`, value)
}

func TestJSONBMap_MarshalJSON(t *testing.T) {
	var empty JSONBMap
	data, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	assert.Equal(t, "abc", JSONBMap{"transactionId": "abc"}.String("transactionId"))
	assert.Equal(t, "", JSONBMap{"count": 3}.String("count"))
}

func TestAlertHistory_MarkRead(t *testing.T) {
	alert := &AlertHistory{UserID: uuid.New(), AlertType: AlertTypeHighAmount}
	alert.SetMetadata("amount", "1500.00")

	now := time.Now()
	assert.True(t, alert.MarkRead(now))
	assert.True(t, alert.IsRead)
	require.NotNil(t, alert.ReadAt)
	assert.False(t, alert.MarkRead(now.Add(time.Minute)))
	assert.Equal(t, now, *alert.ReadAt)
	assert.Equal(t, "1500.00", alert.Metadata.String("amount"))
	assert.Contains(t, alert.String(), "HIGH_AMOUNT")
}
