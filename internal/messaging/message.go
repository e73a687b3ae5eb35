package messaging

import (
	"encoding/json"
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

const (
	RoutingKeyTransactionCreated = "transaction.created"
	contentTypeJSON              = "application/json"
)

var ErrMalformedEvent = errors.New("malformed transaction event")

// EncodeTransactionEvent serializes event for the broker
func EncodeTransactionEvent(event models.TransactionEvent) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction event: %w", err)
	}
	return body, nil
}

// DecodeTransactionEvent parses a broker payload. Events without a user or
// transaction id cannot be evaluated and are rejected as malformed.
func DecodeTransactionEvent(body []byte) (models.TransactionEvent, error) {
	var event models.TransactionEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return event, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if event.UserID == uuid.Nil {
		return event, fmt.Errorf("%w: missing user_id", ErrMalformedEvent)
	}
	if event.TransactionID == uuid.Nil {
		return event, fmt.Errorf("%w: missing transaction_id", ErrMalformedEvent)
	}
	return event, nil
}
