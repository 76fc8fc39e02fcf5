package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AlertCreatedMessage announces a newly persisted alert.
// Consumers fetch nothing; the message carries the full alert text.
type AlertCreatedMessage struct {
	AlertID   uuid.UUID `json:"alert_id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Timestamp time.Time `json:"timestamp"`
}

// NewAlertCreatedMessage creates a message stamped with the current time
func NewAlertCreatedMessage(alertID, userID uuid.UUID, alertType, message string, createdAt time.Time) *AlertCreatedMessage {
	return &AlertCreatedMessage{
		AlertID:   alertID,
		UserID:    userID,
		Type:      alertType,
		Message:   message,
		CreatedAt: createdAt,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *AlertCreatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// AlertCreatedMessageFromJSON creates a message from JSON bytes
func AlertCreatedMessageFromJSON(data []byte) (*AlertCreatedMessage, error) {
	var msg AlertCreatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
