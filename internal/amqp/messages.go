package amqp

import (
	"encoding/json"
	"time"

	"github.com/adrianAraqueG/gaston/internal/core"
)

// ChangeMessage announces that a resource changed. Consumers fetch the
// current state from the API; the message carries only the identity.
type ChangeMessage struct {
	Resource  string    `json:"resource"`
	Operation string    `json:"operation"`
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewChangeMessage(c core.Change) *ChangeMessage {
	return &ChangeMessage{
		Resource:  c.Resource,
		Operation: c.Operation,
		ID:        c.ID,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
