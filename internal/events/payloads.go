package events

import (
	"encoding/json"
	"time"
)

// Envelope mirrors the storage-change notification shape consumed by
// clients: the event type plus the newly inserted row.
type Envelope struct {
	Type string          `json:"type"`
	New  json.RawMessage `json:"new"`
}

const TypeInsert = "INSERT"

// MessagePayload is the wire form of a newly appended chat message.
type MessagePayload struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"match_id"`
	SenderID  string    `json:"sender_id"`
	Kind      string    `json:"kind"`
	Content   string    `json:"content"`
	Seq       uint64    `json:"seq"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchPayload is the wire form of a newly created match.
type MatchPayload struct {
	ID        string    `json:"id"`
	UserA     string    `json:"user_a"`
	UserB     string    `json:"user_b"`
	CreatedAt time.Time `json:"created_at"`
}

// EncodeInsert wraps a payload in an INSERT envelope.
func EncodeInsert(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: TypeInsert, New: raw})
}

// DecodeMessage unwraps an INSERT envelope into a message payload.
func DecodeMessage(b []byte) (MessagePayload, error) {
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return MessagePayload{}, err
	}
	var msg MessagePayload
	if err := json.Unmarshal(env.New, &msg); err != nil {
		return MessagePayload{}, err
	}
	return msg, nil
}

// DecodeMatch unwraps an INSERT envelope into a match payload.
func DecodeMatch(b []byte) (MatchPayload, error) {
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return MatchPayload{}, err
	}
	var m MatchPayload
	if err := json.Unmarshal(env.New, &m); err != nil {
		return MatchPayload{}, err
	}
	return m, nil
}
