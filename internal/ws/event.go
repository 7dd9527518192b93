// Package ws implements the realtime chat relay on top of gorilla/websocket.
//
// Clients connect, optionally register a user id, explicitly join
// conversation rooms, and send messages. A sent message is persisted through
// the chat service (one transaction per message) and the stored row is then
// broadcast to every connection subscribed to that conversation's room.
// Delivery is at-most-once: there is no acknowledgment, retry, or backfill.
package ws

import (
	"encoding/json"
	"strconv"
)

// Inbound event names.
const (
	EventRegisterUser     = "registerUser"
	EventJoinConversation = "joinConversation"
	EventSendMessage      = "sendMessage"
)

// EventReceiveMessage is the outbound broadcast carrying a stored message row.
const EventReceiveMessage = "receiveMessage"

// Envelope is the wire format for both directions: a named event plus its
// JSON payload.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// flexID is an integer id that tolerates being sent as a JSON number or a
// numeric string. Mobile clients serialize ids inconsistently; anything that
// does not parse to a positive integer is rejected by validation.
type flexID int64

func (f *flexID) UnmarshalJSON(b []byte) error {
	var n int64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = flexID(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Leave zero; validation treats it as missing.
		*f = 0
		return nil
	}
	*f = flexID(n)
	return nil
}

// RegisterUserPayload attaches a user id to the connection.
type RegisterUserPayload struct {
	UserID flexID `json:"user_id"`
}

// JoinConversationPayload subscribes the connection to a conversation room.
type JoinConversationPayload struct {
	ConversationID flexID `json:"conversation_id"`
}

// SendMessagePayload carries one chat message to persist and relay.
type SendMessagePayload struct {
	SenderID       flexID  `json:"sender_id"`
	ReceiverID     flexID  `json:"receiver_id"`
	ConversationID flexID  `json:"conversation_id"`
	Content        string  `json:"content"`
	ImageURL       *string `json:"image_url,omitempty"`
}

// Valid reports whether all required fields are present and positive.
func (p SendMessagePayload) Valid() bool {
	return p.SenderID > 0 && p.ReceiverID > 0 && p.ConversationID > 0 && p.Content != ""
}
