package protocol

import (
	"encoding/json"
	"log"

	"drawtogether-backend/internal/model"
)

// Inbound event types (client -> server).
const (
	TypeCreateRoom = "create_room"
	TypeJoinRoom   = "join_room"
	TypeDrawLine   = "draw_line"
	TypeClearBoard = "clear_board"
)

// Outbound event types (server -> client). draw_line and clear_board are
// reused in both directions.
const (
	TypeRoomCreated   = "room_created"
	TypeJoinedSuccess = "joined_success"
	TypeLoadLines     = "load_lines"
	TypeUserJoined    = "user_joined"
	TypeUserLeft      = "user_left"
	TypeError         = "error"
)

// Message is the envelope for every WebSocket frame in both directions.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// CreateRoomPayload create_room request
type CreateRoomPayload struct {
	Username string `json:"username"`
}

// JoinRoomPayload join_room request
type JoinRoomPayload struct {
	RoomID   string `json:"roomId"`
	Username string `json:"username"`
}

// DrawLinePayload draw_line request
type DrawLinePayload struct {
	Room string       `json:"room"`
	Line model.Stroke `json:"line"`
}

// ClearBoardPayload clear_board request
type ClearBoardPayload struct {
	Room string `json:"room"`
}

// RoomInfoPayload room_created / joined_success response, with usernames
// in join order.
type RoomInfoPayload struct {
	RoomID    string   `json:"roomId"`
	Usernames []string `json:"usernames"`
}

// UserPayload user_joined / user_left notification
type UserPayload struct {
	Username string `json:"username"`
}

// ErrorPayload error response
type ErrorPayload struct {
	Message string `json:"message"`
}

// New builds an outbound message with the payload already marshaled. The
// payload types above only hold marshal-safe fields, so a marshal failure
// is a programming error and yields an empty payload.
func New(msgType string, payload any) Message {
	if payload == nil {
		return Message{Type: msgType}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[Protocol] Failed to marshal %s payload: %v", msgType, err)
		return Message{Type: msgType}
	}
	return Message{Type: msgType, Payload: raw}
}

// Decode parses an inbound frame into the envelope. Payload stays raw so
// each handler can bind it to its own payload type.
func Decode(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// Bind unmarshals the envelope payload into dst.
func (m Message) Bind(dst any) error {
	return json.Unmarshal(m.Payload, dst)
}
