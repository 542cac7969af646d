package session

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"drawtogether-backend/internal/protocol"
)

// State connection lifecycle state
type State int

const (
	StateUnjoined State = iota // connected, not in a room yet
	StateJoined                // member of a room
	StateLeft                  // terminal; a new connection is required to rejoin
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnjoined:
		return "unjoined"
	case StateJoined:
		return "joined"
	case StateLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Session is the per-connection state. Room membership fields are only
// mutated on the gateway event loop; the mutex exists because the write
// pump and the event loop both touch the outbound queue lifecycle.
type Session struct {
	ID       string
	username string
	roomID   string
	state    State

	mu     sync.Mutex
	closed bool
	send   chan protocol.Message
}

// New creates an unjoined session with a fresh connection id and an
// outbound queue of the given size.
func New(sendBuffer int) *Session {
	return &Session{
		ID:    uuid.New().String(),
		state: StateUnjoined,
		send:  make(chan protocol.Message, sendBuffer),
	}
}

// Join marks the session as a member of the room. Valid only from the
// unjoined state; create/join handlers guard that before calling.
func (s *Session) Join(roomID, username string) {
	s.roomID = roomID
	s.username = username
	s.state = StateJoined
}

// InRoom returns the joined room id, if any.
func (s *Session) InRoom() (string, bool) {
	if s.state != StateJoined {
		return "", false
	}
	return s.roomID, true
}

// Username returns the display name chosen at entry, empty until joined.
func (s *Session) Username() string {
	return s.username
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Enqueue queues an outbound message without blocking. Returns false if
// the session is closed or its queue is full; a slow or dead recipient
// never stalls the event loop.
func (s *Session) Enqueue(msg protocol.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.send <- msg:
		return true
	default:
		log.Printf("[Session %s] Send buffer full, dropping %s", s.ID, msg.Type)
		return false
	}
}

// Outbox is the outbound queue, drained by the write pump (or by tests).
// It is closed when the session closes.
func (s *Session) Outbox() <-chan protocol.Message {
	return s.send
}

// Close marks the session left and closes the outbound queue. Idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.state = StateLeft
	close(s.send)
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
