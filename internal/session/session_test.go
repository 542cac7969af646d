package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drawtogether-backend/internal/protocol"
)

func TestNewSessionStartsUnjoined(t *testing.T) {
	s := New(4)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, StateUnjoined, s.State())
	_, ok := s.InRoom()
	assert.False(t, ok)
}

func TestJoinTransition(t *testing.T) {
	s := New(4)
	s.Join("A4X9L2", "Alex")

	assert.Equal(t, StateJoined, s.State())
	assert.Equal(t, "Alex", s.Username())
	roomID, ok := s.InRoom()
	require.True(t, ok)
	assert.Equal(t, "A4X9L2", roomID)
}

func TestEnqueueAndDrain(t *testing.T) {
	s := New(4)

	require.True(t, s.Enqueue(protocol.New(protocol.TypeClearBoard, nil)))
	require.True(t, s.Enqueue(protocol.New(protocol.TypeUserLeft, protocol.UserPayload{Username: "Sam"})))

	first := <-s.Outbox()
	second := <-s.Outbox()
	assert.Equal(t, protocol.TypeClearBoard, first.Type)
	assert.Equal(t, protocol.TypeUserLeft, second.Type)
}

func TestEnqueueDropsWhenFull(t *testing.T) {
	s := New(1)

	assert.True(t, s.Enqueue(protocol.New(protocol.TypeClearBoard, nil)))
	assert.False(t, s.Enqueue(protocol.New(protocol.TypeClearBoard, nil)))
}

func TestCloseIsIdempotentAndTerminal(t *testing.T) {
	s := New(4)
	s.Join("A4X9L2", "Alex")

	s.Close()
	s.Close()

	assert.True(t, s.Closed())
	assert.Equal(t, StateLeft, s.State())
	assert.False(t, s.Enqueue(protocol.New(protocol.TypeClearBoard, nil)))

	_, open := <-s.Outbox()
	assert.False(t, open)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "unjoined", StateUnjoined.String())
	assert.Equal(t, "joined", StateJoined.String())
	assert.Equal(t, "left", StateLeft.String())
}
