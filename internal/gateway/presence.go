package gateway

import (
	"log"

	"drawtogether-backend/internal/protocol"
	"drawtogether-backend/internal/session"
)

// handleDisconnect removes the session from its room, tears the room
// down when it empties, and otherwise notifies the remaining members.
// Idempotent: a double disconnect or a never-joined connection is a
// quiet cleanup, not an error.
func (g *Gateway) handleDisconnect(sess *session.Session) {
	if sess.Closed() {
		return
	}

	code, joined := sess.InRoom()
	username := sess.Username()
	sess.Close()

	if !joined {
		log.Printf("[Gateway] Unjoined session %s disconnected", sess.ID)
		return
	}

	r, ok := g.registry.Get(code)
	if !ok {
		log.Printf("[Gateway] Disconnect for %s references missing room %s", sess.ID, code)
		return
	}
	if !r.RemoveMember(sess) {
		return
	}

	log.Printf("[Room %s] %s left (%d remaining)", r.Code, username, r.Len())

	if r.Empty() {
		g.registry.Remove(r.Code)
		return
	}
	g.broadcast(r, protocol.New(protocol.TypeUserLeft, protocol.UserPayload{Username: username}), nil)
}
