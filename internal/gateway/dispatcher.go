package gateway

import (
	"log"

	"drawtogether-backend/internal/protocol"
	"drawtogether-backend/internal/room"
	"drawtogether-backend/internal/session"
)

// broadcast delivers msg to every current member of the room except
// exclude (pass nil to include everyone). Delivery is a non-blocking
// enqueue per recipient: one full or closed queue never aborts delivery
// to the rest, and each recipient sees messages in emission order.
func (g *Gateway) broadcast(r *room.Room, msg protocol.Message, exclude *session.Session) {
	for _, member := range r.Members() {
		if member == exclude {
			continue
		}
		if !member.Enqueue(msg) {
			log.Printf("[Room %s] Could not deliver %s to %s", r.Code, msg.Type, member.ID)
		}
	}
}
