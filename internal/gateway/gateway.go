package gateway

import (
	"context"
	"log"

	"drawtogether-backend/internal/config"
	"drawtogether-backend/internal/model"
	"drawtogether-backend/internal/protocol"
	"drawtogether-backend/internal/room"
	"drawtogether-backend/internal/session"
)

// Gateway validates and sequences every inbound event. All room and
// registry mutations happen on the single Run loop, one event to
// completion before the next, so rooms need no locking and events for a
// room apply in arrival order.
type Gateway struct {
	registry *room.Registry
	bounds   model.Bounds
	capacity int
	events   chan event
}

// event is one unit of work for the loop: either an inbound message or a
// disconnect signal from the connection layer.
type event struct {
	sess       *session.Session
	msg        protocol.Message
	disconnect bool
}

// New creates a gateway over the registry with policy from config.
func New(cfg *config.Config, registry *room.Registry) *Gateway {
	return &Gateway{
		registry: registry,
		bounds:   model.Bounds{MinWidth: cfg.Stroke.MinWidth, MaxWidth: cfg.Stroke.MaxWidth},
		capacity: cfg.Room.Capacity,
		events:   make(chan event, cfg.Gateway.EventBuffer),
	}
}

// Post queues an inbound message from a connection. Blocks when the event
// buffer is full, which keeps per-connection ordering intact under load.
func (g *Gateway) Post(sess *session.Session, msg protocol.Message) {
	g.events <- event{sess: sess, msg: msg}
}

// PostDisconnect queues a disconnect signal for the session.
func (g *Gateway) PostDisconnect(sess *session.Session) {
	g.events <- event{sess: sess, disconnect: true}
}

// Run drains the event queue until the context is cancelled. This is the
// only goroutine that touches rooms.
func (g *Gateway) Run(ctx context.Context) {
	log.Printf("[Gateway] Event loop started")
	defer log.Printf("[Gateway] Event loop stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-g.events:
			g.process(evt)
		}
	}
}

// process dispatches one event to its handler.
func (g *Gateway) process(evt event) {
	if evt.disconnect {
		g.handleDisconnect(evt.sess)
		return
	}

	switch evt.msg.Type {
	case protocol.TypeCreateRoom:
		g.handleCreate(evt.sess, evt.msg)
	case protocol.TypeJoinRoom:
		g.handleJoin(evt.sess, evt.msg)
	case protocol.TypeDrawLine:
		g.handleDrawLine(evt.sess, evt.msg)
	case protocol.TypeClearBoard:
		g.handleClearBoard(evt.sess, evt.msg)
	default:
		log.Printf("[Gateway] Unknown event type %q from %s", evt.msg.Type, evt.sess.ID)
		g.sendError(evt.sess, "unknown event type")
	}
}

// sendError delivers an error event to the offending connection only.
func (g *Gateway) sendError(sess *session.Session, message string) {
	sess.Enqueue(protocol.New(protocol.TypeError, protocol.ErrorPayload{Message: message}))
}
