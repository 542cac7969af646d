package handler

import (
	"encoding/json"
	"log"

	"github.com/gofiber/contrib/websocket"

	"drawtogether-backend/internal/config"
	"drawtogether-backend/internal/gateway"
	"drawtogether-backend/internal/protocol"
	"drawtogether-backend/internal/session"
)

// BoardHandler bridges WebSocket connections to the gateway event loop.
type BoardHandler struct {
	gw  *gateway.Gateway
	cfg *config.Config
}

// NewBoardHandler creates the board WebSocket handler.
func NewBoardHandler(gw *gateway.Gateway, cfg *config.Config) *BoardHandler {
	return &BoardHandler{gw: gw, cfg: cfg}
}

// HandleWebSocket runs one connection: a write pump draining the session
// outbox, and a read loop posting parsed frames to the gateway. All room
// logic lives behind the gateway; this layer only moves frames.
func (h *BoardHandler) HandleWebSocket(c *websocket.Conn) {
	sess := session.New(h.cfg.Gateway.SessionSendBuffer)
	log.Printf("[Board] Client connected: %s", sess.ID)

	go writePump(sess, c)

	defer func() {
		h.gw.PostDisconnect(sess)
		c.Close()
		log.Printf("[Board] Client disconnected: %s", sess.ID)
	}()

	for {
		msgType, data, err := c.ReadMessage()
		if err != nil {
			break
		}
		if msgType != websocket.TextMessage {
			continue
		}

		msg, err := protocol.Decode(data)
		if err != nil {
			log.Printf("[Board] Unparsable frame from %s: %v", sess.ID, err)
			continue
		}
		h.gw.Post(sess, msg)
	}
}

// writePump serializes the session outbox onto the socket. FIFO per
// connection; a write failure stops the pump and lets the read side
// surface the disconnect.
func writePump(sess *session.Session, c *websocket.Conn) {
	for msg := range sess.Outbox() {
		data, err := json.Marshal(msg)
		if err != nil {
			log.Printf("[Board] Failed to marshal %s for %s: %v", msg.Type, sess.ID, err)
			continue
		}
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("[Board] Write to %s failed: %v", sess.ID, err)
			c.Close()
			return
		}
	}
	// Outbox closed: the gateway finished the disconnect.
	c.Close()
}
