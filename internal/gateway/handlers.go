package gateway

import (
	"fmt"
	"log"
	"strings"

	"drawtogether-backend/internal/protocol"
	"drawtogether-backend/internal/room"
	"drawtogether-backend/internal/session"
)

// handleCreate creates a room with the requester as host and sole member.
func (g *Gateway) handleCreate(sess *session.Session, msg protocol.Message) {
	var payload protocol.CreateRoomPayload
	if err := msg.Bind(&payload); err != nil {
		g.sendError(sess, "malformed create_room payload")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" {
		g.sendError(sess, "username is required")
		return
	}
	if _, joined := sess.InRoom(); joined {
		g.sendError(sess, "already in a room")
		return
	}

	r, err := g.registry.Create()
	if err != nil {
		log.Printf("[Gateway] Room creation failed: %v", err)
		g.sendError(sess, "could not create a room, try again")
		return
	}

	sess.Join(r.Code, username)
	r.AddMember(sess)
	log.Printf("[Room %s] Created by %s (%s)", r.Code, username, sess.ID)

	sess.Enqueue(protocol.New(protocol.TypeRoomCreated, protocol.RoomInfoPayload{
		RoomID:    r.Code,
		Usernames: r.Usernames(),
	}))
}

// handleJoin admits the requester into an existing room, replays the
// stroke log to it, and announces the arrival to the other members.
func (g *Gateway) handleJoin(sess *session.Session, msg protocol.Message) {
	var payload protocol.JoinRoomPayload
	if err := msg.Bind(&payload); err != nil {
		g.sendError(sess, "malformed join_room payload")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" {
		g.sendError(sess, "username is required")
		return
	}

	r, ok := g.registry.Get(payload.RoomID)
	if !ok {
		g.sendError(sess, "room does not exist")
		return
	}

	if current, joined := sess.InRoom(); joined {
		// Same browser re-sending join for its own room: confirm and
		// replay, nothing else changes.
		if current == r.Code {
			g.replyJoined(sess, r)
			return
		}
		g.sendError(sess, "already in a room")
		return
	}

	if r.Len() >= g.capacity {
		g.sendError(sess, fmt.Sprintf("room is full (max %d)", g.capacity))
		return
	}

	sess.Join(r.Code, username)
	r.AddMember(sess)
	log.Printf("[Room %s] %s joined (%d/%d)", r.Code, username, r.Len(), g.capacity)

	g.replyJoined(sess, r)
	g.broadcast(r, protocol.New(protocol.TypeUserJoined, protocol.UserPayload{Username: username}), sess)
}

// replyJoined sends the join confirmation followed by the full stroke
// log, so the joiner's canvas reconstructs from scratch.
func (g *Gateway) replyJoined(sess *session.Session, r *room.Room) {
	sess.Enqueue(protocol.New(protocol.TypeJoinedSuccess, protocol.RoomInfoPayload{
		RoomID:    r.Code,
		Usernames: r.Usernames(),
	}))
	sess.Enqueue(protocol.New(protocol.TypeLoadLines, r.Strokes()))
}

// handleDrawLine appends a finished stroke and fans it out to the other
// members. Malformed strokes are logged and dropped without an error
// event, so a formatting glitch cannot desynchronize concurrent strokes.
func (g *Gateway) handleDrawLine(sess *session.Session, msg protocol.Message) {
	var payload protocol.DrawLinePayload
	if err := msg.Bind(&payload); err != nil {
		log.Printf("[Gateway] Dropping unparsable draw_line from %s: %v", sess.ID, err)
		return
	}

	r, ok := g.memberRoom(sess, payload.Room)
	if !ok {
		g.sendError(sess, "not a member of this room")
		return
	}

	if err := payload.Line.Validate(g.bounds); err != nil {
		log.Printf("[Room %s] Dropping stroke from %s: %v", r.Code, sess.Username(), err)
		return
	}

	r.AppendStroke(payload.Line)
	g.broadcast(r, protocol.New(protocol.TypeDrawLine, payload.Line), sess)
}

// handleClearBoard empties the stroke log and notifies every member,
// sender included; the duplicate clear on the sender side is idempotent.
func (g *Gateway) handleClearBoard(sess *session.Session, msg protocol.Message) {
	var payload protocol.ClearBoardPayload
	if err := msg.Bind(&payload); err != nil {
		g.sendError(sess, "malformed clear_board payload")
		return
	}

	r, ok := g.memberRoom(sess, payload.Room)
	if !ok {
		g.sendError(sess, "not a member of this room")
		return
	}

	r.ClearStrokes()
	log.Printf("[Room %s] Board cleared by %s", r.Code, sess.Username())
	g.broadcast(r, protocol.New(protocol.TypeClearBoard, nil), nil)
}

// memberRoom resolves the named room and checks that the session is a
// current member of it.
func (g *Gateway) memberRoom(sess *session.Session, code string) (*room.Room, bool) {
	joinedRoom, joined := sess.InRoom()
	if !joined || joinedRoom != code {
		return nil, false
	}
	r, ok := g.registry.Get(code)
	if !ok {
		// Session points at a room the registry no longer has; defensive
		// no-op beyond the error to the sender.
		log.Printf("[Gateway] Session %s references missing room %s", sess.ID, code)
		return nil, false
	}
	if !r.HasMember(sess) {
		return nil, false
	}
	return r, true
}
