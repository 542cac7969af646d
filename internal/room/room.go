package room

import (
	"time"

	"drawtogether-backend/internal/model"
	"drawtogether-backend/internal/session"
)

// Room is one collaboration session: an ordered member list and the
// append-only stroke log that reconstructs the board for late joiners.
// Rooms are only mutated on the gateway event loop, so they carry no lock.
type Room struct {
	Code      string
	CreatedAt time.Time

	members []*session.Session // join order preserved
	strokes []model.Stroke
}

// New creates an empty room with the given code.
func New(code string) *Room {
	return &Room{
		Code:      code,
		CreatedAt: time.Now(),
	}
}

// AddMember appends the session to the member list.
func (r *Room) AddMember(s *session.Session) {
	r.members = append(r.members, s)
}

// RemoveMember removes the session, preserving the order of the rest.
// Returns false if the session was not a member.
func (r *Room) RemoveMember(s *session.Session) bool {
	for i, m := range r.members {
		if m == s {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return true
		}
	}
	return false
}

// HasMember reports whether the session is currently a member.
func (r *Room) HasMember(s *session.Session) bool {
	for _, m := range r.members {
		if m == s {
			return true
		}
	}
	return false
}

// Members returns the members in join order. The slice is a copy so the
// caller can iterate while the room changes underneath.
func (r *Room) Members() []*session.Session {
	out := make([]*session.Session, len(r.members))
	copy(out, r.members)
	return out
}

// Usernames returns the display names in join order. Duplicates are
// possible and fine; two members may pick the same name.
func (r *Room) Usernames() []string {
	names := make([]string, 0, len(r.members))
	for _, m := range r.members {
		names = append(names, m.Username())
	}
	return names
}

// Len returns the current member count.
func (r *Room) Len() int {
	return len(r.members)
}

// Empty reports whether the room has no members left.
func (r *Room) Empty() bool {
	return len(r.members) == 0
}

// AppendStroke appends one finished stroke to the log.
func (r *Room) AppendStroke(s model.Stroke) {
	r.strokes = append(r.strokes, s)
}

// Strokes returns the stroke log in append order, never nil so it
// serializes as [] for an empty board.
func (r *Room) Strokes() []model.Stroke {
	out := make([]model.Stroke, len(r.strokes))
	copy(out, r.strokes)
	return out
}

// ClearStrokes empties the stroke log.
func (r *Room) ClearStrokes() {
	r.strokes = nil
}

// StrokeCount returns the stroke log length.
func (r *Room) StrokeCount() int {
	return len(r.strokes)
}
