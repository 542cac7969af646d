package room

import (
	"crypto/rand"
	"errors"
	"log"
	"math/big"
)

// Room codes are short and human-typeable, like A4X9L2.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// maxCodeAttempts bounds collision retries. Hitting it means the live
// code space is effectively exhausted, which is a configuration problem
// (code length far too short for the number of live rooms).
const maxCodeAttempts = 100

// ErrCodeSpaceExhausted is returned when no free room code can be found.
var ErrCodeSpaceExhausted = errors.New("room code space exhausted")

// Registry maps live room codes to rooms. Like the rooms themselves it is
// only touched on the gateway event loop and carries no lock.
type Registry struct {
	rooms      map[string]*Room
	codeLength int
}

// NewRegistry creates an empty registry generating codes of the given
// length.
func NewRegistry(codeLength int) *Registry {
	return &Registry{
		rooms:      make(map[string]*Room),
		codeLength: codeLength,
	}
}

// Create generates a fresh code, collision-checked against live rooms,
// and registers an empty room under it.
func (reg *Registry) Create() (*Room, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generateCode(reg.codeLength)
		if err != nil {
			return nil, err
		}
		if _, taken := reg.rooms[code]; taken {
			continue
		}
		r := New(code)
		reg.rooms[code] = r
		log.Printf("[Registry] Created room %s (%d live)", code, len(reg.rooms))
		return r, nil
	}
	return nil, ErrCodeSpaceExhausted
}

// Get looks up a live room by code.
func (reg *Registry) Get(code string) (*Room, bool) {
	r, ok := reg.rooms[code]
	return r, ok
}

// Remove deletes the room and its stroke log. Called when the last
// member disconnects.
func (reg *Registry) Remove(code string) {
	if _, ok := reg.rooms[code]; ok {
		delete(reg.rooms, code)
		log.Printf("[Registry] Removed room %s (%d live)", code, len(reg.rooms))
	}
}

// Count returns the number of live rooms.
func (reg *Registry) Count() int {
	return len(reg.rooms)
}

// generateCode draws length characters uniformly from the code alphabet.
func generateCode(length int) (string, error) {
	code := make([]byte, length)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code), nil
}
