package game

import (
	"fmt"
	"math/rand"
	"sync"

	game_constants "Trivio/constants/game"
)

// Registry is the process-wide table of live rooms, keyed by room code. It is
// the single source of truth for "does this room exist". It is injected into
// the gateway rather than kept as package state so tests can tear it down.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

func generateRoomCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

// Create builds a room in Lobby phase around the given quiz snapshot, with
// the creating connection pinned as host for the room's whole life. Codes
// are drawn from the 6-digit decimal space with a retry loop on collision.
func (reg *Registry) Create(host ConnID, snap QuizSnapshot) (*Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for i := 0; i < game_constants.RoomCodeMaxAttempts; i++ {
		code := generateRoomCode()
		if _, taken := reg.rooms[code]; taken {
			continue
		}
		room := newRoom(code, host, snap)
		reg.rooms[code] = room
		return room, nil
	}
	return nil, ErrCodeSpaceExhausted
}

// Lookup is a pure read.
func (reg *Registry) Lookup(code string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[code]
	return room, ok
}

// Remove deletes the room for the given code. Idempotent.
func (reg *Registry) Remove(code string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.rooms, code)
}

// FindByConn returns every live room the connection participates in, as host
// or player. Used on disconnect, when all the gateway has is the handle.
func (reg *Registry) FindByConn(conn ConnID) []*Room {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	var found []*Room
	for _, room := range reg.rooms {
		if room.IsHost(conn) || room.HasPlayer(conn) {
			found = append(found, room)
		}
	}
	return found
}

// Count returns the number of live rooms.
func (reg *Registry) Count() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}
