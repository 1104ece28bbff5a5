package handlers

import (
	"testing"

	"Trivio/services/game"

	"github.com/stretchr/testify/assert"
)

func testSnapshot() game.QuizSnapshot {
	return game.QuizSnapshot{
		Title: "Capitals",
		Questions: []game.Question{
			{ID: "q1", Text: "Capital of France?", Options: []string{"Paris", "Rome"}, CorrectIndex: 0},
			{ID: "q2", Text: "Capital of Italy?", Options: []string{"Paris", "Rome"}, CorrectIndex: 1},
		},
	}
}

func TestTeardownHostDisconnectClosesRoom(t *testing.T) {
	registry := game.NewRegistry()
	host := game.ConnID("host-conn")

	room, err := registry.Create(host, testSnapshot())
	assert.NoError(t, err)
	_, err = room.Join("player-1", "Alice")
	assert.NoError(t, err)

	actions := teardownConnection(registry, host)

	assert.Len(t, actions, 1)
	assert.Equal(t, room.Code(), actions[0].RoomCode)
	assert.Equal(t, "room_closed", actions[0].Event)
	assert.Equal(t, "host disconnected", actions[0].Payload["reason"])
	assert.True(t, actions[0].Closed)

	// the code is dead: lookups fail and no further command can reach it
	_, ok := registry.Lookup(room.Code())
	assert.False(t, ok)
}

func TestTeardownPlayerDisconnectKeepsRoom(t *testing.T) {
	registry := game.NewRegistry()
	host := game.ConnID("host-conn")

	room, err := registry.Create(host, testSnapshot())
	assert.NoError(t, err)
	_, err = room.Join("player-1", "Alice")
	assert.NoError(t, err)
	_, err = room.Join("player-2", "Bob")
	assert.NoError(t, err)

	actions := teardownConnection(registry, "player-1")

	assert.Len(t, actions, 1)
	assert.Equal(t, "players_update", actions[0].Event)
	assert.Equal(t, 1, actions[0].Payload["count"])
	assert.False(t, actions[0].Closed)

	_, ok := registry.Lookup(room.Code())
	assert.True(t, ok)
	assert.False(t, room.HasPlayer("player-1"))
	assert.True(t, room.HasPlayer("player-2"))
}

func TestTeardownUnknownConnectionIsNoOp(t *testing.T) {
	registry := game.NewRegistry()
	_, err := registry.Create("host-conn", testSnapshot())
	assert.NoError(t, err)

	actions := teardownConnection(registry, "stranger")
	assert.Empty(t, actions)
	assert.Equal(t, 1, registry.Count())
}

func TestInLiveRoomGatesHostsAndPlayers(t *testing.T) {
	registry := game.NewRegistry()
	host := game.ConnID("host-conn")

	room, err := registry.Create(host, testSnapshot())
	assert.NoError(t, err)
	_, err = room.Join("player-1", "Alice")
	assert.NoError(t, err)

	// a hosting or playing connection may not open a second room
	assert.True(t, inLiveRoom(registry, host))
	assert.True(t, inLiveRoom(registry, "player-1"))
	assert.False(t, inLiveRoom(registry, "stranger"))

	// once the room dies the connection is free again
	registry.Remove(room.Code())
	assert.False(t, inLiveRoom(registry, host))
	assert.False(t, inLiveRoom(registry, "player-1"))
}
