package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaderboardOrdering(t *testing.T) {
	players := map[ConnID]*Player{
		"c1": {ID: "c1", Name: "zoe", Score: 2},
		"c2": {ID: "c2", Name: "Adam", Score: 5},
		"c3": {ID: "c3", Name: "Bea", Score: 2},
		"c4": {ID: "c4", Name: "Carl", Score: 0},
	}

	entries := Leaderboard(players)

	assert.Equal(t, []Entry{
		{ID: "c2", Name: "Adam", Score: 5},
		{ID: "c3", Name: "Bea", Score: 2},
		{ID: "c1", Name: "zoe", Score: 2},
		{ID: "c4", Name: "Carl", Score: 0},
	}, entries)
}

func TestLeaderboardTiesBreakCaseSensitively(t *testing.T) {
	players := map[ConnID]*Player{
		"c1": {ID: "c1", Name: "alice", Score: 3},
		"c2": {ID: "c2", Name: "Bob", Score: 3},
	}

	entries := Leaderboard(players)

	// byte-wise comparison: uppercase sorts before lowercase
	assert.Equal(t, "Bob", entries[0].Name)
	assert.Equal(t, "alice", entries[1].Name)
}

func TestLeaderboardIdempotent(t *testing.T) {
	players := map[ConnID]*Player{
		"c1": {ID: "c1", Name: "Alice", Score: 1},
		"c2": {ID: "c2", Name: "Bob", Score: 1},
		"c3": {ID: "c3", Name: "Carol", Score: 4},
	}

	first := Leaderboard(players)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Leaderboard(players))
	}
}

func TestLeaderboardEmpty(t *testing.T) {
	entries := Leaderboard(map[ConnID]*Player{})
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
