package game

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAssignsSixDigitCode(t *testing.T) {
	reg := NewRegistry()

	codePattern := regexp.MustCompile(`^\d{6}$`)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		room, err := reg.Create("host-conn", testSnapshot(1))
		assert.NoError(t, err)
		assert.Regexp(t, codePattern, room.Code())
		assert.False(t, seen[room.Code()], "room code reused while live")
		seen[room.Code()] = true
	}
	assert.Equal(t, 50, reg.Count())
}

func TestLookupAndRemove(t *testing.T) {
	reg := NewRegistry()
	room, err := reg.Create("host-conn", testSnapshot(1))
	assert.NoError(t, err)

	got, ok := reg.Lookup(room.Code())
	assert.True(t, ok)
	assert.Same(t, room, got)

	_, ok = reg.Lookup("000000x")
	assert.False(t, ok)

	reg.Remove(room.Code())
	_, ok = reg.Lookup(room.Code())
	assert.False(t, ok)

	// idempotent
	reg.Remove(room.Code())
	assert.Equal(t, 0, reg.Count())
}

func TestFindByConn(t *testing.T) {
	reg := NewRegistry()
	room, _ := reg.Create("host-conn", testSnapshot(1))
	other, _ := reg.Create("other-host", testSnapshot(1))
	room.Join("c1", "Alice")

	assert.Len(t, reg.FindByConn("host-conn"), 1)
	assert.Len(t, reg.FindByConn("c1"), 1)
	assert.Same(t, room, reg.FindByConn("c1")[0])
	assert.Empty(t, reg.FindByConn("stranger"))
	assert.Same(t, other, reg.FindByConn("other-host")[0])
}
