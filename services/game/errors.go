package game

import "errors"

// Player-facing join failures. These are the only errors the gateway ever
// surfaces back to a client; everything else (host-auth mismatches, stale
// answers, out-of-turn commands) is a silent no-op so that probing a room
// code reveals nothing about its state.
var (
	ErrRoomNotFound = errors.New("room not found")
	ErrInvalidName  = errors.New("invalid player name")
	ErrNameTaken    = errors.New("name already taken in this room")
)

// ErrCodeSpaceExhausted is returned by the registry when it cannot find a
// free 6-digit code after the retry limit.
var ErrCodeSpaceExhausted = errors.New("could not generate a unique room code")
