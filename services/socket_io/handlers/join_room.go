package handlers

import (
	"log"

	"Trivio/services/game"
	socketio_types "Trivio/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleJoinRoom adds the connection to a room as a player. Join failures
// (unknown room, bad or duplicate name) are the only player-facing errors
// the gateway surfaces, always to the requester alone. A successful join
// updates the whole room's roster; a late joiner additionally gets the
// current question (and the reveal, mid-reveal) replayed to them alone so
// their view matches everyone else's.
func HandleJoinRoom(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		conn := game.ConnID(client.Id())
		log.Printf("[JOIN] HandleJoinRoom - Socket ID: %s, Args: %v", client.Id(), args)

		if len(args) < 2 {
			client.Emit("join_error", gin.H{"message": "room code and name are required"})
			return
		}
		roomCode, okCode := args[0].(string)
		name, okName := args[1].(string)
		if !okCode || !okName {
			client.Emit("join_error", gin.H{"message": "room code and name are required"})
			return
		}

		// one live room per connection; a second join while the first room
		// is alive would make broadcast groups ambiguous
		if inLiveRoom(registry, conn) {
			client.Emit("join_error", gin.H{"message": "already in a room"})
			return
		}

		room, ok := registry.Lookup(roomCode)
		if !ok {
			log.Printf("[JOIN-ERROR] Room %s not found", roomCode)
			client.Emit("join_error", gin.H{"message": "room not found"})
			return
		}

		info, err := room.Join(conn, name)
		if err != nil {
			log.Printf("[JOIN-ERROR] Join rejected for %q in room %s: %v", name, roomCode, err)
			switch err {
			case game.ErrInvalidName:
				client.Emit("join_error", gin.H{"message": "invalid name"})
			case game.ErrNameTaken:
				client.Emit("join_error", gin.H{"message": "name already taken"})
			default:
				client.Emit("join_error", gin.H{"message": "could not join room"})
			}
			return
		}

		client.Join(socket.Room(roomCode))

		log.Printf("[JOIN-SUCCESS] %q joined room %s (%d players)", name, roomCode, info.Count)
		client.Emit("join_ok", gin.H{
			"room_code": roomCode,
			"title":     info.Title,
			"started":   info.Started,
		})

		sio.Sio_server.To(socket.Room(roomCode)).Emit("players_update", gin.H{
			"count":       info.Count,
			"leaderboard": info.Leaderboard,
		})

		// late-join catch-up, sent to the joiner only
		if info.CatchUp != nil {
			client.Emit("question", info.CatchUp)
		}
		if info.Reveal != nil {
			client.Emit("reveal", gin.H{
				"correct_index": info.Reveal.CorrectIndex,
				"leaderboard":   info.Reveal.Leaderboard,
			})
		}
	}
}
