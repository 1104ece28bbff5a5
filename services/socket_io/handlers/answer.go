package handlers

import (
	"log"

	"Trivio/services/game"
	socketio_types "Trivio/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// answerChoice coerces the wire value of a choice. JSON numbers arrive as
// float64; accept ints too for non-JSON encoders.
func answerChoice(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}

// HandleAnswer records a player's choice for the current question. Accepted
// answers are acknowledged to the submitter alone and followed by a
// room-wide roster update — scores only, the correct answer stays hidden
// until reveal. Every rejected answer is dropped without a reply.
func HandleAnswer(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		conn := game.ConnID(client.Id())

		if len(args) < 2 {
			return
		}
		roomCode, okCode := args[0].(string)
		choice, okChoice := answerChoice(args[1])
		if !okCode || !okChoice {
			return
		}

		room, ok := registry.Lookup(roomCode)
		if !ok {
			return
		}

		info, ok := room.Answer(conn, choice)
		if !ok {
			return
		}

		log.Printf("[ANSWER] Room %s: %s answered %d", roomCode, client.Id(), choice)
		client.Emit("answer_received", gin.H{"ok": true})

		sio.Sio_server.To(socket.Room(roomCode)).Emit("players_update", gin.H{
			"count":       info.Count,
			"leaderboard": info.Leaderboard,
		})
	}
}
