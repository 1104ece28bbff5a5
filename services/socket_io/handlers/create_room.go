package handlers

import (
	"log"

	"Trivio/middleware"
	"Trivio/services/game"
	"Trivio/services/quiz"
	socketio_types "Trivio/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleCreateRoom opens a new room around a snapshot of the requested quiz
// (latest quiz when no id is given) and pins the calling connection as host.
// The role check happens here and only here; from now on host authority is
// the connection handle itself.
func HandleCreateRoom(registry *game.Registry, source quiz.Source, client *socket.Socket,
	identity *middleware.Identity, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		conn := game.ConnID(client.Id())
		log.Printf("[CREATE] HandleCreateRoom - Socket ID: %s, Args: %v", client.Id(), args)

		if !identity.IsHostAuthorized() {
			// no error emit: an unauthorized create gets no information back
			log.Printf("[CREATE] Unauthorized create_room from %s dropped", client.Id())
			return
		}

		// one live room per connection, same rule the join path enforces
		if inLiveRoom(registry, conn) {
			log.Printf("[CREATE-ERROR] Connection %s is already in a room", client.Id())
			client.Emit("error", gin.H{"error": "already in a room"})
			return
		}

		quizID := ""
		if len(args) >= 1 {
			if id, ok := args[0].(string); ok {
				quizID = id
			}
		}

		snap, err := source.Fetch(quizID)
		if err != nil {
			log.Printf("[CREATE-ERROR] Quiz source failed for %s: %v", identity.Username, err)
			client.Emit("error", gin.H{"error": "quiz source unavailable"})
			return
		}

		room, err := registry.Create(conn, *snap)
		if err != nil {
			log.Printf("[CREATE-ERROR] Could not create room: %v", err)
			client.Emit("error", gin.H{"error": "could not create room"})
			return
		}

		client.Join(socket.Room(room.Code()))

		log.Printf("[CREATE-SUCCESS] Room %s created by %s (%d questions)",
			room.Code(), identity.Username, room.TotalQuestions())
		client.Emit("room_created", gin.H{
			"room_code":       room.Code(),
			"title":           room.Title(),
			"total_questions": room.TotalQuestions(),
		})
	}
}
