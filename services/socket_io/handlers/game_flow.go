package handlers

import (
	"log"

	"Trivio/services/game"
	socketio_types "Trivio/services/socket_io/types"
	"Trivio/sync"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// inLiveRoom reports whether the connection already belongs to a live room,
// as host or player. A connection is allowed into at most one broadcast
// group at a time, otherwise it would receive both rooms' events.
func inLiveRoom(registry *game.Registry, conn game.ConnID) bool {
	return len(registry.FindByConn(conn)) > 0
}

// lookupRoom resolves the room code argument. Missing or unknown codes are
// dropped silently: host-flow commands against dead rooms come from stale
// client views and there is nothing useful to answer.
func lookupRoom(registry *game.Registry, args []interface{}) (*game.Room, bool) {
	if len(args) < 1 {
		return nil, false
	}
	code, ok := args[0].(string)
	if !ok {
		return nil, false
	}
	return registry.Lookup(code)
}

// HandleStartGame moves a lobby into its active phase. Host-only; a start
// from anyone else is a silent no-op.
func HandleStartGame(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		conn := game.ConnID(client.Id())

		room, ok := lookupRoom(registry, args)
		if !ok {
			return
		}

		info, ok := room.Start(conn)
		if !ok {
			return
		}

		log.Printf("[GAME] Room %s started", room.Code())
		sio.Sio_server.To(socket.Room(room.Code())).Emit("game_started", gin.H{
			"title": info.Title,
		})
	}
}

// HandleNextQuestion advances the room to its next question, or ends the
// game when the host advances past the last one.
func HandleNextQuestion(registry *game.Registry, syncManager *sync.SyncManager,
	client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		conn := game.ConnID(client.Id())

		room, ok := lookupRoom(registry, args)
		if !ok {
			return
		}

		info, ok := room.Advance(conn)
		if !ok {
			return
		}

		if info.Ended {
			finishGame(registry, syncManager, sio, room, info.Leaderboard)
			return
		}

		log.Printf("[GAME] Room %s question %d/%d", room.Code(),
			info.Question.Index, info.Question.Total)
		sio.Sio_server.To(socket.Room(room.Code())).Emit("question", info.Question)
	}
}

// HandleRevealAnswer discloses the correct option of the current question to
// the whole room, together with the standings.
func HandleRevealAnswer(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		conn := game.ConnID(client.Id())

		room, ok := lookupRoom(registry, args)
		if !ok {
			return
		}

		rev, ok := room.Reveal(conn)
		if !ok {
			return
		}

		log.Printf("[GAME] Room %s revealed answer %d", room.Code(), rev.CorrectIndex)
		sio.Sio_server.To(socket.Room(room.Code())).Emit("reveal", gin.H{
			"correct_index": rev.CorrectIndex,
			"leaderboard":   rev.Leaderboard,
		})
	}
}

// HandleEndGame lets the host end the game early from any phase.
func HandleEndGame(registry *game.Registry, syncManager *sync.SyncManager,
	client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		conn := game.ConnID(client.Id())

		room, ok := lookupRoom(registry, args)
		if !ok {
			return
		}

		info, ok := room.End(conn)
		if !ok {
			return
		}

		finishGame(registry, syncManager, sio, room, info.Leaderboard)
	}
}

// finishGame broadcasts the final leaderboard, archives the result and reaps
// the room. The room mutex is not held here: the ending transition already
// committed, archival I/O happens strictly after it.
func finishGame(registry *game.Registry, syncManager *sync.SyncManager,
	sio *socketio_types.SocketServer, room *game.Room, leaderboard []game.Entry) {
	log.Printf("[GAME-END] Room %s ended", room.Code())

	sio.Sio_server.To(socket.Room(room.Code())).Emit("game_ended", gin.H{
		"leaderboard": leaderboard,
	})

	if syncManager != nil {
		if err := syncManager.ArchiveGame(room.Summary()); err != nil {
			log.Printf("[GAME-END-ERROR] Archiving room %s failed: %v", room.Code(), err)
		}
	}

	registry.Remove(room.Code())

	// clear the broadcast group: the code can be re-issued to a future room,
	// and its broadcasts must not reach members of this one
	sio.Sio_server.In(socket.Room(room.Code())).SocketsLeave(socket.Room(room.Code()))
}
