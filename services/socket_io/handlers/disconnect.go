package handlers

import (
	"log"

	"Trivio/services/game"
	socketio_types "Trivio/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// teardownAction is one broadcast the gateway owes a room after a connection
// closed. Closed marks rooms that no longer exist; their broadcast group must
// be cleared so a later room reusing the code cannot reach stale members.
type teardownAction struct {
	RoomCode string
	Event    string
	Payload  gin.H
	Closed   bool
}

// teardownConnection releases everything the closing connection owned. A
// disconnecting host destroys their room outright (the room cannot outlive
// the only connection with authority over it); a disconnecting player is
// removed from the roster. State changes happen here, socket work stays in
// HandleDisconnecting.
func teardownConnection(registry *game.Registry, conn game.ConnID) []teardownAction {
	var actions []teardownAction
	for _, room := range registry.FindByConn(conn) {
		if room.IsHost(conn) {
			registry.Remove(room.Code())
			actions = append(actions, teardownAction{
				RoomCode: room.Code(),
				Event:    "room_closed",
				Payload: gin.H{
					"room_code": room.Code(),
					"reason":    "host disconnected",
				},
				Closed: true,
			})
			continue
		}

		left := room.RemovePlayer(conn)
		if !left.Removed {
			continue
		}
		actions = append(actions, teardownAction{
			RoomCode: room.Code(),
			Event:    "players_update",
			Payload: gin.H{
				"count":       left.Count,
				"leaderboard": left.Leaderboard,
			},
		})
	}
	return actions
}

// HandleDisconnecting applies the teardown and fans out the resulting events.
// Rooms destroyed by the teardown get their whole broadcast group cleared;
// for a plain player exit only the leaving socket is detached.
func HandleDisconnecting(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		conn := game.ConnID(client.Id())
		log.Printf("[DISCONNECT] HandleDisconnecting - Socket ID: %s", client.Id())

		for _, action := range teardownConnection(registry, conn) {
			sio.Sio_server.To(socket.Room(action.RoomCode)).Emit(action.Event, action.Payload)

			if action.Closed {
				log.Printf("[DISCONNECT] Host left, closed room %s", action.RoomCode)
				sio.Sio_server.In(socket.Room(action.RoomCode)).SocketsLeave(socket.Room(action.RoomCode))
			} else {
				log.Printf("[DISCONNECT] Player %s removed from room %s", client.Id(), action.RoomCode)
				client.Leave(socket.Room(action.RoomCode))
			}
		}

		sio.RemoveConnection(string(client.Id()))
		log.Printf("[DISCONNECT-DONE] Connection closed: %s", client.Id())
	}
}
