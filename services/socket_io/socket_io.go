package socket_io

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Trivio/services/game"
	"Trivio/services/quiz"
	"Trivio/services/socket_io/handlers"
	"Trivio/sync"

	socketio_types "Trivio/services/socket_io/types"
	socketio_utils "Trivio/services/socket_io/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type GameSocketServer socketio_types.SocketServer

// Start mounts the socket.io endpoint on the gin router and registers the
// realtime command handlers. Each inbound command resolves its room through
// the registry, applies the transition on the room's state machine, and only
// then fans out the resulting events; the per-room mutex inside the state
// machine is what makes each command atomic.
func (sio *GameSocketServer) Start(router *gin.Engine, registry *game.Registry,
	source quiz.Source, syncManager *sync.SyncManager) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	sio.Connections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		// Guests pass through too; the identity only gates room creation
		identity := socketio_utils.VerifyConnection(client)

		(*socketio_types.SocketServer)(sio).AddConnection(string(client.Id()), client)

		// Open a room for the quiz and become its host
		client.On("create_room", handlers.HandleCreateRoom(registry, source, client, identity, (*socketio_types.SocketServer)(sio)))

		// Join an existing room by code
		client.On("join_room", handlers.HandleJoinRoom(registry, client, (*socketio_types.SocketServer)(sio)))

		// Host flow: start, advance, reveal, end
		client.On("start_game", handlers.HandleStartGame(registry, client, (*socketio_types.SocketServer)(sio)))

		client.On("next_question", handlers.HandleNextQuestion(registry, syncManager, client, (*socketio_types.SocketServer)(sio)))

		client.On("reveal_answer", handlers.HandleRevealAnswer(registry, client, (*socketio_types.SocketServer)(sio)))

		client.On("end_game", handlers.HandleEndGame(registry, syncManager, client, (*socketio_types.SocketServer)(sio)))

		// Player answer submission
		client.On("answer", handlers.HandleAnswer(registry, client, (*socketio_types.SocketServer)(sio)))

		// NOTE: will remove sio connection from map and reap host-less rooms
		client.On("disconnecting", handlers.HandleDisconnecting(registry, client, (*socketio_types.SocketServer)(sio)))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	fmt.Println("Socket server started")
}
